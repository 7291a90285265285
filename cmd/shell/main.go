package main

import "github.com/nfrund/compliance-shell/cmd/shell/cmd"

func main() {
	cmd.Execute()
}
