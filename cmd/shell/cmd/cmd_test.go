package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRoutesCommand(t *testing.T) {
	out := run(t, "routes")

	assert.Contains(t, out, "PATH")
	assert.Regexp(t, `(?m)^/risk-assessments\s+Risk Assessments$`, out)
	assert.Regexp(t, `(?m)^/\s+Home$`, out)
	assert.Regexp(t, `(?m)^/login\s+Login$`, out)
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "Compliance shell v"+version+"\n", run(t, "version"))
}

func TestServeCommand_InvalidConfig(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	rootCmd.SetArgs([]string{"serve"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
