// Package shell mounts the application shell for one page load.
//
// A mount reads the persisted session token once. Without a token the load
// settles immediately as not attempted. With a token a single profile fetch
// runs in the background while the page renders, and its outcome is
// delivered through the Load. Failures are logged and leave the user state
// empty; they are never surfaced to the page.
package shell
