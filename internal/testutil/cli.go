package testutil

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs cmd with args and returns what it wrote to its output
// and error streams.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}
