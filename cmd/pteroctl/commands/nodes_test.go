package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodes_Subcommands(t *testing.T) {
	cmd := Nodes()

	expected := []string{
		"list", "show", "create", "update", "delete",
		"allocations", "add-allocations", "delete-allocation",
	}
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, names[name], "missing subcommand %q", name)
	}
}

func TestNodesCreate_DaemonDefaults(t *testing.T) {
	cmd := nodesCreate()

	for flag, def := range map[string]string{
		"scheme":      "https",
		"sftp-port":   "2022",
		"daemon-port": "8080",
	} {
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "missing flag %q", flag)
		assert.Equal(t, def, f.DefValue, "flag %q", flag)
	}
}
