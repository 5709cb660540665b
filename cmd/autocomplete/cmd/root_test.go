package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	// Given: root command
	root := NewRootCmd()

	// When: listing subcommands
	names := make(map[string]bool)
	for _, sc := range root.Commands() {
		names[sc.Name()] = true
	}

	// Then: build and query are both registered
	assert.True(t, names["build"], "should have build command")
	assert.True(t, names["query"], "should have query command")
}

func TestBuildCmd_RejectsUnknownType(t *testing.T) {
	err := runBuild("weird", "basename", "", "")
	require.Error(t, err)
	var ue *usageError
	require.ErrorAs(t, err, &ue)
}

func TestQueryCmd_RejectsUnknownType(t *testing.T) {
	err := runQuery("weird", "in.bin", "", nil, nil)
	require.Error(t, err)
	var ue *usageError
	require.ErrorAs(t, err, &ue)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, exitUsageError, classify(newUsageError("bad arg")))
	assert.Equal(t, exitIOError, classify(assert.AnError))
}
