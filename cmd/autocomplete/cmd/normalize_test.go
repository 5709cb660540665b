package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunNormalize_StemsTokensPerLine(t *testing.T) {
	var stdout bytes.Buffer
	err := runNormalize(strings.NewReader("Running Shoes\n\nJumping Jacks\n"), &stdout)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.NotEqual(t, "Running Shoes", lines[0])
	require.Equal(t, "", lines[1])
}
