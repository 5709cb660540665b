package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildFixtureIndex(t *testing.T, typ string) string {
	t.Helper()
	dir, basename := writeCorpus(t)
	out := filepath.Join(dir, "index.bin")
	require.NoError(t, runBuild(typ, filepath.Join(dir, basename), out, ""))
	return out
}

func TestRunQuery_PrefixAndConjunctive(t *testing.T) {
	inPath := buildFixtureIndex(t, "plain")

	requests := strings.Join([]string{
		`{"mode":"prefix","query":"new","k":2}`,
		`{"mode":"conjunctive","query":"york uni","k":2}`,
		`{"mode":"bogus","query":"new","k":2}`,
	}, "\n") + "\n"

	var stdout bytes.Buffer
	err := runQuery("plain", inPath, "", strings.NewReader(requests), &stdout)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)

	var first queryResponse
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "new", first.Query)
	require.Len(t, first.Results, 2)
	require.Equal(t, "new york pizza", first.Results[0].Text)

	var second queryResponse
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Len(t, second.Results, 1)
	require.Equal(t, "york university", second.Results[0].Text)

	var third queryResponse
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))
	require.Contains(t, third.Error, "unknown mode")
}

func TestRunQuery_BlockedVariant(t *testing.T) {
	inPath := buildFixtureIndex(t, "blocked")

	var stdout bytes.Buffer
	err := runQuery("blocked", inPath, "", strings.NewReader(`{"mode":"prefix","query":"new","k":2}`+"\n"), &stdout)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "new york pizza")
}

func TestRunQuery_MalformedLineDoesNotAbortStream(t *testing.T) {
	inPath := buildFixtureIndex(t, "plain")

	var stdout bytes.Buffer
	requests := "not json\n" + `{"mode":"prefix","query":"new","k":1}` + "\n"
	err := runQuery("plain", inPath, "", strings.NewReader(requests), &stdout)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)

	var first queryResponse
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Contains(t, first.Error, "malformed request")
}
