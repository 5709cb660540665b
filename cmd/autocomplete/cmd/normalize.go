package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pombredanne/autocomplete/internal/tokenize"
)

// newNormalizeCmd exposes the build-time tokenizer's stemming pass
// (spec.md §1 names this "the build-time tokenizer that ingests raw input
// files" as an external collaborator, not core). It reads raw
// space-delimited lines from stdin and writes the same lines with every
// token lowercased and stemmed, the form a `.dict`/`.completions` build
// file's tokens are expected to already be in.
func newNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Stem raw corpus lines into build-file-ready tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNormalize(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	return cmd
}

func runNormalize(stdin io.Reader, stdout io.Writer) error {
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	w := bufio.NewWriter(stdout)
	defer w.Flush()

	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintln(w, strings.Join(tokenize.StemAll(fields), " "))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("normalize: read stdin: %w", err)
	}
	return nil
}
