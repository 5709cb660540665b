package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pombredanne/autocomplete/config"
	"github.com/pombredanne/autocomplete/engine"
	"github.com/pombredanne/autocomplete/internal/serialize"
)

// queryRequest is one line of stdin input. Mode selects which engine
// operation spec.md §4.8 describes to run. The request/response line
// format itself is a CLI-layer decision spec.md leaves unspecified
// (documented in DESIGN.md) — not part of the query-engine API.
type queryRequest struct {
	Mode  string `json:"mode"`
	Query string `json:"query"`
	K     uint32 `json:"k"`
}

type queryResponse struct {
	Query   string          `json:"query"`
	Results []engine.Result `json:"results,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// topker is the subset of Engine/BlockedEngine the query subcommand needs;
// letting the command depend on an interface instead of a concrete
// engineCore instantiation keeps this file variant-agnostic.
type topker interface {
	PrefixTopk(query string, k uint32) (*engine.ResultIterator, error)
	ConjunctiveTopk(query string, k uint32) (*engine.ResultIterator, error)
}

func newQueryCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "query <type> <in.bin>",
		Short: "Load a persisted index and answer queries from stdin",
		Long: `query reads newline-delimited JSON requests from stdin, each
{"mode":"prefix"|"conjunctive","query":"...","k":N}, and writes one JSON
response line per request to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args[0], args[1], configPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config overriding the default tunables")
	return cmd
}

func runQuery(typ, inPath, configPath string, stdin io.Reader, stdout io.Writer) error {
	if typ != "plain" && typ != "blocked" {
		return newUsageError("unknown index type %q: want \"plain\" or \"blocked\"", typ)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("query: open %s: %w", inPath, err)
	}
	in, err := serialize.Read(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("query: read %s: %w", inPath, err)
	}

	var eng topker
	if typ == "plain" {
		eng, err = engine.NewFromBuildInputs(in, cfg, cliLog)
	} else {
		eng, err = engine.NewBlockedFromBuildInputs(in, cfg, cliLog)
	}
	if err != nil {
		return fmt.Errorf("query: construct engine: %w", err)
	}

	return serveQueries(eng, stdin, stdout)
}

func serveQueries(eng topker, stdin io.Reader, stdout io.Writer) error {
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	enc := json.NewEncoder(stdout)

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var req queryRequest
		resp := answerOne(eng, line, &req)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("query: write response: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("query: read stdin: %w", err)
	}
	return nil
}

func answerOne(eng topker, line []byte, req *queryRequest) queryResponse {
	if err := json.Unmarshal(line, req); err != nil {
		return queryResponse{Error: fmt.Sprintf("malformed request: %v", err)}
	}

	var it *engine.ResultIterator
	var err error
	switch req.Mode {
	case "prefix":
		it, err = eng.PrefixTopk(req.Query, req.K)
	case "conjunctive":
		it, err = eng.ConjunctiveTopk(req.Query, req.K)
	default:
		return queryResponse{Query: req.Query, Error: fmt.Sprintf("unknown mode %q", req.Mode)}
	}
	if err != nil {
		return queryResponse{Query: req.Query, Error: err.Error()}
	}

	results := make([]engine.Result, 0, it.Len())
	for it.HasNext() {
		results = append(results, it.Next())
	}
	return queryResponse{Query: req.Query, Results: results}
}
