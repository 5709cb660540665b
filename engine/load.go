package engine

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pombredanne/autocomplete/config"
	"github.com/pombredanne/autocomplete/internal/buildfile"
	"github.com/pombredanne/autocomplete/internal/dictionary"
	"github.com/pombredanne/autocomplete/internal/docslist"
	"github.com/pombredanne/autocomplete/internal/forward"
	"github.com/pombredanne/autocomplete/internal/serialize"
	"github.com/pombredanne/autocomplete/internal/trie"
)

// loaded holds every index family the inverted-index variant does not
// affect, shared between Engine and BlockedEngine construction.
type loaded struct {
	dict           *dictionary.Dictionary
	trie           *trie.Trie
	docsList       *docslist.UnsortedList
	minimal        *minimalDocsList
	forward        *forward.Index
	postingsByTerm map[uint32][]uint32
	numDoc         uint32
}

// ReadBuildInputs reads <basename>.dict/.completions/.inverted/.forward/
// .mapped_minimal from dir (spec.md §6's build input files) and resolves
// them into the form the persisted index layout stores — completions
// already shifted into trie space, the unsorted-list permutation already
// derived from them. This is what the CLI's `build` subcommand persists
// via internal/serialize.
func ReadBuildInputs(dir, basename string, cfg config.Config, log *slog.Logger) (*serialize.BuildInputs, error) {
	if log == nil {
		log = slog.Default()
	}
	dictTokens, err := readFile(dir, basename, "dict", buildfile.ReadDict)
	if err != nil {
		return nil, err
	}
	dict := dictionary.Build(dictTokens, cfg.BucketSize, log)

	completions, err := readFile(dir, basename, "completions", buildfile.ReadCompletions)
	if err != nil {
		return nil, err
	}
	trieSpace := make([][]uint32, len(completions))
	for i, c := range completions {
		ids := make([]uint32, len(c.Tokens))
		for j, tok := range c.Tokens {
			id := dict.Locate(tok)
			if id == dictionary.NotFound {
				return nil, fmt.Errorf("%w: completion %d token %q not in dictionary", ErrCorruptIndex, i, tok)
			}
			ids[j] = id + 1
		}
		trieSpace[i] = ids
	}
	tr := trie.Build(trieSpace)

	forwardLists, err := readFile(dir, basename, "forward", buildfile.ReadForward)
	if err != nil {
		return nil, err
	}
	postingsByTerm, err := readFile(dir, basename, "inverted", buildfile.ReadPostingsByTerm)
	if err != nil {
		return nil, err
	}
	minimalPostings, err := readFile(dir, basename, "mapped_minimal", buildfile.ReadPostingsByTerm)
	if err != nil {
		return nil, err
	}

	log.Info("engine: read build files",
		slog.String("basename", basename), slog.Int("tokens", dict.NumTokens()), slog.Int("docs", len(completions)))

	return &serialize.BuildInputs{
		Tokens:          dictTokens,
		Completions:     trieSpace,
		DocIDs:          tr.LeafDocIDs,
		MinimalPostings: minimalPostings,
		Postings:        postingsByTerm,
		NumDoc:          uint32(len(completions)),
		Forward:         forwardLists,
	}, nil
}

// loadCommon reads the build files straight off disk and builds every
// shared index family.
func loadCommon(dir, basename string, cfg config.Config, log *slog.Logger) (*loaded, error) {
	in, err := ReadBuildInputs(dir, basename, cfg, log)
	if err != nil {
		return nil, err
	}
	return fromBuildInputs(in, cfg, log)
}

// fromBuildInputs reconstructs every shared index family from a parsed
// BuildInputs — either freshly read from build files, or decoded from a
// persisted blob via internal/serialize.Read.
func fromBuildInputs(in *serialize.BuildInputs, cfg config.Config, log *slog.Logger) (*loaded, error) {
	if log == nil {
		log = slog.Default()
	}
	dict := dictionary.Build(in.Tokens, cfg.BucketSize, log)
	tr := trie.Build(in.Completions)
	dl := docslist.Build(tr.LeafDocIDs)
	fwd := forward.Build(in.Forward, log)
	minimal := buildMinimalDocsList(in.MinimalPostings, dict.NumTokens(), in.NumDoc, cfg.BucketSize, log)

	return &loaded{
		dict:           dict,
		trie:           tr,
		docsList:       dl,
		minimal:        minimal,
		forward:        fwd,
		postingsByTerm: in.Postings,
		numDoc:         in.NumDoc,
	}, nil
}

func readFile[T any](dir, basename, ext string, parse func(r io.Reader) (T, error)) (T, error) {
	var zero T
	path := filepath.Join(dir, basename+"."+ext)
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("engine: open %s: %w", path, err)
	}
	defer f.Close()
	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("engine: parse %s: %w", path, err)
	}
	return v, nil
}
