package engine

import (
	"log/slog"

	"github.com/pombredanne/autocomplete/config"
	"github.com/pombredanne/autocomplete/internal/postings"
	"github.com/pombredanne/autocomplete/internal/serialize"
)

// Engine is the plain-inverted-index variant (spec.md §9's "variant 1"):
// completion trie + unsorted-docs-list RMQ + front-coded dictionary +
// plain inverted index + forward index. This is the variant spec.md §4.8
// describes in detail and §8's end-to-end scenarios exercise.
type Engine = engineCore[*postings.LeapfrogIterator, *postings.Plain]

// New constructs an Engine from <dir>/<basename>.{dict,completions,
// inverted,forward,mapped_minimal}.
func New(dir, basename string, cfg config.Config, log *slog.Logger) (*Engine, error) {
	if log == nil {
		log = slog.Default()
	}
	l, err := loadCommon(dir, basename, cfg, log)
	if err != nil {
		return nil, err
	}
	return newEngine(l, cfg, log)
}

// NewFromBuildInputs constructs an Engine from a BuildInputs decoded off a
// persisted binary blob (internal/serialize.Read), skipping the build-file
// directory entirely. This is the path the CLI's `query` subcommand uses.
func NewFromBuildInputs(in *serialize.BuildInputs, cfg config.Config, log *slog.Logger) (*Engine, error) {
	if log == nil {
		log = slog.Default()
	}
	l, err := fromBuildInputs(in, cfg, log)
	if err != nil {
		return nil, err
	}
	return newEngine(l, cfg, log)
}

func newEngine(l *loaded, cfg config.Config, log *slog.Logger) (*Engine, error) {
	index := postings.BuildPlain(l.postingsByTerm, l.numDoc, log)
	return &Engine{
		dict:     l.dict,
		trie:     l.trie,
		docsList: l.docsList,
		minimal:  l.minimal,
		forward:  l.forward,
		index:      index,
		maxK:       cfg.MaxK,
		resultPool: make([]byte, 0, cfg.PoolSize),
		log:        log,
	}, nil
}
