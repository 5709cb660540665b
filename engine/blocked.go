package engine

import (
	"log/slog"

	"github.com/pombredanne/autocomplete/config"
	"github.com/pombredanne/autocomplete/internal/postings"
	"github.com/pombredanne/autocomplete/internal/serialize"
)

// BlockedEngine is the blocked-inverted-index variant (spec.md §9's
// "variant 4"): identical to Engine except the conjunctive path's
// intersection runs over postings.Blocked, favoured for higher-selectivity
// queries (spec.md §4.6).
type BlockedEngine = engineCore[*postings.BlockedLeapfrogIterator, *postings.Blocked]

// NewBlocked constructs a BlockedEngine from the same five build files New
// reads, using cfg.BlockSize for the blocked inverted index's block size.
func NewBlocked(dir, basename string, cfg config.Config, log *slog.Logger) (*BlockedEngine, error) {
	if log == nil {
		log = slog.Default()
	}
	l, err := loadCommon(dir, basename, cfg, log)
	if err != nil {
		return nil, err
	}
	return newBlockedEngine(l, cfg, log)
}

// NewBlockedFromBuildInputs constructs a BlockedEngine from a BuildInputs
// decoded off a persisted binary blob, skipping the build-file directory.
func NewBlockedFromBuildInputs(in *serialize.BuildInputs, cfg config.Config, log *slog.Logger) (*BlockedEngine, error) {
	if log == nil {
		log = slog.Default()
	}
	l, err := fromBuildInputs(in, cfg, log)
	if err != nil {
		return nil, err
	}
	return newBlockedEngine(l, cfg, log)
}

func newBlockedEngine(l *loaded, cfg config.Config, log *slog.Logger) (*BlockedEngine, error) {
	index := postings.BuildBlocked(l.postingsByTerm, l.numDoc, cfg.BlockSize, log)
	return &BlockedEngine{
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
