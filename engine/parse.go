package engine

import (
	"strings"

	"github.com/pombredanne/autocomplete/internal/dictionary"
)

// parsedQuery is the result of splitting and resolving a query string
// against the dictionary, per spec.md §4.8's "Parse" step.
type parsedQuery struct {
	completeIDs []uint32 // dictionary-space (0-based) ids of all-but-last token
	suffixLo    uint32   // dictionary-space [lo, hi) suffix prefix range
	suffixHi    uint32
	suffixEmpty bool // true iff the query ended with a trailing space
	notFound    bool // a complete token failed to resolve, or the suffix prefix-range is empty
}

// parseQuery splits query on ASCII space. All but the last token are
// complete and resolved via Locate; the last token is the incomplete
// suffix and resolved via LocatePrefix, unless the query ends with a
// space, in which case every token is complete and the suffix is empty.
func parseQuery(dict *dictionary.Dictionary, query string) parsedQuery {
	if len(query) == 0 {
		return parsedQuery{notFound: true}
	}
	trailingSpace := query[len(query)-1] == ' '
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return parsedQuery{notFound: true}
	}

	var completeTokens []string
	var suffixToken string
	if trailingSpace {
		completeTokens = fields
	} else {
		completeTokens = fields[:len(fields)-1]
		suffixToken = fields[len(fields)-1]
	}

	ids := make([]uint32, 0, len(completeTokens))
	for _, tok := range completeTokens {
		id := dict.Locate(tok)
		if id == dictionary.NotFound {
			return parsedQuery{notFound: true}
		}
		ids = append(ids, id)
	}

	if suffixToken == "" {
		return parsedQuery{completeIDs: ids, suffixLo: 0, suffixHi: uint32(dict.NumTokens()), suffixEmpty: true}
	}
	lo, hi := dict.LocatePrefix([]byte(suffixToken))
	if lo >= hi {
		return parsedQuery{notFound: true}
	}
	return parsedQuery{completeIDs: ids, suffixLo: lo, suffixHi: hi}
}
