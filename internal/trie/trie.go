// Package trie implements the completion trie: a sequence-prefix lookup
// over token-id tuples, ranked by score.
//
// Internally, every real token id is stored shifted by +1; id 0 is reserved
// as the level terminator marking a completion that ends at that depth
// (spec.md §3, §9 — "Id-0 reservation"). Callers are responsible for this
// shift, the way spec.md's reference autocomplete engine performs it once at
// the call site (`completion_trie.locate_prefix(prefix, suffix_range+1
// shift)`) rather than inside the trie itself.
//
// The trie does not store document ids directly. Completions are stably
// sorted lexicographically by token-id tuple (treating "no token at this
// depth" as smaller than any real token, which is exactly what the id-0
// terminator represents) into a single flat position array; a node's
// left/right extremes are a contiguous *position* range into that array,
// not a doc-id range. Resolving positions to actual document ids — which
// are assigned independently, by score rank — is the job of the
// accompanying docslist.UnsortedList built over LeafDocIDs.
package trie

import "sort"

// Node is one trie node. Children are sorted ascending by Token.
type Node struct {
	Token    uint32
	Lo, Hi   uint32 // contiguous position range covered by this node's subtree
	Children []*Node
}

func (n *Node) findChild(token uint32) *Node {
	i := sort.Search(len(n.Children), func(i int) bool { return n.Children[i].Token >= token })
	if i < len(n.Children) && n.Children[i].Token == token {
		return n.Children[i]
	}
	return nil
}

// Trie is the completion trie over a fixed corpus.
type Trie struct {
	root       *Node
	LeafDocIDs []uint32 // position -> original (score-rank) document id
}

type item struct {
	tokens []uint32 // trie-space token ids (already shifted by +1 by the caller)
	docID  uint32
}

// Build constructs a Trie from completions, where completions[i] is the
// trie-space token-id sequence of the document whose id is i (documents are
// assumed pre-sorted by descending score, so doc id == i == rank).
func Build(completions [][]uint32) *Trie {
	items := make([]item, len(completions))
	for i, tokens := range completions {
		items[i] = item{tokens: tokens, docID: uint32(i)}
	}
	sort.SliceStable(items, func(i, j int) bool { return lessTokens(items[i].tokens, items[j].tokens) })

	t := &Trie{}
	t.LeafDocIDs = make([]uint32, 0, len(items))
	t.root = t.build(items, 0)
	return t
}

// lessTokens orders token sequences lexicographically, treating "ended" as
// smaller than any real (>=1) token id — the same ordering the id-0
// terminator encodes structurally.
func lessTokens(a, b []uint32) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func (t *Trie) build(items []item, depth int) *Node {
	lo := uint32(len(t.LeafDocIDs))
	node := &Node{Lo: lo}

	i := 0
	for i < len(items) {
		j := i
		terminal := depth == len(items[i].tokens)
		var key uint32
		if !terminal {
			key = items[i].tokens[depth]
		}
		for j < len(items) {
			jTerminal := depth == len(items[j].tokens)
			if jTerminal != terminal {
				break
			}
			if !terminal && items[j].tokens[depth] != key {
				break
			}
			j++
		}
		run := items[i:j]
		if terminal {
			child := &Node{Token: 0, Lo: uint32(len(t.LeafDocIDs))}
			for _, it := range run {
				t.LeafDocIDs = append(t.LeafDocIDs, it.docID)
			}
			child.Hi = uint32(len(t.LeafDocIDs))
			node.Children = append(node.Children, child)
		} else {
			child := t.build(run, depth+1)
			child.Token = key
			node.Children = append(node.Children, child)
		}
		i = j
	}
	node.Hi = uint32(len(t.LeafDocIDs))
	return node
}

// LocatePrefix walks the trie along prefixIDs (trie-space, exact token ids),
// then at the final node selects children whose token lies in
// [suffixLo, suffixHi) (also trie-space). Returns the union of their
// position ranges — contiguous by construction — or ok=false if nothing
// matches.
func (t *Trie) LocatePrefix(prefixIDs []uint32, suffixLo, suffixHi uint32) (lo, hi uint32, ok bool) {
	node := t.root
	for _, id := range prefixIDs {
		child := node.findChild(id)
		if child == nil {
			return 0, 0, false
		}
		node = child
	}

	children := node.Children
	loIdx := sort.Search(len(children), func(i int) bool { return children[i].Token >= suffixLo })
	if loIdx >= len(children) || children[loIdx].Token >= suffixHi {
		return 0, 0, false
	}
	hiIdx := sort.Search(len(children), func(i int) bool { return children[i].Token >= suffixHi })
	return children[loIdx].Lo, children[hiIdx-1].Hi, true
}

// NumPositions returns the size of the flat position array (== number of
// documents).
func (t *Trie) NumPositions() int { return len(t.LeafDocIDs) }

// Bytes returns an approximate memory footprint.
func (t *Trie) Bytes() uint64 {
	var count func(n *Node) uint64
	count = func(n *Node) uint64 {
		total := uint64(16)
		for _, c := range n.Children {
			total += count(c)
		}
		return total
	}
	return count(t.root) + uint64(len(t.LeafDocIDs))*4
}
