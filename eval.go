package corpusdex

// Evaluator walks a parsed query tree (or, on parse failure, a raw query
// string) against an Index and returns matching doc ids in ascending
// order (§4.F).
type Evaluator struct {
	index *Index
}

// NewEvaluator returns an Evaluator bound to idx.
func NewEvaluator(idx *Index) *Evaluator {
	return &Evaluator{index: idx}
}

// Search answers a boolean query string. An empty or whitespace-only
// query returns an empty result (§7 "Empty query"). A query that fails to
// parse falls back to the defensive path: tokenize the raw string, stem
// every token, and intersect all of their posting lists (§4.E, §7 "Parse
// failure").
func (e *Evaluator) Search(query string) []uint32 {
	node, err := Parse(query)
	if err != nil {
		return e.fallback(query)
	}
	if node == nil {
		return []uint32{}
	}
	return e.eval(node)
}

func (e *Evaluator) eval(node *Node) []uint32 {
	switch node.Kind {
	case NodeTerm:
		return e.evalLeaf(node.Term)
	case NodeAnd:
		left := e.eval(node.Left)
		if len(left) == 0 {
			return []uint32{}
		}
		right := e.eval(node.Right)
		return Intersect(left, right)
	case NodeOr:
		return Union(e.eval(node.Left), e.eval(node.Right))
	case NodeNot:
		operand := e.eval(node.Left)
		return Complement(operand, uint32(e.index.NumDocs()))
	default:
		return []uint32{}
	}
}

// evalLeaf implements the TERM rule: tokenize the raw leaf text, stem the
// first token, and look up its posting list. A leaf with no tokens, or
// whose stem is absent from the index, evaluates to empty (§4.F, §7
// "Lookup miss on a term").
func (e *Evaluator) evalLeaf(raw string) []uint32 {
	tokens := Tokenize(raw)
	if len(tokens) == 0 {
		return []uint32{}
	}
	stem := Stem(tokens[0])
	postings := e.index.Postings(stem)
	if postings == nil {
		return []uint32{}
	}
	out := make([]uint32, len(postings))
	copy(out, postings)
	return out
}

// fallback tokenizes the raw query directly — non-letters act as natural
// separators for "&&", "||", "!" and parens — stems every resulting
// token, and intersects all of their posting lists.
func (e *Evaluator) fallback(query string) []uint32 {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []uint32{}
	}

	result := e.index.Postings(Stem(tokens[0]))
	out := make([]uint32, len(result))
	copy(out, result)

	for _, tok := range tokens[1:] {
		postings := e.index.Postings(Stem(tok))
		out = Intersect(out, postings)
		if len(out) == 0 {
			return []uint32{}
		}
	}
	return out
}
