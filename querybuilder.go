package corpusdex

import "github.com/RoaringBitmap/roaring"

// QueryBuilder is a fluent, programmatic alternative to Parse + Evaluator
// for callers that want to assemble a boolean query in code rather than
// parse one from a string. It operates directly on roaring bitmaps built
// from the Index's posting lists, exercising roaring's native And/Or/
// AndNot rather than the sort-merge algebra in algebra.go — a second,
// independent code path over the same index.
//
// Example:
//
//	results := NewQueryBuilder(idx).
//	    Term("machine").
//	    And().Term("learning").
//	    Execute()
type QueryBuilder struct {
	index  *Index
	stack  []*roaring.Bitmap
	ops    []queryOp
	negate bool
}

type queryOp int

const (
	opAnd queryOp = iota
	opOr
)

// NewQueryBuilder starts a new fluent query against idx.
func NewQueryBuilder(idx *Index) *QueryBuilder {
	return &QueryBuilder{index: idx}
}

// Term adds a term to the query, tokenizing and stemming it the same way
// the evaluator's leaf rule does (§4.F).
func (qb *QueryBuilder) Term(term string) *QueryBuilder {
	tokens := Tokenize(term)
	var bitmap *roaring.Bitmap
	if len(tokens) == 0 {
		bitmap = roaring.NewBitmap()
	} else {
		bitmap = qb.termBitmap(Stem(tokens[0]))
	}

	if qb.negate {
		bitmap = qb.negateBitmap(bitmap)
		qb.negate = false
	}

	qb.stack = append(qb.stack, bitmap)
	return qb
}

// And queues an AND operation before the next Term/Group.
func (qb *QueryBuilder) And() *QueryBuilder {
	qb.ops = append(qb.ops, opAnd)
	return qb
}

// Or queues an OR operation before the next Term/Group.
func (qb *QueryBuilder) Or() *QueryBuilder {
	qb.ops = append(qb.ops, opOr)
	return qb
}

// Not negates the next Term or Group.
func (qb *QueryBuilder) Not() *QueryBuilder {
	qb.negate = true
	return qb
}

// Group evaluates a sub-query built by fn and folds its result into qb,
// honoring a preceding Not.
func (qb *QueryBuilder) Group(fn func(*QueryBuilder)) *QueryBuilder {
	sub := NewQueryBuilder(qb.index)
	fn(sub)
	result := sub.Execute()

	if qb.negate {
		result = qb.negateBitmap(result)
		qb.negate = false
	}

	qb.stack = append(qb.stack, result)
	return qb
}

// Execute folds the stack left-to-right using the queued operations and
// returns the resulting bitmap of matching doc ids.
func (qb *QueryBuilder) Execute() *roaring.Bitmap {
	if len(qb.stack) == 0 {
		return roaring.NewBitmap()
	}
	result := qb.stack[0]
	for i := 1; i < len(qb.stack); i++ {
		if i-1 >= len(qb.ops) {
			break
		}
		switch qb.ops[i-1] {
		case opAnd:
			result = roaring.And(result, qb.stack[i])
		case opOr:
			result = roaring.Or(result, qb.stack[i])
		}
	}
	return result
}

// ExecuteIDs is Execute followed by a drain to a sorted []uint32, for
// callers that want the same shape the evaluator produces.
func (qb *QueryBuilder) ExecuteIDs() []uint32 {
	return qb.Execute().ToArray()
}

func (qb *QueryBuilder) termBitmap(stem string) *roaring.Bitmap {
	bm := roaring.NewBitmap()
	for _, id := range qb.index.Postings(stem) {
		bm.Add(id)
	}
	return bm
}

func (qb *QueryBuilder) negateBitmap(bitmap *roaring.Bitmap) *roaring.Bitmap {
	all := roaring.NewBitmap()
	all.AddRange(0, uint64(qb.index.NumDocs()))
	return roaring.AndNot(all, bitmap)
}

// AllOf finds documents containing every one of terms (AND across all).
func AllOf(idx *Index, terms ...string) *roaring.Bitmap {
	if len(terms) == 0 {
		return roaring.NewBitmap()
	}
	qb := NewQueryBuilder(idx).Term(terms[0])
	for _, t := range terms[1:] {
		qb.And().Term(t)
	}
	return qb.Execute()
}

// AnyOf finds documents containing at least one of terms (OR across all).
func AnyOf(idx *Index, terms ...string) *roaring.Bitmap {
	if len(terms) == 0 {
		return roaring.NewBitmap()
	}
	qb := NewQueryBuilder(idx).Term(terms[0])
	for _, t := range terms[1:] {
		qb.Or().Term(t)
	}
	return qb.Execute()
}

// TermExcluding finds documents with include but without exclude.
func TermExcluding(idx *Index, include, exclude string) *roaring.Bitmap {
	return NewQueryBuilder(idx).
		Term(include).
		And().Not().Term(exclude).
		Execute()
}
