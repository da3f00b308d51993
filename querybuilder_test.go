package corpusdex

import "testing"

func TestQueryBuilder_AndOr(t *testing.T) {
	b := NewBuilder()
	b.AddDocument("d1", "cat", "", "", "")
	b.AddDocument("d2", "dog", "", "", "")
	b.AddDocument("d3", "cat dog", "", "", "")
	idx := b.Finalize()

	results := NewQueryBuilder(idx).
		Term("cat").
		And().Term("dog").
		ExecuteIDs()

	if len(results) != 1 || results[0] != 2 {
		t.Errorf("cat AND dog = %v, want [2]", results)
	}

	orResults := AnyOf(idx, "cat", "dog").ToArray()
	if len(orResults) != 3 {
		t.Errorf("AnyOf(cat, dog) = %v, want all 3 docs", orResults)
	}
}

func TestQueryBuilder_Not(t *testing.T) {
	b := NewBuilder()
	b.AddDocument("d1", "python", "", "", "")
	b.AddDocument("d2", "python snake", "", "", "")
	idx := b.Finalize()

	results := TermExcluding(idx, "python", "snake").ToArray()
	if len(results) != 1 || results[0] != 0 {
		t.Errorf("TermExcluding(python, snake) = %v, want [0]", results)
	}
}

func TestQueryBuilder_Group(t *testing.T) {
	b := NewBuilder()
	b.AddDocument("d1", "cat pet", "", "", "")
	b.AddDocument("d2", "dog pet", "", "", "")
	b.AddDocument("d3", "bird pet", "", "", "")
	idx := b.Finalize()

	results := NewQueryBuilder(idx).
		Group(func(q *QueryBuilder) {
			q.Term("cat").Or().Term("dog")
		}).
		And().Term("pet").
		ExecuteIDs()

	if len(results) != 2 {
		t.Errorf("(cat OR dog) AND pet = %v, want 2 docs", results)
	}
}

func TestAllOf_EmptyTerms(t *testing.T) {
	idx := NewBuilder().Finalize()
	if got := AllOf(idx); got.GetCardinality() != 0 {
		t.Errorf("AllOf() with no terms = %v, want empty", got)
	}
}
