package corpusdex

// Document is an immutable forward-index record. ID equals the document's
// insertion ordinal and is redundant with its position in the forward store;
// it is kept on the struct because it round-trips through the on-disk format
// (see codec.go) and because callers holding a Document value outside the
// store still want to know which doc_id it came from.
type Document struct {
	ID       uint32
	Title    string
	URL      string
	Category string
	Source   string
}
