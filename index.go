package corpusdex

import (
	"log/slog"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// Index is the servable, read-only inverted + forward index (§3). It is
// produced either by Builder.Finalize or by Load, and is never mutated
// after that point — callers get a fresh copy via a new build or load
// instead of patching one in place (§3 "Lifecycle").
type Index struct {
	terms   map[string][]uint32
	forward []Document
}

// NumDocs returns the number of documents in the forward store.
func (idx *Index) NumDocs() int { return len(idx.forward) }

// NumTerms returns the number of distinct terms in the inverted index.
func (idx *Index) NumTerms() int { return len(idx.terms) }

// Postings returns the posting list for a term, or nil if the term was
// never indexed. The returned slice is strictly ascending and must not be
// mutated by the caller — it is shared with the index.
func (idx *Index) Postings(term string) []uint32 {
	return idx.terms[term]
}

// Document returns the document at doc_id, or the empty Document if
// doc_id is out of range (§7 "Out-of-range doc_id on retrieval").
func (idx *Index) Document(docID uint32) Document {
	if int(docID) >= len(idx.forward) {
		return Document{}
	}
	return idx.forward[docID]
}

// TermFrequency pairs a term with how many documents it appears in.
type TermFrequency struct {
	Term  string
	Count int
}

// TermFrequencies returns every term paired with its posting-list length,
// sorted by descending frequency — the data behind the builder's --stats
// flag (§6, supplemented from original_source/main_indexer.cpp).
func (idx *Index) TermFrequencies() []TermFrequency {
	out := make([]TermFrequency, 0, len(idx.terms))
	for term, postings := range idx.terms {
		out = append(out, TermFrequency{Term: term, Count: len(postings)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Builder accumulates a new Index from a stream of documents (§4.C). Term
// postings are kept as live roaring bitmaps during the build — Add is
// idempotent, which gives per-document stem dedup for free and keeps every
// posting list in ascending order without an explicit sort step, mirroring
// the teacher's DocBitmaps field. Finalize drains each bitmap to a sorted
// []uint32 for the servable Index and for serialization.
type Builder struct {
	bitmaps map[string]*roaring.Bitmap
	forward []Document

	stats BuildStats
}

// BuildStats tracks ingest-time bookkeeping that doesn't belong on the
// servable Index: how many lines were skipped and why. Exposed so cmd/
// can print a summary the way the original indexer did.
type BuildStats struct {
	LinesSkippedMalformed int
	LinesSkippedEmpty     int
	DocsIndexed           int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		bitmaps: make(map[string]*roaring.Bitmap),
	}
}

// AddDocument indexes one document: concatenates title+" "+text, tokenizes,
// stems each token, and appends this document's id to the posting list of
// every unique stem (dedup is per-document, §4.C). It returns the assigned
// doc_id, which is always the document's position in insertion order.
func (b *Builder) AddDocument(title, text, url, category, source string) uint32 {
	docID := uint32(len(b.forward))
	b.forward = append(b.forward, Document{
		ID:       docID,
		Title:    title,
		URL:      url,
		Category: category,
		Source:   source,
	})

	seen := make(map[string]struct{})
	for _, token := range Tokenize(title + " " + text) {
		stem := Stem(token)
		if stem == "" {
			continue
		}
		if _, dup := seen[stem]; dup {
			continue
		}
		seen[stem] = struct{}{}

		bm, ok := b.bitmaps[stem]
		if !ok {
			bm = roaring.NewBitmap()
			b.bitmaps[stem] = bm
		}
		bm.Add(docID)
	}

	b.stats.DocsIndexed++
	return docID
}

// AddLine parses one line of the line-delimited input corpus (§6) and, if
// it yields a usable record, indexes it via AddDocument. A line that is
// empty, doesn't start with '{', or whose title and text are both empty
// is skipped and counted in Stats instead (§7 "Malformed input line",
// "Missing title+text").
func (b *Builder) AddLine(line string) {
	rec, ok := parseLine(line)
	if !ok {
		b.stats.LinesSkippedMalformed++
		return
	}
	if rec.Title == "" && rec.Text == "" {
		b.stats.LinesSkippedEmpty++
		return
	}
	b.AddDocument(rec.Title, rec.Text, rec.URL, rec.Category, rec.Source)
}

// Finalize drains every bitmap to an ascending posting list (ToArray yields
// ids in order, so no separate sort step is run) and returns the servable
// Index. The Builder should not be reused afterward.
func (b *Builder) Finalize() *Index {
	terms := make(map[string][]uint32, len(b.bitmaps))
	for term, bm := range b.bitmaps {
		terms[term] = bm.ToArray()
	}

	slog.Info("index built",
		slog.Int("docs", len(b.forward)),
		slog.Int("terms", len(terms)),
		slog.Int("skipped_malformed", b.stats.LinesSkippedMalformed),
		slog.Int("skipped_empty", b.stats.LinesSkippedEmpty),
	)

	return &Index{terms: terms, forward: b.forward}
}

// Stats returns ingest bookkeeping collected so far.
func (b *Builder) Stats() BuildStats { return b.stats }
