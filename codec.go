package corpusdex

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"
	"sort"
)

// magic identifies an on-disk index file: 'M','D','I','X' read little-endian
// as a u32 (§6). version is bumped whenever the byte layout changes.
const (
	magic   uint32 = 0x5849444D
	version uint32 = 1
)

// Sentinel load errors (§7 "Bad magic / version").
var (
	ErrBadMagic       = errors.New("corpusdex: bad index magic")
	ErrBadVersion     = errors.New("corpusdex: unsupported index version")
	ErrTruncatedIndex = errors.New("corpusdex: truncated index file")
)

// Save writes idx to path in the binary layout defined in §6: a 32-byte
// header, the term block in ascending byte-wise key order, then the
// forward block in doc_id order. forward_offset is computed after the
// term block is written and patched into the header via seek-back, the
// same two-pass approach the original indexer uses to avoid buffering
// the whole term block in memory twice.
func (idx *Index) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	terms := make([]string, 0, len(idx.terms))
	for t := range idx.terms {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	// Reserve the header; it is patched once forward_offset is known.
	if _, err := w.Write(make([]byte, 32)); err != nil {
		return err
	}

	var u32 [4]byte

	for _, term := range terms {
		postings := idx.terms[term]

		binary.LittleEndian.PutUint32(u32[:], uint32(len(term)))
		if _, err := w.Write(u32[:]); err != nil {
			return err
		}
		if _, err := w.WriteString(term); err != nil {
			return err
		}

		binary.LittleEndian.PutUint32(u32[:], uint32(len(postings)))
		if _, err := w.Write(u32[:]); err != nil {
			return err
		}
		for _, id := range postings {
			binary.LittleEndian.PutUint32(u32[:], id)
			if _, err := w.Write(u32[:]); err != nil {
				return err
			}
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	forwardOffset, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	w = bufio.NewWriter(f)
	for _, doc := range idx.forward {
		if err := writeDocRecord(w, &u32, doc); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	var header [32]byte
	binary.LittleEndian.PutUint32(header[0:4], magic)
	binary.LittleEndian.PutUint32(header[4:8], version)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(terms)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(idx.forward)))
	binary.LittleEndian.PutUint64(header[16:24], uint64(forwardOffset))
	binary.LittleEndian.PutUint64(header[24:32], 0)
	if _, err := f.Write(header[:]); err != nil {
		return err
	}

	return nil
}

func writeDocRecord(w *bufio.Writer, scratch *[4]byte, doc Document) error {
	binary.LittleEndian.PutUint32(scratch[:], doc.ID)
	if _, err := w.Write(scratch[:]); err != nil {
		return err
	}
	for _, field := range []string{doc.Title, doc.URL, doc.Category, doc.Source} {
		binary.LittleEndian.PutUint32(scratch[:], uint32(len(field)))
		if _, err := w.Write(scratch[:]); err != nil {
			return err
		}
		if _, err := w.WriteString(field); err != nil {
			return err
		}
	}
	return nil
}

// Load reads an index previously written by Save. It validates magic and
// version before touching the term or forward blocks (§4.D, §7).
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var header [32]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrTruncatedIndex
		}
		return nil, err
	}

	gotMagic := binary.LittleEndian.Uint32(header[0:4])
	if gotMagic != magic {
		slog.Error("index load: bad magic", slog.String("path", path), slog.Uint64("got", uint64(gotMagic)))
		return nil, ErrBadMagic
	}
	gotVersion := binary.LittleEndian.Uint32(header[4:8])
	if gotVersion != version {
		slog.Error("index load: unsupported version", slog.String("path", path), slog.Uint64("got", uint64(gotVersion)))
		return nil, ErrBadVersion
	}
	numTerms := binary.LittleEndian.Uint32(header[8:12])
	numDocs := binary.LittleEndian.Uint32(header[12:16])
	// forward_offset (header[16:24]) is implicit in the sequential read
	// below and is not needed to drive Load; reserved (header[24:32]) is
	// currently unused.

	terms := make(map[string][]uint32, numTerms)
	var u32 [4]byte

	for i := uint32(0); i < numTerms; i++ {
		if _, err := io.ReadFull(r, u32[:]); err != nil {
			return nil, ErrTruncatedIndex
		}
		termLen := binary.LittleEndian.Uint32(u32[:])

		termBytes := make([]byte, termLen)
		if _, err := io.ReadFull(r, termBytes); err != nil {
			return nil, ErrTruncatedIndex
		}

		if _, err := io.ReadFull(r, u32[:]); err != nil {
			return nil, ErrTruncatedIndex
		}
		postingLen := binary.LittleEndian.Uint32(u32[:])

		postings := make([]uint32, postingLen)
		for j := range postings {
			if _, err := io.ReadFull(r, u32[:]); err != nil {
				return nil, ErrTruncatedIndex
			}
			postings[j] = binary.LittleEndian.Uint32(u32[:])
		}

		terms[string(termBytes)] = postings
	}

	forward := make([]Document, numDocs)
	for i := uint32(0); i < numDocs; i++ {
		doc, err := readDocRecord(r, &u32)
		if err != nil {
			return nil, err
		}
		forward[i] = doc
	}

	return &Index{terms: terms, forward: forward}, nil
}

func readDocRecord(r io.Reader, scratch *[4]byte) (Document, error) {
	if _, err := io.ReadFull(r, scratch[:]); err != nil {
		return Document{}, ErrTruncatedIndex
	}
	id := binary.LittleEndian.Uint32(scratch[:])

	fields := make([]string, 4)
	for i := range fields {
		if _, err := io.ReadFull(r, scratch[:]); err != nil {
			return Document{}, ErrTruncatedIndex
		}
		n := binary.LittleEndian.Uint32(scratch[:])
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return Document{}, ErrTruncatedIndex
		}
		fields[i] = string(buf)
	}

	return Document{
		ID:       id,
		Title:    fields[0],
		URL:      fields[1],
		Category: fields[2],
		Source:   fields[3],
	}, nil
}
