// Package lineindex converts byte offsets into (line, column) pairs for a
// source text, built once per file and reused for every span conversion
// the symbol extractor needs during extraction.
package lineindex

import "sort"

// Position is a 1-based line and column pair, matching the convention used
// by every editor-facing diagnostic in this codebase.
type Position struct {
	Line int
	Col  int
}

// Index is a precomputed byte-offset -> (line, column) map for one source
// text. Building it once per file and reusing it for every span in that
// file avoids re-scanning the source on every symbol/diagnostic.
type Index struct {
	// lineStarts[i] is the byte offset of the first byte of line i+1
	// (0-based slice, 1-based line numbers).
	lineStarts []int
}

// New scans src once and returns an Index for it.
func New(src string) *Index {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{lineStarts: starts}
}

// LineCol converts a byte offset into a 1-based (line, column) pair. A
// column counts bytes from the start of the line, not runes — matching
// the byte-range token model the rest of the tree uses.
func (idx *Index) LineCol(offset int) Position {
	// Largest lineStarts[i] <= offset.
	i := sort.Search(len(idx.lineStarts), func(i int) bool {
		return idx.lineStarts[i] > offset
	}) - 1
	if i < 0 {
		i = 0
	}
	return Position{Line: i + 1, Col: offset - idx.lineStarts[i] + 1}
}
