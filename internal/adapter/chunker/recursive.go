package chunker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"natalia/internal/domain"
)

// separators lists split boundaries in preference order: paragraph, line,
// sentence-ending punctuation, comma, whitespace, then a hard cut.
var separators = []string{"\n\n", "\n", ".", "!", "?", ",", " ", ""}

// RecursiveChunker splits text into overlapping windows, preferring to cut
// at the strongest boundary found inside each window.
type RecursiveChunker struct {
	size    int
	overlap int
}

func NewRecursiveChunker(size, overlap int) *RecursiveChunker {
	if size <= 0 {
		size = 1000
	}
	if overlap < 0 || overlap >= size {
		overlap = size / 5
	}
	return &RecursiveChunker{
		size:    size,
		overlap: overlap,
	}
}

func (c *RecursiveChunker) Chunk(sourceFile string, docType domain.DocType, content string) ([]domain.Chunk, error) {
	text := strings.TrimSpace(content)
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	var chunks []domain.Chunk
	start := 0

	for start < len(runes) {
		end := start + c.size
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = start + c.cutPoint(runes[start:end])
		}

		piece := strings.TrimSpace(string(runes[start:end]))
		if piece != "" {
			chunks = append(chunks, domain.Chunk{
				ID:         chunkID(sourceFile, start, end),
				Text:       piece,
				SourceFile: sourceFile,
				DocType:    docType,
			})
		}

		if end >= len(runes) {
			break
		}

		// A cut closer to the window start than the overlap distance
		// must not rewind into the emitted chunk.
		next := end - c.overlap
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks, nil
}

// cutPoint finds where to end a full window, scanning the separator list in
// preference order and taking the last occurrence of the first separator
// that appears. Returns the length of the window up to and including the
// separator, or the full window length for a hard cut.
func (c *RecursiveChunker) cutPoint(window []rune) int {
	s := string(window)
	for _, sep := range separators {
		if sep == "" {
			break
		}
		idx := strings.LastIndex(s, sep)
		if idx <= 0 {
			continue
		}
		return len([]rune(s[:idx+len(sep)]))
	}
	return len(window)
}

func chunkID(sourceFile string, start, end int) string {
	data := fmt.Sprintf("%s:%d-%d", sourceFile, start, end)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:8])
}
