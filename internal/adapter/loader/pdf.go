package loader

import (
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"natalia/internal/domain"
	"natalia/internal/port"
)

// PDFLoader ingests PDF documents from a folder: each file is tagged with
// its document type, extracted page by page, and split into chunks.
type PDFLoader struct {
	walker  port.FileWalker
	chunker port.Chunker
}

func NewPDFLoader(walker port.FileWalker, chunker port.Chunker) *PDFLoader {
	return &PDFLoader{
		walker:  walker,
		chunker: chunker,
	}
}

// Load extracts chunks from every recognized file under folder. One corrupt
// file must not abort ingestion of the others: extraction failures are
// logged and the file is skipped.
func (l *PDFLoader) Load(folder string) ([]domain.Chunk, error) {
	files, err := l.walker.Walk(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to scan documents folder: %w", err)
	}

	var all []domain.Chunk
	for _, file := range files {
		name := filepath.Base(file.Path)

		text, err := extractText(file.Path)
		if err != nil {
			log.Printf("warning: skipping %s: %v", name, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			log.Printf("warning: no text extracted from %s", name)
			continue
		}

		chunks, err := l.chunker.Chunk(name, domain.DocTypeForFile(name), text)
		if err != nil {
			log.Printf("warning: failed to chunk %s: %v", name, err)
			continue
		}
		all = append(all, chunks...)
	}

	return all, nil
}

// extractText pulls plain text from a PDF, one logical page at a time. A
// page that fails to decode is skipped; the file only fails as a whole when
// it cannot be opened.
func extractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("warning: failed to read page %d of %s", i, filepath.Base(path))
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n\n")
	}

	return normalizeWhitespace(sb.String()), nil
}

var (
	spaceRe   = regexp.MustCompile(`[ \t]+`)
	paraSepRe = regexp.MustCompile(`\n\s*\n+`)
)

// normalizeWhitespace collapses runs of spaces and keeps paragraphs
// separated by exactly one blank line.
func normalizeWhitespace(text string) string {
	text = spaceRe.ReplaceAllString(text, " ")
	text = paraSepRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
