package loader

import (
	"os"
	"path/filepath"
	"testing"

	"natalia/internal/adapter/chunker"
	"natalia/internal/adapter/fs"
	"natalia/internal/domain"
)

func newTestLoader() *PDFLoader {
	walker := fs.NewWalker([]string{"**/*.pdf"}, nil)
	return NewPDFLoader(walker, chunker.NewRecursiveChunker(1000, 200))
}

func TestLoadMissingFolder(t *testing.T) {
	l := newTestLoader()

	chunks, err := l.Load("/nonexistent/documents/folder")
	if err != nil {
		t.Fatalf("missing folder must not be an error, got %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
}

func TestLoadEmptyFolder(t *testing.T) {
	l := newTestLoader()

	chunks, err := l.Load(t.TempDir())
	if err != nil {
		t.Fatalf("empty folder must not be an error, got %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
}

func TestLoadSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()

	// Not a PDF at all; extraction must fail for this file without
	// failing the ingestion run.
	bad := filepath.Join(dir, "reglamento_club.pdf")
	if err := os.WriteFile(bad, []byte("this is not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	l := newTestLoader()
	chunks, err := l.Load(dir)
	if err != nil {
		t.Fatalf("corrupt file must not abort ingestion, got %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
}

func TestLoadIgnoresUnrecognizedExtensions(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("texto plano"), 0644); err != nil {
		t.Fatal(err)
	}

	l := newTestLoader()
	chunks, err := l.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected txt files to be ignored, got %d chunks", len(chunks))
	}
}

func TestDocTypeForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     domain.DocType
	}{
		{"Reglamento_2024.pdf", domain.DocTypeReglamento},
		{"inscripcion-guia.pdf", domain.DocTypeInscripcion},
		{"PRECIOS_vigentes.pdf", domain.DocTypePrecios},
		{"bienvenida.pdf", domain.DocTypeGeneral},
		// First match wins in declaration order.
		{"reglamento_precios.pdf", domain.DocTypeReglamento},
		{"inscripcion_precios.pdf", domain.DocTypeInscripcion},
		{"", domain.DocTypeGeneral},
	}

	for _, tt := range tests {
		if got := domain.DocTypeForFile(tt.filename); got != tt.want {
			t.Errorf("DocTypeForFile(%q) = %s, want %s", tt.filename, got, tt.want)
		}
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "Horarios   del  club\n\n\n\nPrecios\t vigentes  "
	want := "Horarios del club\n\nPrecios vigentes"
	if got := normalizeWhitespace(in); got != want {
		t.Errorf("normalizeWhitespace = %q, want %q", got, want)
	}
}
