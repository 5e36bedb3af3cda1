package chunker

import (
	"strings"
	"testing"

	"natalia/internal/domain"
)

func TestRecursiveChunkerShortInput(t *testing.T) {
	c := NewRecursiveChunker(1000, 200)

	chunks, err := c.Chunk("precios.pdf", domain.DocTypePrecios, "Tarifas del club.")
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "Tarifas del club." {
		t.Errorf("unexpected text: %q", chunks[0].Text)
	}
	if chunks[0].DocType != domain.DocTypePrecios {
		t.Errorf("expected precios doc type, got %s", chunks[0].DocType)
	}
	if chunks[0].SourceFile != "precios.pdf" {
		t.Errorf("unexpected source file: %s", chunks[0].SourceFile)
	}
	if chunks[0].ID == "" {
		t.Error("chunk has empty ID")
	}
}

func TestRecursiveChunkerEmptyInput(t *testing.T) {
	c := NewRecursiveChunker(1000, 200)

	chunks, err := c.Chunk("doc.pdf", domain.DocTypeGeneral, "   \n\n  ")
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks, got %d", len(chunks))
	}
}

func TestRecursiveChunkerWindowBound(t *testing.T) {
	c := NewRecursiveChunker(100, 20)

	content := strings.Repeat("La natación es un deporte de bajo impacto. ", 30)
	chunks, err := c.Chunk("doc.pdf", domain.DocTypeGeneral, content)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if n := len([]rune(chunk.Text)); n > 100 {
			t.Errorf("chunk %d exceeds window: %d chars", i, n)
		}
	}
}

func TestRecursiveChunkerEarlyCutDoesNotRewind(t *testing.T) {
	c := NewRecursiveChunker(1000, 200)

	// Paragraph break within the overlap distance of the start, followed
	// by a long separator-free run. The next window must begin after the
	// cut, not inside the chunk just emitted.
	content := "Hola.\n\n" + strings.Repeat("x", 3000)
	chunks, err := c.Chunk("doc.pdf", domain.DocTypeGeneral, content)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 5 {
		t.Fatalf("expected 5 chunks, got %d", len(chunks))
	}
	if chunks[0].Text != "Hola." {
		t.Errorf("expected first chunk cut at paragraph break, got %q", chunks[0].Text)
	}
	for i, chunk := range chunks[1:] {
		if strings.Trim(chunk.Text, "x") != "" {
			t.Errorf("chunk %d carries a shifted fragment: %q", i+1, chunk.Text[:5])
		}
	}
}

func TestRecursiveChunkerPrefersParagraphBoundary(t *testing.T) {
	c := NewRecursiveChunker(60, 0)

	content := "Primer parrafo corto.\n\nSegundo parrafo que viene despues y sigue un poco mas."
	chunks, err := c.Chunk("doc.pdf", domain.DocTypeGeneral, content)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	if chunks[0].Text != "Primer parrafo corto." {
		t.Errorf("expected first chunk cut at paragraph break, got %q", chunks[0].Text)
	}
}

func TestRecursiveChunkerSentenceBoundary(t *testing.T) {
	c := NewRecursiveChunker(50, 0)

	content := "Una frase completa aqui. Otra frase que continua mas alla del limite de la ventana."
	chunks, err := c.Chunk("doc.pdf", domain.DocTypeGeneral, content)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	if !strings.HasSuffix(chunks[0].Text, ".") {
		t.Errorf("expected first chunk to end at sentence boundary, got %q", chunks[0].Text)
	}
}

func TestRecursiveChunkerHardCut(t *testing.T) {
	c := NewRecursiveChunker(10, 2)

	// No separators at all inside the window.
	content := strings.Repeat("x", 25)
	chunks, err := c.Chunk("doc.pdf", domain.DocTypeGeneral, content)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) == 0 {
		t.Fatal("expected chunks from unbroken text")
	}
	for i, chunk := range chunks {
		if len(chunk.Text) > 10 {
			t.Errorf("chunk %d exceeds window on hard cut: %q", i, chunk.Text)
		}
	}
}

func TestRecursiveChunkerCoversAllText(t *testing.T) {
	c := NewRecursiveChunker(40, 10)

	words := []string{"matricula", "mensualidad", "horarios", "niveles", "piscina", "instructores", "reposicion", "reglamento"}
	content := strings.Join(words, " palabra de relleno entre terminos ")

	chunks, err := c.Chunk("doc.pdf", domain.DocTypeGeneral, content)
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range words {
		found := false
		for _, chunk := range chunks {
			if strings.Contains(chunk.Text, w) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("word %q not found in any chunk", w)
		}
	}
}
