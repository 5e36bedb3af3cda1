package domain

import "strings"

// DocType classifies a source document by what it is about.
type DocType string

const (
	DocTypeReglamento  DocType = "reglamento"
	DocTypeInscripcion DocType = "inscripcion"
	DocTypePrecios     DocType = "precios"
	DocTypeGeneral     DocType = "general"
)

// DocTypeForFile infers the document type from a filename. The match is a
// case-insensitive substring check; the first hit in declaration order wins
// and everything else is "general".
func DocTypeForFile(filename string) DocType {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "reglamento"):
		return DocTypeReglamento
	case strings.Contains(lower, "inscripcion"):
		return DocTypeInscripcion
	case strings.Contains(lower, "precios"):
		return DocTypePrecios
	default:
		return DocTypeGeneral
	}
}

// Chunk is a bounded span of source text, the unit of retrieval.
type Chunk struct {
	ID         string
	Text       string
	SourceFile string
	DocType    DocType
}

// ScoredChunk pairs a retrieved chunk with its similarity score. Chunk is
// embedded so callers read chunk fields directly off the result.
type ScoredChunk struct {
	Chunk
	Score float64
}

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	Role    Role
	Content string
}

// Transcript is the append-only record of one chat session. It exists for
// the on-screen history only and is never fed back into answer resolution.
type Transcript struct {
	turns []Turn
}

func (t *Transcript) Append(role Role, content string) {
	t.turns = append(t.turns, Turn{Role: role, Content: content})
}

func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

func (t *Transcript) Len() int {
	return len(t.turns)
}
