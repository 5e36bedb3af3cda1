package usecase

import (
	"strings"

	"natalia/config"
)

// intentRule pairs a keyword trigger set with its responder. Rules live in
// one ordered list and the first match wins, so broad keywords like
// "cuanto" only apply when no earlier rule matched.
type intentRule struct {
	keywords []string
	respond  func(input string, c config.ContactConfig) string
}

// intentRules is static and evaluated in order. The last rule's trigger
// set is a subset of the first one's, so it only documents the minimal
// keywords for the short enrollment summary.
var intentRules = []intentRule{
	{
		keywords: []string{"inscripcion", "inscripción", "inscribirme", "matricula", "matrícula", "registro", "pasos", "como me inscribo", "cómo me inscribo"},
		respond:  func(_ string, c config.ContactConfig) string { return enrollmentFlow(c) },
	},
	{
		keywords: []string{"horario", "hora", "cuando", "tiempo"},
		respond: func(input string, c config.ContactConfig) string {
			switch {
			case containsAny(input, []string{"niño", "niña", "menor", "infantil"}):
				return childSchedule(c)
			case containsAny(input, []string{"adulto", "mayor"}):
				return adultSchedule(c)
			default:
				return fullSchedule(c)
			}
		},
	},
	{
		keywords: []string{"precio", "costo", "valor", "cuanto", "pago"},
		respond:  func(_ string, c config.ContactConfig) string { return priceList(c) },
	},
	{
		keywords: []string{"traer", "necesito", "llevar", "primera clase", "equipamiento"},
		respond:  func(_ string, c config.ContactConfig) string { return whatToBring(c) },
	},
	{
		keywords: []string{"enfasis", "énfasis", "enfoque", "que enseñan", "metodologia", "metodología", "escuela", "enseñanza", "sistema", "niveles", "como enseñan", "que aprendo", "qué aprendo"},
		respond:  func(_ string, c config.ContactConfig) string { return teachingEmphasis(c) },
	},
	{
		keywords: []string{"edad", "años", "niño", "menor"},
		respond:  func(_ string, c config.ContactConfig) string { return acceptedAges(c) },
	},
	{
		keywords: []string{"contacto", "teléfono", "telefono", "whatsapp", "direccion", "dirección", "ubicacion", "ubicación", "donde"},
		respond:  func(_ string, c config.ContactConfig) string { return contactInfo(c) },
	},
	{
		keywords: []string{"reposicion", "reposición", "reponer", "recuperar clase", "faltar"},
		respond:  func(_ string, c config.ContactConfig) string { return makeupPolicy(c) },
	},
	{
		keywords: []string{"reglamento", "reglas", "normas", "politicas", "políticas", "terminos", "términos", "condiciones"},
		respond:  func(_ string, c config.ContactConfig) string { return clubRules(c) },
	},
	{
		keywords: []string{"inscripcion", "inscripción", "matricula", "matrícula", "registro"},
		respond:  func(_ string, c config.ContactConfig) string { return enrollmentInfo(c) },
	},
}

// IntentResolver maps recurring member questions to canned answers by
// keyword matching on the lowercased input.
type IntentResolver struct {
	contact config.ContactConfig
}

func NewIntentResolver(contact config.ContactConfig) *IntentResolver {
	return &IntentResolver{contact: contact}
}

func containsAny(input string, words []string) bool {
	for _, w := range words {
		if strings.Contains(input, w) {
			return true
		}
	}
	return false
}

// Resolve returns the canned answer for the input, or ok=false when no
// rule matches and the query should go to document retrieval.
func (r *IntentResolver) Resolve(query string) (string, bool) {
	input := strings.ToLower(strings.TrimSpace(query))

	for _, rule := range intentRules {
		if containsAny(input, rule.keywords) {
			return rule.respond(input, r.contact), true
		}
	}

	return "", false
}
