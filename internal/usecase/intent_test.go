package usecase

import (
	"strings"
	"testing"

	"natalia/config"
)

func testContact() config.ContactConfig {
	return config.DefaultConfig().Contact
}

func TestResolveEnrollmentBeforeSchedule(t *testing.T) {
	r := NewIntentResolver(testContact())

	// "pasos" and "horario" both appear; enrollment is checked first.
	resp, ok := r.Resolve("cuales son los pasos y el horario")
	if !ok {
		t.Fatal("expected a canned answer")
	}
	if !strings.Contains(resp, "PASOS PARA INSCRIBIRTE") {
		t.Errorf("expected enrollment flow, got %q", firstLine(resp))
	}
}

func TestResolveScheduleVariants(t *testing.T) {
	r := NewIntentResolver(testContact())

	cases := []struct {
		query string
		want  string
	}{
		{"horarios para mi niño", "HORARIOS PARA NIÑOS"},
		{"horario clases infantil", "HORARIOS PARA NIÑOS"},
		{"horarios para adultos", "HORARIOS PARA ADULTOS"},
		{"a que hora son las clases", "HORARIOS COMPLETOS"},
	}
	for _, tc := range cases {
		resp, ok := r.Resolve(tc.query)
		if !ok {
			t.Errorf("Resolve(%q): expected a match", tc.query)
			continue
		}
		if !strings.Contains(resp, tc.want) {
			t.Errorf("Resolve(%q) = %q, want header %q", tc.query, firstLine(resp), tc.want)
		}
	}
}

func TestResolveCaseAndWhitespaceInvariant(t *testing.T) {
	r := NewIntentResolver(testContact())

	base, ok := r.Resolve("precio de la mensualidad")
	if !ok {
		t.Fatal("expected price answer")
	}

	for _, q := range []string{"  PRECIO de la Mensualidad  ", "PRECIO DE LA MENSUALIDAD"} {
		resp, ok := r.Resolve(q)
		if !ok || resp != base {
			t.Errorf("Resolve(%q) differs from lowercase form", q)
		}
	}
}

func TestResolvePricingTiers(t *testing.T) {
	r := NewIntentResolver(testContact())

	resp, ok := r.Resolve("cuanto vale el mes")
	if !ok {
		t.Fatal("expected price answer")
	}
	for _, amount := range []string{"$120,000", "$160,000", "$180,000", "$40,000"} {
		if !strings.Contains(resp, amount) {
			t.Errorf("price answer missing %s", amount)
		}
	}
}

func TestResolveMakeupBeforeRules(t *testing.T) {
	r := NewIntentResolver(testContact())

	resp, ok := r.Resolve("como funciona la reposicion segun el reglamento")
	if !ok {
		t.Fatal("expected a canned answer")
	}
	if !strings.Contains(resp, "POLÍTICA DE REPOSICIÓN") {
		t.Errorf("expected make-up policy, got %q", firstLine(resp))
	}
}

func TestResolveEachRuleInIsolation(t *testing.T) {
	r := NewIntentResolver(testContact())

	cases := []struct {
		query string
		want  string
	}{
		{"quiero inscribirme", "PASOS PARA INSCRIBIRTE"},
		{"horarios disponibles", "HORARIOS COMPLETOS"},
		{"cuanto cuesta", "PRECIOS CLUB"},
		{"que debo llevar", "QUÉ TRAER A TU PRIMERA CLASE"},
		{"cual es el enfoque de la escuela", "ÉNFASIS DE NUESTRA ESCUELA"},
		{"desde que edad aceptan", "EDADES ACEPTADAS"},
		{"donde quedan", "INFORMACIÓN DE CONTACTO"},
		{"puedo reponer una clase", "POLÍTICA DE REPOSICIÓN"},
		{"cuales son las normas", "INFORMACIÓN SOBRE REGLAMENTOS"},
	}
	for _, tc := range cases {
		resp, ok := r.Resolve(tc.query)
		if !ok {
			t.Errorf("Resolve(%q): expected a match", tc.query)
			continue
		}
		if !strings.Contains(resp, tc.want) {
			t.Errorf("Resolve(%q) = %q, want header %q", tc.query, firstLine(resp), tc.want)
		}
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := NewIntentResolver(testContact())

	if resp, ok := r.Resolve("que temperatura tiene el agua"); ok {
		t.Errorf("expected no match, got %q", firstLine(resp))
	}
}

func TestTemplatesCarryContactDetails(t *testing.T) {
	c := testContact()
	r := NewIntentResolver(c)

	for _, q := range []string{"quiero inscribirme", "horarios", "precios", "que debo traer", "contacto"} {
		resp, ok := r.Resolve(q)
		if !ok {
			t.Fatalf("Resolve(%q): expected a match", q)
		}
		if !strings.Contains(resp, c.WhatsApp) {
			t.Errorf("Resolve(%q) missing WhatsApp number", q)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
