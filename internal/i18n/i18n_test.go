package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Número de telefone inválido", T("pt", "phone.invalid"))
	assert.Equal(t, "Invalid phone number", T("en", "phone.invalid"))

	// Unknown language falls back to Portuguese.
	assert.Equal(t, "Número de telefone inválido", T("fr", "phone.invalid"))
	assert.Equal(t, "Número de telefone inválido", T("", "phone.invalid"))

	// Unknown key surfaces as the key itself.
	assert.Equal(t, "no.such.key", T("pt", "no.such.key"))
}

func TestAllKeysPresentInBothLanguages(t *testing.T) {
	for key := range messages["pt"] {
		_, ok := messages["en"][key]
		assert.True(t, ok, "missing english translation for %s", key)
	}
	for key := range messages["en"] {
		_, ok := messages["pt"][key]
		assert.True(t, ok, "missing portuguese translation for %s", key)
	}
}
