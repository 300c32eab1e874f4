// Package i18n provides the static translation table for the two storefront
// languages. Lookups are plain map reads; there is no dynamic loading.
package i18n

import "github.com/ElisioMassango/chelevi-sub001/internal/domain"

var messages = map[string]map[string]string{
	domain.LanguagePortuguese: {
		"phone.invalid":            "Número de telefone inválido",
		"phone.invalid_mozambique": "Número moçambicano inválido: use 9 dígitos começando por 2-8",
		"phone.invalid_portugal":   "Número português inválido: use 9 dígitos começando por 9",
		"phone.invalid_mpesa":      "Número M-Pesa inválido: use 9 dígitos começando por 82-87",
		"email.invalid":            "Endereço de email inválido",
		"gateway.unavailable":      "Serviço temporariamente indisponível, tente novamente",
		"order.payment_failed":     "O pagamento não foi concluído",
	},
	domain.LanguageEnglish: {
		"phone.invalid":            "Invalid phone number",
		"phone.invalid_mozambique": "Invalid Mozambican number: use 9 digits starting with 2-8",
		"phone.invalid_portugal":   "Invalid Portuguese number: use 9 digits starting with 9",
		"phone.invalid_mpesa":      "Invalid M-Pesa number: use 9 digits starting with 82-87",
		"email.invalid":            "Invalid email address",
		"gateway.unavailable":      "Service temporarily unavailable, please retry",
		"order.payment_failed":     "The payment could not be completed",
	},
}

// T returns the translation for the given key in the given language. Unknown
// languages fall back to Portuguese; unknown keys fall back to the key itself
// so a missing entry is visible rather than silent.
func T(lang, key string) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[domain.LanguagePortuguese]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	return key
}
