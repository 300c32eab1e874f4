// Package phone validates, normalizes, and formats phone numbers for the two
// supported calling-code regions: Mozambique (258) and Portugal (351), plus
// the M-Pesa mobile-money subset of Mozambican numbers.
//
// All functions are pure string transforms with no I/O.
package phone

import "strings"

// Country calling codes for the supported regions.
const (
	CodeMozambique = "258"
	CodePortugal   = "351"
)

const localDigits = 9

// CleanDigits strips every non-digit character from the input.
func CleanDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// localPart reduces the input to its 9 local digits for the given country
// code, accepting bare local numbers and international forms with "+", "00",
// or a bare country code prefix. Returns false if no shape matches.
func localPart(s, code string) (string, bool) {
	digits := CleanDigits(s)

	switch {
	case len(digits) == localDigits:
		return digits, true
	case len(digits) == len(code)+localDigits && strings.HasPrefix(digits, code):
		return digits[len(code):], true
	case len(digits) == 2+len(code)+localDigits && strings.HasPrefix(digits, "00"+code):
		return digits[2+len(code):], true
	}
	return "", false
}

// IsValidMozambique reports whether the input is a valid Mozambican number:
// 9 local digits whose first digit is in [2..8], optionally prefixed with the
// 258 country code.
func IsValidMozambique(s string) bool {
	local, ok := localPart(s, CodeMozambique)
	if !ok {
		return false
	}
	return local[0] >= '2' && local[0] <= '8'
}

// IsValidPortugal reports whether the input is a valid Portuguese number:
// 9 local digits starting with 9, optionally prefixed with the 351 country
// code.
func IsValidPortugal(s string) bool {
	local, ok := localPart(s, CodePortugal)
	if !ok {
		return false
	}
	return local[0] == '9'
}

// IsValidMpesa reports whether the input is a valid M-Pesa mobile-money
// number: exactly 9 Mozambican digits, first digit 8, second digit in [2..7].
func IsValidMpesa(s string) bool {
	local, ok := localPart(s, CodeMozambique)
	if !ok {
		return false
	}
	return local[0] == '8' && local[1] >= '2' && local[1] <= '7'
}

// IsValid reports whether the input is valid for either supported region.
func IsValid(s string) bool {
	return IsValidMozambique(s) || IsValidPortugal(s)
}

// Normalize converts the input to the +<countrycode><9 digits> form used for
// outbound messaging. When the input cannot be classified it degrades to the
// cleaned digit string rather than failing.
func Normalize(s string) string {
	digits := CleanDigits(s)

	// International forms keep their explicit country code.
	for _, code := range []string{CodeMozambique, CodePortugal} {
		if len(digits) == len(code)+localDigits && strings.HasPrefix(digits, code) {
			return "+" + digits
		}
		if len(digits) == 2+len(code)+localDigits && strings.HasPrefix(digits, "00"+code) {
			return "+" + digits[2:]
		}
	}

	// Bare local numbers are classified by their regional digit rule.
	if len(digits) == localDigits {
		switch {
		case digits[0] >= '2' && digits[0] <= '8':
			return "+" + CodeMozambique + digits
		case digits[0] == '9':
			return "+" + CodePortugal + digits
		}
	}

	return digits
}

// Format returns a display form with region-appropriate separators, e.g.
// "+258 84 123 4567" or "+351 912 345 678". Unrecognized shapes are returned
// as the cleaned digit string.
func Format(s string) string {
	normalized := Normalize(s)

	if strings.HasPrefix(normalized, "+"+CodeMozambique) && len(normalized) == 1+len(CodeMozambique)+localDigits {
		local := normalized[1+len(CodeMozambique):]
		return "+" + CodeMozambique + " " + local[:2] + " " + local[2:5] + " " + local[5:]
	}

	if strings.HasPrefix(normalized, "+"+CodePortugal) && len(normalized) == 1+len(CodePortugal)+localDigits {
		local := normalized[1+len(CodePortugal):]
		return "+" + CodePortugal + " " + local[:3] + " " + local[3:6] + " " + local[6:]
	}

	return normalized
}
