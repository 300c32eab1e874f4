package phone

import (
	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/internal/i18n"
)

// ValidateForCountry checks the number against the regional rule for the
// given storefront country and returns ok plus a locale-specific message for
// inline display. The message is empty when the number is valid.
func ValidateForCountry(number, country, lang string) (bool, string) {
	switch country {
	case domain.CountryMozambique:
		if IsValidMozambique(number) {
			return true, ""
		}
		return false, i18n.T(lang, "phone.invalid_mozambique")
	case domain.CountryPortugal:
		if IsValidPortugal(number) {
			return true, ""
		}
		return false, i18n.T(lang, "phone.invalid_portugal")
	}

	if IsValid(number) {
		return true, ""
	}
	return false, i18n.T(lang, "phone.invalid")
}

// ValidateMpesa checks the number against the mobile-money subset rule and
// returns ok plus a locale-specific message.
func ValidateMpesa(number, lang string) (bool, string) {
	if IsValidMpesa(number) {
		return true, ""
	}
	return false, i18n.T(lang, "phone.invalid_mpesa")
}
