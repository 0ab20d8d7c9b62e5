package entity

import (
	"regexp"
	"strings"
)

// Colombian mobile numbers: either already canonical (+57 plus ten digits)
// or ten bare digits that still need the country code.
var (
	canonicalPhoneRe = regexp.MustCompile(`^\+57\d{10}$`)
	localPhoneRe     = regexp.MustCompile(`^\d{10}$`)
)

// NormalizePhone trims the raw input and, when it consists of exactly ten
// digits, prefixes the +57 country code. Any other shape is returned
// unchanged so the caller can validate it.
func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if localPhoneRe.MatchString(phone) {
		return "+57" + phone
	}

	return phone
}

// ValidPhone reports whether the phone is in the canonical +57 form.
// Inputs are expected to have gone through NormalizePhone first.
func ValidPhone(phone string) bool {
	return canonicalPhoneRe.MatchString(phone)
}
