// Package phone normalizes the phone numbers hosts type into the guest form.
//
// The rules are a Singapore-first heuristic: 8 local digits get the +65
// prefix, anything already carrying a country code is kept. Normalize is
// lossy and not guaranteed to round-trip.
package phone

import (
	"regexp"
	"strings"
)

const sgCountryCode = "65"

var nonDigits = regexp.MustCompile(`\D`)

// Digits strips everything except 0-9.
func Digits(input string) string {
	return nonDigits.ReplaceAllString(input, "")
}

// Normalize turns free-form input into E.164 where it can.
// Unrecognized shapes are returned unchanged.
func Normalize(input string) string {
	digits := Digits(input)
	if digits == "" {
		return ""
	}

	if strings.HasPrefix(digits, sgCountryCode) && len(digits) == 10 {
		return "+" + digits
	}
	if len(digits) == 8 {
		return "+" + sgCountryCode + digits
	}
	if strings.HasPrefix(input, "+") && len(digits) >= 8 {
		return "+" + digits
	}
	return input
}

// Display 在訪客列表中顯示本地號碼（SG 號碼去掉 65）
func Display(e164 string) string {
	digits := Digits(e164)
	if strings.HasPrefix(digits, sgCountryCode) && len(digits) == 10 {
		return digits[len(sgCountryCode):]
	}
	return digits
}

// WhatsAppDigits returns the full international digit run used by wa.me.
func WhatsAppDigits(e164 string) string {
	digits := Digits(e164)
	if len(digits) == 8 {
		return sgCountryCode + digits
	}
	return digits
}
