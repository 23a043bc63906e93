package util

import (
	"fmt"
	"strings"
)

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	var digits strings.Builder
	digits.Grow(len(s))

	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}

// FormatPhoneNumber renders a 10-digit phone number as "(XXX) XXX-XXXX".
// Inputs that do not reduce to exactly 10 digits are returned unchanged.
func FormatPhoneNumber(phone string) string {
	digits := Digits(phone)
	if len(digits) != 10 {
		return phone
	}

	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}
