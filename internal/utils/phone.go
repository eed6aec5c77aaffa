package utils

import "strings"

// MaskPhone hides the middle digits of an E.164 phone number.
//
// A leading "+" is kept. When four or fewer digits remain every digit is
// masked. Otherwise the first min(2, n-2) and the last 2 digits stay visible
// and the digits in between become "*". The result has the same length as
// the input.
//
//	MaskPhone("+919876543210") // "+91********10"
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}

	prefix := ""
	rest := phone
	if strings.HasPrefix(rest, "+") {
		prefix = "+"
		rest = rest[1:]
	}

	runes := []rune(rest)
	n := len(runes)
	if n <= 4 {
		return prefix + strings.Repeat("*", n)
	}

	head := min(2, n-2)
	for i := head; i < n-2; i++ {
		runes[i] = '*'
	}

	return prefix + string(runes)
}
