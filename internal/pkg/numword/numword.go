// Package numword converts non-negative integer amounts into English words
// using the Indian grouping (crore = 10^7, lakh = 10^5, thousand = 10^3).
package numword

import "errors"

var ErrInvalidInput = errors.New("numword: input must be a non-negative integer")

var (
	ones  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

const (
	crore = 10_000_000
	lakh  = 100_000
)

// InWords converts n into words, e.g. 427498 -> "Four Lakh Twenty Seven
// Thousand Four Hundred Ninety Eight". Zero is spelled "Zero".
func InWords(n int64) (string, error) {
	if n < 0 {
		return "", ErrInvalidInput
	}
	if n == 0 {
		return "Zero", nil
	}
	if n < 1000 {
		return underThousand(n), nil
	}

	c := n / crore
	l := (n % crore) / lakh
	t := (n % lakh) / 1000
	rest := n % 1000

	out := ""
	if c > 0 {
		// The crore count itself can exceed 999 (1000 crore = 10^10), so
		// it runs through the full converter again.
		cw, err := InWords(c)
		if err != nil {
			return "", err
		}
		out += cw + " Crore "
	}
	if l > 0 {
		out += underThousand(l) + " Lakh "
	}
	if t > 0 {
		out += underThousand(t) + " Thousand "
	}
	if rest > 0 {
		out += underThousand(rest)
	}
	return trimRight(out), nil
}

// Rupees renders n with the fixed currency phrase, e.g. "One Lakh Rupees Only".
func Rupees(n int64) (string, error) {
	words, err := InWords(n)
	if err != nil {
		return "", err
	}
	return words + " Rupees Only", nil
}

func underThousand(n int64) string {
	if n == 0 {
		return ""
	}
	if n < 10 {
		return ones[n]
	}
	if n < 20 {
		return teens[n-10]
	}
	if n < 100 {
		s := tens[n/10]
		if n%10 > 0 {
			s += " " + ones[n%10]
		}
		return s
	}
	s := ones[n/100] + " Hundred"
	if rest := n % 100; rest > 0 {
		s += " " + underThousand(rest)
	}
	return s
}

func trimRight(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}
