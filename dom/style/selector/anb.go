package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
)

// AnB is the argument of the :nth-*() pseudo-classes. It matches every
// 1-based position n for which there is an integer k ≥ 0 with n = A·k + B.
type AnB struct {
	A, B int
}

// ParseAnB parses an An+B expression, including the keywords "odd" and
// "even". White space is permitted around the sign of B.
func ParseAnB(text string) (AnB, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch s {
	case "odd":
		return AnB{2, 1}, nil
	case "even":
		return AnB{2, 0}, nil
	case "":
		return AnB{}, &AnBError{Text: text}
	}
	n := strings.IndexByte(s, 'n')
	if n < 0 {
		b, ok := signedInt(s)
		if !ok {
			return AnB{}, &AnBError{Text: text}
		}
		return AnB{0, b}, nil
	}
	var ab AnB
	switch a := s[:n]; a {
	case "", "+":
		ab.A = 1
	case "-":
		ab.A = -1
	default:
		v, ok := signedInt(a)
		if !ok {
			return AnB{}, &AnBError{Text: text}
		}
		ab.A = v
	}
	rest := strings.TrimSpace(s[n+1:])
	if rest == "" {
		return ab, nil
	}
	sign := 1
	switch rest[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return AnB{}, &AnBError{Text: text}
	}
	digits := strings.TrimSpace(rest[1:])
	if !isDigits(digits) {
		return AnB{}, &AnBError{Text: text}
	}
	b, err := strconv.Atoi(digits)
	if err != nil {
		return AnB{}, &AnBError{Text: text}
	}
	ab.B = sign * b
	return ab, nil
}

// signedInt parses an integer with an optional sign directly in front of
// its digits.
func signedInt(s string) (int, bool) {
	digits := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		digits = s[1:]
	}
	if !isDigits(digits) {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Matches is a predicate: is the 1-based position n selected?
func (ab AnB) Matches(n int) bool {
	if ab.A == 0 {
		return n == ab.B
	}
	diff := n - ab.B
	return diff%ab.A == 0 && diff/ab.A >= 0
}

func (ab AnB) String() string {
	switch {
	case ab.A == 0:
		return strconv.Itoa(ab.B)
	case ab.B == 0:
		return strconv.Itoa(ab.A) + "n"
	case ab.B > 0:
		return strconv.Itoa(ab.A) + "n+" + strconv.Itoa(ab.B)
	}
	return strconv.Itoa(ab.A) + "n" + strconv.Itoa(ab.B)
}
