package validate

import (
	"regexp"
	"unicode/utf8"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 32
)

var (
	rePasswordUpper   = regexp.MustCompile(`[A-Z]`)
	rePasswordLower   = regexp.MustCompile(`[a-z]`)
	rePasswordDigit   = regexp.MustCompile(`[0-9]`)
	rePasswordSymbol  = regexp.MustCompile(`[!@#$%^&*+=?]`)
	rePasswordAllowed = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*+=?]*$`)
)

// PasswordRules is the rule table for passwords.
var PasswordRules = RuleSet{
	Field: FieldPassword,
	Rules: []Rule{
		{
			Code:    "length",
			Message: "Password must be between 8 and 32 characters.",
			pass: func(s string) bool {
				n := utf8.RuneCountInString(s)
				return n >= passwordMinLen && n <= passwordMaxLen
			},
		},
		{
			Code:    "uppercase",
			Message: "Password must include at least one capital letter.",
			pass:    rePasswordUpper.MatchString,
		},
		{
			Code:    "lowercase",
			Message: "Password must include at least one lowercase letter.",
			pass:    rePasswordLower.MatchString,
		},
		{
			Code:    "digit",
			Message: "Password must include at least one number.",
			pass:    rePasswordDigit.MatchString,
		},
		{
			Code:    "symbol",
			Message: "Password must include at least one of these symbols: ! @ # $ % ^ & * + = ?",
			pass:    rePasswordSymbol.MatchString,
		},
		{
			Code:    "forbidden",
			Message: "Password may not contain spaces or symbols other than ! @ # $ % ^ & * + = ?",
			pass:    rePasswordAllowed.MatchString,
		},
	},
}

// Password checks s against PasswordRules.
func Password(s string) Result {
	return PasswordRules.check(s)
}
