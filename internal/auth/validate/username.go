package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	usernameMinLen = 6
	usernameMaxLen = 20
)

var reUsername = regexp.MustCompile(`^[A-Za-z0-9_]*$`)

// UsernameRules is the rule table for usernames. Uniqueness is not a syntactic
// rule; the store decides it at insert time.
var UsernameRules = RuleSet{
	Field: FieldUsername,
	Rules: []Rule{
		{
			Code:    "length",
			Message: "Username must be between 6 and 20 characters.",
			pass: func(s string) bool {
				n := utf8.RuneCountInString(s)
				return n >= usernameMinLen && n <= usernameMaxLen
			},
		},
		{
			Code:    "charset",
			Message: "Username may only contain letters, numbers and underscores.",
			pass:    reUsername.MatchString,
		},
		{
			Code:    "leading_underscore",
			Message: "Username must not start with an underscore.",
			pass:    func(s string) bool { return !strings.HasPrefix(s, "_") },
		},
	},
}

// Username checks s against UsernameRules.
func Username(s string) Result {
	return UsernameRules.check(s)
}
