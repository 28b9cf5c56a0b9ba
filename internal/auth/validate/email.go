package validate

import (
	"regexp"
	"strings"
)

const (
	emailDomainMaxLen = 255
	emailLocalMaxLen  = 64

	emailLocalSymbols = "_.!#$%&-"
)

var (
	reDomainCharset = regexp.MustCompile(`^[A-Za-z0-9.-]*$`)
	reDomainRepeat  = regexp.MustCompile(`[.-]{2}`)
	reTopLevel      = regexp.MustCompile(`^[A-Za-z]+$`)
	reLocalCharset  = regexp.MustCompile(`^[A-Za-z0-9_.!#$%&-]*$`)
	reLocalRepeat   = regexp.MustCompile(`[_.!#$%&-]{2}`)
)

// splitEmail returns the local and domain parts when s has exactly one "@"
// with something on both sides.
func splitEmail(s string) (local, domain string, ok bool) {
	if strings.Count(s, "@") != 1 {
		return "", "", false
	}
	local, domain, _ = strings.Cut(s, "@")
	return local, domain, local != "" && domain != ""
}

func onLocal(f func(string) bool) func(string) bool {
	return func(s string) bool {
		local, _, _ := splitEmail(s)
		return f(local)
	}
}

func onDomain(f func(string) bool) func(string) bool {
	return func(s string) bool {
		_, domain, _ := splitEmail(s)
		return f(domain)
	}
}

func isSymbol(b byte) bool {
	return strings.IndexByte(emailLocalSymbols, b) >= 0
}

// emailFormat gates the part rules: without it the parts cannot be identified.
var emailFormat = Rule{
	Code:    "format",
	Message: "Email must be in the format local@domain.",
	pass: func(s string) bool {
		_, _, ok := splitEmail(s)
		return ok
	},
}

var emailPartRules = RuleSet{
	Field: FieldEmail,
	Rules: []Rule{
		{
			Code:    "domain_length",
			Message: "Email domain must be at most 255 characters.",
			pass:    onDomain(func(d string) bool { return len(d) <= emailDomainMaxLen }),
		},
		{
			Code:    "domain_charset",
			Message: "Email domain may only contain letters, numbers, dots and dashes.",
			pass:    onDomain(reDomainCharset.MatchString),
		},
		{
			Code:    "domain_levels",
			Message: "Email domain must contain at least two levels separated by a dot.",
			pass:    onDomain(func(d string) bool { return strings.Contains(d, ".") }),
		},
		{
			Code:    "domain_consecutive",
			Message: "Email domain must not contain consecutive dots or dashes.",
			pass:    onDomain(func(d string) bool { return !reDomainRepeat.MatchString(d) }),
		},
		{
			Code:    "domain_edge",
			Message: "Email domain must not start or end with a dot or dash.",
			pass: onDomain(func(d string) bool {
				return !strings.ContainsAny(d[:1], ".-") && !strings.ContainsAny(d[len(d)-1:], ".-")
			}),
		},
		{
			Code:    "tld_alpha",
			Message: "Email top level domain may only contain letters.",
			pass: onDomain(func(d string) bool {
				return reTopLevel.MatchString(d[strings.LastIndexByte(d, '.')+1:])
			}),
		},
		{
			Code:    "local_length",
			Message: "Email local part must be at most 64 characters.",
			pass:    onLocal(func(l string) bool { return len(l) <= emailLocalMaxLen }),
		},
		{
			Code:    "local_charset",
			Message: "Email local part may only contain letters, numbers and the symbols _ . ! # $ % & -",
			pass:    onLocal(reLocalCharset.MatchString),
		},
		{
			Code:    "local_edge",
			Message: "Email local part must not start or end with a symbol.",
			pass: onLocal(func(l string) bool {
				return !isSymbol(l[0]) && !isSymbol(l[len(l)-1])
			}),
		},
		{
			Code:    "local_consecutive",
			Message: "Email local part must not contain consecutive symbols.",
			pass:    onLocal(func(l string) bool { return !reLocalRepeat.MatchString(l) }),
		},
	},
}

// EmailRules is the published rule table for email addresses, format first.
// Email checks against its own copy, so changing this table does not change
// validation.
var EmailRules = RuleSet{
	Field: FieldEmail,
	Rules: append([]Rule{emailFormat}, emailPartRules.Rules...),
}

// Email checks s for a valid address. When the format rule fails it is the
// only violation reported.
func Email(s string) Result {
	if !emailFormat.pass(s) {
		return Result{Field: FieldEmail, Violations: []Rule{emailFormat}}
	}
	return emailPartRules.check(s)
}
