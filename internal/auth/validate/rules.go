// Package validate holds the syntactic rules for registration fields.
//
// Each field has one rule table. The table drives both the checks and the
// documentation served to clients (Describe), so the two cannot drift apart.
// Bump RulesVersion whenever a table changes.
package validate

// RulesVersion identifies the current revision of the rule tables.
const RulesVersion = "2"

// Field names used in results and problem maps.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Rule is one enumerated constraint on a field.
type Rule struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	pass func(string) bool
}

// RuleSet is the ordered rule table for a single field.
type RuleSet struct {
	Field string `json:"field"`
	Rules []Rule `json:"rules"`
}

// check evaluates every rule in order and collects the failures.
func (rs RuleSet) check(s string) Result {
	res := Result{Field: rs.Field}
	for _, r := range rs.Rules {
		if !r.pass(s) {
			res.Violations = append(res.Violations, r)
		}
	}
	return res
}

// Catalog is the published form of every rule table.
type Catalog struct {
	Version string    `json:"version"`
	Fields  []RuleSet `json:"fields"`
}

// Describe returns the rule tables for documentation.
func Describe() Catalog {
	return Catalog{
		Version: RulesVersion,
		Fields:  []RuleSet{UsernameRules, EmailRules, PasswordRules},
	}
}
