package validate

// Result lists every rule a single field violated, in table order.
type Result struct {
	Field      string
	Violations []Rule
}

// OK reports whether the field passed every rule.
func (r Result) OK() bool { return len(r.Violations) == 0 }

// Codes returns the violated rule codes.
func (r Result) Codes() []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Code)
	}
	return out
}

// Messages returns the human readable violation messages.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Message)
	}
	return out
}

// Report is the combined outcome of validating a registration.
type Report struct {
	Username Result
	Email    Result
	Password Result
}

// All validates the three fields independently; one failing field never
// hides another.
func All(username, email, password string) Report {
	return Report{
		Username: Username(username),
		Email:    Email(email),
		Password: Password(password),
	}
}

// OK reports whether every field passed.
func (r Report) OK() bool {
	return r.Username.OK() && r.Email.OK() && r.Password.OK()
}

// Problems maps each failing field to its violation messages. Passing fields
// are absent. Returns nil when the report is OK.
func (r Report) Problems() map[string][]string {
	if r.OK() {
		return nil
	}

	out := make(map[string][]string, 3)
	for _, res := range []Result{r.Username, r.Email, r.Password} {
		if !res.OK() {
			out[res.Field] = res.Messages()
		}
	}
	return out
}
