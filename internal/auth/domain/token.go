package domain

// Outcome classifies a token verification.
type Outcome int

const (
	TokenValid Outcome = iota
	TokenMissing
	TokenExpired
	TokenNotYetValid
	TokenInvalid
)

func (o Outcome) String() string {
	switch o {
	case TokenValid:
		return "valid"
	case TokenMissing:
		return "missing"
	case TokenExpired:
		return "expired"
	case TokenNotYetValid:
		return "not_yet_valid"
	case TokenInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Wire codes carried by token-related Unauthorized results.
const (
	CodeAbsent  = "ABS"
	CodeExpired = "EXP"
	CodeEarly   = "EAR"
	CodeInvalid = "INV"
	CodeNoMatch = "NMF"
)

// Verification is the result of checking a bearer token. UserID and Username
// are only set when Outcome is TokenValid.
type Verification struct {
	Outcome  Outcome
	Code     string
	Message  string
	UserID   string
	Username string
}

// Valid reports whether the token verified.
func (v Verification) Valid() bool { return v.Outcome == TokenValid }
