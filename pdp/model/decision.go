package model

type Reason string

const (
	ReasonSelf              Reason = "self"
	ReasonOwner             Reason = "owner"
	ReasonAdmin             Reason = "admin"
	ReasonRoleAllowed       Reason = "role_allowed"
	ReasonNoElevatedChange  Reason = "no_elevated_change"
	ReasonNotSelf           Reason = "not_self"
	ReasonNotOwner          Reason = "not_owner"
	ReasonRoleNotAllowed    Reason = "role_not_allowed"
	ReasonElevatedFieldDeny Reason = "elevated_field_requires_admin"
	ReasonUnknownRule       Reason = "unknown_rule"
)

// Decision is the outcome of evaluating one rule (or the first denying rule of a chain).
type Decision struct {
	Allowed bool     `json:"allowed"`
	Rule    RuleKind `json:"rule"`
	Reason  Reason   `json:"reason"`
	// Field names the elevated field that caused a denial.
	Field string `json:"field,omitempty"`
}

func Allow(rule RuleKind, reason Reason) Decision {
	return Decision{Allowed: true, Rule: rule, Reason: reason}
}

func Deny(rule RuleKind, reason Reason) Decision {
	return Decision{Allowed: false, Rule: rule, Reason: reason}
}
