package model

import (
	"slices"

	"github.com/dev-mohitbeniwal/casa/api/model"
)

// Principal is the authenticated identity making a request.
type Principal struct {
	ID   int64      `json:"id"`
	Role model.Role `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// Ownership is the minimal ownership fact needed to evaluate a rule.
// OwnerID is the owning user of a self-scoped resource (profile, favorites,
// saved searches); ParentOwnerID is the owner of the property a resource
// belongs to (the property itself, its media).
type Ownership struct {
	OwnerID       int64 `json:"owner_id,omitempty"`
	ParentOwnerID int64 `json:"parent_owner_id,omitempty"`
}

func OwnedBy(userID int64) Ownership {
	return Ownership{OwnerID: userID}
}

func PropertyOwnedBy(ownerID int64) Ownership {
	return Ownership{ParentOwnerID: ownerID}
}

// RuleKind tags the rule variant.
type RuleKind int

const (
	RuleSelfOrAdmin RuleKind = iota + 1
	RuleOwnerOrAdmin
	RuleRoleAllowlist
	RuleElevatedField
)

func (k RuleKind) String() string {
	switch k {
	case RuleSelfOrAdmin:
		return "self_or_admin"
	case RuleOwnerOrAdmin:
		return "owner_or_admin"
	case RuleRoleAllowlist:
		return "role_allowlist"
	case RuleElevatedField:
		return "elevated_field"
	default:
		return "unknown"
	}
}

// Rule is a tagged variant. AllowedRoles is read only by RuleRoleAllowlist,
// Fields only by RuleElevatedField.
type Rule struct {
	Kind         RuleKind
	AllowedRoles []model.Role
	Fields       []string
}

func SelfOrAdmin() Rule {
	return Rule{Kind: RuleSelfOrAdmin}
}

func OwnerOrAdmin() Rule {
	return Rule{Kind: RuleOwnerOrAdmin}
}

func RoleAllowlist(roles ...model.Role) Rule {
	return Rule{Kind: RuleRoleAllowlist, AllowedRoles: roles}
}

// ElevatedField guards fields whose modification requires ADMIN.
func ElevatedField(fields ...string) Rule {
	return Rule{Kind: RuleElevatedField, Fields: fields}
}

// FieldChanges is the set of field names a request attempts to modify.
type FieldChanges map[string]struct{}

func Changes(fields ...string) FieldChanges {
	changes := make(FieldChanges, len(fields))
	for _, f := range fields {
		changes[f] = struct{}{}
	}
	return changes
}

func (c FieldChanges) Has(field string) bool {
	_, ok := c[field]
	return ok
}

// Fields lists the changed field names in sorted order.
func (c FieldChanges) Fields() []string {
	fields := make([]string, 0, len(c))
	for f := range c {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}
