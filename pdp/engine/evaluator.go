package engine

import (
	"slices"

	"github.com/dev-mohitbeniwal/casa/api/model"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
)

// PolicyEvaluator decides whether a principal may act on a resource.
// It holds no state: a decision depends only on its arguments, and it
// performs no I/O. Existence of the resource must be checked by the caller
// before evaluation.
type PolicyEvaluator struct{}

func NewPolicyEvaluator() *PolicyEvaluator {
	return &PolicyEvaluator{}
}

// Evaluate applies a single rule.
func (pe *PolicyEvaluator) Evaluate(principal pdp_model.Principal, ownership pdp_model.Ownership, rule pdp_model.Rule, changes pdp_model.FieldChanges) pdp_model.Decision {
	switch rule.Kind {
	case pdp_model.RuleSelfOrAdmin:
		return pe.evaluateSelfOrAdmin(principal, ownership)
	case pdp_model.RuleOwnerOrAdmin:
		return pe.evaluateOwnerOrAdmin(principal, ownership)
	case pdp_model.RuleRoleAllowlist:
		return pe.evaluateRoleAllowlist(principal, rule.AllowedRoles)
	case pdp_model.RuleElevatedField:
		return pe.evaluateElevatedField(principal, rule.Fields, changes)
	default:
		return pdp_model.Deny(rule.Kind, pdp_model.ReasonUnknownRule)
	}
}

// EvaluateAll applies rules in order and returns the first denial, or the
// decision of the last rule when every rule allows. An empty chain denies.
func (pe *PolicyEvaluator) EvaluateAll(principal pdp_model.Principal, ownership pdp_model.Ownership, changes pdp_model.FieldChanges, rules ...pdp_model.Rule) pdp_model.Decision {
	decision := pdp_model.Deny(0, pdp_model.ReasonUnknownRule)
	for _, rule := range rules {
		decision = pe.Evaluate(principal, ownership, rule, changes)
		if !decision.Allowed {
			return decision
		}
	}
	return decision
}

func (pe *PolicyEvaluator) evaluateSelfOrAdmin(principal pdp_model.Principal, ownership pdp_model.Ownership) pdp_model.Decision {
	if principal.ID == ownership.OwnerID {
		return pdp_model.Allow(pdp_model.RuleSelfOrAdmin, pdp_model.ReasonSelf)
	}
	if principal.IsAdmin() {
		return pdp_model.Allow(pdp_model.RuleSelfOrAdmin, pdp_model.ReasonAdmin)
	}
	return pdp_model.Deny(pdp_model.RuleSelfOrAdmin, pdp_model.ReasonNotSelf)
}

func (pe *PolicyEvaluator) evaluateOwnerOrAdmin(principal pdp_model.Principal, ownership pdp_model.Ownership) pdp_model.Decision {
	if principal.ID == ownership.ParentOwnerID {
		return pdp_model.Allow(pdp_model.RuleOwnerOrAdmin, pdp_model.ReasonOwner)
	}
	if principal.IsAdmin() {
		return pdp_model.Allow(pdp_model.RuleOwnerOrAdmin, pdp_model.ReasonAdmin)
	}
	return pdp_model.Deny(pdp_model.RuleOwnerOrAdmin, pdp_model.ReasonNotOwner)
}

func (pe *PolicyEvaluator) evaluateRoleAllowlist(principal pdp_model.Principal, allowed []model.Role) pdp_model.Decision {
	if slices.Contains(allowed, principal.Role) {
		return pdp_model.Allow(pdp_model.RuleRoleAllowlist, pdp_model.ReasonRoleAllowed)
	}
	return pdp_model.Deny(pdp_model.RuleRoleAllowlist, pdp_model.ReasonRoleNotAllowed)
}

// evaluateElevatedField ignores ownership entirely: only ADMIN may touch the guarded fields.
func (pe *PolicyEvaluator) evaluateElevatedField(principal pdp_model.Principal, fields []string, changes pdp_model.FieldChanges) pdp_model.Decision {
	if principal.IsAdmin() {
		return pdp_model.Allow(pdp_model.RuleElevatedField, pdp_model.ReasonAdmin)
	}
	for _, field := range fields {
		if changes.Has(field) {
			decision := pdp_model.Deny(pdp_model.RuleElevatedField, pdp_model.ReasonElevatedFieldDeny)
			decision.Field = field
			return decision
		}
	}
	return pdp_model.Allow(pdp_model.RuleElevatedField, pdp_model.ReasonNoElevatedChange)
}
