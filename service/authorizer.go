// api/service/authorizer.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/casa/api/audit"
	"github.com/dev-mohitbeniwal/casa/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/metrics"
	"github.com/dev-mohitbeniwal/casa/api/model"
	"github.com/dev-mohitbeniwal/casa/api/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

// accessPolicy names an operation, the rule chain that gates it and the
// message returned when a given rule denies.
type accessPolicy struct {
	Action       string
	ResourceType string
	Rules        []pdp_model.Rule
	Messages     map[pdp_model.RuleKind]string
}

const defaultDenyMessage = "Not authorized to access this resource"

func (p accessPolicy) message(rule pdp_model.RuleKind) string {
	if msg, ok := p.Messages[rule]; ok {
		return msg
	}
	return defaultDenyMessage
}

var (
	policyListUsers = accessPolicy{
		Action:       "user.list",
		ResourceType: "user",
		Rules:        []pdp_model.Rule{pdp_model.RoleAllowlist(model.RoleAdmin)},
	}
	policyReadUser = accessPolicy{
		Action:       "user.read",
		ResourceType: "user",
		Rules:        []pdp_model.Rule{pdp_model.SelfOrAdmin()},
		Messages:     map[pdp_model.RuleKind]string{pdp_model.RuleSelfOrAdmin: "Not authorized to access this user data"},
	}
	policyUpdateUser = accessPolicy{
		Action:       "user.update",
		ResourceType: "user",
		Rules:        []pdp_model.Rule{pdp_model.ElevatedField("role"), pdp_model.SelfOrAdmin()},
		Messages: map[pdp_model.RuleKind]string{
			pdp_model.RuleElevatedField: "Not authorized to update user role",
			pdp_model.RuleSelfOrAdmin:   "Not authorized to update this user",
		},
	}
	policyDeleteUser = accessPolicy{
		Action:       "user.delete",
		ResourceType: "user",
		Rules:        []pdp_model.Rule{pdp_model.SelfOrAdmin()},
		Messages:     map[pdp_model.RuleKind]string{pdp_model.RuleSelfOrAdmin: "Not authorized to delete this user"},
	}
	policyUserCollections = accessPolicy{
		Action:       "user.collections",
		ResourceType: "user",
		Rules:        []pdp_model.Rule{pdp_model.SelfOrAdmin()},
		Messages:     map[pdp_model.RuleKind]string{pdp_model.RuleSelfOrAdmin: "Not authorized to access this user data"},
	}
	policyUpdateProperty = accessPolicy{
		Action:       "property.update",
		ResourceType: "property",
		Rules:        []pdp_model.Rule{pdp_model.OwnerOrAdmin(), pdp_model.ElevatedField("verified")},
		Messages: map[pdp_model.RuleKind]string{
			pdp_model.RuleOwnerOrAdmin:  "Not authorized to update this property",
			pdp_model.RuleElevatedField: "Not authorized to update verification status",
		},
	}
	policyDeleteProperty = accessPolicy{
		Action:       "property.delete",
		ResourceType: "property",
		Rules:        []pdp_model.Rule{pdp_model.OwnerOrAdmin()},
		Messages:     map[pdp_model.RuleKind]string{pdp_model.RuleOwnerOrAdmin: "Not authorized to delete this property"},
	}
	policyUploadMedia = accessPolicy{
		Action:       "media.upload",
		ResourceType: "property",
		Rules:        []pdp_model.Rule{pdp_model.OwnerOrAdmin()},
		Messages:     map[pdp_model.RuleKind]string{pdp_model.RuleOwnerOrAdmin: "Not authorized to upload media for this property"},
	}
	policyUpdateMedia = accessPolicy{
		Action:       "media.update",
		ResourceType: "media",
		Rules:        []pdp_model.Rule{pdp_model.OwnerOrAdmin()},
		Messages:     map[pdp_model.RuleKind]string{pdp_model.RuleOwnerOrAdmin: "Not authorized to update this media"},
	}
	policyDeleteMedia = accessPolicy{
		Action:       "media.delete",
		ResourceType: "media",
		Rules:        []pdp_model.Rule{pdp_model.OwnerOrAdmin()},
		Messages:     map[pdp_model.RuleKind]string{pdp_model.RuleOwnerOrAdmin: "Not authorized to delete this media"},
	}
	policyQueryAudit = accessPolicy{
		Action:       "audit.query",
		ResourceType: "audit",
		Rules:        []pdp_model.Rule{pdp_model.RoleAllowlist(model.RoleAdmin)},
	}
)

// Authorizer resolves principals and gates operations through the policy
// evaluator. Every decision is counted and sent to the audit trail.
type Authorizer struct {
	userDAO         dao.IUserDAO
	evaluator       *engine.PolicyEvaluator
	auditService    audit.Service
	metrics         *metrics.Metrics
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

func NewAuthorizer(userDAO dao.IUserDAO, evaluator *engine.PolicyEvaluator, auditService audit.Service, m *metrics.Metrics, notificationSvc *util.NotificationService, eventBus *util.EventBus) *Authorizer {
	a := &Authorizer{
		userDAO:         userDAO,
		evaluator:       evaluator,
		auditService:    auditService,
		metrics:         m,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventAccessChecked, a.handleAccessChecked)
	eventBus.Subscribe(util.EventAccessDenied, a.handleAccessDenied)

	return a
}

// ResolvePrincipal loads the requester fresh so role changes apply to the
// next request. A subject that no longer exists is unauthenticated.
func (a *Authorizer) ResolvePrincipal(ctx context.Context, userID int64) (pdp_model.Principal, error) {
	user, err := a.userDAO.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, echo_errors.ErrUserNotFound) {
			return pdp_model.Principal{}, fmt.Errorf("%w: user %d no longer exists", echo_errors.ErrUnauthenticated, userID)
		}
		return pdp_model.Principal{}, err
	}
	return pdp_model.Principal{ID: user.ID, Role: user.Role}, nil
}

// Check evaluates the policy chain and returns a *ForbiddenError carrying
// the message of the first denying rule.
func (a *Authorizer) Check(ctx context.Context, principal pdp_model.Principal, policy accessPolicy, resourceID int64, ownership pdp_model.Ownership, changes pdp_model.FieldChanges) error {
	check := a.Guarded(principal, policy, resourceID)
	defer check.Record(ctx)
	return check.Evaluate(ownership, changes)
}

// Guarded prepares a check for a transaction guard. The driver may run the
// guard more than once, so Evaluate only remembers the decision and Record
// emits it once after the transaction returns.
func (a *Authorizer) Guarded(principal pdp_model.Principal, policy accessPolicy, resourceID int64) *GuardedCheck {
	return &GuardedCheck{authorizer: a, principal: principal, policy: policy, resourceID: resourceID}
}

type GuardedCheck struct {
	authorizer *Authorizer
	principal  pdp_model.Principal
	policy     accessPolicy
	resourceID int64
	decision   *pdp_model.Decision
	changes    pdp_model.FieldChanges
}

func (g *GuardedCheck) Evaluate(ownership pdp_model.Ownership, changes pdp_model.FieldChanges) error {
	decision := g.authorizer.evaluator.EvaluateAll(g.principal, ownership, changes, g.policy.Rules...)
	g.decision = &decision
	g.changes = changes
	if decision.Allowed {
		return nil
	}
	return echo_errors.NewForbiddenError(g.policy.message(decision.Rule), decision)
}

// Record counts the last decision and sends it to the audit trail. Without
// a decision (the resource was not found) it does nothing.
func (g *GuardedCheck) Record(ctx context.Context) {
	if g.decision == nil {
		return
	}
	decision := *g.decision
	g.decision = nil

	a := g.authorizer
	a.metrics.RecordDecision(decision.Rule.String(), string(decision.Reason), decision.Allowed)

	entry := audit.AuditLog{
		Timestamp:     time.Now().UTC(),
		RequestID:     util.RequestIDFromContext(ctx),
		UserID:        g.principal.ID,
		UserRole:      string(g.principal.Role),
		Action:        g.policy.Action,
		ResourceType:  g.policy.ResourceType,
		ResourceID:    g.resourceID,
		AccessGranted: decision.Allowed,
		Rule:          decision.Rule.String(),
		Reason:        string(decision.Reason),
		Field:         decision.Field,
	}
	if len(g.changes) > 0 {
		details, err := json.Marshal(map[string][]string{"fields": g.changes.Fields()})
		if err != nil {
			logger.Warn("Failed to encode change details", zap.Error(err), zap.String("action", g.policy.Action))
		} else {
			entry.ChangeDetails = details
		}
	}
	a.eventBus.Publish(ctx, util.EventAccessChecked, entry)
	if !decision.Allowed {
		a.eventBus.Publish(ctx, util.EventAccessDenied, entry)
	}
}

func (a *Authorizer) handleAccessChecked(ctx context.Context, event util.Event) error {
	entry := event.Payload.(audit.AuditLog)
	if a.auditService == nil {
		return nil
	}
	if err := a.auditService.LogAccess(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log for %s: %w", entry.Action, err)
	}
	return nil
}

func (a *Authorizer) handleAccessDenied(ctx context.Context, event util.Event) error {
	entry := event.Payload.(audit.AuditLog)
	logger.Warn("Access denied",
		zap.Int64("userID", entry.UserID),
		zap.String("action", entry.Action),
		zap.Int64("resourceID", entry.ResourceID),
		zap.String("rule", entry.Rule),
		zap.String("reason", entry.Reason),
		zap.String("requestID", entry.RequestID))

	if entry.Field != "" {
		return a.notificationSvc.NotifyAdmins(ctx, "Elevated field change denied",
			zap.Int64("userID", entry.UserID),
			zap.String("field", entry.Field),
			zap.String("action", entry.Action))
	}
	return nil
}
