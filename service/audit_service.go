// api/service/audit_service.go
package service

import (
	"context"

	"github.com/dev-mohitbeniwal/casa/api/audit"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
)

// IAuditService exposes the access trail to administrators.
type IAuditService interface {
	QueryLogs(ctx context.Context, requesterID int64, query audit.Query) ([]audit.AuditLog, error)
}

type AuditService struct {
	auditService audit.Service
	authorizer   *Authorizer
}

var _ IAuditService = &AuditService{}

func NewAuditService(auditService audit.Service, authorizer *Authorizer) *AuditService {
	return &AuditService{auditService: auditService, authorizer: authorizer}
}

func (s *AuditService) QueryLogs(ctx context.Context, requesterID int64, query audit.Query) ([]audit.AuditLog, error) {
	principal, err := s.authorizer.ResolvePrincipal(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.Check(ctx, principal, policyQueryAudit, 0, pdp_model.Ownership{}, nil); err != nil {
		return nil, err
	}
	return s.auditService.QueryLogs(ctx, query)
}
