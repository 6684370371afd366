// api/audit/service.go
package audit

import (
	"context"
	"errors"
)

var ErrInvalidQuery = errors.New("audit query window ends before it starts")

type Service interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, query Query) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAccess(ctx context.Context, log AuditLog) error {
	return s.repo.LogAccess(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, query Query) ([]AuditLog, error) {
	if !query.Valid() {
		return nil, ErrInvalidQuery
	}
	query.Normalize()
	return s.repo.QueryLogs(ctx, query)
}
