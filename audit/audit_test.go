package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepository struct {
	queries []Query
	logs    []AuditLog
}

func (r *recordingRepository) LogAccess(ctx context.Context, log AuditLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *recordingRepository) QueryLogs(ctx context.Context, query Query) ([]AuditLog, error) {
	r.queries = append(r.queries, query)
	return r.logs, nil
}

func TestBuildSearch(t *testing.T) {
	t.Run("OpenWindow", func(t *testing.T) {
		search := buildSearch(Query{Size: 10})

		assert.Equal(t, 10, search["size"])
		must := search["query"].(map[string]any)["bool"].(map[string]any)["must"].([]any)
		assert.Empty(t, must)
	})

	t.Run("AllCriteria", func(t *testing.T) {
		from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
		search := buildSearch(Query{From: from, UserID: 3, ResourceID: 7, Action: "property:update", Size: 50})

		must := search["query"].(map[string]any)["bool"].(map[string]any)["must"].([]any)
		require.Len(t, must, 4)
		assert.Equal(t, map[string]any{"range": map[string]any{"timestamp": map[string]any{"gte": "2024-05-01T00:00:00Z"}}}, must[0])
		assert.Equal(t, map[string]any{"term": map[string]any{"user_id": int64(3)}}, must[1])
		assert.Equal(t, map[string]any{"term": map[string]any{"resource_id": int64(7)}}, must[2])
		assert.Equal(t, map[string]any{"match": map[string]any{"action": "property:update"}}, must[3])
	})
}

func TestService_QueryLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("ClampsSize", func(t *testing.T) {
		repo := &recordingRepository{}
		svc := NewService(repo)

		_, err := svc.QueryLogs(ctx, Query{})
		require.NoError(t, err)
		_, err = svc.QueryLogs(ctx, Query{Size: 5000})
		require.NoError(t, err)

		require.Len(t, repo.queries, 2)
		assert.Equal(t, DefaultQuerySize, repo.queries[0].Size)
		assert.Equal(t, MaxQuerySize, repo.queries[1].Size)
	})

	t.Run("InvertedWindow", func(t *testing.T) {
		repo := &recordingRepository{}
		now := time.Now()

		_, err := NewService(repo).QueryLogs(ctx, Query{From: now, To: now.Add(-time.Hour)})
		assert.ErrorIs(t, err, ErrInvalidQuery)
		assert.Empty(t, repo.queries)
	})

	t.Run("LogAccess", func(t *testing.T) {
		repo := &recordingRepository{}
		require.NoError(t, NewService(repo).LogAccess(ctx, AuditLog{UserID: 1, Action: "user:read"}))
		assert.Len(t, repo.logs, 1)
	})
}
