// api/audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
)

type Repository interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, query Query) ([]AuditLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a repository writing to index at esURL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// LogAccess indexes one audit entry.
func (r *ElasticsearchRepository) LogAccess(ctx context.Context, log AuditLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: uuid.NewString(),
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

// QueryLogs searches audit entries within a time frame, newest first.
func (r *ElasticsearchRepository) QueryLogs(ctx context.Context, query Query) ([]AuditLog, error) {
	body, err := json.Marshal(buildSearch(query))
	if err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var response struct {
		Hits struct {
			Hits []struct {
				Source AuditLog `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, err
	}

	logs := make([]AuditLog, 0, len(response.Hits.Hits))
	for _, hit := range response.Hits.Hits {
		logs = append(logs, hit.Source)
	}
	return logs, nil
}

func buildSearch(query Query) map[string]any {
	must := []any{}
	if timeRange := timestampRange(query.From, query.To); len(timeRange) > 0 {
		must = append(must, map[string]any{"range": map[string]any{"timestamp": timeRange}})
	}
	if query.UserID != 0 {
		must = append(must, map[string]any{"term": map[string]any{"user_id": query.UserID}})
	}
	if query.ResourceID != 0 {
		must = append(must, map[string]any{"term": map[string]any{"resource_id": query.ResourceID}})
	}
	if query.Action != "" {
		must = append(must, map[string]any{"match": map[string]any{"action": query.Action}})
	}

	return map[string]any{
		"size": query.Size,
		"sort": []any{map[string]any{"timestamp": map[string]any{"order": "desc"}}},
		"query": map[string]any{
			"bool": map[string]any{"must": must},
		},
	}
}

// timestampRange leaves out unset bounds.
func timestampRange(from, to time.Time) map[string]any {
	bounds := map[string]any{}
	if !from.IsZero() {
		bounds["gte"] = from.Format(time.RFC3339)
	}
	if !to.IsZero() {
		bounds["lte"] = to.Format(time.RFC3339)
	}
	return bounds
}
