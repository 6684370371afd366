// api/dao/saved_search_dao.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
	casa_neo4j "github.com/dev-mohitbeniwal/casa/api/model/neo4j"
)

type ISavedSearchDAO interface {
	CreateSavedSearch(ctx context.Context, search model.SavedSearch) (*model.SavedSearch, error)
	ListSavedSearches(ctx context.Context, userID int64) ([]*model.SavedSearch, error)
}

type SavedSearchDAO struct {
	Driver neo4j.DriverWithContext
}

var _ ISavedSearchDAO = &SavedSearchDAO{}

func NewSavedSearchDAO(driver neo4j.DriverWithContext) *SavedSearchDAO {
	return &SavedSearchDAO{Driver: driver}
}

func (dao *SavedSearchDAO) CreateSavedSearch(ctx context.Context, search model.SavedSearch) (*model.SavedSearch, error) {
	logger.Info("Creating saved search", zap.Int64("userID", search.UserID), zap.String("name", search.Name))

	criteria, err := json.Marshal(search.Criteria)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrInvalidSavedSearchData, err)
	}

	created, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.SavedSearch, error) {
		id, err := nextID(ctx, tx, casa_neo4j.LabelSavedSearch)
		if err != nil {
			return nil, err
		}
		query := `
        MATCH (u:` + casa_neo4j.LabelUser + ` {id: $userId})
        CREATE (s:` + casa_neo4j.LabelSavedSearch + ` {id: $id, userId: $userId, name: $name, criteria: $criteria, createdAt: $createdAt})
        CREATE (u)-[:` + casa_neo4j.RelSaved + `]->(s)
        RETURN s
        `
		result, err := tx.Run(ctx, query, map[string]any{
			"id":        id,
			"userId":    search.UserID,
			"name":      search.Name,
			"criteria":  string(criteria),
			"createdAt": now(),
		})
		if err != nil {
			return nil, dbError(err)
		}
		if !result.Next(ctx) {
			return nil, echo_errors.ErrUserNotFound
		}
		node, _ := recordNode(result.Record(), "s")
		return mapNodeToSavedSearch(node)
	})
	if err != nil {
		logger.Warn("Failed to create saved search", zap.Error(err), zap.Int64("userID", search.UserID))
		return nil, err
	}
	return created, nil
}

func (dao *SavedSearchDAO) ListSavedSearches(ctx context.Context, userID int64) ([]*model.SavedSearch, error) {
	searches, err := readTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) ([]*model.SavedSearch, error) {
		query := `
        MATCH (:` + casa_neo4j.LabelUser + ` {id: $userId})-[:` + casa_neo4j.RelSaved + `]->(s:` + casa_neo4j.LabelSavedSearch + `)
        RETURN s
        ORDER BY s.createdAt DESC
        `
		result, err := tx.Run(ctx, query, map[string]any{"userId": userID})
		if err != nil {
			return nil, dbError(err)
		}
		searches := []*model.SavedSearch{}
		for result.Next(ctx) {
			node, _ := recordNode(result.Record(), "s")
			search, err := mapNodeToSavedSearch(node)
			if err != nil {
				return nil, err
			}
			searches = append(searches, search)
		}
		if err := result.Err(); err != nil {
			return nil, dbError(err)
		}
		return searches, nil
	})
	if err != nil {
		logger.Error("Failed to list saved searches", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}
	return searches, nil
}

func mapNodeToSavedSearch(node neo4j.Node) (*model.SavedSearch, error) {
	props := node.Props
	search := &model.SavedSearch{
		ID:        propInt64(props, "id"),
		UserID:    propInt64(props, "userId"),
		Name:      propString(props, "name"),
		CreatedAt: propTime(props, "createdAt"),
	}
	if raw := propString(props, "criteria"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &search.Criteria); err != nil {
			return nil, fmt.Errorf("failed to unmarshal saved search criteria: %w", err)
		}
	}
	return search, nil
}
