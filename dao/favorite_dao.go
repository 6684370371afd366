// api/dao/favorite_dao.go
package dao

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
	casa_neo4j "github.com/dev-mohitbeniwal/casa/api/model/neo4j"
)

type IFavoriteDAO interface {
	AddFavorite(ctx context.Context, userID, propertyID int64) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, propertyID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]*model.Favorite, error)
}

// FavoriteDAO stores favorites as FAVORITED relationships between a user
// and a listing.
type FavoriteDAO struct {
	Driver neo4j.DriverWithContext
}

var _ IFavoriteDAO = &FavoriteDAO{}

func NewFavoriteDAO(driver neo4j.DriverWithContext) *FavoriteDAO {
	return &FavoriteDAO{Driver: driver}
}

func (dao *FavoriteDAO) AddFavorite(ctx context.Context, userID, propertyID int64) (*model.Favorite, error) {
	logger.Info("Adding favorite", zap.Int64("userID", userID), zap.Int64("propertyID", propertyID))

	favorite, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.Favorite, error) {
		if _, err := loadProperty(ctx, tx, propertyID); err != nil {
			return nil, err
		}

		existing, err := tx.Run(ctx, `
        MATCH (:`+casa_neo4j.LabelUser+` {id: $userId})-[f:`+casa_neo4j.RelFavorited+`]->(:`+casa_neo4j.LabelProperty+` {id: $propertyId})
        RETURN f`, map[string]any{"userId": userID, "propertyId": propertyID})
		if err != nil {
			return nil, dbError(err)
		}
		if existing.Next(ctx) {
			return nil, echo_errors.ErrFavoriteConflict
		}

		query := `
        MATCH (u:` + casa_neo4j.LabelUser + ` {id: $userId}), (p:` + casa_neo4j.LabelProperty + ` {id: $propertyId})
        CREATE (u)-[f:` + casa_neo4j.RelFavorited + ` {createdAt: $createdAt}]->(p)
        RETURN f.createdAt AS createdAt
        `
		createdAt := now()
		result, err := tx.Run(ctx, query, map[string]any{"userId": userID, "propertyId": propertyID, "createdAt": createdAt})
		if err != nil {
			return nil, dbError(err)
		}
		if !result.Next(ctx) {
			return nil, echo_errors.ErrUserNotFound
		}
		return &model.Favorite{
			UserID:     userID,
			PropertyID: propertyID,
			CreatedAt:  valueTime(createdAt),
		}, nil
	})
	if err != nil {
		logger.Warn("Failed to add favorite", zap.Error(err), zap.Int64("userID", userID), zap.Int64("propertyID", propertyID))
		return nil, err
	}
	return favorite, nil
}

func (dao *FavoriteDAO) RemoveFavorite(ctx context.Context, userID, propertyID int64) error {
	logger.Info("Removing favorite", zap.Int64("userID", userID), zap.Int64("propertyID", propertyID))

	_, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
        MATCH (:` + casa_neo4j.LabelUser + ` {id: $userId})-[f:` + casa_neo4j.RelFavorited + `]->(:` + casa_neo4j.LabelProperty + ` {id: $propertyId})
        DELETE f
        `
		result, err := tx.Run(ctx, query, map[string]any{"userId": userID, "propertyId": propertyID})
		if err != nil {
			return nil, dbError(err)
		}
		summary, err := result.Consume(ctx)
		if err != nil {
			return nil, dbError(err)
		}
		if summary.Counters().RelationshipsDeleted() == 0 {
			return nil, echo_errors.ErrFavoriteNotFound
		}
		return nil, nil
	})
	if err != nil {
		logger.Warn("Failed to remove favorite", zap.Error(err), zap.Int64("userID", userID), zap.Int64("propertyID", propertyID))
		return err
	}
	return nil
}

// ListFavorites returns the user's favorites, newest first, each with its
// listing and main image.
func (dao *FavoriteDAO) ListFavorites(ctx context.Context, userID int64) ([]*model.Favorite, error) {
	start := time.Now()
	favorites, err := readTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) ([]*model.Favorite, error) {
		query := `
        MATCH (:` + casa_neo4j.LabelUser + ` {id: $userId})-[f:` + casa_neo4j.RelFavorited + `]->(p:` + casa_neo4j.LabelProperty + `)
        OPTIONAL MATCH (m:` + casa_neo4j.LabelMedia + ` {isMain: true})-[:` + casa_neo4j.RelBelongsTo + `]->(p)
        WITH f, p, collect(m)[0..1] AS media
        RETURN f.createdAt AS createdAt, p, null AS o, media
        ORDER BY createdAt DESC
        `
		result, err := tx.Run(ctx, query, map[string]any{"userId": userID})
		if err != nil {
			return nil, dbError(err)
		}
		favorites := []*model.Favorite{}
		for result.Next(ctx) {
			record := result.Record()
			property, err := mapPropertyRecord(record)
			if err != nil {
				return nil, err
			}
			createdAt, _ := record.Get("createdAt")
			favorites = append(favorites, &model.Favorite{
				UserID:     userID,
				PropertyID: property.ID,
				CreatedAt:  valueTime(createdAt),
				Property:   property,
			})
		}
		if err := result.Err(); err != nil {
			return nil, dbError(err)
		}
		return favorites, nil
	})
	if err != nil {
		logger.Error("Failed to list favorites", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}
	logger.Debug("Favorites listed", zap.Int("count", len(favorites)), zap.Duration("duration", time.Since(start)))
	return favorites, nil
}
