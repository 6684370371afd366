// api/dao/media_dao.go
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

type IMediaDAO interface {
	CreateMedia(ctx context.Context, propertyID int64, items []model.Media, guard Guard[model.Property]) ([]*model.Media, error)
	GetMedia(ctx context.Context, mediaID int64) (*model.MediaWithOwner, error)
	ListMedia(ctx context.Context, propertyID int64) ([]*model.Media, error)
	UpdateMedia(ctx context.Context, mediaID int64, isMain bool, guard Guard[model.MediaWithOwner]) (*model.Media, error)
	DeleteMedia(ctx context.Context, mediaID int64, guard Guard[model.MediaWithOwner]) (*model.Media, error)
}

type MediaDAO struct {
	Driver neo4j.DriverWithContext
}

var _ IMediaDAO = &MediaDAO{}

func NewMediaDAO(driver neo4j.DriverWithContext) *MediaDAO {
	return &MediaDAO{Driver: driver}
}

// CreateMedia attaches media rows to a listing. When any item is main, the
// listing's current main images are cleared first.
func (dao *MediaDAO) CreateMedia(ctx context.Context, propertyID int64, items []model.Media, guard Guard[model.Property]) ([]*model.Media, error) {
	start := time.Now()
	logger.Info("Creating media", zap.Int64("propertyID", propertyID), zap.Int("count", len(items)))

	created, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) ([]*model.Media, error) {
		current, err := loadProperty(ctx, tx, propertyID)
		if err != nil {
			return nil, err
		}
		if err := guard(current); err != nil {
			return nil, err
		}

		for _, item := range items {
			if item.IsMain {
				if err := clearMainImages(ctx, tx, propertyID, 0); err != nil {
					return nil, err
				}
				break
			}
		}

		created := make([]*model.Media, 0, len(items))
		for _, item := range items {
			media, err := createMediaNode(ctx, tx, propertyID, item)
			if err != nil {
				return nil, err
			}
			created = append(created, media)
		}
		return created, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Warn("Media creation aborted",
			zap.Error(err),
			zap.Int64("propertyID", propertyID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Media created successfully",
		zap.Int64("propertyID", propertyID),
		zap.Int("count", len(created)),
		zap.Duration("duration", duration))
	return created, nil
}

func (dao *MediaDAO) GetMedia(ctx context.Context, mediaID int64) (*model.MediaWithOwner, error) {
	media, err := readTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.MediaWithOwner, error) {
		return loadMedia(ctx, tx, mediaID)
	})
	if err != nil {
		logger.Debug("Failed to retrieve media", zap.Error(err), zap.Int64("mediaID", mediaID))
		return nil, err
	}
	return media, nil
}

// ListMedia returns the main image first, then by type and newest first.
func (dao *MediaDAO) ListMedia(ctx context.Context, propertyID int64) ([]*model.Media, error) {
	media, err := readTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) ([]*model.Media, error) {
		query := `
        MATCH (p:` + casa_neo4j.LabelProperty + ` {id: $id})
        OPTIONAL MATCH (m:` + casa_neo4j.LabelMedia + `)-[:` + casa_neo4j.RelBelongsTo + `]->(p)
        WITH p, m ORDER BY m.isMain DESC, m.type, m.createdAt DESC
        RETURN p.id AS id, collect(m) AS media
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": propertyID})
		if err != nil {
			return nil, dbError(err)
		}
		if !result.Next(ctx) {
			if err := result.Err(); err != nil {
				return nil, dbError(err)
			}
			return nil, echo_errors.ErrPropertyNotFound
		}
		media := []*model.Media{}
		for _, node := range recordNodes(result.Record(), "media") {
			media = append(media, mapNodeToMedia(node, propertyID))
		}
		return media, nil
	})
	if err != nil {
		logger.Debug("Failed to list media", zap.Error(err), zap.Int64("propertyID", propertyID))
		return nil, err
	}
	return media, nil
}

func (dao *MediaDAO) UpdateMedia(ctx context.Context, mediaID int64, isMain bool, guard Guard[model.MediaWithOwner]) (*model.Media, error) {
	start := time.Now()
	logger.Info("Updating media", zap.Int64("mediaID", mediaID), zap.Bool("isMain", isMain))

	updated, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.Media, error) {
		current, err := loadMedia(ctx, tx, mediaID)
		if err != nil {
			return nil, err
		}
		if err := guard(current); err != nil {
			return nil, err
		}

		if isMain {
			if err := clearMainImages(ctx, tx, current.PropertyID, mediaID); err != nil {
				return nil, err
			}
		}
		query := `
        MATCH (m:` + casa_neo4j.LabelMedia + ` {id: $id})
        SET m.isMain = $isMain
        RETURN m
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": mediaID, "isMain": isMain})
		if err != nil {
			return nil, dbError(err)
		}
		record, err := result.Single(ctx)
		if err != nil {
			return nil, dbError(err)
		}
		node, _ := recordNode(record, "m")
		return mapNodeToMedia(node, current.PropertyID), nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Warn("Media update aborted",
			zap.Error(err),
			zap.Int64("mediaID", mediaID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Media updated successfully", zap.Int64("mediaID", mediaID), zap.Duration("duration", duration))
	return updated, nil
}

// DeleteMedia removes a media row. When it was the main image, the newest
// remaining image of the listing is promoted.
func (dao *MediaDAO) DeleteMedia(ctx context.Context, mediaID int64, guard Guard[model.MediaWithOwner]) (*model.Media, error) {
	start := time.Now()
	logger.Info("Deleting media", zap.Int64("mediaID", mediaID))

	deleted, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.Media, error) {
		current, err := loadMedia(ctx, tx, mediaID)
		if err != nil {
			return nil, err
		}
		if err := guard(current); err != nil {
			return nil, err
		}

		result, err := tx.Run(ctx, `MATCH (m:`+casa_neo4j.LabelMedia+` {id: $id}) DETACH DELETE m`,
			map[string]any{"id": mediaID})
		if err != nil {
			return nil, dbError(err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return nil, dbError(err)
		}

		if current.IsMain {
			promote := `
            MATCH (m:` + casa_neo4j.LabelMedia + ` {type: $image})-[:` + casa_neo4j.RelBelongsTo + `]->(:` + casa_neo4j.LabelProperty + ` {id: $propertyId})
            WITH m ORDER BY m.createdAt DESC LIMIT 1
            SET m.isMain = true
            `
			result, err := tx.Run(ctx, promote, map[string]any{
				"image":      string(model.MediaTypeImage),
				"propertyId": current.PropertyID,
			})
			if err != nil {
				return nil, dbError(err)
			}
			if _, err := result.Consume(ctx); err != nil {
				return nil, dbError(err)
			}
		}
		return &current.Media, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Warn("Media deletion aborted",
			zap.Error(err),
			zap.Int64("mediaID", mediaID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Media deleted successfully", zap.Int64("mediaID", mediaID), zap.Duration("duration", duration))
	return deleted, nil
}

func createMediaNode(ctx context.Context, tx neo4j.ManagedTransaction, propertyID int64, media model.Media) (*model.Media, error) {
	id, err := nextID(ctx, tx, casa_neo4j.LabelMedia)
	if err != nil {
		return nil, err
	}
	query := `
    MATCH (p:` + casa_neo4j.LabelProperty + ` {id: $propertyId})
    CREATE (m:` + casa_neo4j.LabelMedia + ` {id: $id})
    SET m += $props
    CREATE (m)-[:` + casa_neo4j.RelBelongsTo + `]->(p)
    RETURN m
    `
	params := map[string]any{
		"id":         id,
		"propertyId": propertyID,
		"props": map[string]any{
			"type":      string(media.Type),
			"url":       media.URL,
			"path":      media.Path,
			"isMain":    media.IsMain,
			"createdAt": now(),
		},
	}
	result, err := tx.Run(ctx, query, params)
	if err != nil {
		return nil, dbError(err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		return nil, echo_errors.ErrPropertyNotFound
	}
	node, _ := recordNode(record, "m")
	return mapNodeToMedia(node, propertyID), nil
}

// clearMainImages unsets isMain on every image of the listing except keepID.
func clearMainImages(ctx context.Context, tx neo4j.ManagedTransaction, propertyID, keepID int64) error {
	query := `
    MATCH (m:` + casa_neo4j.LabelMedia + ` {isMain: true})-[:` + casa_neo4j.RelBelongsTo + `]->(:` + casa_neo4j.LabelProperty + ` {id: $propertyId})
    WHERE m.id <> $keepId
    SET m.isMain = false
    `
	result, err := tx.Run(ctx, query, map[string]any{"propertyId": propertyID, "keepId": keepID})
	if err != nil {
		return dbError(err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return dbError(err)
	}
	return nil
}

func loadMedia(ctx context.Context, tx neo4j.ManagedTransaction, mediaID int64) (*model.MediaWithOwner, error) {
	query := `
    MATCH (m:` + casa_neo4j.LabelMedia + ` {id: $id})-[:` + casa_neo4j.RelBelongsTo + `]->(p:` + casa_neo4j.LabelProperty + `)
    RETURN m, p.id AS propertyId, p.ownerId AS ownerId
    `
	result, err := tx.Run(ctx, query, map[string]any{"id": mediaID})
	if err != nil {
		return nil, dbError(err)
	}
	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, dbError(err)
		}
		return nil, echo_errors.ErrMediaNotFound
	}
	record := result.Record()
	node, _ := recordNode(record, "m")
	propertyID, _ := record.Get("propertyId")
	ownerID, _ := record.Get("ownerId")

	pid, _ := propertyID.(int64)
	oid, _ := ownerID.(int64)
	return &model.MediaWithOwner{
		Media:           *mapNodeToMedia(node, pid),
		PropertyOwnerID: oid,
	}, nil
}

func mapNodeToMedia(node neo4j.Node, propertyID int64) *model.Media {
	props := node.Props
	return &model.Media{
		ID:         propInt64(props, "id"),
		PropertyID: propertyID,
		Type:       model.MediaType(propString(props, "type")),
		URL:        propString(props, "url"),
		Path:       propString(props, "path"),
		IsMain:     propBool(props, "isMain"),
		CreatedAt:  propTime(props, "createdAt"),
	}
}
