// api/dao/property_dao.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
	casa_neo4j "github.com/dev-mohitbeniwal/casa/api/model/neo4j"
)

type IPropertyDAO interface {
	CreateProperty(ctx context.Context, property model.Property, media []model.MediaInput) (*model.Property, error)
	GetProperty(ctx context.Context, propertyID int64) (*model.Property, error)
	ViewProperty(ctx context.Context, propertyID int64) (*model.Property, error)
	ListProperties(ctx context.Context, filter model.PropertyFilter) ([]*model.Property, error)
	CountProperties(ctx context.Context, filter model.PropertyFilter) (int64, error)
	UpdateProperty(ctx context.Context, propertyID int64, patch model.PropertyPatch, guard Guard[model.Property]) (*model.Property, error)
	DeleteProperty(ctx context.Context, propertyID int64, guard Guard[model.Property]) ([]string, error)
}

type PropertyDAO struct {
	Driver neo4j.DriverWithContext
}

var _ IPropertyDAO = &PropertyDAO{}

func NewPropertyDAO(driver neo4j.DriverWithContext) *PropertyDAO {
	dao := &PropertyDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Property", zap.Error(err))
	}
	return dao
}

func (dao *PropertyDAO) EnsureUniqueConstraint(ctx context.Context) error {
	return ensureConstraints(ctx, dao.Driver, casa_neo4j.LabelProperty,
		`CREATE CONSTRAINT unique_property_id IF NOT EXISTS
        FOR (p:`+casa_neo4j.LabelProperty+`) REQUIRE p.id IS UNIQUE`,
		`CREATE CONSTRAINT unique_media_id IF NOT EXISTS
        FOR (m:`+casa_neo4j.LabelMedia+`) REQUIRE m.id IS UNIQUE`,
		`CREATE INDEX property_listing IF NOT EXISTS
        FOR (p:`+casa_neo4j.LabelProperty+`) ON (p.status, p.createdAt)`,
		sequenceConstraint(),
	)
}

// CreateProperty stores the listing with its nested address, features and
// media in one transaction. The owner must exist.
func (dao *PropertyDAO) CreateProperty(ctx context.Context, property model.Property, media []model.MediaInput) (*model.Property, error) {
	start := time.Now()
	logger.Info("Creating new property", zap.String("title", property.Title), zap.Int64("ownerID", property.OwnerID))

	created, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.Property, error) {
		id, err := nextID(ctx, tx, casa_neo4j.LabelProperty)
		if err != nil {
			return nil, err
		}

		props, err := propertyProps(property)
		if err != nil {
			return nil, err
		}
		timestamp := now()
		props["views"] = int64(0)
		props["verified"] = property.Verified
		props["ownerId"] = property.OwnerID
		props["createdAt"] = timestamp
		props["updatedAt"] = timestamp

		query := `
        MATCH (o:` + casa_neo4j.LabelUser + ` {id: $ownerId})
        CREATE (p:` + casa_neo4j.LabelProperty + ` {id: $id})
        SET p += $props
        CREATE (o)-[:` + casa_neo4j.RelOwns + `]->(p)
        RETURN p.id AS id
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": id, "ownerId": property.OwnerID, "props": props})
		if err != nil {
			return nil, dbError(err)
		}
		if !result.Next(ctx) {
			return nil, echo_errors.ErrUserNotFound
		}

		for _, item := range media {
			if _, err := createMediaNode(ctx, tx, id, model.Media{Type: item.Type, URL: item.URL, IsMain: item.IsMain}); err != nil {
				return nil, err
			}
		}

		return loadProperty(ctx, tx, id)
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create property",
			zap.Error(err),
			zap.Int64("ownerID", property.OwnerID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Property created successfully",
		zap.Int64("propertyID", created.ID),
		zap.Duration("duration", duration))
	return created, nil
}

func (dao *PropertyDAO) GetProperty(ctx context.Context, propertyID int64) (*model.Property, error) {
	property, err := readTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.Property, error) {
		return loadProperty(ctx, tx, propertyID)
	})
	if err != nil {
		logger.Debug("Failed to retrieve property", zap.Error(err), zap.Int64("propertyID", propertyID))
		return nil, err
	}
	return property, nil
}

// ViewProperty loads a listing and counts the visit.
func (dao *PropertyDAO) ViewProperty(ctx context.Context, propertyID int64) (*model.Property, error) {
	property, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.Property, error) {
		query := `
        MATCH (p:` + casa_neo4j.LabelProperty + ` {id: $id})
        SET p.views = coalesce(p.views, 0) + 1
        RETURN p.id
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": propertyID})
		if err != nil {
			return nil, dbError(err)
		}
		if !result.Next(ctx) {
			return nil, echo_errors.ErrPropertyNotFound
		}
		return loadProperty(ctx, tx, propertyID)
	})
	if err != nil {
		logger.Debug("Failed to view property", zap.Error(err), zap.Int64("propertyID", propertyID))
		return nil, err
	}
	return property, nil
}

func (dao *PropertyDAO) ListProperties(ctx context.Context, filter model.PropertyFilter) ([]*model.Property, error) {
	start := time.Now()
	where, params := propertyFilterClause(filter)
	params["skip"] = int64(filter.Skip())
	params["limit"] = int64(filter.Limit)

	properties, err := readTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) ([]*model.Property, error) {
		query := `
        MATCH (p:` + casa_neo4j.LabelProperty + `)
        ` + where + `
        WITH p ORDER BY p.createdAt DESC SKIP $skip LIMIT $limit
        OPTIONAL MATCH (o:` + casa_neo4j.LabelUser + ` {id: p.ownerId})
        OPTIONAL MATCH (m:` + casa_neo4j.LabelMedia + ` {isMain: true})-[:` + casa_neo4j.RelBelongsTo + `]->(p)
        WITH p, o, collect(m)[0..1] AS media
        RETURN p, o, media
        ORDER BY p.createdAt DESC
        `
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, dbError(err)
		}
		properties := []*model.Property{}
		for result.Next(ctx) {
			property, err := mapPropertyRecord(result.Record())
			if err != nil {
				return nil, err
			}
			properties = append(properties, property)
		}
		if err := result.Err(); err != nil {
			return nil, dbError(err)
		}
		return properties, nil
	})
	if err != nil {
		logger.Error("Failed to list properties", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	logger.Debug("Properties listed",
		zap.Int("count", len(properties)),
		zap.Duration("duration", time.Since(start)))
	return properties, nil
}

func (dao *PropertyDAO) CountProperties(ctx context.Context, filter model.PropertyFilter) (int64, error) {
	where, params := propertyFilterClause(filter)
	count, err := readTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (int64, error) {
		query := `MATCH (p:` + casa_neo4j.LabelProperty + `) ` + where + ` RETURN count(p) AS total`
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return 0, dbError(err)
		}
		record, err := result.Single(ctx)
		if err != nil {
			return 0, dbError(err)
		}
		total, _ := record.Get("total")
		n, _ := total.(int64)
		return n, nil
	})
	if err != nil {
		logger.Error("Failed to count properties", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (dao *PropertyDAO) UpdateProperty(ctx context.Context, propertyID int64, patch model.PropertyPatch, guard Guard[model.Property]) (*model.Property, error) {
	start := time.Now()
	logger.Info("Updating property", zap.Int64("propertyID", propertyID))

	updated, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.Property, error) {
		current, err := loadProperty(ctx, tx, propertyID)
		if err != nil {
			return nil, err
		}
		if err := guard(current); err != nil {
			return nil, err
		}

		props, err := propertyPatchProps(patch)
		if err != nil {
			return nil, err
		}
		query := `
        MATCH (p:` + casa_neo4j.LabelProperty + ` {id: $id})
        SET p += $props
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": propertyID, "props": props})
		if err != nil {
			return nil, dbError(err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return nil, dbError(err)
		}
		return loadProperty(ctx, tx, propertyID)
	})

	duration := time.Since(start)
	if err != nil {
		logger.Warn("Property update aborted",
			zap.Error(err),
			zap.Int64("propertyID", propertyID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Property updated successfully",
		zap.Int64("propertyID", propertyID),
		zap.Duration("duration", duration))
	return updated, nil
}

// DeleteProperty removes the listing with its media rows and favorites and
// returns the stored file paths of the removed media.
func (dao *PropertyDAO) DeleteProperty(ctx context.Context, propertyID int64, guard Guard[model.Property]) ([]string, error) {
	start := time.Now()
	logger.Info("Deleting property", zap.Int64("propertyID", propertyID))

	paths, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) ([]string, error) {
		current, err := loadProperty(ctx, tx, propertyID)
		if err != nil {
			return nil, err
		}
		if err := guard(current); err != nil {
			return nil, err
		}

		query := `
        MATCH (p:` + casa_neo4j.LabelProperty + ` {id: $id})
        OPTIONAL MATCH (m:` + casa_neo4j.LabelMedia + `)-[:` + casa_neo4j.RelBelongsTo + `]->(p)
        WITH p, collect(m) AS media
        FOREACH (item IN media | DETACH DELETE item)
        DETACH DELETE p
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": propertyID})
		if err != nil {
			return nil, dbError(err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return nil, dbError(err)
		}

		paths := []string{}
		for _, m := range current.Media {
			if m.Path != "" {
				paths = append(paths, m.Path)
			}
		}
		return paths, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Warn("Property deletion aborted",
			zap.Error(err),
			zap.Int64("propertyID", propertyID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Property deleted successfully",
		zap.Int64("propertyID", propertyID),
		zap.Int("mediaFiles", len(paths)),
		zap.Duration("duration", duration))
	return paths, nil
}

func loadProperty(ctx context.Context, tx neo4j.ManagedTransaction, propertyID int64) (*model.Property, error) {
	query := `
    MATCH (p:` + casa_neo4j.LabelProperty + ` {id: $id})
    OPTIONAL MATCH (o:` + casa_neo4j.LabelUser + ` {id: p.ownerId})
    OPTIONAL MATCH (m:` + casa_neo4j.LabelMedia + `)-[:` + casa_neo4j.RelBelongsTo + `]->(p)
    WITH p, o, m ORDER BY m.isMain DESC, m.type, m.createdAt DESC
    RETURN p, o, collect(m) AS media
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
	return mapPropertyRecord(result.Record())
}

// propertyFilterClause builds the WHERE clause of a listing query. Status
// always applies; the caller normalizes the filter first.
func propertyFilterClause(filter model.PropertyFilter) (string, map[string]any) {
	conditions := []string{"p.status = $status"}
	params := map[string]any{"status": string(filter.Status)}

	if filter.Type != "" {
		conditions = append(conditions, "p.type = $type")
		params["type"] = string(filter.Type)
	}
	if filter.MinPrice > 0 {
		conditions = append(conditions, "p.price >= $minPrice")
		params["minPrice"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		conditions = append(conditions, "p.price <= $maxPrice")
		params["maxPrice"] = filter.MaxPrice
	}
	if filter.Bedrooms > 0 {
		conditions = append(conditions, "p.bedrooms >= $bedrooms")
		params["bedrooms"] = int64(filter.Bedrooms)
	}
	if filter.Bathrooms > 0 {
		conditions = append(conditions, "p.bathrooms >= $bathrooms")
		params["bathrooms"] = int64(filter.Bathrooms)
	}
	if filter.City != "" {
		conditions = append(conditions, "p.city = $city")
		params["city"] = filter.City
	}
	if filter.State != "" {
		conditions = append(conditions, "p.state = $state")
		params["state"] = filter.State
	}
	if filter.Verified != nil {
		conditions = append(conditions, "p.verified = $verified")
		params["verified"] = *filter.Verified
	}
	return "WHERE " + strings.Join(conditions, " AND "), params
}

func propertyProps(property model.Property) (map[string]any, error) {
	props := map[string]any{
		"title":            property.Title,
		"titleEn":          property.TitleEn,
		"description":      property.Description,
		"descriptionEn":    property.DescriptionEn,
		"price":            property.Price,
		"currency":         string(property.Currency),
		"type":             string(property.Type),
		"status":           string(property.Status),
		"bedrooms":         nullableInt(property.Bedrooms),
		"bathrooms":        nullableInt(property.Bathrooms),
		"buildingSize":     nullableFloat(property.BuildingSize),
		"landSize":         nullableFloat(property.LandSize),
		"constructionYear": nullableInt(property.ConstructionYear),
	}
	if err := setAddressProps(props, property.Address); err != nil {
		return nil, err
	}
	if err := setFeatureProps(props, property.Features); err != nil {
		return nil, err
	}
	return props, nil
}

func propertyPatchProps(patch model.PropertyPatch) (map[string]any, error) {
	props := map[string]any{"updatedAt": now()}
	if patch.Title != nil {
		props["title"] = *patch.Title
	}
	if patch.TitleEn != nil {
		props["titleEn"] = *patch.TitleEn
	}
	if patch.Description != nil {
		props["description"] = *patch.Description
	}
	if patch.DescriptionEn != nil {
		props["descriptionEn"] = *patch.DescriptionEn
	}
	if patch.Price != nil {
		props["price"] = *patch.Price
	}
	if patch.Currency != nil {
		props["currency"] = string(*patch.Currency)
	}
	if patch.Type != nil {
		props["type"] = string(*patch.Type)
	}
	if patch.Status != nil {
		props["status"] = string(*patch.Status)
	}
	if patch.Bedrooms != nil {
		props["bedrooms"] = int64(*patch.Bedrooms)
	}
	if patch.Bathrooms != nil {
		props["bathrooms"] = int64(*patch.Bathrooms)
	}
	if patch.BuildingSize != nil {
		props["buildingSize"] = *patch.BuildingSize
	}
	if patch.LandSize != nil {
		props["landSize"] = *patch.LandSize
	}
	if patch.ConstructionYear != nil {
		props["constructionYear"] = int64(*patch.ConstructionYear)
	}
	if patch.Verified != nil {
		props["verified"] = *patch.Verified
	}
	if patch.Address != nil {
		address := model.Address(*patch.Address)
		if err := setAddressProps(props, &address); err != nil {
			return nil, err
		}
	}
	if patch.Features != nil {
		if err := setFeatureProps(props, patch.Features); err != nil {
			return nil, err
		}
	}
	return props, nil
}

// setAddressProps stores the address as JSON and denormalizes city and
// state for filtering.
func setAddressProps(props map[string]any, address *model.Address) error {
	if address == nil {
		props["address"] = nil
		props["city"] = nil
		props["state"] = nil
		return nil
	}
	raw, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInvalidPropertyData, err)
	}
	props["address"] = string(raw)
	props["city"] = address.City
	props["state"] = address.State
	return nil
}

func setFeatureProps(props map[string]any, features []model.Feature) error {
	if features == nil {
		features = []model.Feature{}
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInvalidPropertyData, err)
	}
	props["features"] = string(raw)
	return nil
}

func mapPropertyRecord(record *neo4j.Record) (*model.Property, error) {
	node, ok := recordNode(record, "p")
	if !ok {
		return nil, fmt.Errorf("%w: property record without node", echo_errors.ErrInternalServer)
	}
	property, err := mapNodeToProperty(node)
	if err != nil {
		return nil, err
	}
	if owner, ok := recordNode(record, "o"); ok {
		user := mapNodeToUser(owner)
		property.Owner = &model.OwnerSummary{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.Phone,
		}
	}
	for _, mediaNode := range recordNodes(record, "media") {
		property.Media = append(property.Media, mapNodeToMedia(mediaNode, property.ID))
	}
	return property, nil
}

func mapNodeToProperty(node neo4j.Node) (*model.Property, error) {
	props := node.Props
	property := &model.Property{
		ID:               propInt64(props, "id"),
		Title:            propString(props, "title"),
		TitleEn:          propString(props, "titleEn"),
		Description:      propString(props, "description"),
		DescriptionEn:    propString(props, "descriptionEn"),
		Price:            propFloat(props, "price"),
		Currency:         model.Currency(propString(props, "currency")),
		Type:             model.PropertyType(propString(props, "type")),
		Status:           model.PropertyStatus(propString(props, "status")),
		Bedrooms:         propIntPtr(props, "bedrooms"),
		Bathrooms:        propIntPtr(props, "bathrooms"),
		BuildingSize:     propFloatPtr(props, "buildingSize"),
		LandSize:         propFloatPtr(props, "landSize"),
		ConstructionYear: propIntPtr(props, "constructionYear"),
		Verified:         propBool(props, "verified"),
		Views:            propInt64(props, "views"),
		OwnerID:          propInt64(props, "ownerId"),
		CreatedAt:        propTime(props, "createdAt"),
		UpdatedAt:        propTime(props, "updatedAt"),
	}

	if raw := propString(props, "address"); raw != "" {
		property.Address = &model.Address{}
		if err := json.Unmarshal([]byte(raw), property.Address); err != nil {
			return nil, fmt.Errorf("failed to unmarshal property address: %w", err)
		}
	}
	if raw := propString(props, "features"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &property.Features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal property features: %w", err)
		}
	}
	return property, nil
}
