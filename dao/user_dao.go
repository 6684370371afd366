// api/dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
	casa_neo4j "github.com/dev-mohitbeniwal/casa/api/model/neo4j"
)

const constraintViolationCode = "Neo.ClientError.Schema.ConstraintValidationFailed"

type IUserDAO interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]*model.User, error)
	UpdateUser(ctx context.Context, userID int64, patch model.UserPatch, guard Guard[model.User]) (*model.User, error)
	DeleteUser(ctx context.Context, userID int64, guard Guard[model.User]) error
}

type UserDAO struct {
	Driver neo4j.DriverWithContext
}

var _ IUserDAO = &UserDAO{}

func NewUserDAO(driver neo4j.DriverWithContext) *UserDAO {
	dao := &UserDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for User", zap.Error(err))
	}
	return dao
}

func (dao *UserDAO) EnsureUniqueConstraint(ctx context.Context) error {
	return ensureConstraints(ctx, dao.Driver, casa_neo4j.LabelUser,
		`CREATE CONSTRAINT unique_user_id IF NOT EXISTS
        FOR (u:`+casa_neo4j.LabelUser+`) REQUIRE u.id IS UNIQUE`,
		`CREATE CONSTRAINT unique_user_email IF NOT EXISTS
        FOR (u:`+casa_neo4j.LabelUser+`) REQUIRE u.email IS UNIQUE`,
		sequenceConstraint(),
	)
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("email", user.Email))

	created, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.User, error) {
		existing, err := tx.Run(ctx, `MATCH (u:`+casa_neo4j.LabelUser+` {email: $email}) RETURN u.id`,
			map[string]any{"email": user.Email})
		if err != nil {
			return nil, dbError(err)
		}
		if existing.Next(ctx) {
			return nil, echo_errors.ErrUserConflict
		}

		id, err := nextID(ctx, tx, casa_neo4j.LabelUser)
		if err != nil {
			return nil, err
		}

		query := `
        CREATE (u:` + casa_neo4j.LabelUser + ` {id: $id})
        SET u += $props
        RETURN u
        `
		timestamp := now()
		params := map[string]any{
			"id": id,
			"props": map[string]any{
				"email":        user.Email,
				"passwordHash": user.PasswordHash,
				"firstName":    user.FirstName,
				"lastName":     user.LastName,
				"phone":        user.Phone,
				"role":         string(user.Role),
				"language":     string(user.Language),
				"createdAt":    timestamp,
				"updatedAt":    timestamp,
			},
		}
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, dbError(err)
		}
		record, err := result.Single(ctx)
		if err != nil {
			return nil, dbError(err)
		}
		node, _ := recordNode(record, "u")
		return mapNodeToUser(node), nil
	})

	duration := time.Since(start)
	if err != nil {
		if isConstraintViolation(err) {
			err = echo_errors.ErrUserConflict
		}
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("User created successfully",
		zap.Int64("userID", created.ID),
		zap.Duration("duration", duration))
	return created, nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return dao.findOne(ctx, "id", userID)
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return dao.findOne(ctx, "email", email)
}

func (dao *UserDAO) findOne(ctx context.Context, key string, value any) (*model.User, error) {
	start := time.Now()
	user, err := readTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.User, error) {
		return loadUser(ctx, tx, key, value)
	})
	if err != nil {
		if errors.Is(err, echo_errors.ErrUserNotFound) {
			logger.Debug("User not found", zap.String("key", key), zap.Duration("duration", time.Since(start)))
		} else {
			logger.Error("Failed to retrieve user", zap.Error(err), zap.String("key", key))
		}
		return nil, err
	}
	return user, nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, limit int, offset int) ([]*model.User, error) {
	start := time.Now()
	logger.Info("Listing users", zap.Int("limit", limit), zap.Int("offset", offset))

	users, err := readTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) ([]*model.User, error) {
		query := `
        MATCH (u:` + casa_neo4j.LabelUser + `)
        RETURN u
        ORDER BY u.createdAt DESC
        SKIP $offset
        LIMIT $limit
        `
		result, err := tx.Run(ctx, query, map[string]any{
			"limit":  int64(limit),
			"offset": int64(offset),
		})
		if err != nil {
			return nil, dbError(err)
		}
		users := []*model.User{}
		for result.Next(ctx) {
			node, _ := recordNode(result.Record(), "u")
			users = append(users, mapNodeToUser(node))
		}
		if err := result.Err(); err != nil {
			return nil, dbError(err)
		}
		return users, nil
	})
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	logger.Info("Users listed successfully",
		zap.Int("count", len(users)),
		zap.Duration("duration", time.Since(start)))
	return users, nil
}

func (dao *UserDAO) UpdateUser(ctx context.Context, userID int64, patch model.UserPatch, guard Guard[model.User]) (*model.User, error) {
	start := time.Now()
	logger.Info("Updating user", zap.Int64("userID", userID))

	updated, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (*model.User, error) {
		current, err := loadUser(ctx, tx, "id", userID)
		if err != nil {
			return nil, err
		}
		if err := guard(current); err != nil {
			return nil, err
		}

		query := `
        MATCH (u:` + casa_neo4j.LabelUser + ` {id: $id})
        SET u += $props
        RETURN u
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": userID, "props": userPatchProps(patch)})
		if err != nil {
			return nil, dbError(err)
		}
		record, err := result.Single(ctx)
		if err != nil {
			return nil, dbError(err)
		}
		node, _ := recordNode(record, "u")
		return mapNodeToUser(node), nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Warn("User update aborted",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("User updated successfully",
		zap.Int64("userID", userID),
		zap.Duration("duration", duration))
	return updated, nil
}

// DeleteUser removes the user with their favorites and saved searches.
// Listings they own are kept.
func (dao *UserDAO) DeleteUser(ctx context.Context, userID int64, guard Guard[model.User]) error {
	start := time.Now()
	logger.Info("Deleting user", zap.Int64("userID", userID))

	_, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		current, err := loadUser(ctx, tx, "id", userID)
		if err != nil {
			return nil, err
		}
		if err := guard(current); err != nil {
			return nil, err
		}

		query := `
        MATCH (u:` + casa_neo4j.LabelUser + ` {id: $id})
        OPTIONAL MATCH (u)-[:` + casa_neo4j.RelSaved + `]->(s:` + casa_neo4j.LabelSavedSearch + `)
        WITH u, collect(s) AS searches
        FOREACH (search IN searches | DETACH DELETE search)
        DETACH DELETE u
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": userID})
		if err != nil {
			return nil, dbError(err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return nil, dbError(err)
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Warn("User deletion aborted",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("User deleted successfully",
		zap.Int64("userID", userID),
		zap.Duration("duration", duration))
	return nil
}

// loadUser matches on key, which is always one of the constant property names above.
func loadUser(ctx context.Context, tx neo4j.ManagedTransaction, key string, value any) (*model.User, error) {
	query := `MATCH (u:` + casa_neo4j.LabelUser + ` {` + key + `: $value}) RETURN u`
	result, err := tx.Run(ctx, query, map[string]any{"value": value})
	if err != nil {
		return nil, dbError(err)
	}
	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, dbError(err)
		}
		return nil, echo_errors.ErrUserNotFound
	}
	node, _ := recordNode(result.Record(), "u")
	return mapNodeToUser(node), nil
}

func userPatchProps(patch model.UserPatch) map[string]any {
	props := map[string]any{"updatedAt": now()}
	if patch.FirstName != nil {
		props["firstName"] = *patch.FirstName
	}
	if patch.LastName != nil {
		props["lastName"] = *patch.LastName
	}
	if patch.Phone != nil {
		props["phone"] = *patch.Phone
	}
	if patch.Language != nil {
		props["language"] = string(*patch.Language)
	}
	if patch.Role != nil && *patch.Role != "" {
		props["role"] = string(*patch.Role)
	}
	if patch.PasswordHash != nil {
		props["passwordHash"] = *patch.PasswordHash
	}
	return props
}

func mapNodeToUser(node neo4j.Node) *model.User {
	props := node.Props
	return &model.User{
		ID:           propInt64(props, "id"),
		Email:        propString(props, "email"),
		PasswordHash: propString(props, "passwordHash"),
		FirstName:    propString(props, "firstName"),
		LastName:     propString(props, "lastName"),
		Phone:        propString(props, "phone"),
		Role:         model.Role(propString(props, "role")),
		Language:     model.Language(propString(props, "language")),
		CreatedAt:    propTime(props, "createdAt"),
		UpdatedAt:    propTime(props, "updatedAt"),
	}
}

func isConstraintViolation(err error) bool {
	var neoErr *neo4j.Neo4jError
	return errors.As(err, &neoErr) && neoErr.Code == constraintViolationCode
}
