// api/dao/dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	casa_neo4j "github.com/dev-mohitbeniwal/casa/api/model/neo4j"
	helper_util "github.com/dev-mohitbeniwal/casa/api/util/helper"
)

// Guard inspects the current state of a resource inside a write
// transaction. A non-nil error aborts the transaction and is returned
// to the caller unchanged.
type Guard[T any] func(current *T) error

func readTx[T any](ctx context.Context, driver neo4j.DriverWithContext, work func(tx neo4j.ManagedTransaction) (T, error)) (T, error) {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return work(tx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

func writeTx[T any](ctx context.Context, driver neo4j.DriverWithContext, work func(tx neo4j.ManagedTransaction) (T, error)) (T, error) {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return work(tx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

// ensureConstraints runs idempotent schema statements.
func ensureConstraints(ctx context.Context, driver neo4j.DriverWithContext, label string, statements ...string) error {
	logger.Info("Ensuring constraints", zap.String("label", label))
	_, err := writeTx(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, statement := range statements {
			if _, err := tx.Run(ctx, statement, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to ensure constraints", zap.Error(err), zap.String("label", label))
		return err
	}
	return nil
}

// nextID hands out the next integer id for a label. It must run inside the
// transaction that creates the node so an aborted create does not burn ids
// visible to readers.
func nextID(ctx context.Context, tx neo4j.ManagedTransaction, label string) (int64, error) {
	query := `
    MERGE (s:` + casa_neo4j.LabelSequence + ` {name: $name})
    ON CREATE SET s.value = 0
    SET s.value = s.value + 1
    RETURN s.value AS value
    `
	result, err := tx.Run(ctx, query, map[string]any{"name": label})
	if err != nil {
		return 0, dbError(err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		return 0, dbError(err)
	}
	value, _ := record.Get("value")
	id, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected sequence value %T", echo_errors.ErrInternalServer, value)
	}
	return id, nil
}

func sequenceConstraint() string {
	return `CREATE CONSTRAINT unique_sequence_name IF NOT EXISTS
        FOR (s:` + casa_neo4j.LabelSequence + `) REQUIRE s.name IS UNIQUE`
}

func dbError(err error) error {
	return fmt.Errorf("%w: %v", echo_errors.ErrDatabaseOperation, err)
}

func now() string {
	return helper_util.FormatTime(time.Now())
}

func recordNode(record *neo4j.Record, key string) (neo4j.Node, bool) {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return neo4j.Node{}, false
	}
	node, ok := value.(neo4j.Node)
	return node, ok
}

func recordNodes(record *neo4j.Record, key string) []neo4j.Node {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	nodes := make([]neo4j.Node, 0, len(items))
	for _, item := range items {
		if node, ok := item.(neo4j.Node); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func propString(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func propInt64(props map[string]any, key string) int64 {
	switch v := props[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func propIntPtr(props map[string]any, key string) *int {
	if _, ok := props[key]; !ok || props[key] == nil {
		return nil
	}
	v := int(propInt64(props, key))
	return &v
}

func propFloat(props map[string]any, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

func propFloatPtr(props map[string]any, key string) *float64 {
	if _, ok := props[key]; !ok || props[key] == nil {
		return nil
	}
	v := propFloat(props, key)
	return &v
}

func propBool(props map[string]any, key string) bool {
	b, _ := props[key].(bool)
	return b
}

func propTime(props map[string]any, key string) time.Time {
	return valueTime(props[key])
}

func valueTime(value any) time.Time {
	s, _ := value.(string)
	return helper_util.ParseTime(s)
}

// nullableInt converts an optional int to a Cypher parameter; nil removes the property.
func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
