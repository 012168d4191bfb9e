// Package remote mirrors the synchronized record collections into a
// per-user namespace of a Redis document store.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkovacevic/liftsync/internal/telemetry/tracing"
	"github.com/mkovacevic/liftsync/internal/workout"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const keyPrefix = "liftsync:user:"

// Mirror wraps the shared client; collections are typed views on it.
type Mirror struct {
	redisClient *redis.Client
}

func NewMirror(redisClient *redis.Client) *Mirror {
	return &Mirror{redisClient: redisClient}
}

// Ping probes remote reachability, used by the connectivity monitor.
func (m *Mirror) Ping(ctx context.Context) error {
	return m.redisClient.Ping(ctx).Err()
}

type record[T any] interface {
	*T
	workout.Record
}

// Collection is a per-collection document store, one Redis hash per
// user: field = record id, value = the JSON document.
type Collection[T any, PT record[T]] struct {
	redisClient *redis.Client
	name        string
}

func NewCollection[T any, PT record[T]](m *Mirror, name string) *Collection[T, PT] {
	return &Collection[T, PT]{
		redisClient: m.redisClient,
		name:        name,
	}
}

func (c *Collection[T, PT]) Name() string { return c.name }

func (c *Collection[T, PT]) key(userID string) string {
	return keyPrefix + userID + ":" + c.name
}

func (c *Collection[T, PT]) ListAll(ctx context.Context, userID string) (_ []PT, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote."+c.name+".listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	fields, err := c.redisClient.HGetAll(ctx, c.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall: %w", err)
	}

	records := make([]PT, 0, len(fields))
	for id, data := range fields {
		rec := PT(new(T))
		if err := json.Unmarshal([]byte(data), rec); err != nil {
			return nil, fmt.Errorf("unmarshal record %s: %w", id, err)
		}
		records = append(records, rec)
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

func (c *Collection[T, PT]) Get(ctx context.Context, userID, id string) (_ PT, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote."+c.name+".get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := c.redisClient.HGet(ctx, c.key(userID), id).Result()
	if errors.Is(err, redis.Nil) {
		err = nil
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("hget: %w", err)
	}

	rec := PT(new(T))
	if err = json.Unmarshal([]byte(data), rec); err != nil {
		return nil, false, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, true, nil
}

func (c *Collection[T, PT]) Set(ctx context.Context, userID, id string, rec PT) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote."+c.name+".set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := c.redisClient.HSet(ctx, c.key(userID), id, string(data)).Err(); err != nil {
		return fmt.Errorf("hset: %w", err)
	}
	return nil
}

func (c *Collection[T, PT]) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote."+c.name+".delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := c.redisClient.HDel(ctx, c.key(userID), id).Err(); err != nil {
		return fmt.Errorf("hdel: %w", err)
	}
	return nil
}

// BatchCommit writes all records in one atomic MULTI/EXEC transaction.
func (c *Collection[T, PT]) BatchCommit(ctx context.Context, userID string, records []PT) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote."+c.name+".batchCommit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("records", len(records)))

	if len(records) == 0 {
		return nil
	}

	pipe := c.redisClient.TxPipeline()
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record %s: %w", rec.RecordID(), err)
		}
		pipe.HSet(ctx, c.key(userID), rec.RecordID(), string(data))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("batch commit: %w", err)
	}
	return nil
}
