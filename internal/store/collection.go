package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkovacevic/liftsync/internal/telemetry/tracing"
	"github.com/mkovacevic/liftsync/internal/workout"

	"go.opentelemetry.io/otel/attribute"
)

// record constrains PT to a pointer to T that satisfies the
// synchronized-record contract.
type record[T any] interface {
	*T
	workout.Record
}

// Collection is a typed view over one record collection.
type Collection[T any, PT record[T]] struct {
	db   *sql.DB
	name string
}

func NewCollection[T any, PT record[T]](s *Store, name string) *Collection[T, PT] {
	return &Collection[T, PT]{
		db:   s.db,
		name: name,
	}
}

func (c *Collection[T, PT]) Name() string { return c.name }

// GetAll returns every record of the collection, oldest update first.
func (c *Collection[T, PT]) GetAll(ctx context.Context) (_ []PT, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store."+c.name+".getAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := c.db.QueryContext(
		ctx,
		`SELECT data FROM records WHERE collection = ? ORDER BY updated_at, id;`,
		c.name,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PT
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rec := PT(new(T))
		if err := json.Unmarshal([]byte(data), rec); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

func (c *Collection[T, PT]) Get(ctx context.Context, id string) (_ PT, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store."+c.name+".get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var data string
	err = c.db.QueryRowContext(
		ctx,
		`SELECT data FROM records WHERE collection = ? AND id = ?;`,
		c.name, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	rec := PT(new(T))
	if err = json.Unmarshal([]byte(data), rec); err != nil {
		return nil, false, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, true, nil
}

// Put upserts the record by its id.
func (c *Collection[T, PT]) Put(ctx context.Context, rec PT) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store."+c.name+".put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", rec.RecordID()))

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	_, err = c.db.ExecContext(
		ctx,
		`INSERT INTO records (collection, id, updated_at, data) VALUES (?, ?, ?, ?)
			ON CONFLICT (collection, id) DO UPDATE SET updated_at = excluded.updated_at, data = excluded.data;`,
		c.name, rec.RecordID(), rec.LastUpdated(), string(data),
	)
	return err
}

func (c *Collection[T, PT]) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store."+c.name+".delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	_, err = c.db.ExecContext(
		ctx,
		`DELETE FROM records WHERE collection = ? AND id = ?;`,
		c.name, id,
	)
	return err
}
