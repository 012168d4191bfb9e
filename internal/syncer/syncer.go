// Package syncer reconciles the local store with the remote mirror
// using a last-write-wins merge keyed by each record's update timestamp.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mkovacevic/liftsync/internal/telemetry/metrics"
	"github.com/mkovacevic/liftsync/internal/telemetry/tracing"
	"github.com/mkovacevic/liftsync/internal/workout"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

// ErrOffline is returned when a full sync is requested without
// connectivity. It is a short-circuit, not a sync failure.
var ErrOffline = errors.New("offline, sync skipped")

type record[T any] interface {
	*T
	workout.Record
}

// LocalCollection is the local store side of one synchronized
// collection.
type LocalCollection[T any, PT record[T]] interface {
	GetAll(ctx context.Context) ([]PT, error)
	Get(ctx context.Context, id string) (PT, bool, error)
	Put(ctx context.Context, rec PT) error
	Delete(ctx context.Context, id string) error
}

// RemoteCollection is the per-user remote mirror side of one
// synchronized collection.
type RemoteCollection[T any, PT record[T]] interface {
	ListAll(ctx context.Context, userID string) ([]PT, error)
	Get(ctx context.Context, userID, id string) (PT, bool, error)
	Set(ctx context.Context, userID, id string, rec PT) error
	Delete(ctx context.Context, userID, id string) error
	BatchCommit(ctx context.Context, userID string, records []PT) error
}

// MergeStats counts the writes one reconciliation decided on.
type MergeStats struct {
	PushedToRemote int
	PulledToLocal  int
}

type collectionSync interface {
	Name() string
	Reconcile(ctx context.Context, userID string) (MergeStats, error)
	PushOne(ctx context.Context, userID string, rec workout.Record) error
}

// Pair binds the two sides of one collection.
type Pair[T any, PT record[T]] struct {
	name   string
	local  LocalCollection[T, PT]
	remote RemoteCollection[T, PT]
}

func NewPair[T any, PT record[T]](
	name string,
	local LocalCollection[T, PT],
	remote RemoteCollection[T, PT],
) *Pair[T, PT] {
	return &Pair[T, PT]{
		name:   name,
		local:  local,
		remote: remote,
	}
}

func (p *Pair[T, PT]) Name() string { return p.name }

// Reconcile merges the two sides over the union of record ids:
//   - present only locally: written to the remote
//   - present only remotely: written to the local store
//   - present on both sides: the strictly newer UpdatedAt wins
//   - equal timestamps: no writes at all, avoiding echo loops
//
// Remote writes are batched into one atomic commit per collection;
// local writes are applied one at a time, as they are decided.
func (p *Pair[T, PT]) Reconcile(ctx context.Context, userID string) (_ MergeStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "syncer."+p.name+".reconcile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var stats MergeStats

	localRecords, err := p.local.GetAll(ctx)
	if err != nil {
		return stats, fmt.Errorf("local get all: %w", err)
	}
	remoteRecords, err := p.remote.ListAll(ctx, userID)
	if err != nil {
		return stats, fmt.Errorf("remote list all: %w", err)
	}

	localByID := make(map[string]PT, len(localRecords))
	for _, rec := range localRecords {
		localByID[rec.RecordID()] = rec
	}
	remoteByID := make(map[string]PT, len(remoteRecords))
	for _, rec := range remoteRecords {
		remoteByID[rec.RecordID()] = rec
	}

	ids := make(map[string]struct{}, len(localByID)+len(remoteByID))
	for id := range localByID {
		ids[id] = struct{}{}
	}
	for id := range remoteByID {
		ids[id] = struct{}{}
	}

	var toRemote []PT
	for id := range ids {
		localRec, haveLocal := localByID[id]
		remoteRec, haveRemote := remoteByID[id]

		switch {
		case haveLocal && !haveRemote:
			toRemote = append(toRemote, localRec)
			stats.PushedToRemote++
		case !haveLocal && haveRemote:
			if err := p.local.Put(ctx, remoteRec); err != nil {
				return stats, fmt.Errorf("local put %s: %w", id, err)
			}
			stats.PulledToLocal++
		case localRec.LastUpdated() > remoteRec.LastUpdated():
			toRemote = append(toRemote, localRec)
			stats.PushedToRemote++
		case remoteRec.LastUpdated() > localRec.LastUpdated():
			if err := p.local.Put(ctx, remoteRec); err != nil {
				return stats, fmt.Errorf("local put %s: %w", id, err)
			}
			stats.PulledToLocal++
		default:
			// equal timestamps: treated as already consistent
		}
	}

	if len(toRemote) > 0 {
		if err := p.remote.BatchCommit(ctx, userID, toRemote); err != nil {
			return stats, fmt.Errorf("remote batch commit: %w", err)
		}
	}

	span.SetAttributes(
		attribute.Int("pushed", stats.PushedToRemote),
		attribute.Int("pulled", stats.PulledToLocal),
	)
	return stats, nil
}

// PushOne writes a single record straight to its remote document
// location, bypassing the merge. The local copy is already
// authoritative, having just been mutated.
func (p *Pair[T, PT]) PushOne(ctx context.Context, userID string, rec workout.Record) error {
	typed, ok := rec.(PT)
	if !ok {
		return fmt.Errorf("record %s is not a %s record", rec.RecordID(), p.name)
	}
	return p.remote.Set(ctx, userID, typed.RecordID(), typed)
}

// Engine runs the per-collection reconciliations and exposes the
// single-record push path.
type Engine struct {
	collections    map[string]collectionSync
	tracker        *Tracker
	monitor        Monitor
	metricsManager *metrics.Manager

	// serializes full sync attempts
	syncMutex sync.Mutex

	autoMutex  sync.Mutex
	autoUserID string

	// injectable clock for tests
	NowFunc func() int64
}

func NewEngine(
	tracker *Tracker,
	monitor Monitor,
	metricsManager *metrics.Manager,
	collections ...collectionSync,
) *Engine {
	byName := make(map[string]collectionSync, len(collections))
	for _, c := range collections {
		byName[c.Name()] = c
	}
	return &Engine{
		collections:    byName,
		tracker:        tracker,
		monitor:        monitor,
		metricsManager: metricsManager,
		NowFunc: func() int64 {
			return time.Now().UnixMilli()
		},
	}
}

// FullSync reconciles every managed collection, concurrently and in no
// particular order. A single failing collection marks the attempt as
// failed, but collections that already reconciled keep their progress.
// While offline, no attempt is made at all.
func (e *Engine) FullSync(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "syncer.fullSync")
	defer func() {
		if !errors.Is(err, ErrOffline) {
			tracing.EndSpanWithErrCheck(span, err)
		} else {
			span.End()
		}
	}()

	if !e.monitor.IsOnline() {
		e.tracker.SetOffline()
		return ErrOffline
	}

	e.syncMutex.Lock()
	defer e.syncMutex.Unlock()

	e.tracker.SetSyncing()
	start := time.Now()

	var (
		wg      sync.WaitGroup
		errMu   sync.Mutex
		syncErr error
	)
	for _, c := range e.collections {
		wg.Add(1)
		go func(c collectionSync) {
			defer wg.Done()

			stats, rerr := c.Reconcile(ctx, userID)
			if rerr != nil {
				log.Errorf("reconcile %s for user %s: %s", c.Name(), userID, rerr)
				errMu.Lock()
				syncErr = multierr.Append(syncErr, fmt.Errorf("%s: %w", c.Name(), rerr))
				errMu.Unlock()
				return
			}
			e.metricsManager.CounterRecordsMerged.WithLabelValues("to_remote").Add(float64(stats.PushedToRemote))
			e.metricsManager.CounterRecordsMerged.WithLabelValues("to_local").Add(float64(stats.PulledToLocal))
		}(c)
	}
	wg.Wait()

	e.metricsManager.HistFullSyncDuration.Observe(time.Since(start).Seconds())

	if syncErr != nil {
		e.metricsManager.CounterFullSyncs.WithLabelValues("error").Inc()
		e.tracker.SetError(syncErr.Error())
		return syncErr
	}

	e.metricsManager.CounterFullSyncs.WithLabelValues("ok").Inc()
	e.tracker.SetSynced(e.NowFunc())
	return nil
}

// PushRecord propagates one freshly mutated record to the remote
// mirror. Failures are swallowed: a false return means the record will
// be picked up by the next full sync. No remote call is made offline.
func (e *Engine) PushRecord(ctx context.Context, userID, collection string, rec workout.Record) bool {
	if !e.monitor.IsOnline() {
		return false
	}

	c, ok := e.collections[collection]
	if !ok {
		log.Errorf("push record %s: unknown collection %s", rec.RecordID(), collection)
		return false
	}

	if err := c.PushOne(ctx, userID, rec); err != nil {
		log.Warnf("push record %s to %s: %s", rec.RecordID(), collection, err)
		e.metricsManager.CounterRecordsPushed.WithLabelValues("error").Inc()
		return false
	}

	e.metricsManager.CounterRecordsPushed.WithLabelValues("ok").Inc()
	return true
}

// EnableAutoSync registers the active user and, when online, triggers
// one immediate full sync.
func (e *Engine) EnableAutoSync(ctx context.Context, userID string) {
	e.autoMutex.Lock()
	e.autoUserID = userID
	e.autoMutex.Unlock()

	if e.monitor.IsOnline() {
		if err := e.FullSync(ctx, userID); err != nil {
			log.Warnf("auto sync on enable for user %s: %s", userID, err)
		}
	}
}

// DisableAutoSync clears the registered user. A reconnection after
// this triggers no sync.
func (e *Engine) DisableAutoSync() {
	e.autoMutex.Lock()
	e.autoUserID = ""
	e.autoMutex.Unlock()
}

// Watch consumes connectivity transitions until the context is
// cancelled: it mirrors them into the status tracker and runs exactly
// one full sync per reconnection for the registered user, if any.
// There is no further retry or backoff.
func (e *Engine) Watch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case online, ok := <-e.monitor.Changes():
			if !ok {
				return
			}
			e.tracker.SetOnline(online)
			if online {
				e.metricsManager.GaugeOnline.Set(1)
				e.metricsManager.CounterReconnects.Inc()
				e.syncOnReconnect(ctx)
			} else {
				e.metricsManager.GaugeOnline.Set(0)
			}
		}
	}
}

func (e *Engine) syncOnReconnect(ctx context.Context) {
	e.autoMutex.Lock()
	userID := e.autoUserID
	e.autoMutex.Unlock()

	if userID == "" {
		return
	}
	if err := e.FullSync(ctx, userID); err != nil {
		log.Warnf("auto sync on reconnect for user %s: %s", userID, err)
	}
}
