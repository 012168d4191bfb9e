package syncer

import (
	"errors"
	"net/http"

	"github.com/mkovacevic/liftsync/internal/auth"
	"github.com/mkovacevic/liftsync/internal/telemetry/tracing"
	"github.com/mkovacevic/liftsync/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	engine  *Engine
	tracker *Tracker
}

func NewHandler(engine *Engine, tracker *Tracker) *Handler {
	return &Handler{
		engine:  engine,
		tracker: tracker,
	}
}

// HandleStatus returns the current sync state snapshot.
func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.status")
	defer span.End()

	pkg.WriteJSONResponse(w, http.StatusOK, handler.tracker.State())
}

// HandleFullSync triggers one full sync for the logged-in user and
// returns the resulting state. Offline is not an error, the returned
// state says so.
func (handler *Handler) HandleFullSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.full")
	defer span.End()

	username, ok := auth.UserFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	err := handler.engine.FullSync(ctx, username)
	switch {
	case err == nil, errors.Is(err, ErrOffline):
		pkg.WriteJSONResponse(w, http.StatusOK, handler.tracker.State())
	default:
		log.Errorf("full sync for user %s: %s", username, err)
		pkg.WriteJSONResponse(w, http.StatusBadGateway, handler.tracker.State())
	}
}

// HandleEnableAutoSync registers the logged-in user for sync on
// reconnect and runs one immediate sync when online.
func (handler *Handler) HandleEnableAutoSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.enableAuto")
	defer span.End()

	username, ok := auth.UserFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	handler.engine.EnableAutoSync(ctx, username)
	pkg.WriteJSONResponse(w, http.StatusOK, handler.tracker.State())
}

// HandleDisableAutoSync clears the registered user.
func (handler *Handler) HandleDisableAutoSync(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.disableAuto")
	defer span.End()

	handler.engine.DisableAutoSync()
	pkg.WriteJSONResponse(w, http.StatusOK, handler.tracker.State())
}
