package stats

import (
	"context"
	"net/http"
	"sort"

	"github.com/mkovacevic/liftsync/internal/telemetry/tracing"
	"github.com/mkovacevic/liftsync/internal/workout"
	"github.com/mkovacevic/liftsync/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type sessionsRepo interface {
	GetAll(ctx context.Context) ([]*workout.Session, error)
	Get(ctx context.Context, id string) (*workout.Session, bool, error)
}

type ProgressResponse struct {
	EquipmentID string          `json:"equipmentId"`
	Points      []ProgressPoint `json:"points"`
}

type Handler struct {
	sessions sessionsRepo
}

func NewHandler(sessions sessionsRepo) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

func (handler *Handler) HandleSessionSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.sessionSummary")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	session, found, err := handler.sessions.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get session %s: %s", id, err)
		http.Error(w, "failed to get session", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, Summarize(session))
}

func (handler *Handler) HandleSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.summaries")
	defer span.End()

	sessions, err := handler.sessions.GetAll(ctx)
	if err != nil {
		log.Errorf("failed to get sessions: %s", err)
		http.Error(w, "failed to get sessions", http.StatusInternalServerError)
		return
	}

	sortChronologically(sessions)

	summaries := make([]Summary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, Summarize(session))
	}
	pkg.WriteJSONResponse(w, http.StatusOK, summaries)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progress")
	defer span.End()

	equipmentID := mux.Vars(r)["equipmentId"]
	if equipmentID == "" {
		http.Error(w, "error, equipment id empty", http.StatusBadRequest)
		return
	}

	sessions, err := handler.sessions.GetAll(ctx)
	if err != nil {
		log.Errorf("failed to get sessions: %s", err)
		http.Error(w, "failed to get sessions", http.StatusInternalServerError)
		return
	}

	// progress follows input order, the trend needs chronological input
	sortChronologically(sessions)

	points := ProgressPoints(sessions, equipmentID)
	pkg.WriteJSONResponse(w, http.StatusOK, ProgressResponse{
		EquipmentID: equipmentID,
		Points:      points,
	})
}

func sortChronologically(sessions []*workout.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime < sessions[j].StartTime
	})
}
