package workout

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mkovacevic/liftsync/internal/auth"
	"github.com/mkovacevic/liftsync/internal/telemetry/tracing"
	"github.com/mkovacevic/liftsync/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type StartSessionRequest struct {
	TemplateID string `json:"templateId,omitempty"`
}

type AddExerciseRequest struct {
	EquipmentID string `json:"equipmentId"`
	Variant     string `json:"variant,omitempty"`
}

type DiscardSessionResponse struct {
	DiscardedID string `json:"discardedId"`
}

type SessionsListResponse struct {
	Sessions []*Session `json:"sessions"`
	Total    int        `json:"total"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.startSession")
	defer span.End()

	var startReq StartSessionRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&startReq); err != nil {
			log.Errorf("start session, unmarshal json params: %s", err)
			http.Error(w, "start session failed", http.StatusBadRequest)
			return
		}
	}

	var session *Session
	if startReq.TemplateID != "" {
		var err error
		session, err = handler.service.StartSessionFromTemplate(ctx, startReq.TemplateID)
		if err != nil {
			log.Errorf("start session from template %s: %s", startReq.TemplateID, err)
			http.Error(w, "start session failed", http.StatusBadRequest)
			return
		}
	} else {
		session = handler.service.StartSession()
	}

	log.Debugf("new session started: %s", session.ID)
	pkg.WriteJSONResponse(w, http.StatusCreated, session)
}

func (handler *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.getSession")
	defer span.End()

	session, ok := handler.service.ActiveSession(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, session)
}

func (handler *Handler) HandleDiscardSession(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.discardSession")
	defer span.End()

	id := mux.Vars(r)["id"]
	if !handler.service.DiscardSession(id) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, DiscardSessionResponse{DiscardedID: id})
}

func (handler *Handler) HandleFinishSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.finishSession")
	defer span.End()

	username, _ := auth.UserFromContext(ctx)
	session, err := handler.service.FinishSession(ctx, username, mux.Vars(r)["id"])
	if err != nil {
		log.Errorf("finish session: %s", err)
		http.Error(w, "finish session failed", http.StatusBadRequest)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, session)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addExercise")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var addReq AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Errorf("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	if addReq.EquipmentID == "" {
		http.Error(w, "error, equipment id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.service.AddExercise(ctx, mux.Vars(r)["id"], addReq.EquipmentID, addReq.Variant)
	if err != nil {
		log.Errorf("add exercise [%s]: %s", addReq.EquipmentID, err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, session)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.removeExercise")
	defer span.End()

	vars := mux.Vars(r)
	exerciseIndex, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "error, exercise index NaN", http.StatusBadRequest)
		return
	}

	session, err := handler.service.RemoveExercise(vars["id"], exerciseIndex)
	if err != nil {
		log.Errorf("remove exercise %d: %s", exerciseIndex, err)
		http.Error(w, "remove exercise failed", http.StatusBadRequest)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, session)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addSet")
	defer span.End()

	vars := mux.Vars(r)
	exerciseIndex, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "error, exercise index NaN", http.StatusBadRequest)
		return
	}

	var set LoggedSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("add set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	added, err := handler.service.AddSet(vars["id"], exerciseIndex, set)
	if err != nil {
		log.Errorf("add set: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, added)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.updateSet")
	defer span.End()

	vars := mux.Vars(r)
	exerciseIndex, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "error, exercise index NaN", http.StatusBadRequest)
		return
	}

	var set LoggedSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	session, err := handler.service.UpdateSet(vars["id"], exerciseIndex, set)
	if err != nil {
		log.Errorf("update set %s: %s", set.ID, err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, session)
}

func (handler *Handler) HandleRemoveSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.removeSet")
	defer span.End()

	vars := mux.Vars(r)
	exerciseIndex, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "error, exercise index NaN", http.StatusBadRequest)
		return
	}

	session, err := handler.service.RemoveSet(vars["id"], exerciseIndex, vars["setId"])
	if err != nil {
		log.Errorf("remove set %s: %s", vars["setId"], err)
		http.Error(w, "remove set failed", http.StatusBadRequest)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, session)
}

func (handler *Handler) HandleCompleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.completeSet")
	defer span.End()

	vars := mux.Vars(r)
	exerciseIndex, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "error, exercise index NaN", http.StatusBadRequest)
		return
	}

	username, _ := auth.UserFromContext(ctx)
	set, err := handler.service.CompleteSet(ctx, username, vars["id"], exerciseIndex, vars["setId"])
	if err != nil {
		log.Errorf("complete set %s: %s", vars["setId"], err)
		http.Error(w, "complete set failed", http.StatusBadRequest)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, set)
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.listSessions")
	defer span.End()

	sessions, err := handler.service.CompletedSessions(ctx)
	if err != nil {
		log.Errorf("list sessions error: %s", err)
		http.Error(w, "failed to get sessions", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, SessionsListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
}

func (handler *Handler) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.getPreferences")
	defer span.End()

	prefs, err := handler.service.Preferences(ctx)
	if err != nil {
		log.Errorf("get preferences: %s", err)
		http.Error(w, "failed to get preferences", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, prefs)
}

func (handler *Handler) HandleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.updatePreferences")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var prefs Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		log.Errorf("update preferences, unmarshal json params: %s", err)
		http.Error(w, "update preferences failed", http.StatusBadRequest)
		return
	}

	username, _ := auth.UserFromContext(ctx)
	if err := handler.service.UpdatePreferences(ctx, username, &prefs); err != nil {
		log.Errorf("update preferences: %s", err)
		http.Error(w, "update preferences failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, prefs)
}

func (handler *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.listTemplates")
	defer span.End()

	templates, err := handler.service.Templates(ctx)
	if err != nil {
		log.Errorf("list templates error: %s", err)
		http.Error(w, "failed to get templates", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, templates)
}

func (handler *Handler) HandleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.saveTemplate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Errorf("save template, unmarshal json params: %s", err)
		http.Error(w, "save template failed", http.StatusBadRequest)
		return
	}
	if template.ID == "" || template.Name == "" {
		http.Error(w, "error, template id or name empty", http.StatusBadRequest)
		return
	}

	username, _ := auth.UserFromContext(ctx)
	if err := handler.service.SaveTemplate(ctx, username, &template); err != nil {
		log.Errorf("save template %s: %s", template.ID, err)
		http.Error(w, "save template failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, template)
}

func (handler *Handler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.getCatalog")
	defer span.End()

	catalog, err := handler.service.Catalog(ctx)
	if err != nil {
		log.Errorf("get catalog: %s", err)
		http.Error(w, "failed to get catalog", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, catalog)
}

func (handler *Handler) HandleSaveCustomization(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.saveCustomization")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var cust Customization
	if err := json.NewDecoder(r.Body).Decode(&cust); err != nil {
		log.Errorf("save customization, unmarshal json params: %s", err)
		http.Error(w, "save customization failed", http.StatusBadRequest)
		return
	}
	if cust.EquipmentID == "" {
		http.Error(w, "error, equipment id empty", http.StatusBadRequest)
		return
	}

	username, _ := auth.UserFromContext(ctx)
	if err := handler.service.SaveCustomization(ctx, username, &cust); err != nil {
		log.Errorf("save customization %s: %s", cust.EquipmentID, err)
		http.Error(w, "save customization failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, cust)
}
