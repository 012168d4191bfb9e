package syncer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkovacevic/liftsync/internal/auth"
	"github.com/mkovacevic/liftsync/internal/syncer"
	"github.com/mkovacevic/liftsync/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_HandleStatus(t *testing.T) {
	local := newFakeLocal()
	remote := newFakeRemote()
	pair := syncer.NewPair[workout.Template]("templates", local, remote)

	engine, tracker := newTestEngine(newFakeMonitor(true), pair)
	h := syncer.NewHandler(engine, tracker)

	tracker.SetSynced(42000)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/sync/status", nil)
	require.NoError(t, err)

	h.HandleStatus(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var state syncer.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, syncer.StatusIdle, state.Status)
	assert.Equal(t, int64(42000), state.LastSyncTime)
}

func TestHandler_HandleFullSync(t *testing.T) {
	local := newFakeLocal(tmpl("a", 100, "A"))
	remote := newFakeRemote()
	pair := syncer.NewPair[workout.Template]("templates", local, remote)

	engine, tracker := newTestEngine(newFakeMonitor(true), pair)
	h := syncer.NewHandler(engine, tracker)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/sync/full", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.WithUser(req.Context(), "mileva"))

	h.HandleFullSync(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var state syncer.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, syncer.StatusIdle, state.Status)
	assert.Len(t, remote.records, 1)
}

func TestHandler_HandleFullSync_Offline(t *testing.T) {
	local := newFakeLocal(tmpl("a", 100, "A"))
	remote := newFakeRemote()
	pair := syncer.NewPair[workout.Template]("templates", local, remote)

	engine, tracker := newTestEngine(newFakeMonitor(false), pair)
	h := syncer.NewHandler(engine, tracker)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/sync/full", nil)
	require.NoError(t, err)
	req = req.WithContext(auth.WithUser(req.Context(), "mileva"))

	h.HandleFullSync(rec, req)
	// offline is a state, not an http error
	require.Equal(t, http.StatusOK, rec.Code)

	var state syncer.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, syncer.StatusOffline, state.Status)
	assert.Empty(t, remote.records)
}

func TestHandler_HandleFullSync_NoUser(t *testing.T) {
	engine, tracker := newTestEngine(newFakeMonitor(true))
	h := syncer.NewHandler(engine, tracker)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/sync/full", nil)
	require.NoError(t, err)

	h.HandleFullSync(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
