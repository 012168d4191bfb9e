package workout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkovacevic/liftsync/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workout_test

type sessionsStore interface {
	GetAll(ctx context.Context) ([]*Session, error)
	Get(ctx context.Context, id string) (*Session, bool, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

type preferencesStore interface {
	Get(ctx context.Context, id string) (*Preferences, bool, error)
	Put(ctx context.Context, p *Preferences) error
}

type defaultsStore interface {
	Get(ctx context.Context, id string) (*ExerciseDefaults, bool, error)
	Put(ctx context.Context, d *ExerciseDefaults) error
}

type templatesStore interface {
	GetAll(ctx context.Context) ([]*Template, error)
	Get(ctx context.Context, id string) (*Template, bool, error)
	Put(ctx context.Context, t *Template) error
	Delete(ctx context.Context, id string) error
}

type customizationsStore interface {
	GetAll(ctx context.Context) ([]*Customization, error)
	Put(ctx context.Context, c *Customization) error
}

// recordPusher propagates a single freshly mutated record to the remote
// mirror. A false return means "will be retried by the next full sync".
type recordPusher interface {
	PushRecord(ctx context.Context, userID, collection string, rec Record) bool
}

// Service holds the domain mutations. Active sessions live in memory
// until finished; abandoned ones are simply dropped and never persisted.
type Service struct {
	sessions       sessionsStore
	preferences    preferencesStore
	defaults       defaultsStore
	templates      templatesStore
	customizations customizationsStore
	pusher         recordPusher

	// guards activeSessions and the sessions it holds, concurrent
	// requests may target the same session
	mutex          sync.Mutex
	activeSessions map[string]*Session

	// injectable clock for tests
	NowFunc func() int64
}

type NewServiceParams struct {
	Sessions       sessionsStore
	Preferences    preferencesStore
	Defaults       defaultsStore
	Templates      templatesStore
	Customizations customizationsStore
	Pusher         recordPusher
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		sessions:       params.Sessions,
		preferences:    params.Preferences,
		defaults:       params.Defaults,
		templates:      params.Templates,
		customizations: params.Customizations,
		pusher:         params.Pusher,
		activeSessions: make(map[string]*Session),
		NowFunc: func() int64 {
			return time.Now().UnixMilli()
		},
	}
}

// StartSession starts a new in-memory session.
func (s *Service) StartSession() *Session {
	session := NewSession(s.NowFunc())
	s.mutex.Lock()
	s.activeSessions[session.ID] = session
	s.mutex.Unlock()
	return session
}

// StartSessionFromTemplate starts a session pre-populated with the
// template's exercises and their carry-forward defaults.
func (s *Service) StartSessionFromTemplate(ctx context.Context, templateID string) (*Session, error) {
	template, found, err := s.templates.Get(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("template %s not found", templateID)
	}

	// fully populate the session before registering it, so it never
	// shows up half-built to a concurrent request
	session := NewSession(s.NowFunc())
	for _, tmplEx := range template.Exercises {
		defaults, _, err := s.defaults.Get(ctx, DefaultsID(tmplEx.EquipmentID, tmplEx.Variant))
		if err != nil {
			return nil, fmt.Errorf("get defaults: %w", err)
		}
		ex := session.AddExercise(tmplEx.EquipmentID, defaults, s.NowFunc())
		ex.Variant = tmplEx.Variant
		if ex.Attachment == "" {
			ex.Attachment = tmplEx.Attachment
		}
		if ex.Grip == "" {
			ex.Grip = tmplEx.Grip
		}
	}

	s.mutex.Lock()
	s.activeSessions[session.ID] = session
	s.mutex.Unlock()
	return session, nil
}

// ActiveSession returns the in-memory session with the given id.
func (s *Service) ActiveSession(id string) (*Session, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	session, ok := s.activeSessions[id]
	return session, ok
}

// mutateActiveSession applies fn to the active session while holding
// the service lock. All session mutations must go through here.
func (s *Service) mutateActiveSession(id string, fn func(*Session) error) (*Session, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	session, ok := s.activeSessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not active", id)
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	return session, nil
}

// DiscardSession drops an active session without persisting it.
func (s *Service) DiscardSession(id string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.activeSessions[id]; !ok {
		return false
	}
	delete(s.activeSessions, id)
	return true
}

// AddExercise appends an exercise to an active session, pre-populated
// from the per-equipment defaults when present.
func (s *Service) AddExercise(ctx context.Context, sessionID, equipmentID, variant string) (*Session, error) {
	defaults, _, err := s.defaults.Get(ctx, DefaultsID(equipmentID, variant))
	if err != nil {
		return nil, fmt.Errorf("get defaults: %w", err)
	}

	return s.mutateActiveSession(sessionID, func(session *Session) error {
		ex := session.AddExercise(equipmentID, defaults, s.NowFunc())
		ex.Variant = variant
		return nil
	})
}

// RemoveExercise drops an exercise from an active session.
func (s *Service) RemoveExercise(sessionID string, exerciseIndex int) (*Session, error) {
	return s.mutateActiveSession(sessionID, func(session *Session) error {
		return session.RemoveExercise(exerciseIndex, s.NowFunc())
	})
}

// AddSet appends a set to an exercise of an active session.
func (s *Service) AddSet(sessionID string, exerciseIndex int, set LoggedSet) (*LoggedSet, error) {
	var added *LoggedSet
	if _, err := s.mutateActiveSession(sessionID, func(session *Session) error {
		var err error
		added, err = session.AddSet(exerciseIndex, set, s.NowFunc())
		return err
	}); err != nil {
		return nil, err
	}
	return added, nil
}

// UpdateSet overwrites the values of an existing set.
func (s *Service) UpdateSet(sessionID string, exerciseIndex int, set LoggedSet) (*Session, error) {
	return s.mutateActiveSession(sessionID, func(session *Session) error {
		return session.UpdateSet(exerciseIndex, set, s.NowFunc())
	})
}

// RemoveSet drops a set from an exercise of an active session.
func (s *Service) RemoveSet(sessionID string, exerciseIndex int, setID string) (*Session, error) {
	return s.mutateActiveSession(sessionID, func(session *Session) error {
		return session.RemoveSet(exerciseIndex, setID, s.NowFunc())
	})
}

// CompleteSet marks the set as completed, then updates the per-equipment
// defaults as an explicit second step, and finally pushes the changed
// defaults record to the remote mirror (best effort).
func (s *Service) CompleteSet(
	ctx context.Context,
	userID, sessionID string,
	exerciseIndex int,
	setID string,
) (_ *LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workout.completeSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	nowMs := s.NowFunc()

	var (
		set      *LoggedSet
		defaults *ExerciseDefaults
	)
	if _, err = s.mutateActiveSession(sessionID, func(session *Session) error {
		// step 1: mark the set completed
		completed, err := session.CompleteSet(exerciseIndex, setID, nowMs)
		if err != nil {
			return err
		}
		set = completed

		// step 2: carry the completed values forward into the defaults record
		defaults = DefaultsFromSet(session.Exercises[exerciseIndex], *set, nowMs)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := s.defaults.Put(ctx, defaults); err != nil {
		return nil, fmt.Errorf("put defaults: %w", err)
	}

	if !s.pusher.PushRecord(ctx, userID, CollectionDefaults, defaults) {
		log.Debugf("defaults %s not pushed, awaiting next full sync", defaults.RecordID())
	}

	return set, nil
}

// FinishSession closes an active session, persists it and pushes it to
// the remote mirror (best effort).
func (s *Service) FinishSession(ctx context.Context, userID, sessionID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workout.finishSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	session, err := s.mutateActiveSession(sessionID, func(session *Session) error {
		return session.Finish(s.NowFunc())
	})
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("put session: %w", err)
	}

	s.mutex.Lock()
	delete(s.activeSessions, sessionID)
	s.mutex.Unlock()

	if !s.pusher.PushRecord(ctx, userID, CollectionSessions, session) {
		log.Debugf("session %s not pushed, awaiting next full sync", session.ID)
	}

	return session, nil
}

// Preferences returns the stored preferences, or defaults when none
// were stored yet.
func (s *Service) Preferences(ctx context.Context) (*Preferences, error) {
	prefs, found, err := s.preferences.Get(ctx, PreferencesDocID)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	if !found {
		return DefaultPreferences(s.NowFunc()), nil
	}
	return prefs, nil
}

// UpdatePreferences persists the preferences singleton and pushes it.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, prefs *Preferences) error {
	prefs.UpdatedAt = s.NowFunc()
	if err := s.preferences.Put(ctx, prefs); err != nil {
		return fmt.Errorf("put preferences: %w", err)
	}
	if !s.pusher.PushRecord(ctx, userID, CollectionPreferences, prefs) {
		log.Debugln("preferences not pushed, awaiting next full sync")
	}
	return nil
}

// SaveTemplate persists a template and pushes it.
func (s *Service) SaveTemplate(ctx context.Context, userID string, template *Template) error {
	template.UpdatedAt = s.NowFunc()
	if err := s.templates.Put(ctx, template); err != nil {
		return fmt.Errorf("put template: %w", err)
	}
	if !s.pusher.PushRecord(ctx, userID, CollectionTemplates, template) {
		log.Debugf("template %s not pushed, awaiting next full sync", template.ID)
	}
	return nil
}

// SaveCustomization persists a per-equipment customization and pushes it.
func (s *Service) SaveCustomization(ctx context.Context, userID string, cust *Customization) error {
	cust.UpdatedAt = s.NowFunc()
	if err := s.customizations.Put(ctx, cust); err != nil {
		return fmt.Errorf("put customization: %w", err)
	}
	if !s.pusher.PushRecord(ctx, userID, CollectionCustomizations, cust) {
		log.Debugf("customization %s not pushed, awaiting next full sync", cust.EquipmentID)
	}
	return nil
}

// Catalog returns the base equipment catalog blended with the stored
// customizations.
func (s *Service) Catalog(ctx context.Context) ([]Equipment, error) {
	customizations, err := s.customizations.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get customizations: %w", err)
	}

	overrides := make(map[string]*Customization, len(customizations))
	for _, c := range customizations {
		overrides[c.EquipmentID] = c
	}

	return Compose(BaseCatalog(), overrides), nil
}

// CompletedSessions lists the persisted (finished) sessions.
func (s *Service) CompletedSessions(ctx context.Context) ([]*Session, error) {
	return s.sessions.GetAll(ctx)
}

// Templates lists the stored templates.
func (s *Service) Templates(ctx context.Context) ([]*Template, error) {
	return s.templates.GetAll(ctx)
}
