package workout

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrSetNotFound      = errors.New("set not found")
	ErrSessionFinished  = errors.New("session already finished")
)

// LoggedSet is one set within a logged exercise. Uncompleted sets may
// hold provisional values; once completed, Reps >= 1 and Weight >= 0 hold.
type LoggedSet struct {
	ID          string     `json:"id"`
	Reps        int        `json:"reps"`
	Weight      float64    `json:"weight"`
	WeightUnit  WeightUnit `json:"weightUnit"`
	Effort      *int       `json:"effort,omitempty"` // subjective rating 0-10
	RestPeriod  int        `json:"restPeriod"`       // seconds
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt int64      `json:"completedAt,omitempty"` // epoch ms
}

// LoggedExercise references a piece of equipment within a session.
// The order of exercises and of their sets is significant for display
// and for default-carry-forward.
type LoggedExercise struct {
	EquipmentID string      `json:"equipmentId"`
	Variant     string      `json:"variant,omitempty"`
	Attachment  string      `json:"attachment,omitempty"`
	Grip        string      `json:"grip,omitempty"`
	Sets        []LoggedSet `json:"sets"`
}

// Session is one logged workout. EndTime == 0 means the session is
// still in progress.
type Session struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"` // YYYY-MM-DD
	StartTime int64            `json:"startTime"`
	EndTime   int64            `json:"endTime,omitempty"`
	Exercises []LoggedExercise `json:"exercises"`
	Notes     string           `json:"notes,omitempty"`
	UpdatedAt int64            `json:"updatedAt"`
}

func (s *Session) RecordID() string   { return s.ID }
func (s *Session) LastUpdated() int64 { return s.UpdatedAt }

func (s *Session) IsActive() bool { return s.EndTime == 0 }

// NewSession starts a new, active session at the given time.
func NewSession(nowMs int64) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Date:      time.UnixMilli(nowMs).UTC().Format(time.DateOnly),
		StartTime: nowMs,
		UpdatedAt: nowMs,
	}
}

// AddExercise appends an exercise to the session, pre-populated from the
// given defaults when available.
func (s *Session) AddExercise(equipmentID string, defaults *ExerciseDefaults, nowMs int64) *LoggedExercise {
	ex := LoggedExercise{
		EquipmentID: equipmentID,
	}
	if defaults != nil {
		ex.Attachment = defaults.Attachment
		ex.Grip = defaults.Grip
		ex.Sets = append(ex.Sets, LoggedSet{
			ID:         uuid.NewString(),
			Reps:       defaults.Reps,
			Weight:     defaults.Weight,
			WeightUnit: defaults.Unit,
		})
	}
	s.Exercises = append(s.Exercises, ex)
	s.UpdatedAt = nowMs
	return &s.Exercises[len(s.Exercises)-1]
}

func (s *Session) RemoveExercise(index int, nowMs int64) error {
	if index < 0 || index >= len(s.Exercises) {
		return ErrExerciseNotFound
	}
	s.Exercises = append(s.Exercises[:index], s.Exercises[index+1:]...)
	s.UpdatedAt = nowMs
	return nil
}

func (s *Session) AddSet(exerciseIndex int, set LoggedSet, nowMs int64) (*LoggedSet, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(s.Exercises) {
		return nil, ErrExerciseNotFound
	}
	if set.ID == "" {
		set.ID = uuid.NewString()
	}
	ex := &s.Exercises[exerciseIndex]
	ex.Sets = append(ex.Sets, set)
	s.UpdatedAt = nowMs
	return &ex.Sets[len(ex.Sets)-1], nil
}

func (s *Session) UpdateSet(exerciseIndex int, set LoggedSet, nowMs int64) error {
	if exerciseIndex < 0 || exerciseIndex >= len(s.Exercises) {
		return ErrExerciseNotFound
	}
	ex := &s.Exercises[exerciseIndex]
	for i := range ex.Sets {
		if ex.Sets[i].ID == set.ID {
			ex.Sets[i] = set
			s.UpdatedAt = nowMs
			return nil
		}
	}
	return ErrSetNotFound
}

func (s *Session) RemoveSet(exerciseIndex int, setID string, nowMs int64) error {
	if exerciseIndex < 0 || exerciseIndex >= len(s.Exercises) {
		return ErrExerciseNotFound
	}
	ex := &s.Exercises[exerciseIndex]
	for i := range ex.Sets {
		if ex.Sets[i].ID == setID {
			ex.Sets = append(ex.Sets[:i], ex.Sets[i+1:]...)
			s.UpdatedAt = nowMs
			return nil
		}
	}
	return ErrSetNotFound
}

// CompleteSet marks the set as completed, stamping CompletedAt exactly on
// the transition to completed. Completed sets must hold at least one rep
// and a non-negative weight.
func (s *Session) CompleteSet(exerciseIndex int, setID string, nowMs int64) (*LoggedSet, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(s.Exercises) {
		return nil, ErrExerciseNotFound
	}
	ex := &s.Exercises[exerciseIndex]
	for i := range ex.Sets {
		set := &ex.Sets[i]
		if set.ID != setID {
			continue
		}
		if set.Reps < 1 {
			return nil, fmt.Errorf("complete set %s: reps must be at least 1", setID)
		}
		if set.Weight < 0 {
			return nil, fmt.Errorf("complete set %s: weight must not be negative", setID)
		}
		if !set.IsCompleted {
			set.IsCompleted = true
			set.CompletedAt = nowMs
		}
		s.UpdatedAt = nowMs
		return set, nil
	}
	return nil, ErrSetNotFound
}

// Finish closes the session. Abandoned sessions are simply never
// persisted, so there is no explicit discard operation on the record.
func (s *Session) Finish(nowMs int64) error {
	if !s.IsActive() {
		return ErrSessionFinished
	}
	s.EndTime = nowMs
	s.UpdatedAt = nowMs
	return nil
}
