package workout

import "github.com/google/uuid"

// TemplateExercise is an entry of a workout plan: equipment plus an
// optional setup, no set data.
type TemplateExercise struct {
	EquipmentID string `json:"equipmentId"`
	Variant     string `json:"variant,omitempty"`
	Attachment  string `json:"attachment,omitempty"`
	Grip        string `json:"grip,omitempty"`
}

// Template is a reusable workout plan.
type Template struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Exercises   []TemplateExercise `json:"exercises"`
	UpdatedAt   int64              `json:"updatedAt"`
}

func (t *Template) RecordID() string   { return t.ID }
func (t *Template) LastUpdated() int64 { return t.UpdatedAt }

func NewTemplate(name string, exercises []TemplateExercise, nowMs int64) *Template {
	return &Template{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: exercises,
		UpdatedAt: nowMs,
	}
}
