package workout

// ExerciseDefaults holds the last used values for one piece of equipment
// (optionally one of its variants), used to pre-populate new logged
// exercises. Updated every time a set is completed.
type ExerciseDefaults struct {
	EquipmentID string     `json:"equipmentId"`
	Variant     string     `json:"variant,omitempty"`
	Weight      float64    `json:"weight"`
	Unit        WeightUnit `json:"unit"`
	Reps        int        `json:"reps"`
	Attachment  string     `json:"attachment,omitempty"`
	Grip        string     `json:"grip,omitempty"`
	UpdatedAt   int64      `json:"updatedAt"`
}

// DefaultsID builds the record id for an equipment/variant pair.
func DefaultsID(equipmentID, variant string) string {
	if variant == "" {
		return equipmentID
	}
	return equipmentID + "|" + variant
}

func (d *ExerciseDefaults) RecordID() string   { return DefaultsID(d.EquipmentID, d.Variant) }
func (d *ExerciseDefaults) LastUpdated() int64 { return d.UpdatedAt }

// DefaultsFromSet carries the values of a just-completed set forward
// into a fresh defaults record.
func DefaultsFromSet(ex LoggedExercise, set LoggedSet, nowMs int64) *ExerciseDefaults {
	return &ExerciseDefaults{
		EquipmentID: ex.EquipmentID,
		Variant:     ex.Variant,
		Weight:      set.Weight,
		Unit:        set.WeightUnit,
		Reps:        set.Reps,
		Attachment:  ex.Attachment,
		Grip:        ex.Grip,
		UpdatedAt:   nowMs,
	}
}
