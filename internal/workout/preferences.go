package workout

// PreferencesDocID is the fixed document id of the per-user preferences
// singleton, both locally and on the remote mirror.
const PreferencesDocID = "preferences"

type RestTimerMode string

const (
	RestTimerOff      RestTimerMode = "off"
	RestTimerManual   RestTimerMode = "manual"
	RestTimerAutoNext RestTimerMode = "auto_next"
)

// Preferences is a singleton record per user.
type Preferences struct {
	DefaultUnit    WeightUnit    `json:"defaultUnit"`
	DefaultRestSec int           `json:"defaultRestSec"`
	PlateSet       []float64     `json:"plateSet"`
	RestTimerMode  RestTimerMode `json:"restTimerMode"`
	UpdatedAt      int64         `json:"updatedAt"`
}

func (p *Preferences) RecordID() string   { return PreferencesDocID }
func (p *Preferences) LastUpdated() int64 { return p.UpdatedAt }

func DefaultPreferences(nowMs int64) *Preferences {
	return &Preferences{
		DefaultUnit:    UnitKg,
		DefaultRestSec: 90,
		PlateSet:       []float64{1.25, 2.5, 5, 10, 15, 20, 25},
		RestTimerMode:  RestTimerManual,
		UpdatedAt:      nowMs,
	}
}
