package stats

import (
	"iter"

	"github.com/mkovacevic/liftsync/internal/workout"
)

// ProgressPoint is one session's aggregate for a single piece of
// equipment.
type ProgressPoint struct {
	SessionID string  `json:"sessionId"`
	Date      string  `json:"date"`
	Volume    float64 `json:"volume"`
	MaxWeight float64 `json:"maxWeight"`
	BestE1RM  float64 `json:"bestE1RM"`
	TotalSets int     `json:"totalSets"`
	TotalReps int     `json:"totalReps"`
}

// Progress returns a lazy, restartable sequence of per-session
// aggregates for the given equipment. A session may log the same
// equipment more than once (e.g. separate circuits); all occurrences
// are aggregated together. Sessions without a single completed set for
// the equipment are skipped. Output follows input order, so callers
// wanting a trend must pass sessions sorted chronologically.
func Progress(sessions []*workout.Session, equipmentID string) iter.Seq[ProgressPoint] {
	return func(yield func(ProgressPoint) bool) {
		for _, session := range sessions {
			var matched []workout.LoggedExercise
			for _, ex := range session.Exercises {
				if ex.EquipmentID == equipmentID {
					matched = append(matched, ex)
				}
			}
			if len(matched) == 0 {
				continue
			}

			totalSets := CompletedSets(matched)
			if totalSets == 0 {
				continue
			}

			point := ProgressPoint{
				SessionID: session.ID,
				Date:      session.Date,
				Volume:    Volume(matched),
				MaxWeight: MaxWeight(matched),
				BestE1RM:  BestEstimatedMax(matched),
				TotalSets: totalSets,
				TotalReps: CompletedReps(matched),
			}
			if !yield(point) {
				return
			}
		}
	}
}

// ProgressPoints collects the whole progress sequence into a slice.
func ProgressPoints(sessions []*workout.Session, equipmentID string) []ProgressPoint {
	var points []ProgressPoint
	for point := range Progress(sessions, equipmentID) {
		points = append(points, point)
	}
	return points
}
