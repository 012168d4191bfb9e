// Package stats derives progress indicators from logged workout data.
package stats

import (
	"github.com/mkovacevic/liftsync/internal/formula"
	"github.com/mkovacevic/liftsync/internal/workout"
)

// Volume is the sum of weight * reps over completed sets.
func Volume(exercises []workout.LoggedExercise) float64 {
	var volume float64
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if set.IsCompleted {
				volume += set.Weight * float64(set.Reps)
			}
		}
	}
	return volume
}

// MaxWeight is the heaviest completed set, 0 when there is none.
func MaxWeight(exercises []workout.LoggedExercise) float64 {
	var maxWeight float64
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if set.IsCompleted && set.Weight > maxWeight {
				maxWeight = set.Weight
			}
		}
	}
	return maxWeight
}

// BestEstimatedMax is the best one-rep-max estimate across completed
// sets with positive weight and reps.
func BestEstimatedMax(exercises []workout.LoggedExercise) float64 {
	var observations []formula.Observation
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if set.IsCompleted && set.Weight > 0 && set.Reps > 0 {
				observations = append(observations, formula.Observation{
					Weight: set.Weight,
					Reps:   set.Reps,
				})
			}
		}
	}
	return formula.BestEstimate(formula.Default, observations)
}

// CompletedSets counts the completed sets.
func CompletedSets(exercises []workout.LoggedExercise) int {
	var count int
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if set.IsCompleted {
				count++
			}
		}
	}
	return count
}

// CompletedReps counts the reps of completed sets.
func CompletedReps(exercises []workout.LoggedExercise) int {
	var reps int
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if set.IsCompleted {
				reps += set.Reps
			}
		}
	}
	return reps
}

// Summary describes one session for list views.
type Summary struct {
	SessionID       string  `json:"sessionId"`
	Date            string  `json:"date"`
	ExerciseCount   int     `json:"exerciseCount"`
	TotalVolume     float64 `json:"totalVolume"`
	CompletedSets   int     `json:"completedSets"`
	DurationMinutes int     `json:"durationMinutes"`
}

// Summarize never fails on an unfinished session: its duration is
// simply 0 (and never negative).
func Summarize(session *workout.Session) Summary {
	var durationMin int
	if session.EndTime > session.StartTime {
		durationMin = int((session.EndTime - session.StartTime) / 1000 / 60)
	}
	return Summary{
		SessionID:       session.ID,
		Date:            session.Date,
		ExerciseCount:   len(session.Exercises),
		TotalVolume:     Volume(session.Exercises),
		CompletedSets:   CompletedSets(session.Exercises),
		DurationMinutes: durationMin,
	}
}
