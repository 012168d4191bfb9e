package stats_test

import (
	"testing"

	"github.com/mkovacevic/liftsync/internal/stats"
	"github.com/mkovacevic/liftsync/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressSessions() []*workout.Session {
	return []*workout.Session{
		{
			ID:   "s1",
			Date: "2025-03-01",
			Exercises: []workout.LoggedExercise{
				{
					EquipmentID: "deadlift",
					Sets: []workout.LoggedSet{
						{Weight: 140, Reps: 5, IsCompleted: true},
						{Weight: 150, Reps: 3, IsCompleted: true},
					},
				},
				{
					EquipmentID: "lat-pulldown",
					Sets: []workout.LoggedSet{
						{Weight: 55, Reps: 12, IsCompleted: true},
					},
				},
				// same equipment logged twice: a second circuit
				{
					EquipmentID: "deadlift",
					Sets: []workout.LoggedSet{
						{Weight: 120, Reps: 8, IsCompleted: true},
					},
				},
			},
		},
		{
			ID:   "s2",
			Date: "2025-03-03",
			Exercises: []workout.LoggedExercise{
				{
					EquipmentID: "deadlift",
					Sets: []workout.LoggedSet{
						// logged but never completed
						{Weight: 140, Reps: 5, IsCompleted: false},
					},
				},
			},
		},
		{
			ID:   "s3",
			Date: "2025-03-05",
			Exercises: []workout.LoggedExercise{
				{
					EquipmentID: "deadlift",
					Sets: []workout.LoggedSet{
						{Weight: 145, Reps: 5, IsCompleted: true},
					},
				},
			},
		},
	}
}

func TestProgress(t *testing.T) {
	sessions := progressSessions()

	points := stats.ProgressPoints(sessions, "deadlift")
	require.Len(t, points, 2)

	// all deadlift occurrences of s1 aggregated together
	first := points[0]
	assert.Equal(t, "s1", first.SessionID)
	assert.Equal(t, "2025-03-01", first.Date)
	assert.Equal(t, 140.0*5+150*3+120*8, first.Volume)
	assert.Equal(t, 150.0, first.MaxWeight)
	assert.Equal(t, 3, first.TotalSets)
	assert.Equal(t, 16, first.TotalReps)
	// best of 140x5 (157.5), 150x3 (158.8), 120x8 (148.9)
	assert.Equal(t, 158.8, first.BestE1RM)

	// s2 contributed no completed sets and is skipped
	second := points[1]
	assert.Equal(t, "s3", second.SessionID)
	assert.Equal(t, 145.0*5, second.Volume)
}

func TestProgress_LengthNeverExceedsInput(t *testing.T) {
	sessions := progressSessions()
	assert.LessOrEqual(t, len(stats.ProgressPoints(sessions, "deadlift")), len(sessions))
	assert.LessOrEqual(t, len(stats.ProgressPoints(sessions, "lat-pulldown")), len(sessions))
	assert.Empty(t, stats.ProgressPoints(sessions, "no-such-equipment"))
	assert.Empty(t, stats.ProgressPoints(nil, "deadlift"))
}

func TestProgress_Restartable(t *testing.T) {
	sessions := progressSessions()
	seq := stats.Progress(sessions, "deadlift")

	var firstRun, secondRun []stats.ProgressPoint
	for p := range seq {
		firstRun = append(firstRun, p)
	}
	for p := range seq {
		secondRun = append(secondRun, p)
	}
	assert.Equal(t, firstRun, secondRun)
}

func TestProgress_EarlyStop(t *testing.T) {
	sessions := progressSessions()

	var collected []stats.ProgressPoint
	for p := range stats.Progress(sessions, "deadlift") {
		collected = append(collected, p)
		break
	}
	require.Len(t, collected, 1)
	assert.Equal(t, "s1", collected[0].SessionID)
}
