package workout

// Equipment is a piece of equipment / movement users log performance
// against. The base catalog is immutable reference data; user additions
// come in through Customization records and are blended in on read.
type Equipment struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Variants        []string `json:"variants,omitempty"`
	Attachments     []string `json:"attachments,omitempty"`
	RestPeriodSec   int      `json:"restPeriodSec,omitempty"`
	WeightIncrement float64  `json:"weightIncrement,omitempty"`
	Custom          bool     `json:"custom,omitempty"`
}

// BaseCatalog returns the built-in equipment list.
func BaseCatalog() []Equipment {
	return []Equipment{
		{ID: "barbell-bench-press", Name: "Barbell Bench Press", WeightIncrement: 2.5},
		{ID: "barbell-squat", Name: "Barbell Squat", WeightIncrement: 2.5},
		{ID: "deadlift", Name: "Deadlift", Variants: []string{"conventional", "sumo", "romanian"}, WeightIncrement: 2.5},
		{ID: "overhead-press", Name: "Overhead Press", WeightIncrement: 1.25},
		{ID: "lat-pulldown", Name: "Lat Pulldown", Attachments: []string{"wide bar", "v-bar", "rope"}, WeightIncrement: 5},
		{ID: "cable-row", Name: "Cable Row", Attachments: []string{"v-bar", "wide bar", "rope"}, WeightIncrement: 5},
		{ID: "dumbbell-curl", Name: "Dumbbell Curl", WeightIncrement: 1},
		{ID: "leg-press", Name: "Leg Press", WeightIncrement: 5},
	}
}
