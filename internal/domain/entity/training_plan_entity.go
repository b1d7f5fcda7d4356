package entity

import "time"

// TrainingPlan is a seeded, read-only workout program.
type TrainingPlan struct {
	ID            string        `json:"id"`
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Level         string        `json:"level"`
	Goal          string        `json:"goal"`
	DurationWeeks int           `json:"durationWeeks"`
	DaysPerWeek   int           `json:"daysPerWeek"`
	Workouts      []PlanWorkout `json:"workouts"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type PlanWorkout struct {
	Day       int            `json:"day"`
	Title     string         `json:"title"`
	Exercises []PlanExercise `json:"exercises"`
}

type PlanExercise struct {
	ExerciseID  string `json:"exerciseId,omitempty"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
}
