package models

import "time"

// Rating scores a lecturer on a module, 1 to 5.
type Rating struct {
	ID        string    `db:"id" json:"id"`
	RaterID   string    `db:"rater_id" json:"rater_id"`
	TargetID  string    `db:"target_id" json:"target_id"`
	Module    string    `db:"module" json:"module"`
	Score     int       `db:"score" json:"score"`
	Comment   *string   `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RatingRow is a rating joined with the rater's name for display.
type RatingRow struct {
	ID        string  `db:"id" json:"id"`
	RaterName string  `db:"rater_name" json:"rater_name"`
	Module    string  `db:"module" json:"module"`
	Score     int     `db:"score" json:"score"`
	Comment   *string `db:"comment" json:"comment"`
}

// CreateRatingRequest is the rating submission payload. Any authenticated
// role may rate a lecturer.
type CreateRatingRequest struct {
	TargetID string  `json:"target_id" validate:"required"`
	Module   string  `json:"module" validate:"required"`
	Score    int     `json:"score" validate:"required,min=1,max=5"`
	Comment  *string `json:"comment"`
}

// FacultyOverview aggregates counts for one faculty.
type FacultyOverview struct {
	CoursesCount int `json:"coursesCount"`
	ClassesCount int `json:"classesCount"`
	ReportsCount int `json:"reportsCount"`
}
