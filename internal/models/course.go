package models

import "time"

// Course is owned by a faculty and created only by program leaders.
// Codes are not unique; the store accepts duplicates.
type Course struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	Faculty   string    `db:"faculty" json:"faculty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateCourseRequest is the pl-only course creation payload.
type CreateCourseRequest struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code" validate:"required"`
	Faculty string `json:"faculty" validate:"required"`
}
