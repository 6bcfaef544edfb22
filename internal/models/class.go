package models

import "time"

// Class is a scheduled offering of a course with one assigned lecturer.
type Class struct {
	ID              string    `db:"id" json:"id"`
	CourseID        string    `db:"course_id" json:"course_id"`
	Name            string    `db:"name" json:"name"`
	ScheduledTime   *string   `db:"scheduled_time" json:"scheduled_time"`
	Venue           *string   `db:"venue" json:"venue"`
	TotalRegistered int       `db:"total_registered" json:"total_registered"`
	LecturerID      string    `db:"assigned_lecturer_id" json:"lecturer_id"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// ClassDetail is a class row hydrated with course and lecturer display data,
// returned on creation and on the lecturer's class listing.
type ClassDetail struct {
	ID              string  `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	ScheduledTime   *string `db:"scheduled_time" json:"scheduled_time"`
	Venue           *string `db:"venue" json:"venue"`
	TotalRegistered int     `db:"total_registered" json:"total_registered"`
	CourseName      string  `db:"course_name" json:"course_name"`
	CourseCode      string  `db:"course_code" json:"course_code"`
	LecturerID      *string `db:"lecturer_id" json:"lecturer_id,omitempty"`
	LecturerName    *string `db:"lecturer_name" json:"lecturer_name,omitempty"`
}

// CreateClassRequest is the pl-only class creation payload.
type CreateClassRequest struct {
	CourseID        string  `json:"course_id" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	ScheduledTime   *string `json:"scheduled_time"`
	Venue           *string `json:"venue"`
	TotalRegistered int     `json:"total_registered" validate:"gte=0"`
	LecturerID      string  `json:"lecturer_id" validate:"required"`
}
