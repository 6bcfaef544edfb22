package models

import "time"

// ReportStatus is the two-state report lifecycle. The only transition is
// pending -> reviewed; nothing moves a report back.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
)

// Report is a lecturer's teaching report. The class name is free text by
// design; reports do not reference class rows.
type Report struct {
	ID                    string       `db:"id" json:"id"`
	LecturerID            string       `db:"lecturer_id" json:"lecturer_id"`
	ClassName             string       `db:"class_name" json:"class_name"`
	TopicTaught           string       `db:"topic_taught" json:"topic_taught"`
	ActualStudentsPresent int          `db:"actual_students_present" json:"actual_students_present"`
	Status                ReportStatus `db:"status" json:"status"`
	PRLFeedback           *string      `db:"prl_feedback" json:"prl_feedback"`
	CreatedAt             time.Time    `db:"created_at" json:"created_at"`
}

// ReportRow is a report joined with the authoring lecturer's name for
// display in listings and exports.
type ReportRow struct {
	ID                    string       `db:"id" json:"id"`
	ClassName             string       `db:"class_name" json:"class_name"`
	TopicTaught           string       `db:"topic_taught" json:"topic_taught"`
	ActualStudentsPresent int          `db:"actual_students_present" json:"actual_students_present"`
	Status                ReportStatus `db:"status" json:"status"`
	PRLFeedback           *string      `db:"prl_feedback" json:"prl_feedback"`
	LecturerName          string       `db:"lecturer_name" json:"lecturer_name"`
}

// SubmitReportRequest is the lecturer submission payload.
type SubmitReportRequest struct {
	ClassName             string `json:"class_name" validate:"required"`
	TopicTaught           string `json:"topic_taught" validate:"required"`
	ActualStudentsPresent int    `json:"actual_students_present" validate:"gte=0"`
}

// ReviewReportRequest carries prl feedback. Both fields are optional:
// feedback defaults to empty, status to reviewed.
type ReviewReportRequest struct {
	Feedback string       `json:"feedback"`
	Status   ReportStatus `json:"status"`
}
