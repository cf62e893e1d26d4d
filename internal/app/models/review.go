package models

import "time"

// Review defines the review model based on the 'reviews' table. A review may be
// submitted without a professor link and without a submitting student; both
// references are optional.
type Review struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	ProfessorID   *int64 `json:"professorId,omitempty" db:"professor_id" example:"3"` // Linked professor (nullable)
	StudentID     *int64 `json:"studentId,omitempty" db:"student_id" example:"7"`     // Submitting student (nullable, anonymous allowed)
	ProfessorName string `json:"professorName" db:"professor_name" example:"Mr. Rahul Roy"`
	CourseName    string `json:"courseName" db:"course_name" example:"Deep Neural Networks"`
	Semester      string `json:"semester" db:"semester" example:"Spring 2025"`

	RatingSet // Per-dimension scores, each 1-5 when present

	Comment          string  `json:"review,omitempty" db:"comment"`                 // Free-text comment
	ReportMisconduct bool    `json:"reportMisconduct" db:"report_misconduct"`       // Misconduct flag
	AllowAnalytics   bool    `json:"allowAnalytics" db:"allow_analytics"`           // Analytics opt-in
	IPHash           *string `json:"-" db:"ip_hash"`                                // One-way origin hash (never serialized)

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
