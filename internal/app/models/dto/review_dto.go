package dto

// RatingFields holds the per-dimension scores of a review submission. Every
// dimension is optional; when present it must fall in the 1-5 range.
type RatingFields struct {
	Clarity              *float64 `json:"clarity,omitempty" binding:"omitempty,min=1,max=5" example:"4"`
	Engagement           *float64 `json:"engagement,omitempty" binding:"omitempty,min=1,max=5" example:"5"`
	Knowledge            *float64 `json:"knowledge,omitempty" binding:"omitempty,min=1,max=5" example:"5"`
	Fairness             *float64 `json:"fairness,omitempty" binding:"omitempty,min=1,max=5" example:"4"`
	Approachability      *float64 `json:"approachability,omitempty" binding:"omitempty,min=1,max=5" example:"3"`
	Organization         *float64 `json:"organization,omitempty" binding:"omitempty,min=1,max=5" example:"4"`
	Discussion           *float64 `json:"discussion,omitempty" binding:"omitempty,min=1,max=5" example:"4"`
	Workload             *float64 `json:"workload,omitempty" binding:"omitempty,min=1,max=5" example:"3"`
	Respect              *float64 `json:"respect,omitempty" binding:"omitempty,min=1,max=5" example:"5"`
	RealWorldConnections *float64 `json:"realWorldConnections,omitempty" binding:"omitempty,min=1,max=5" example:"4"`
}

// CreateReviewRequest represents the payload for submitting a review
type CreateReviewRequest struct {
	ProfessorName string `json:"professorName" binding:"required" example:"Mr. Rahul Roy"`
	CourseName    string `json:"courseName" binding:"required" example:"Deep Neural Networks"`
	Semester      string `json:"semester" binding:"required" example:"Spring 2025"`

	RatingFields

	Review           string `json:"review,omitempty" example:"Great lectures, heavy workload."`
	ReportMisconduct bool   `json:"reportMisconduct" example:"false"`
	AllowAnalytics   bool   `json:"allowAnalytics" example:"true"`
}

// UpdateReviewRequest represents the payload for updating a review.
// All fields are optional; only the provided ones are applied.
type UpdateReviewRequest struct {
	CourseName *string `json:"courseName,omitempty"`
	Semester   *string `json:"semester,omitempty"`

	RatingFields

	Review         *string `json:"review,omitempty"`
	AllowAnalytics *bool   `json:"allowAnalytics,omitempty"`
}
