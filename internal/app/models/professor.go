package models

import "time"

// Professor defines the professor model based on the 'professors' table.
// The Averages fields and ReviewCount are owned by the review service: they are
// always a full recomputation over the professor's current review set, never an
// incremental patch.
type Professor struct {
	ID          int64  `json:"id" db:"id" example:"1"`                                             // Unique identifier for the professor
	Name        string `json:"name" db:"name" example:"Dr. Vivek Kumar Mishra"`                    // Professor's full name
	Course      string `json:"course" db:"course" example:"Computational Finance"`                 // Course currently taught
	Code        string `json:"code" db:"code" example:"CS3235"`                                    // Course code
	Credits     int    `json:"credits" db:"credits" example:"3"`                                   // Course credit count
	Department  string `json:"department" db:"department" example:"Finance"`                       // Department the professor belongs to
	NextLecture string `json:"nextLecture" db:"next_lecture" example:"May 05, 2025 [05:35 PM]"`    // Next scheduled lecture
	ReviewCount int    `json:"reviewCount" db:"review_count" example:"12"`                         // Number of reviews linked to the professor

	Averages RatingSet `json:"averages"` // Per-dimension arithmetic means over linked reviews

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
