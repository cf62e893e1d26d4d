package dto

// CreateProfessorRequest represents the payload for creating a professor
type CreateProfessorRequest struct {
	Name        string `json:"name" binding:"required" example:"Dr. Vivek Kumar Mishra"`
	Course      string `json:"course" binding:"required" example:"Computational Finance with Applications"`
	Code        string `json:"code" binding:"required" example:"CS3235"`
	Credits     int    `json:"credits" binding:"required,min=1,max=10" example:"3"`
	Department  string `json:"department" binding:"required" example:"Finance"`
	NextLecture string `json:"nextLecture" example:"May 05, 2025 [05:35 PM]"`
}

// UpdateProfessorRequest represents the payload for updating a professor.
// All fields are optional; only the provided ones are applied.
type UpdateProfessorRequest struct {
	Name        *string `json:"name,omitempty"`
	Course      *string `json:"course,omitempty"`
	Code        *string `json:"code,omitempty"`
	Credits     *int    `json:"credits,omitempty" binding:"omitempty,min=1,max=10"`
	Department  *string `json:"department,omitempty"`
	NextLecture *string `json:"nextLecture,omitempty"`
}
