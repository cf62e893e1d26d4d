package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64    `json:"id" db:"id" example:"1"`                                          // Unique identifier for the student
	Name       string   `json:"name" db:"name" example:"Ananya Rao"`                             // Student's full name
	Email      string   `json:"email" db:"email" example:"ananya@mahindrauniversity.edu.in"`     // Institutional email address
	Password   string   `json:"-" db:"password"`                                                 // Hashed password (excluded from JSON)
	RollNumber string   `json:"rollNumber" db:"roll_number" example:"SE21UCSE042"`               // University roll number
	Department string   `json:"department" db:"department" example:"Computer Science"`           // Department the student belongs to
	Year       int      `json:"year" db:"year" example:"3"`                                      // Current year of study
	Role       RoleType `json:"role" db:"role" example:"STUDENT"`                                // Student's role (STUDENT or ADMIN)
	IsVerified bool     `json:"isVerified" db:"is_verified" example:"true"`                      // Whether the email address has been verified

	// One-time verification token fields; only the hash is ever stored.
	VerifyTokenHash    *string    `json:"-" db:"verify_token_hash"`
	VerifyTokenExpires *time.Time `json:"-" db:"verify_token_expires"`

	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2025-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2025-01-02T15:30:00Z"`
}
