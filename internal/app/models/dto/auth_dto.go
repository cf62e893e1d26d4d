package dto

// RegisterRequest represents the student registration payload
type RegisterRequest struct {
	Name       string `json:"name" binding:"required" example:"Ananya Rao"`
	Email      string `json:"email" binding:"required,email" example:"ananya@mahindrauniversity.edu.in"`
	Password   string `json:"password" binding:"required,min=8" example:"Secret123"`
	RollNumber string `json:"rollNumber" binding:"required" example:"SE21UCSE042"`
	Department string `json:"department" binding:"required" example:"Computer Science"`
	Year       int    `json:"year" binding:"required,min=1,max=6" example:"3"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" example:"ananya@mahindrauniversity.edu.in"`
	Password string `json:"password" example:"Secret123"`
}

// StudentProfile is the public view of a student returned with sessions and /me.
// Password and token secrets are never part of this shape.
type StudentProfile struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Ananya Rao"`
	Email      string `json:"email" example:"ananya@mahindrauniversity.edu.in"`
	RollNumber string `json:"rollNumber" example:"SE21UCSE042"`
	Department string `json:"department" example:"Computer Science"`
	Year       int    `json:"year" example:"3"`
	Role       string `json:"role" example:"STUDENT"`
}

// SessionResponse carries a freshly issued session token and the owner's profile
type SessionResponse struct {
	Token   string         `json:"token"`
	Student StudentProfile `json:"student"`
}
