package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdmin   RoleType = "ADMIN"
)

// RatingSet holds one numeric value per rated dimension. It is used both for the
// scores a single review carries and for a professor's aggregate averages; a nil
// field means the dimension was not rated (or has no contributing reviews).
type RatingSet struct {
	Clarity              *float64 `json:"clarity,omitempty" db:"clarity"`
	Engagement           *float64 `json:"engagement,omitempty" db:"engagement"`
	Knowledge            *float64 `json:"knowledge,omitempty" db:"knowledge"`
	Fairness             *float64 `json:"fairness,omitempty" db:"fairness"`
	Approachability      *float64 `json:"approachability,omitempty" db:"approachability"`
	Organization         *float64 `json:"organization,omitempty" db:"organization"`
	Discussion           *float64 `json:"discussion,omitempty" db:"discussion"`
	Workload             *float64 `json:"workload,omitempty" db:"workload"`
	Respect              *float64 `json:"respect,omitempty" db:"respect"`
	RealWorldConnections *float64 `json:"realWorldConnections,omitempty" db:"real_world"`
}

// Dimensions returns pointers to every dimension field in a fixed order, so
// callers can iterate the set without repeating the field list.
func (r *RatingSet) Dimensions() []**float64 {
	return []**float64{
		&r.Clarity,
		&r.Engagement,
		&r.Knowledge,
		&r.Fairness,
		&r.Approachability,
		&r.Organization,
		&r.Discussion,
		&r.Workload,
		&r.Respect,
		&r.RealWorldConnections,
	}
}
