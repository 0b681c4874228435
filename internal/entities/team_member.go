// Package entities contains core business entities.
package entities

// TeamMember is one roster entry belonging to exactly one application.
// Role is a free-text tag (coach, leader, participant, escort).
// Sport, StudentCard and DisabilityReason are optional and nil when absent.
type TeamMember struct {
	ID               int64
	ApplicationID    int64
	FullName         string
	DateOfBirth      string
	Phone            string
	Email            string
	Role             string
	Sport            *string
	StudentCard      *string
	Disability       bool
	DisabilityReason *string
}
