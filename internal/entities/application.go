// Package entities contains core business entities.
package entities

import "time"

// Application is a team's registration record, including generated access credentials.
//
// Login is unique across all applications and never changes after creation.
// Password is stored and returned in plaintext: the API hands it back to the
// caller on creation, so hashing would change observable behavior.
type Application struct {
	ID            int64
	TeamName      string
	Region        string
	ContactPerson string
	LeaderName    string
	Login         string
	Password      string
	SubmittedAt   time.Time
}
