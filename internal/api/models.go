// Package api defines the JSON transport contract of the service.
package api

import "time"

// ErrorResponseErrorCode is a machine-readable failure kind.
type ErrorResponseErrorCode string

const (
	// VALIDATION marks malformed or missing required input.
	VALIDATION ErrorResponseErrorCode = "VALIDATION"
	// LOGINEXISTS marks a login uniqueness violation on submission.
	LOGINEXISTS ErrorResponseErrorCode = "LOGIN_EXISTS"
	// NOTFOUND marks a missing application or document.
	NOTFOUND ErrorResponseErrorCode = "NOT_FOUND"
	// STORAGE marks an underlying store failure.
	STORAGE ErrorResponseErrorCode = "STORAGE"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Application is the transport view of a registration record. Password is
// returned in cleartext on creation by design.
type Application struct {
	ID            int64     `json:"id"`
	TeamName      string    `json:"team_name"`
	Region        string    `json:"region"`
	ContactPerson string    `json:"contact_person"`
	LeaderName    string    `json:"leader_name"`
	Login         string    `json:"login"`
	Password      string    `json:"password"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// TeamMember is the transport view of one roster entry.
type TeamMember struct {
	ID               int64   `json:"id"`
	ApplicationID    int64   `json:"application_id"`
	FullName         string  `json:"full_name"`
	DateOfBirth      string  `json:"date_of_birth"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	Sport            *string `json:"sport,omitempty"`
	StudentCard      *string `json:"student_card,omitempty"`
	Disability       bool    `json:"disability"`
	DisabilityReason *string `json:"disability_reason,omitempty"`
}

// ApplicationPreview composes an application with its full roster.
type ApplicationPreview struct {
	Application Application  `json:"application"`
	Members     []TeamMember `json:"members"`
}

// SubmitApplicationRequest is the submission payload.
type SubmitApplicationRequest struct {
	TeamName      string `json:"team_name"`
	Region        string `json:"region"`
	ContactPerson string `json:"contact_person"`
	LeaderName    string `json:"leader_name"`
}

// AddTeamMemberRequest is the add-member payload.
type AddTeamMemberRequest struct {
	FullName         string  `json:"full_name"`
	DateOfBirth      string  `json:"date_of_birth"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	Sport            *string `json:"sport,omitempty"`
	StudentCard      *string `json:"student_card,omitempty"`
	Disability       bool    `json:"disability"`
	DisabilityReason *string `json:"disability_reason,omitempty"`
}

// StoredDocument identifies one persisted upload.
type StoredDocument struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
}

// UploadResponse lists stored location identifiers of an upload request.
type UploadResponse struct {
	Documents []StoredDocument `json:"documents"`
}
