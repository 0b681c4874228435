// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"team-registration/internal/api"
	"team-registration/internal/documents"
	"team-registration/internal/entities"
)

// FromAPISubmitRequest builds an entities.Application from the submission payload.
func FromAPISubmitRequest(src api.SubmitApplicationRequest) entities.Application {
	return entities.Application{
		TeamName:      src.TeamName,
		Region:        src.Region,
		ContactPerson: src.ContactPerson,
		LeaderName:    src.LeaderName,
	}
}

// ToAPIApplication maps entities.Application to transport model.
func ToAPIApplication(app entities.Application) api.Application {
	return api.Application{
		ID:            app.ID,
		TeamName:      app.TeamName,
		Region:        app.Region,
		ContactPerson: app.ContactPerson,
		LeaderName:    app.LeaderName,
		Login:         app.Login,
		Password:      app.Password,
		SubmittedAt:   app.SubmittedAt,
	}
}

// ToAPIApplicationList maps a slice of entities.Application to transport slice.
func ToAPIApplicationList(list []entities.Application) []api.Application {
	res := make([]api.Application, 0, len(list))
	for _, app := range list {
		res = append(res, ToAPIApplication(app))
	}
	return res
}

// FromAPIMemberRequest builds an entities.TeamMember from the add-member payload.
func FromAPIMemberRequest(applicationID int64, src api.AddTeamMemberRequest) entities.TeamMember {
	return entities.TeamMember{
		ApplicationID:    applicationID,
		FullName:         src.FullName,
		DateOfBirth:      src.DateOfBirth,
		Phone:            src.Phone,
		Email:            src.Email,
		Role:             src.Role,
		Sport:            src.Sport,
		StudentCard:      src.StudentCard,
		Disability:       src.Disability,
		DisabilityReason: src.DisabilityReason,
	}
}

// ToAPITeamMember maps entities.TeamMember to transport model.
func ToAPITeamMember(m entities.TeamMember) api.TeamMember {
	return api.TeamMember{
		ID:               m.ID,
		ApplicationID:    m.ApplicationID,
		FullName:         m.FullName,
		DateOfBirth:      m.DateOfBirth,
		Phone:            m.Phone,
		Email:            m.Email,
		Role:             m.Role,
		Sport:            m.Sport,
		StudentCard:      m.StudentCard,
		Disability:       m.Disability,
		DisabilityReason: m.DisabilityReason,
	}
}

// ToAPITeamMemberList maps a slice of entities.TeamMember to transport slice.
func ToAPITeamMemberList(list []entities.TeamMember) []api.TeamMember {
	res := make([]api.TeamMember, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPITeamMember(m))
	}
	return res
}

// ToAPIPreview maps the preview composite to transport model.
func ToAPIPreview(p entities.ApplicationPreview) api.ApplicationPreview {
	return api.ApplicationPreview{
		Application: ToAPIApplication(p.Application),
		Members:     ToAPITeamMemberList(p.Members),
	}
}

// ToAPIStoredList maps stored upload identifiers to transport model.
func ToAPIStoredList(list []documents.Stored) []api.StoredDocument {
	res := make([]api.StoredDocument, 0, len(list))
	for _, s := range list {
		res = append(res, api.StoredDocument{ID: s.ID, FileName: s.FileName})
	}
	return res
}
