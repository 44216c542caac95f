package models

import "github.com/google/uuid"

type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "Not Started"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusNotStarted, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project belongs to a Client through ClientID. The reference is not checked,
// so it may point at a client that was never created or has been deleted.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	ClientID    string        `json:"clientId"`
}

func (p *Project) Prepare() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = ProjectStatusNotStarted
	}
}

// ProjectPatch holds the fields of an update. Nil fields are left unchanged.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
}

func (p ProjectPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil
}

func (p ProjectPatch) Apply(project *Project) {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
}
