package graph

import (
	"fmt"

	"github.com/graph-gophers/graphql-go"

	"projectmgmt/internal/models"
	"projectmgmt/internal/services"
)

// Resolver is the root resolver for both Query and Mutation fields.
type Resolver struct {
	clients  *services.ClientService
	projects *services.ProjectService
}

func NewResolver(clients *services.ClientService, projects *services.ProjectService) *Resolver {
	return &Resolver{
		clients:  clients,
		projects: projects,
	}
}

// NewSchema parses Schema against the resolver. It panics if a resolver
// method does not match its field.
func NewSchema(clients *services.ClientService, projects *services.ProjectService) *graphql.Schema {
	return graphql.MustParseSchema(Schema, NewResolver(clients, projects))
}

var statusByEnum = map[string]models.ProjectStatus{
	"new":       models.ProjectStatusNotStarted,
	"progress":  models.ProjectStatusInProgress,
	"completed": models.ProjectStatusCompleted,
}

func statusFromEnum(name string) (models.ProjectStatus, error) {
	status, ok := statusByEnum[name]
	if !ok {
		return "", fmt.Errorf("unknown project status %q", name)
	}
	return status, nil
}
