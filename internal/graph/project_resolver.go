package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"projectmgmt/internal/models"
	"projectmgmt/internal/services"
)

type projectResolver struct {
	project  models.Project
	projects *services.ProjectService
}

func (r *Resolver) newProjectResolver(project *models.Project) *projectResolver {
	if project == nil {
		return nil
	}
	return &projectResolver{project: *project, projects: r.projects}
}

func (r *projectResolver) ID() graphql.ID      { return graphql.ID(r.project.ID) }
func (r *projectResolver) Name() string        { return r.project.Name }
func (r *projectResolver) Description() string { return r.project.Description }
func (r *projectResolver) Status() string      { return string(r.project.Status) }

// Client is resolved per project with a point lookup on the stored clientId.
func (r *projectResolver) Client(ctx context.Context) (*clientResolver, error) {
	client, err := r.projects.GetProjectClient(ctx, &r.project)
	if err != nil {
		return nil, err
	}
	return newClientResolver(client), nil
}

func (r *Resolver) Projects(ctx context.Context) ([]*projectResolver, error) {
	projects, err := r.projects.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*projectResolver, 0, len(projects))
	for i := range projects {
		resolvers = append(resolvers, r.newProjectResolver(&projects[i]))
	}
	return resolvers, nil
}

func (r *Resolver) Project(ctx context.Context, args struct{ ID *graphql.ID }) (*projectResolver, error) {
	if args.ID == nil {
		return nil, nil
	}
	project, err := r.projects.GetProject(ctx, string(*args.ID))
	if err != nil {
		return nil, err
	}
	return r.newProjectResolver(project), nil
}

func (r *Resolver) AddProject(ctx context.Context, args struct {
	Name        string
	Description string
	Status      string
	ClientID    graphql.ID
}) (*projectResolver, error) {
	req := services.CreateProjectRequest{
		Name:        args.Name,
		Description: args.Description,
		ClientID:    string(args.ClientID),
	}
	if args.Status != "" {
		status, err := statusFromEnum(args.Status)
		if err != nil {
			return nil, err
		}
		req.Status = status
	}

	project, err := r.projects.CreateProject(ctx, req)
	if err != nil {
		return nil, err
	}
	return r.newProjectResolver(project), nil
}

func (r *Resolver) DeleteProject(ctx context.Context, args struct{ ID graphql.ID }) (*projectResolver, error) {
	project, err := r.projects.DeleteProject(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return r.newProjectResolver(project), nil
}

func (r *Resolver) UpdateProject(ctx context.Context, args struct {
	ID          graphql.ID
	Name        *string
	Description *string
	Status      *string
}) (*projectResolver, error) {
	patch := models.ProjectPatch{
		Name:        args.Name,
		Description: args.Description,
	}
	if args.Status != nil {
		status, err := statusFromEnum(*args.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &status
	}

	project, err := r.projects.UpdateProject(ctx, string(args.ID), patch)
	if err != nil {
		return nil, err
	}
	return r.newProjectResolver(project), nil
}
