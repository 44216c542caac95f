package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"projectmgmt/internal/models"
	"projectmgmt/internal/repositories"
)

type ProjectService struct {
	projectRepo repositories.ProjectRepository
	clientRepo  repositories.ClientRepository
	logger      *zap.Logger
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	clientRepo repositories.ClientRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

type CreateProjectRequest struct {
	Name        string
	Description string
	Status      models.ProjectStatus // empty means "Not Started"
	ClientID    string
}

// CreateProject does not check that ClientID refers to an existing client.
func (s *ProjectService) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	status := req.Status
	if status == "" {
		status = models.ProjectStatusNotStarted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		ClientID:    req.ClientID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		s.logger.Error("Failed to create project", zap.String("client_id", req.ClientID), zap.Error(err))
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	s.logger.Info("Project created",
		zap.String("project_id", project.ID),
		zap.String("client_id", project.ClientID),
	)
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectClient resolves the project's client reference. A dangling
// reference yields nil without an error.
func (s *ProjectService) GetProjectClient(ctx context.Context, project *models.Project) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, project.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client for project %s: %w", project.ID, err)
	}
	if client == nil {
		s.logger.Debug("Project references a missing client",
			zap.String("project_id", project.ID),
			zap.String("client_id", project.ClientID),
		)
	}
	return client, nil
}

// UpdateProject accepts any status regardless of the current one.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("invalid status %q", *patch.Status)
	}

	project, err := s.projectRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error("Failed to update project", zap.String("project_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete project", zap.String("project_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}
	if project != nil {
		s.logger.Info("Project deleted", zap.String("project_id", id))
	}
	return project, nil
}
