package repositories

import (
	"context"
	"errors"

	"projectmgmt/internal/models"
)

// ErrInvalidID is returned when an id is not in the format the store generates.
var ErrInvalidID = errors.New("invalid id")

// Lookups return (nil, nil) when no document matches. Update and Delete do
// the same for an id that does not exist.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, id string, patch models.ClientPatch) (*models.Client, error)
	Delete(ctx context.Context, id string) (*models.Client, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id string) (*models.Project, error)
}
