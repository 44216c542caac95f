package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"projectmgmt/internal/metrics"
	"projectmgmt/internal/models"
	"projectmgmt/internal/utils"
)

const projectColumns = `id::text, name, description, status::text, client_id::text`

type PostgresProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProjectRepository(pool *pgxpool.Pool) *PostgresProjectRepository {
	return &PostgresProjectRepository{pool: pool}
}

func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	defer metrics.ObserveStore("postgres", "insert", "projects")()

	doc := *project
	doc.Prepare()
	projectID, err := parseUUID(doc.ID)
	if err != nil {
		return err
	}
	clientID, err := parseUUID(doc.ClientID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (id, name, description, status, client_id)
		VALUES ($1, $2, $3, $4::text::project_status_t, $5)
	`

	_, err = r.pool.Exec(ctx, query,
		projectID,
		doc.Name,
		doc.Description,
		string(doc.Status),
		clientID,
	)
	if err != nil {
		return err
	}

	doc.ID = projectID.String()
	doc.ClientID = clientID.String()
	*project = doc
	return nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	defer metrics.ObserveStore("postgres", "find_by_id", "projects")()

	projectID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	return scanProject(r.pool.QueryRow(ctx, query, projectID))
}

func (r *PostgresProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	defer metrics.ObserveStore("postgres", "find", "projects")()

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var project models.Project
		if err := scanProjectInto(rows, &project); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// Update writes only the fields set in patch; NULL parameters keep the stored value.
func (r *PostgresProjectRepository) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	defer metrics.ObserveStore("postgres", "update", "projects")()

	projectID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	query := `
		UPDATE projects SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			status = COALESCE($4::text::project_status_t, status)
		WHERE id = $1
		RETURNING ` + projectColumns

	return scanProject(r.pool.QueryRow(ctx, query,
		projectID,
		patch.Name,
		patch.Description,
		status,
	))
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id string) (*models.Project, error) {
	defer metrics.ObserveStore("postgres", "delete", "projects")()

	projectID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `DELETE FROM projects WHERE id = $1 RETURNING ` + projectColumns

	return scanProject(r.pool.QueryRow(ctx, query, projectID))
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var project models.Project
	if err := scanProjectInto(row, &project); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func scanProjectInto(row pgx.Row, project *models.Project) error {
	var status string
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&status,
		&project.ClientID,
	)
	project.Status = models.ProjectStatus(status)
	return err
}

func parseUUID(id string) (uuid.UUID, error) {
	parsed, err := utils.ParseUUID(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return parsed, nil
}
