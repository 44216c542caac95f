package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"projectmgmt/internal/metrics"
	"projectmgmt/internal/models"
)

const clientColumns = `id::text, name, email, phone`

type PostgresClientRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresClientRepository(pool *pgxpool.Pool) *PostgresClientRepository {
	return &PostgresClientRepository{pool: pool}
}

func (r *PostgresClientRepository) Create(ctx context.Context, client *models.Client) error {
	defer metrics.ObserveStore("postgres", "insert", "clients")()

	doc := *client
	doc.Prepare()
	clientID, err := parseUUID(doc.ID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO clients (id, name, email, phone)
		VALUES ($1, $2, $3, $4)
	`

	_, err = r.pool.Exec(ctx, query,
		clientID,
		doc.Name,
		doc.Email,
		doc.Phone,
	)
	if err != nil {
		return err
	}

	doc.ID = clientID.String()
	*client = doc
	return nil
}

func (r *PostgresClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	defer metrics.ObserveStore("postgres", "find_by_id", "clients")()

	clientID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	return scanClient(r.pool.QueryRow(ctx, query, clientID))
}

func (r *PostgresClientRepository) List(ctx context.Context) ([]models.Client, error) {
	defer metrics.ObserveStore("postgres", "find", "clients")()

	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var client models.Client
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.Phone,
		)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *PostgresClientRepository) Update(ctx context.Context, id string, patch models.ClientPatch) (*models.Client, error) {
	defer metrics.ObserveStore("postgres", "update", "clients")()

	clientID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE clients SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone)
		WHERE id = $1
		RETURNING ` + clientColumns

	return scanClient(r.pool.QueryRow(ctx, query,
		clientID,
		patch.Name,
		patch.Email,
		patch.Phone,
	))
}

// Delete removes the client only. Projects that reference it keep their client_id.
func (r *PostgresClientRepository) Delete(ctx context.Context, id string) (*models.Client, error) {
	defer metrics.ObserveStore("postgres", "delete", "clients")()

	clientID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `DELETE FROM clients WHERE id = $1 RETURNING ` + clientColumns

	return scanClient(r.pool.QueryRow(ctx, query, clientID))
}

func scanClient(row pgx.Row) (*models.Client, error) {
	var client models.Client
	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}
