package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"projectmgmt/internal/models"
	"projectmgmt/internal/repositories"
)

type ClientService struct {
	clientRepo repositories.ClientRepository
	logger     *zap.Logger
}

func NewClientService(clientRepo repositories.ClientRepository, logger *zap.Logger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

type CreateClientRequest struct {
	Name  string
	Email string
	Phone string
}

func (s *ClientService) CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error) {
	client := &models.Client{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		s.logger.Error("Failed to create client", zap.Error(err))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.logger.Info("Client created", zap.String("client_id", client.ID))
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]models.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// UpdateClient returns nil when no client has the given id.
func (s *ClientService) UpdateClient(ctx context.Context, id string, patch models.ClientPatch) (*models.Client, error) {
	client, err := s.clientRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error("Failed to update client", zap.String("client_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeleteClient does not touch projects that reference the client.
func (s *ClientService) DeleteClient(ctx context.Context, id string) (*models.Client, error) {
	client, err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete client", zap.String("client_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}
	if client != nil {
		s.logger.Info("Client deleted", zap.String("client_id", id))
	}
	return client, nil
}
