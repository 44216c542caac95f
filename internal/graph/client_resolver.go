package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"projectmgmt/internal/models"
	"projectmgmt/internal/services"
)

type clientResolver struct {
	client models.Client
}

func newClientResolver(client *models.Client) *clientResolver {
	if client == nil {
		return nil
	}
	return &clientResolver{client: *client}
}

func (r *clientResolver) ID() graphql.ID { return graphql.ID(r.client.ID) }
func (r *clientResolver) Name() string   { return r.client.Name }
func (r *clientResolver) Email() string  { return r.client.Email }
func (r *clientResolver) Phone() string  { return r.client.Phone }

func (r *Resolver) Clients(ctx context.Context) ([]*clientResolver, error) {
	clients, err := r.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*clientResolver, 0, len(clients))
	for i := range clients {
		resolvers = append(resolvers, newClientResolver(&clients[i]))
	}
	return resolvers, nil
}

func (r *Resolver) Client(ctx context.Context, args struct{ ID *graphql.ID }) (*clientResolver, error) {
	if args.ID == nil {
		return nil, nil
	}
	client, err := r.clients.GetClient(ctx, string(*args.ID))
	if err != nil {
		return nil, err
	}
	return newClientResolver(client), nil
}

func (r *Resolver) AddClient(ctx context.Context, args struct {
	Name  string
	Email string
	Phone string
}) (*clientResolver, error) {
	client, err := r.clients.CreateClient(ctx, services.CreateClientRequest{
		Name:  args.Name,
		Email: args.Email,
		Phone: args.Phone,
	})
	if err != nil {
		return nil, err
	}
	return newClientResolver(client), nil
}

func (r *Resolver) DeleteClient(ctx context.Context, args struct{ ID graphql.ID }) (*clientResolver, error) {
	client, err := r.clients.DeleteClient(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return newClientResolver(client), nil
}

func (r *Resolver) UpdateClient(ctx context.Context, args struct {
	ID    graphql.ID
	Name  *string
	Email *string
	Phone *string
}) (*clientResolver, error) {
	client, err := r.clients.UpdateClient(ctx, string(args.ID), models.ClientPatch{
		Name:  args.Name,
		Email: args.Email,
		Phone: args.Phone,
	})
	if err != nil {
		return nil, err
	}
	return newClientResolver(client), nil
}
