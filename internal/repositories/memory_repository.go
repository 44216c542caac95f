package repositories

import (
	"context"
	"fmt"
	"sync"

	"projectmgmt/internal/models"
)

// memoryCollection keeps documents in insertion order so List behaves like a
// natural-order collection scan.
type memoryCollection[T any] struct {
	mu    sync.RWMutex
	docs  map[string]T
	order []string
}

func newMemoryCollection[T any]() *memoryCollection[T] {
	return &memoryCollection[T]{docs: make(map[string]T)}
}

func (c *memoryCollection[T]) insert(id string, doc T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; ok {
		return fmt.Errorf("duplicate id %q", id)
	}
	c.docs[id] = doc
	c.order = append(c.order, id)
	return nil
}

func (c *memoryCollection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	return doc, ok
}

func (c *memoryCollection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := make([]T, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, c.docs[id])
	}
	return docs
}

func (c *memoryCollection[T]) update(id string, apply func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[id]
	if !ok {
		return doc, false
	}
	apply(&doc)
	c.docs[id] = doc
	return doc, true
}

func (c *memoryCollection[T]) remove(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[id]
	if !ok {
		return doc, false
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return doc, true
}

type MemoryClientRepository struct {
	clients *memoryCollection[models.Client]
}

func NewMemoryClientRepository() *MemoryClientRepository {
	return &MemoryClientRepository{clients: newMemoryCollection[models.Client]()}
}

func (r *MemoryClientRepository) Create(ctx context.Context, client *models.Client) error {
	doc := *client
	doc.Prepare()
	id, err := parseUUID(doc.ID)
	if err != nil {
		return err
	}
	doc.ID = id.String()
	if err := r.clients.insert(doc.ID, doc); err != nil {
		return err
	}
	*client = doc
	return nil
}

func (r *MemoryClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	key, err := memoryKey(id)
	if err != nil {
		return nil, err
	}
	client, ok := r.clients.get(key)
	if !ok {
		return nil, nil
	}
	return &client, nil
}

func (r *MemoryClientRepository) List(ctx context.Context) ([]models.Client, error) {
	return r.clients.list(), nil
}

func (r *MemoryClientRepository) Update(ctx context.Context, id string, patch models.ClientPatch) (*models.Client, error) {
	key, err := memoryKey(id)
	if err != nil {
		return nil, err
	}
	client, ok := r.clients.update(key, func(c *models.Client) { patch.Apply(c) })
	if !ok {
		return nil, nil
	}
	return &client, nil
}

func (r *MemoryClientRepository) Delete(ctx context.Context, id string) (*models.Client, error) {
	key, err := memoryKey(id)
	if err != nil {
		return nil, err
	}
	client, ok := r.clients.remove(key)
	if !ok {
		return nil, nil
	}
	return &client, nil
}

type MemoryProjectRepository struct {
	projects *memoryCollection[models.Project]
}

func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{projects: newMemoryCollection[models.Project]()}
}

func (r *MemoryProjectRepository) Create(ctx context.Context, project *models.Project) error {
	doc := *project
	doc.Prepare()
	id, err := parseUUID(doc.ID)
	if err != nil {
		return err
	}
	clientID, err := parseUUID(doc.ClientID)
	if err != nil {
		return err
	}
	doc.ID = id.String()
	doc.ClientID = clientID.String()
	if err := r.projects.insert(doc.ID, doc); err != nil {
		return err
	}
	*project = doc
	return nil
}

func (r *MemoryProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	key, err := memoryKey(id)
	if err != nil {
		return nil, err
	}
	project, ok := r.projects.get(key)
	if !ok {
		return nil, nil
	}
	return &project, nil
}

func (r *MemoryProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	return r.projects.list(), nil
}

func (r *MemoryProjectRepository) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	key, err := memoryKey(id)
	if err != nil {
		return nil, err
	}
	project, ok := r.projects.update(key, func(p *models.Project) { patch.Apply(p) })
	if !ok {
		return nil, nil
	}
	return &project, nil
}

func (r *MemoryProjectRepository) Delete(ctx context.Context, id string) (*models.Project, error) {
	key, err := memoryKey(id)
	if err != nil {
		return nil, err
	}
	project, ok := r.projects.remove(key)
	if !ok {
		return nil, nil
	}
	return &project, nil
}

// memoryKey maps every accepted spelling of a UUID (braces, urn:uuid:,
// upper case) onto the canonical form used as the map key.
func memoryKey(id string) (string, error) {
	parsed, err := parseUUID(id)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
