package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"projectmgmt/internal/metrics"
	"projectmgmt/internal/models"
)

const (
	clientsCollection  = "clients"
	projectsCollection = "projects"
)

type clientDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Phone string             `bson:"phone"`
}

func (d clientDocument) model() *models.Client {
	return &models.Client{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Email: d.Email,
		Phone: d.Phone,
	}
}

type projectDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	ClientID    primitive.ObjectID `bson:"clientId"`
}

func (d projectDocument) model() *models.Project {
	return &models.Project{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Status:      models.ProjectStatus(d.Status),
		ClientID:    d.ClientID.Hex(),
	}
}

type MongoClientRepository struct {
	coll *mongo.Collection
}

func NewMongoClientRepository(db *mongo.Database) *MongoClientRepository {
	return &MongoClientRepository{coll: db.Collection(clientsCollection)}
}

func (r *MongoClientRepository) Create(ctx context.Context, client *models.Client) error {
	defer metrics.ObserveStore("mongo", "insert", clientsCollection)()

	doc := clientDocument{
		ID:    primitive.NewObjectID(),
		Name:  client.Name,
		Email: client.Email,
		Phone: client.Phone,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	client.ID = doc.ID.Hex()
	return nil
}

func (r *MongoClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	defer metrics.ObserveStore("mongo", "find_by_id", clientsCollection)()

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc clientDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, noDocuments(err)
	}
	return doc.model(), nil
}

func (r *MongoClientRepository) List(ctx context.Context) ([]models.Client, error) {
	defer metrics.ObserveStore("mongo", "find", clientsCollection)()

	var docs []clientDocument
	if err := findAll(ctx, r.coll, &docs); err != nil {
		return nil, err
	}

	clients := make([]models.Client, 0, len(docs))
	for _, doc := range docs {
		clients = append(clients, *doc.model())
	}
	return clients, nil
}

func (r *MongoClientRepository) Update(ctx context.Context, id string, patch models.ClientPatch) (*models.Client, error) {
	defer metrics.ObserveStore("mongo", "update", clientsCollection)()

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}

	var doc clientDocument
	if err := findOneAndSet(ctx, r.coll, oid, set).Decode(&doc); err != nil {
		return nil, noDocuments(err)
	}
	return doc.model(), nil
}

func (r *MongoClientRepository) Delete(ctx context.Context, id string) (*models.Client, error) {
	defer metrics.ObserveStore("mongo", "delete", clientsCollection)()

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc clientDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, noDocuments(err)
	}
	return doc.model(), nil
}

type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewMongoProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectsCollection)}
}

func (r *MongoProjectRepository) Create(ctx context.Context, project *models.Project) error {
	defer metrics.ObserveStore("mongo", "insert", projectsCollection)()

	clientID, err := parseObjectID(project.ClientID)
	if err != nil {
		return err
	}

	doc := projectDocument{
		ID:          primitive.NewObjectID(),
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		ClientID:    clientID,
	}
	if doc.Status == "" {
		doc.Status = string(models.ProjectStatusNotStarted)
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}

	project.ID = doc.ID.Hex()
	project.Status = models.ProjectStatus(doc.Status)
	return nil
}

func (r *MongoProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	defer metrics.ObserveStore("mongo", "find_by_id", projectsCollection)()

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc projectDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, noDocuments(err)
	}
	return doc.model(), nil
}

func (r *MongoProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	defer metrics.ObserveStore("mongo", "find", projectsCollection)()

	var docs []projectDocument
	if err := findAll(ctx, r.coll, &docs); err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(docs))
	for _, doc := range docs {
		projects = append(projects, *doc.model())
	}
	return projects, nil
}

func (r *MongoProjectRepository) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	defer metrics.ObserveStore("mongo", "update", projectsCollection)()

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}

	var doc projectDocument
	if err := findOneAndSet(ctx, r.coll, oid, set).Decode(&doc); err != nil {
		return nil, noDocuments(err)
	}
	return doc.model(), nil
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id string) (*models.Project, error) {
	defer metrics.ObserveStore("mongo", "delete", projectsCollection)()

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc projectDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, noDocuments(err)
	}
	return doc.model(), nil
}

func findAll(ctx context.Context, coll *mongo.Collection, docs any) error {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, docs)
}

// findOneAndSet applies $set and returns the updated document. Mongo rejects an
// empty $set, so an empty patch becomes a plain lookup.
func findOneAndSet(ctx context.Context, coll *mongo.Collection, oid primitive.ObjectID, set bson.M) *mongo.SingleResult {
	filter := bson.M{"_id": oid}
	if len(set) == 0 {
		return coll.FindOne(ctx, filter)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts)
}

func noDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
