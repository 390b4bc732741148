package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/eshabeddings/catalog-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCollection = "products"

// productDoc is the persisted shape: one flat document per product.
type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image"`
	Category    string             `bson:"category"`
}

func (d productDoc) toModel() models.Product {
	return models.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		Category:    d.Category,
	}
}

// MongoProductRepository implements ProductRepository on a MongoDB collection.
type MongoProductRepository struct {
	col    *mongo.Collection
	client *mongo.Client
}

// NewMongoProductRepository connects to uri and returns a repository over
// the products collection of db. The caller must eventually call Close.
func NewMongoProductRepository(ctx context.Context, uri, db string) (*MongoProductRepository, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("repository: connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("repository: ping: %w", err)
	}

	col := client.Database(db).Collection(productCollection)

	// Category index keeps filtered listings cheap as the catalog grows.
	_, _ = col.Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})

	return &MongoProductRepository{col: col, client: client}, nil
}

// Close disconnects the underlying client.
func (r *MongoProductRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// ListAll returns every stored product. Order is whatever the collection
// scan yields; the storefront sorts nothing server-side.
func (r *MongoProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("repository: find: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("repository: decode: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, doc.toModel())
	}
	return products, nil
}

// GetByID returns the product matching id
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: find one: %w", err)
	}

	product := doc.toModel()
	return &product, nil
}

// Create inserts a new document and returns it with the assigned ID
func (r *MongoProductRepository) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	doc := productDoc{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("repository: insert: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("repository: unexpected inserted id type %T", res.InsertedID)
	}

	doc.ID = oid
	product := doc.toModel()
	return &product, nil
}

// UpdateByID replaces the content fields of the document matching id
func (r *MongoProductRepository) UpdateByID(ctx context.Context, id string, input models.ProductInput) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
		"image":       input.Image,
		"category":    input.Category,
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("repository: update: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DeleteByID removes the document matching id
func (r *MongoProductRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("repository: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}
