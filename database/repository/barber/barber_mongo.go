package barberRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBarberRepo implements BarberRepository using MongoDB.
type MongoBarberRepo struct {
	coll *mongo.Collection
}

// NewMongoBarberRepo creates a new instance of BarberRepository using MongoDB.
func NewMongoBarberRepo() BarberRepository {
	coll := database.Collection("barbers")
	repo := &MongoBarberRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create barber indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBarberRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBarberRepo) GetByID(id string) (*models.Barber, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var barber models.Barber
	filter := bson.M{"id": id}
	err := r.coll.FindOne(ctx, filter).Decode(&barber)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch barber with id %s: %w", id, err)
	}
	return &barber, nil
}

func (r *MongoBarberRepo) GetAllActive() ([]models.Barber, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve barbers: %w", err)
	}
	defer cursor.Close(ctx)

	var barbers []models.Barber
	for cursor.Next(ctx) {
		var b models.Barber
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode barber: %w", err)
		}
		barbers = append(barbers, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return barbers, nil
}

// Upsert writes the full profile document keyed by its ID, creating it on
// first setup and replacing it on later edits (last write wins).
func (r *MongoBarberRepo) Upsert(barber *models.Barber) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": barber.ID}
	update := bson.M{"$set": barber}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert barber with id %s: %w", barber.ID, err)
	}
	return nil
}

// UpdateWithDocument updates a barber using a custom update document.
func (r *MongoBarberRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update barber with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("barber with id %s not found", id)
	}
	return nil
}
