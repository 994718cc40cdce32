package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	triperrors "tripplanner/internal/trips/errors"
	"tripplanner/pkg/config"
	"tripplanner/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "trips"

type TripRepository interface {
	FindAll(ctx context.Context) ([]*model.Trip, error)
	FindByID(ctx context.Context, id string) (*model.Trip, error)
	Insert(ctx context.Context, trip *model.Trip) error
	Replace(ctx context.Context, id string, trip *model.Trip) error
	Delete(ctx context.Context, id string) error
}

type mongoTripRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoTripRepository(cfg *config.Config) TripRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTripRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoTripRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoTripRepository) FindAll(ctx context.Context) ([]*model.Trip, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []*model.Trip
	if err = cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}

	return trips, nil
}

func (r *mongoTripRepository) FindByID(ctx context.Context, id string) (*model.Trip, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", triperrors.ErrInvalidID, id)
	}

	var trip model.Trip
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, triperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trip: %w", err)
	}

	return &trip, nil
}

func (r *mongoTripRepository) Insert(ctx context.Context, trip *model.Trip) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	trip.CreatedAt = &now

	result, err := r.collection.InsertOne(ctx, trip)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		trip.ID = oid.Hex()
	}
	return nil
}

// Replace overwrites all validated fields by id ($set of the full payload)
// and stamps updatedAt. createdAt stays untouched.
func (r *mongoTripRepository) Replace(ctx context.Context, id string, trip *model.Trip) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", triperrors.ErrInvalidID, id)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	trip.UpdatedAt = &now

	update := bson.M{
		"$set": bson.M{
			"title":        trip.Title,
			"destination":  trip.Destination,
			"category":     trip.Category,
			"durationDays": trip.DurationDays,
			"price":        trip.Price,
			"difficulty":   trip.Difficulty,
			"description":  trip.Description,
			"updatedAt":    trip.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}

	if result.MatchedCount == 0 {
		return triperrors.ErrNotFound
	}

	trip.ID = id
	return nil
}

func (r *mongoTripRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", triperrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if result.DeletedCount == 0 {
		return triperrors.ErrNotFound
	}

	return nil
}
