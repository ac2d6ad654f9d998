package repository

import (
	"context"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLeadRepository implements LeadRepository
type MongoLeadRepository struct {
	collection *mongo.Collection
}

// NewMongoLeadRepository creates a new lead repository
func NewMongoLeadRepository(db *mongo.Database) repository.LeadRepository {
	collection := db.Collection("leads")

	ctx := context.Background()

	// Unique index on confirmationId for customer-facing lookups
	confirmationIndex := mongo.IndexModel{
		Keys:    bson.M{"confirmationId": 1},
		Options: options.Index().SetUnique(true),
	}

	// Index on createdAt for the latest-lead lookup
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		confirmationIndex,
		createdAtIndex,
	})

	return &MongoLeadRepository{
		collection: collection,
	}
}

// Insert saves a new lead
func (r *MongoLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	_, err := r.collection.InsertOne(ctx, lead)
	return err
}

// FindByID finds a lead by internal identifier
func (r *MongoLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

// FindByConfirmationID finds a lead by its customer-facing token
func (r *MongoLeadRepository) FindByConfirmationID(ctx context.Context, confirmationID string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.collection.FindOne(ctx, bson.M{"confirmationId": confirmationID}).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

// FindLatest gets the most recently created lead
func (r *MongoLeadRepository) FindLatest(ctx context.Context) (*entity.Lead, error) {
	var lead entity.Lead
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}
