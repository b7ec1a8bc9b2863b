package repository

import (
	"context"
	"fmt"

	"github.com/tripxplo/booking-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoVehicleRepository implements domain.VehicleRepository
type MongoVehicleRepository struct {
	collection *mongo.Collection
}

// NewMongoVehicleRepository creates a new vehicle repository
func NewMongoVehicleRepository(db *mongo.Database) *MongoVehicleRepository {
	return &MongoVehicleRepository{
		collection: db.Collection("vehicle"),
	}
}

func (r *MongoVehicleRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, idsFilter(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*domain.Vehicle
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &domain.Vehicle{
			ID:              asID(raw["_id"]),
			Name:            asString(raw["vehicleName"]),
			Price:           asFloat(raw["price"]),
			SeaterCapacity:  asInt(raw["seaterCapacity"]),
			LuggageCapacity: asInt(raw["luggageCapacity"]),
			IsAC:            asBool(raw["isAc"]),
			Inclusions:      asStringSlice(raw["inclusions"]),
		})
	}
	return vehicles, nil
}
