package repository

import (
	"context"
	"fmt"

	"github.com/tripxplo/booking-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoHotelRoomRepository implements domain.HotelRoomRepository
type MongoHotelRoomRepository struct {
	collection *mongo.Collection
}

// NewMongoHotelRoomRepository creates a new hotel room repository
func NewMongoHotelRoomRepository(db *mongo.Database) *MongoHotelRoomRepository {
	return &MongoHotelRoomRepository{
		collection: db.Collection("hotelRooms"),
	}
}

// GetByIDs resolves room documents by key set. Unknown ids are simply absent
// from the result; the pricing layer skips slots it cannot resolve.
func (r *MongoHotelRoomRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.HotelRoom, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, idsFilter(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to find hotel rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*domain.HotelRoom
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		rooms = append(rooms, mapBsonToHotelRoom(raw))
	}
	return rooms, nil
}

func mapBsonToHotelRoom(raw bson.M) *domain.HotelRoom {
	room := &domain.HotelRoom{
		ID:           asID(raw["_id"]),
		HotelName:    asString(raw["hotelName"]),
		RoomType:     asString(raw["roomType"]),
		MaxAdult:     asInt(raw["maxAdult"]),
		MaxChild:     asInt(raw["maxChild"]),
		MaxInfant:    asInt(raw["maxInfant"]),
		RoomCapacity: asInt(raw["roomCapacity"]),
		IsAC:         asBool(raw["isAc"]),
	}

	for _, item := range asArray(raw["mealPlans"]) {
		doc := asDoc(item)
		if doc == nil {
			continue
		}
		room.MealPlans = append(room.MealPlans, domain.MealPlanPrice{
			MealPlan:   asString(doc["mealPlan"]),
			RoomPrice:  asFloat(doc["roomPrice"]),
			GstPer:     asFloat(doc["gstPer"]),
			ExtraAdult: asFloat(doc["extraAdult"]),
			ChildPrice: asFloat(doc["childPrice"]),
			SeasonType: asString(doc["seasonType"]),
			StartDates: asTimeSlice(doc["startDate"]),
			EndDates:   asTimeSlice(doc["endDate"]),
		})
	}

	return room
}
