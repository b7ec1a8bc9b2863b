package repository

import (
	"context"
	"fmt"

	"github.com/tripxplo/booking-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPackageRepository implements domain.PackageRepository
type MongoPackageRepository struct {
	collection *mongo.Collection
}

// NewMongoPackageRepository creates a new package repository.
// Note: no index creation, the collection is owned by the admin system.
func NewMongoPackageRepository(db *mongo.Database) *MongoPackageRepository {
	return &MongoPackageRepository{
		collection: db.Collection("package"),
	}
}

func (r *MongoPackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	var raw bson.M
	if err := r.collection.FindOne(ctx, idFilter(id)).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return mapBsonToPackage(raw), nil
}

func (r *MongoPackageRepository) List(ctx context.Context) ([]*domain.Package, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []*domain.Package
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		packages = append(packages, mapBsonToPackage(raw))
	}
	return packages, nil
}

func mapBsonToPackage(raw bson.M) *domain.Package {
	pkg := &domain.Package{
		ID:              asID(raw["_id"]),
		Name:            asString(raw["packageName"]),
		Images:          asStringSlice(raw["images"]),
		NoOfDays:        asInt(raw["noOfDays"]),
		NoOfNight:       asInt(raw["noOfNight"]),
		VehicleIDs:      asStringSlice(raw["vehicleId"]),
		AdditionalFee:   asFloat(raw["additionalFee"]),
		MarketingFee:    asFloat(raw["marketingFee"]),
		AgentCommission: asFloat(raw["agentCommission"]),
		GstPer:          asFloat(raw["gstPer"]),
		TransportFee:    asFloat(raw["transportFee"]),
		ActivityPrice:   asFloat(raw["activityPrice"]),
		CreatedAt:       asTime(raw["created_at"]),
		UpdatedAt:       asTime(raw["updated_at"]),
	}

	for _, item := range asArray(raw["destinationId"]) {
		doc := asDoc(item)
		if doc == nil {
			continue
		}
		pkg.Destinations = append(pkg.Destinations, domain.DestinationStay{
			DestinationID: asID(doc["destinationId"]),
			NoOfNight:     asInt(doc["noOfNight"]),
		})
	}

	for _, item := range asArray(raw["hotelDetails"]) {
		doc := asDoc(item)
		if doc == nil {
			continue
		}
		pkg.HotelDetails = append(pkg.HotelDetails, domain.HotelStaySlot{
			HotelID:   asID(doc["hotelId"]),
			MealPlan:  asString(doc["mealPlan"]),
			NoOfNight: asInt(doc["noOfNight"]),
			StartDay:  asInt(doc["startDay"]),
			EndDay:    asInt(doc["endDay"]),
			SortOrder: asInt(doc["sortOrder"]),
			IsAddOn:   asBool(doc["isAddOn"]),
		})
	}

	for _, item := range asArray(raw["dayActivities"]) {
		doc := asDoc(item)
		if doc == nil {
			continue
		}
		day := domain.DayActivity{Day: asInt(doc["day"])}
		for _, ev := range asArray(doc["events"]) {
			evDoc := asDoc(ev)
			if evDoc == nil {
				continue
			}
			day.Events = append(day.Events, domain.ActivityEvent{
				Name:  asString(evDoc["name"]),
				Price: asFloat(evDoc["price"]),
			})
		}
		pkg.DayActivities = append(pkg.DayActivities, day)
	}

	for _, item := range asArray(raw["validPeriods"]) {
		doc := asDoc(item)
		if doc == nil {
			continue
		}
		pkg.ValidPeriods = append(pkg.ValidPeriods, domain.ValidPeriod{
			StartDate: asTime(doc["startDate"]),
			EndDate:   asTime(doc["endDate"]),
		})
	}

	return pkg
}
