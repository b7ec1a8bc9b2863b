package domain

import "context"

// Vehicle is a transport option attached to a package at a flat price.
type Vehicle struct {
	ID              string   `json:"id" bson:"_id,omitempty"`
	Name            string   `json:"vehicleName" bson:"vehicleName"`
	Price           float64  `json:"price" bson:"price"`
	SeaterCapacity  int      `json:"seaterCapacity" bson:"seaterCapacity"`
	LuggageCapacity int      `json:"luggageCapacity" bson:"luggageCapacity"`
	IsAC            bool     `json:"isAc" bson:"isAc"`
	Inclusions      []string `json:"inclusions" bson:"inclusions"`
}

// VehicleRepository provides key-set lookups of vehicle documents
type VehicleRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*Vehicle, error)
}
