package models

import "time"

// Location is a physical shop location with display address and coordinates.
type Location struct {
	Address   string  `bson:"address" json:"address"`
	Latitude  float64 `bson:"lat" json:"lat"`
	Longitude float64 `bson:"lng" json:"lng"`
}

// WorkingHours holds same-day opening hours as "HH:MM" strings, open < close.
type WorkingHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// Barber is a shop profile owned by a user with the barber role. The
// document ID equals the owning user's ID.
type Barber struct {
	ID           string       `bson:"id" json:"id"`
	UserID       string       `bson:"userId" json:"userId"`
	ShopName     string       `bson:"shopName" json:"shopName"`
	Location     Location     `bson:"location" json:"location"`
	Contact      string       `bson:"contact" json:"contact"`
	WorkingHours WorkingHours `bson:"workingHours" json:"workingHours"`
	Images       []string     `bson:"images" json:"images"`
	Rating       float64      `bson:"rating" json:"rating"`
	TotalRatings int          `bson:"totalRatings" json:"totalRatings"`
	IsActive     bool         `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// BarberWithDistance pairs a barber with its computed distance from the
// requesting customer. Distance is zero when coordinates are unknown.
type BarberWithDistance struct {
	Barber        `bson:",inline"`
	Distance      float64 `json:"distance"`
	DistanceLabel string  `json:"distanceLabel,omitempty"`
}
