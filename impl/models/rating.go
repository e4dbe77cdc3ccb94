package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Description:
//
//	The data model definition for a user-submitted rating.
//	This is a direct reference to the database data model.
type RatingInfo struct {

	// The id of the rating (primary key, store-assigned).
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`

	// The id of the rated song. Not enforced as a foreign key by the
	// store, validated at write time instead.
	SongID primitive.ObjectID `json:"songId" bson:"songId"`

	// The rating value, an integer between 1 and 5 inclusive.
	Rating int `json:"rating" bson:"rating"`
}

// Description:
//
//	The aggregated rating statistics for a single song.
type RatingAggregate struct {

	// The id of the rated song.
	SongID primitive.ObjectID `json:"songId" bson:"_id"`

	// The minimum rating.
	MinRating int `json:"minRating" bson:"minRating"`

	// The mean rating.
	AvgRating float64 `json:"avgRating" bson:"avgRating"`

	// The maximum rating.
	MaxRating int `json:"maxRating" bson:"maxRating"`
}
