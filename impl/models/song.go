package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Description:
//
//	The data model definition for a song.
//	This is a direct reference to the database data model.
type SongInfo struct {

	// The id of the song (primary key, store-assigned).
	ID primitive.ObjectID `json:"_id" bson:"_id"`

	// The artist of the song.
	Artist string `json:"artist" bson:"artist"`

	// The title of the song.
	Title string `json:"title" bson:"title"`

	// The difficulty of the song.
	Difficulty float64 `json:"difficulty" bson:"difficulty"`

	// The difficulty level of the song.
	Level int `json:"level" bson:"level"`

	// The release date of the song.
	Released string `json:"released" bson:"released"`
}

// Description:
//
//	The aggregated difficulty statistics over a set of songs.
type DifficultyAggregate struct {

	// The minimum difficulty.
	MinDifficulty float64 `json:"minDifficulty" bson:"minDifficulty"`

	// The mean difficulty.
	AvgDifficulty float64 `json:"avgDifficulty" bson:"avgDifficulty"`

	// The maximum difficulty.
	MaxDifficulty float64 `json:"maxDifficulty" bson:"maxDifficulty"`
}
