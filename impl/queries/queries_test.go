package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPageFilterFirstPage(t *testing.T) {
	filter := PageFilter(nil)

	assert.Nil(t, filter.Root)
	assert.Equal(t, uint32(PageLimit), filter.Limit)

	require.NotNil(t, filter.Sort)
	assert.Equal(t, "_id", filter.Sort.Key)
	assert.True(t, filter.Sort.Ascending)
}

func TestPageFilterWithCursor(t *testing.T) {
	lastID := primitive.NewObjectID()
	filter := PageFilter(&lastID)

	assert.Equal(t, uint32(PageLimit), filter.Limit)
	assert.Equal(t, bson.M{"_id": bson.M{"$gt": lastID}}, filter.Translate())
}

func TestSearchFilter(t *testing.T) {
	filter := SearchFilter("fastfinger")

	assert.Equal(t, bson.M{"$text": bson.M{"$search": "fastfinger"}}, filter.Translate())
	assert.Zero(t, filter.Limit)
}

func TestSongExistsFilter(t *testing.T) {
	songID := primitive.NewObjectID()
	filter := SongExistsFilter(songID)

	assert.Equal(t, bson.M{"_id": songID}, filter.Translate())
	assert.Equal(t, uint32(1), filter.Limit)
	assert.Equal(t, []string{"_id"}, filter.Projection)
}

func TestRatingByIDFilter(t *testing.T) {
	ratingID := primitive.NewObjectID()
	filter := RatingByIDFilter(ratingID)

	assert.Equal(t, bson.M{"_id": ratingID}, filter.Translate())
	assert.Equal(t, uint32(1), filter.Limit)
}

func TestDifficultyPipelineWithoutLevel(t *testing.T) {
	pipeline := DifficultyPipeline(nil)

	translated := pipeline.Translate()
	require.Len(t, translated, 1)

	assert.Equal(t, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "minDifficulty", Value: bson.M{"$min": "$difficulty"}},
		{Key: "avgDifficulty", Value: bson.M{"$avg": "$difficulty"}},
		{Key: "maxDifficulty", Value: bson.M{"$max": "$difficulty"}},
	}}}, translated[0])
}

func TestDifficultyPipelineWithLevel(t *testing.T) {
	level := 6
	pipeline := DifficultyPipeline(&level)

	translated := pipeline.Translate()
	require.Len(t, translated, 2)

	assert.Equal(t, bson.D{{Key: "$match", Value: bson.M{"level": 6}}}, translated[0])
}

func TestRatingPipeline(t *testing.T) {
	songID := primitive.NewObjectID()
	pipeline := RatingPipeline(songID)

	translated := pipeline.Translate()
	require.Len(t, translated, 2)

	assert.Equal(t, bson.D{{Key: "$match", Value: bson.M{"songId": songID}}}, translated[0])
	assert.Equal(t, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$songId"},
		{Key: "minRating", Value: bson.M{"$min": "$rating"}},
		{Key: "avgRating", Value: bson.M{"$avg": "$rating"}},
		{Key: "maxRating", Value: bson.M{"$max": "$rating"}},
	}}}, translated[1])
}
