package catalog

import (
	"errors"
	"testing"

	"github.com/gostream-official/songs/impl/faults"
	"github.com/gostream-official/songs/impl/models"
	"github.com/gostream-official/songs/impl/queries"
	"github.com/gostream-official/songs/pkg/store/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSongStore struct {
	FindItemsResp []models.SongInfo
	FindItemsErr  error
	AggregateFn   func(pipeline *query.Pipeline, results interface{}) error
	LastFilter    *query.Filter
}

func (s *fakeSongStore) FindItems(filter *query.Filter) ([]models.SongInfo, error) {
	s.LastFilter = filter
	return s.FindItemsResp, s.FindItemsErr
}

func (s *fakeSongStore) CreateItem(item *models.SongInfo) (primitive.ObjectID, error) {
	return primitive.NilObjectID, errors.New("not supported")
}

func (s *fakeSongStore) AggregateItems(pipeline *query.Pipeline, results interface{}) error {
	if s.AggregateFn == nil {
		return errors.New("not supported")
	}

	return s.AggregateFn(pipeline, results)
}

func seedSongs(count int) []models.SongInfo {
	songs := make([]models.SongInfo, 0, count)
	for i := 0; i < count; i++ {
		songs = append(songs, models.SongInfo{
			ID:     primitive.NewObjectID(),
			Artist: "The Yousicians",
			Title:  "Lycanthropic Metamorphosis",
		})
	}

	return songs
}

func TestListSongsFirstPage(t *testing.T) {
	songs := &fakeSongStore{
		FindItemsResp: seedSongs(5),
	}

	service := NewService(songs)

	items, err := service.ListSongs("")

	require.NoError(t, err)
	assert.Len(t, items, 5)

	// First page: no cursor, ascending id order, bounded page size.
	require.NotNil(t, songs.LastFilter)
	assert.Nil(t, songs.LastFilter.Root)
	assert.Equal(t, uint32(queries.PageLimit), songs.LastFilter.Limit)
	require.NotNil(t, songs.LastFilter.Sort)
	assert.Equal(t, "_id", songs.LastFilter.Sort.Key)
	assert.True(t, songs.LastFilter.Sort.Ascending)
}

func TestListSongsWithCursor(t *testing.T) {
	lastID := primitive.NewObjectID()
	songs := &fakeSongStore{
		FindItemsResp: seedSongs(1),
	}

	service := NewService(songs)

	_, err := service.ListSongs(lastID.Hex())

	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": bson.M{"$gt": lastID}}, songs.LastFilter.Translate())
}

func TestListSongsPastEndOfCollection(t *testing.T) {
	songs := &fakeSongStore{
		FindItemsResp: []models.SongInfo{},
	}

	service := NewService(songs)

	items, err := service.ListSongs(primitive.NewObjectID().Hex())

	// An exhausted cursor is an empty page, never a failure.
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListSongsMalformedCursor(t *testing.T) {
	songs := &fakeSongStore{}
	service := NewService(songs)

	_, err := service.ListSongs("123")

	assert.ErrorIs(t, err, faults.ErrInvalidIdentifier)
	assert.Nil(t, songs.LastFilter, "no store query on a rejected cursor")
}

func TestSearchSongs(t *testing.T) {
	songs := &fakeSongStore{
		FindItemsResp: seedSongs(2),
	}

	service := NewService(songs)

	items, err := service.SearchSongs("fastfinger")

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, bson.M{"$text": bson.M{"$search": "fastfinger"}}, songs.LastFilter.Translate())
}

func TestSearchSongsWithoutMatch(t *testing.T) {
	songs := &fakeSongStore{
		FindItemsResp: []models.SongInfo{},
	}

	service := NewService(songs)

	_, err := service.SearchSongs("foobar")

	assert.ErrorIs(t, err, faults.ErrNotFound)
}

func TestSearchSongsEmptyMessageDegradesToListing(t *testing.T) {
	songs := &fakeSongStore{
		FindItemsResp: seedSongs(5),
	}

	service := NewService(songs)

	items, err := service.SearchSongs("")

	require.NoError(t, err)
	assert.Len(t, items, 5)

	// Degrades to the first listing page, not to a text query.
	require.NotNil(t, songs.LastFilter)
	assert.Nil(t, songs.LastFilter.Root)
	assert.Equal(t, uint32(queries.PageLimit), songs.LastFilter.Limit)
}

func TestAverageDifficulty(t *testing.T) {
	songs := &fakeSongStore{
		AggregateFn: func(pipeline *query.Pipeline, results interface{}) error {
			rows := results.(*[]models.DifficultyAggregate)
			*rows = []models.DifficultyAggregate{
				{MinDifficulty: 9.1, AvgDifficulty: 10.32, MaxDifficulty: 14.6},
			}
			return nil
		},
	}

	service := NewService(songs)

	aggregate, err := service.AverageDifficulty(nil)

	require.NoError(t, err)
	assert.InDelta(t, 10.32, aggregate.AvgDifficulty, 0.001)
	assert.InDelta(t, 9.1, aggregate.MinDifficulty, 0.001)
	assert.InDelta(t, 14.6, aggregate.MaxDifficulty, 0.001)
}

func TestAverageDifficultyWithoutMatch(t *testing.T) {
	songs := &fakeSongStore{
		AggregateFn: func(pipeline *query.Pipeline, results interface{}) error {
			return nil
		},
	}

	service := NewService(songs)

	level := 99
	_, err := service.AverageDifficulty(&level)

	assert.ErrorIs(t, err, faults.ErrNotFound)
}

func TestAverageDifficultyStoreFailure(t *testing.T) {
	storeErr := errors.New("connection lost")
	songs := &fakeSongStore{
		AggregateFn: func(pipeline *query.Pipeline, results interface{}) error {
			return storeErr
		},
	}

	service := NewService(songs)

	_, err := service.AverageDifficulty(nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, faults.ErrNotFound)
}
