package guard

import (
	"errors"
	"testing"

	"github.com/gostream-official/songs/impl/faults"
	"github.com/gostream-official/songs/impl/models"
	"github.com/gostream-official/songs/pkg/store/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSongStore struct {
	FindItemsResp []models.SongInfo
	FindItemsErr  error
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
	return errors.New("not supported")
}

func TestAssertSongExists(t *testing.T) {
	songID := primitive.NewObjectID()
	songs := &fakeSongStore{
		FindItemsResp: []models.SongInfo{{ID: songID}},
	}

	err := AssertSongExists(songs, songID)

	require.NoError(t, err)

	// The check must stay a bounded, projected read.
	require.NotNil(t, songs.LastFilter)
	assert.Equal(t, uint32(1), songs.LastFilter.Limit)
	assert.Equal(t, []string{"_id"}, songs.LastFilter.Projection)
}

func TestAssertSongExistsMissingSong(t *testing.T) {
	songs := &fakeSongStore{
		FindItemsResp: []models.SongInfo{},
	}

	err := AssertSongExists(songs, primitive.NewObjectID())

	assert.ErrorIs(t, err, faults.ErrNotFound)
}

func TestAssertSongExistsStoreFailure(t *testing.T) {
	storeErr := errors.New("connection lost")
	songs := &fakeSongStore{
		FindItemsErr: storeErr,
	}

	err := AssertSongExists(songs, primitive.NewObjectID())

	require.Error(t, err)
	assert.NotErrorIs(t, err, faults.ErrNotFound)
}

func TestAssertNonEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	result, err := AssertNonEmpty(items)

	require.NoError(t, err)
	assert.Equal(t, items, result)
}

func TestAssertNonEmptyEmptySequence(t *testing.T) {
	_, err := AssertNonEmpty([]int{})

	assert.ErrorIs(t, err, faults.ErrNotFound)
}
