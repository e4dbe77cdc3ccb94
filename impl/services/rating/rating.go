package rating

import (
	"fmt"

	"github.com/gostream-official/songs/impl/faults"
	"github.com/gostream-official/songs/impl/guard"
	"github.com/gostream-official/songs/impl/identifier"
	"github.com/gostream-official/songs/impl/models"
	"github.com/gostream-official/songs/impl/queries"
	"github.com/gostream-official/songs/pkg/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The inclusive bounds of a valid rating value.
const (
	MinRating = 1
	MaxRating = 5
)

// Description:
//
//	The rating service.
//	Covers rating submission, lookup and per-song aggregation.
type Service interface {

	// Creates a rating for a song and returns the store-assigned id
	// of the created rating. Duplicate submissions create duplicate
	// ratings, there is no idempotency key.
	CreateRating(songIDRaw string, value int) (primitive.ObjectID, error)

	// Looks up a single rating by its id.
	GetRating(ratingIDRaw string) (*models.RatingInfo, error)

	// Computes the rating statistics of a single song.
	AverageRating(songIDRaw string) (*models.RatingAggregate, error)
}

type service struct {
	songs   store.Store[models.SongInfo]
	ratings store.Store[models.RatingInfo]
}

// Description:
//
//	Creates a rating service on top of the given stores.
//
// Parameters:
//
//	songs 	The song store, consulted for existence checks.
//	ratings The rating store.
//
// Returns:
//
//	The created service.
func NewService(songs store.Store[models.SongInfo], ratings store.Store[models.RatingInfo]) Service {
	return &service{
		songs:   songs,
		ratings: ratings,
	}
}

func (service *service) CreateRating(songIDRaw string, value int) (primitive.ObjectID, error) {
	songID, err := identifier.Decode(songIDRaw)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if value < MinRating || value > MaxRating {
		return primitive.NilObjectID, fmt.Errorf("%w: %d", faults.ErrInvalidRating, value)
	}

	// Check-then-insert is not transactional. A song deleted between
	// the existence check and the insert leaves an orphaned rating,
	// an accepted race.
	if err := guard.AssertSongExists(service.songs, songID); err != nil {
		return primitive.NilObjectID, err
	}

	rating := models.RatingInfo{
		SongID: songID,
		Rating: value,
	}

	return service.ratings.CreateItem(&rating)
}

func (service *service) GetRating(ratingIDRaw string) (*models.RatingInfo, error) {
	ratingID, err := identifier.Decode(ratingIDRaw)
	if err != nil {
		return nil, err
	}

	items, err := service.ratings.FindItems(queries.RatingByIDFilter(ratingID))
	if err != nil {
		return nil, err
	}

	items, err = guard.AssertNonEmpty(items)
	if err != nil {
		return nil, err
	}

	return &items[0], nil
}

func (service *service) AverageRating(songIDRaw string) (*models.RatingAggregate, error) {
	songID, err := identifier.Decode(songIDRaw)
	if err != nil {
		return nil, err
	}

	// The existence check runs before the aggregation so that a song
	// which never existed and a song with zero ratings stay
	// distinguishable: the former fails with not-found, the latter
	// yields a zeroed aggregate.
	if err := guard.AssertSongExists(service.songs, songID); err != nil {
		return nil, err
	}

	rows := make([]models.RatingAggregate, 0)
	if err := service.ratings.AggregateItems(queries.RatingPipeline(songID), &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return &models.RatingAggregate{
			SongID: songID,
		}, nil
	}

	return &rows[0], nil
}
