package catalog

import (
	"github.com/gostream-official/songs/impl/guard"
	"github.com/gostream-official/songs/impl/identifier"
	"github.com/gostream-official/songs/impl/models"
	"github.com/gostream-official/songs/impl/queries"
	"github.com/gostream-official/songs/pkg/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Description:
//
//	The song catalog service.
//	Covers listing, full-text search and difficulty aggregation.
type Service interface {

	// Lists one page of songs, ordered by ascending id. An empty
	// lastID lists the first page.
	ListSongs(lastID string) ([]models.SongInfo, error)

	// Computes the difficulty statistics of the catalog, optionally
	// narrowed to a single level.
	AverageDifficulty(level *int) (*models.DifficultyAggregate, error)

	// Searches songs by free text. An empty message degrades to the
	// first listing page.
	SearchSongs(message string) ([]models.SongInfo, error)
}

type service struct {
	songs store.Store[models.SongInfo]
}

// Description:
//
//	Creates a song catalog service on top of the given song store.
//
// Parameters:
//
//	songs The song store.
//
// Returns:
//
//	The created service.
func NewService(songs store.Store[models.SongInfo]) Service {
	return &service{
		songs: songs,
	}
}

func (service *service) ListSongs(lastID string) ([]models.SongInfo, error) {
	var cursor *primitive.ObjectID

	if lastID != "" {
		id, err := identifier.Decode(lastID)
		if err != nil {
			return nil, err
		}

		cursor = &id
	}

	// A cursor at or past the end of the collection yields an empty
	// page, not a not-found failure. Pagination terminates naturally.
	return service.songs.FindItems(queries.PageFilter(cursor))
}

func (service *service) AverageDifficulty(level *int) (*models.DifficultyAggregate, error) {
	rows := make([]models.DifficultyAggregate, 0)

	if err := service.songs.AggregateItems(queries.DifficultyPipeline(level), &rows); err != nil {
		return nil, err
	}

	rows, err := guard.AssertNonEmpty(rows)
	if err != nil {
		return nil, err
	}

	return &rows[0], nil
}

func (service *service) SearchSongs(message string) ([]models.SongInfo, error) {
	if message == "" {
		return service.ListSongs("")
	}

	items, err := service.songs.FindItems(queries.SearchFilter(message))
	if err != nil {
		return nil, err
	}

	return guard.AssertNonEmpty(items)
}
