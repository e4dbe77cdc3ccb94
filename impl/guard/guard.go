package guard

import (
	"fmt"

	"github.com/gostream-official/songs/impl/faults"
	"github.com/gostream-official/songs/impl/models"
	"github.com/gostream-official/songs/impl/queries"
	"github.com/gostream-official/songs/pkg/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Description:
//
//	Asserts that a song with the given id exists in the store.
//	The check reads a single projected document and has no side
//	effects. It is not transactional with any subsequent write, a
//	deletion between check and write is an accepted race.
//
// Parameters:
//
//	songs 	The song store to check against.
//	songID 	The id of the song.
//
// Returns:
//
//	ErrNotFound if no song with the given id exists.
//	An error if the store request fails.
func AssertSongExists(songs store.Store[models.SongInfo], songID primitive.ObjectID) error {
	items, err := songs.FindItems(queries.SongExistsFilter(songID))
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return fmt.Errorf("%w: song %s", faults.ErrNotFound, songID.Hex())
	}

	return nil
}

// Description:
//
//	Asserts that a result sequence is non-empty.
//	Passes the sequence through unchanged when it is.
//
// Parameters:
//
//	items The result sequence to check.
//
// Returns:
//
//	The unchanged sequence, or ErrNotFound if it is empty.
func AssertNonEmpty[T any](items []T) ([]T, error) {
	if len(items) == 0 {
		return nil, faults.ErrNotFound
	}

	return items, nil
}
