package queries

import (
	"github.com/gostream-official/songs/pkg/store/query"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The page size of the song listing.
const PageLimit = 5

// Description:
//
//	Builds the find query for one page of the song listing.
//	Pages are ordered by ascending id and bounded by PageLimit.
//	Object ids are monotonically ordered by creation, which gives a
//	stable forward-only cursor without a separate sequence counter.
//
// Parameters:
//
//	lastID The id of the last song of the previous page. Nil for the
//	       first page.
//
// Returns:
//
//	The find query for the page.
func PageFilter(lastID *primitive.ObjectID) *query.Filter {
	filter := &query.Filter{
		Sort: &query.Sort{
			Key:       "_id",
			Ascending: true,
		},
		Limit: PageLimit,
	}

	if lastID != nil {
		filter.Root = query.FilterOperatorGt{
			Key:   "_id",
			Value: *lastID,
		}
	}

	return filter
}

// Description:
//
//	Builds the find query for a full-text song search.
//	The caller guarantees a non-empty message, an empty message is
//	handled by falling back to the first listing page instead.
//
// Parameters:
//
//	message The text to search for.
//
// Returns:
//
//	The find query for the search.
func SearchFilter(message string) *query.Filter {
	return &query.Filter{
		Root: query.FilterOperatorText{
			Search: message,
		},
	}
}

// Description:
//
//	Builds the find query for the song existence check.
//	Limited to a single document and projected down to the id, the
//	result content is irrelevant for the check.
//
// Parameters:
//
//	songID The id of the song to check.
//
// Returns:
//
//	The find query for the check.
func SongExistsFilter(songID primitive.ObjectID) *query.Filter {
	return &query.Filter{
		Root: query.FilterOperatorEq{
			Key:   "_id",
			Value: songID,
		},
		Limit:      1,
		Projection: []string{"_id"},
	}
}

// Description:
//
//	Builds the find query for a single rating lookup.
//
// Parameters:
//
//	ratingID The id of the rating.
//
// Returns:
//
//	The find query for the lookup.
func RatingByIDFilter(ratingID primitive.ObjectID) *query.Filter {
	return &query.Filter{
		Root: query.FilterOperatorEq{
			Key:   "_id",
			Value: ratingID,
		},
		Limit: 1,
	}
}

// Description:
//
//	Builds the aggregation pipeline for the difficulty statistics of
//	the song catalog, optionally narrowed to a single level. All
//	matching songs collapse into one group computing the minimum,
//	mean and maximum difficulty.
//
// Parameters:
//
//	level The level to narrow to. Nil aggregates over all songs.
//
// Returns:
//
//	The aggregation pipeline.
func DifficultyPipeline(level *int) *query.Pipeline {
	pipeline := &query.Pipeline{}

	if level != nil {
		pipeline.Stages = append(pipeline.Stages, query.StageMatch{
			Root: query.FilterOperatorEq{
				Key:   "level",
				Value: *level,
			},
		})
	}

	pipeline.Stages = append(pipeline.Stages, query.StageGroup{
		Key: nil,
		Accumulators: []query.GroupAccumulator{
			{Name: "minDifficulty", Operator: "$min", Expression: "$difficulty"},
			{Name: "avgDifficulty", Operator: "$avg", Expression: "$difficulty"},
			{Name: "maxDifficulty", Operator: "$max", Expression: "$difficulty"},
		},
	})

	return pipeline
}

// Description:
//
//	Builds the aggregation pipeline for the rating statistics of a
//	single song. All ratings of the song collapse into one group
//	keyed by the song id, computing the minimum, mean and maximum
//	rating.
//
// Parameters:
//
//	songID The id of the rated song.
//
// Returns:
//
//	The aggregation pipeline.
func RatingPipeline(songID primitive.ObjectID) *query.Pipeline {
	return &query.Pipeline{
		Stages: []query.IStage{
			query.StageMatch{
				Root: query.FilterOperatorEq{
					Key:   "songId",
					Value: songID,
				},
			},
			query.StageGroup{
				Key: "$songId",
				Accumulators: []query.GroupAccumulator{
					{Name: "minRating", Operator: "$min", Expression: "$rating"},
					{Name: "avgRating", Operator: "$avg", Expression: "$rating"},
					{Name: "maxRating", Operator: "$max", Expression: "$rating"},
				},
			},
		},
	}
}
