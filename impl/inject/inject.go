package inject

import (
	"github.com/gostream-official/songs/impl/services/catalog"
	"github.com/gostream-official/songs/impl/services/rating"
)

// Description:
//
//	The dependency injector for all endpoint handlers.
//	Carries the constructed service layer, there is no global state.
type Injector struct {

	// The song catalog service.
	CatalogService catalog.Service

	// The rating service.
	RatingService rating.Service
}
