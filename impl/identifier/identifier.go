package identifier

import (
	"fmt"

	"github.com/gostream-official/songs/impl/faults"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Description:
//
//	Decodes an external identifier string into the native store
//	identifier type. The store identifier grammar is a 24-character
//	hex string.
//
//	Decoding only validates the shape of the identifier. A
//	well-formed identifier which does not exist in the store decodes
//	without error, existence is a separate concern.
//
// Parameters:
//
//	raw The identifier string to decode.
//
// Returns:
//
//	The decoded identifier, or ErrInvalidIdentifier if the string is
//	empty or malformed.
func Decode(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", faults.ErrInvalidIdentifier, raw)
	}

	return id, nil
}
