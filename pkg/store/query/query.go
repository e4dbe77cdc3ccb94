package query

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Description:
//
//	The common interface for all query operators.
//	Implementations translate themselves into the native bson
//	representation understood by the mongo driver.
type IQuery interface {

	// Translates the operator into its bson representation.
	Translate() bson.M
}

// Description:
//
//	The logical "and" operator.
//	Matches documents satisfying all nested operators.
type FilterOperatorAnd struct {

	// The nested operators.
	And []IQuery
}

// Description:
//
//	The logical "or" operator.
//	Matches documents satisfying at least one nested operator.
type FilterOperatorOr struct {

	// The nested operators.
	Or []IQuery
}

// Description:
//
//	The equality operator.
//	Matches documents whose field equals the given value.
type FilterOperatorEq struct {

	// The document field to compare.
	Key string

	// The value to compare against.
	Value interface{}
}

// Description:
//
//	The "greater than" operator.
//	Matches documents whose field is strictly greater than the given
//	value. For "_id" this follows the natural ordering of object ids,
//	which makes it suitable for cursor pagination.
type FilterOperatorGt struct {

	// The document field to compare.
	Key string

	// The value to compare against.
	Value interface{}
}

// Description:
//
//	The full-text search operator.
//	Matches documents via the text index of the collection.
type FilterOperatorText struct {

	// The text to search for.
	Search string
}

// Description:
//
//	Describes the sort order of a query.
type Sort struct {

	// The document field to sort by.
	Key string

	// Whether to sort in ascending order.
	Ascending bool
}

// Description:
//
//	A complete, typed find query.
//	A zero-value filter matches all documents with no limit,
//	projection or ordering.
type Filter struct {

	// The root operator of the filter. Nil matches all documents.
	Root IQuery

	// The sort order. Nil leaves the order unspecified.
	Sort *Sort

	// The maximum number of documents to return. Zero means no limit.
	Limit uint32

	// The document fields to include in the result. Empty includes all.
	Projection []string
}

func (operator FilterOperatorAnd) Translate() bson.M {
	nested := make([]bson.M, 0, len(operator.And))
	for _, item := range operator.And {
		nested = append(nested, item.Translate())
	}

	return bson.M{"$and": nested}
}

func (operator FilterOperatorOr) Translate() bson.M {
	nested := make([]bson.M, 0, len(operator.Or))
	for _, item := range operator.Or {
		nested = append(nested, item.Translate())
	}

	return bson.M{"$or": nested}
}

func (operator FilterOperatorEq) Translate() bson.M {
	return bson.M{operator.Key: operator.Value}
}

func (operator FilterOperatorGt) Translate() bson.M {
	return bson.M{operator.Key: bson.M{"$gt": operator.Value}}
}

func (operator FilterOperatorText) Translate() bson.M {
	return bson.M{"$text": bson.M{"$search": operator.Search}}
}

// Description:
//
//	Translates the root operator of the filter.
//	A nil root translates into the match-all document.
//
// Returns:
//
//	The bson representation of the filter root.
func (filter *Filter) Translate() bson.M {
	if filter.Root == nil {
		return bson.M{}
	}

	return filter.Root.Translate()
}
