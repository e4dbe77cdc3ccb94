package query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Description:
//
//	The common interface for all aggregation pipeline stages.
type IStage interface {

	// Translates the stage into its bson representation.
	Translate() bson.D
}

// Description:
//
//	The "$match" stage of an aggregation pipeline.
//	Narrows the pipeline input to documents matching the operator.
type StageMatch struct {

	// The operator to match against. Nil matches all documents.
	Root IQuery
}

// Description:
//
//	A single accumulator of a "$group" stage, i.e. the minimum,
//	mean or maximum of a document field.
type GroupAccumulator struct {

	// The name of the computed field in the result document.
	Name string

	// The accumulator operator, i.e. "$min", "$avg" or "$max".
	Operator string

	// The field expression to accumulate, i.e. "$rating".
	Expression string
}

// Description:
//
//	The "$group" stage of an aggregation pipeline.
//	Groups the pipeline input by a key and reduces each group with
//	the given accumulators.
type StageGroup struct {

	// The group key expression. Nil collapses all documents into a
	// single group.
	Key interface{}

	// The accumulators to compute per group.
	Accumulators []GroupAccumulator
}

// Description:
//
//	A complete, typed aggregation pipeline.
//	Stages are evaluated in order by the store.
type Pipeline struct {

	// The stages of the pipeline.
	Stages []IStage
}

func (stage StageMatch) Translate() bson.D {
	match := bson.M{}
	if stage.Root != nil {
		match = stage.Root.Translate()
	}

	return bson.D{{Key: "$match", Value: match}}
}

func (stage StageGroup) Translate() bson.D {
	group := bson.D{{Key: "_id", Value: stage.Key}}

	for _, accumulator := range stage.Accumulators {
		group = append(group, bson.E{
			Key:   accumulator.Name,
			Value: bson.M{accumulator.Operator: accumulator.Expression},
		})
	}

	return bson.D{{Key: "$group", Value: group}}
}

// Description:
//
//	Translates the pipeline into the native mongo representation.
//
// Returns:
//
//	The mongo pipeline.
func (pipeline *Pipeline) Translate() mongo.Pipeline {
	stages := make(mongo.Pipeline, 0, len(pipeline.Stages))
	for _, stage := range pipeline.Stages {
		stages = append(stages, stage.Translate())
	}

	return stages
}
