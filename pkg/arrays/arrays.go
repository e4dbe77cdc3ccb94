package arrays

// Description:
//
//	Maps each element of the input slice through the given function.
//
// Parameters:
//
//	items 	The input slice.
//	mapper 	The mapping function.
//
// Returns:
//
//	A new slice containing the mapped elements.
func Map[TIn any, TOut any](items []TIn, mapper func(TIn) TOut) []TOut {
	result := make([]TOut, 0, len(items))
	for _, item := range items {
		result = append(result, mapper(item))
	}

	return result
}
