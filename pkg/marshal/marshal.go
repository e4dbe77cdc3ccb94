package marshal

import "encoding/json"

// Description:
//
//	Marshals the given object into a JSON string, ignoring errors.
//	Intended for trace logging only, never for wire payloads.
//
// Parameters:
//
//	object The object to marshal.
//
// Returns:
//
//	The JSON representation, or an empty string when marshalling
//	fails.
func Quick(object interface{}) string {
	bytes, err := json.Marshal(object)
	if err != nil {
		return ""
	}

	return string(bytes)
}
