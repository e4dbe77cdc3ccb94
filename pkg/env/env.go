package env

import (
	"fmt"
	"os"
)

// Description:
//
//	Retrieves the value of an environment variable.
//
// Parameters:
//
//	name The name of the environment variable.
//
// Returns:
//
//	The value of the variable, or an error if the variable is unset
//	or empty.
func GetEnvironmentVariable(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("env: variable not set: %s", name)
	}

	return value, nil
}

// Description:
//
//	Retrieves the value of an environment variable, falling back to
//	a default value when the variable is unset or empty.
//
// Parameters:
//
//	name 		The name of the environment variable.
//	fallback 	The fallback value.
//
// Returns:
//
//	The value of the variable, or the fallback.
func GetEnvironmentVariableWithFallback(name string, fallback string) string {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}

	return value
}
