package handlers

import "errors"

// isErr reports whether err matches target. It exists because the handler
// files shadow the stdlib errors package with the API error taxonomy.
func isErr(err, target error) bool {
	return errors.Is(err, target)
}
