package errs

import "net/http"

// Query interpreter errors.
// All of them are raised synchronously and abort the whole query.
var (
	InvalidQuery = NewStatusError(
		"Invalid query",
		http.StatusBadRequest,
	)
	MalformedJSON = NewStatusError(
		"Invalid json in query",
		http.StatusBadRequest,
	)
	EmptyOrNonArrayFilter = NewStatusError(
		"Filter query is not an array or it is empty",
		http.StatusBadRequest,
	)
	UnknownFilterKey = NewStatusError(
		"Invalid key in filter",
		http.StatusBadRequest,
	)
	UnknownSortKey = NewStatusError(
		"Invalid key in sort",
		http.StatusBadRequest,
	)
	InvalidIdentifier = NewStatusError(
		"Invalid id",
		http.StatusBadRequest,
	)
	MissingIdentifier = NewStatusError(
		"Missing id",
		http.StatusBadRequest,
	)
)
