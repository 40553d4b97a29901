package errs

import "net/http"

var (
	NoPickerAvailable = NewStatusError("No picker is available", http.StatusConflict)
	UnknownProduct    = NewStatusError("Product with such name doesn't exist", http.StatusNotFound)
	InvalidReference  = NewStatusError("Order references employee with invalid role", http.StatusUnprocessableEntity)
	EmptyOrder        = NewStatusError("Order must contain at least one product", http.StatusBadRequest)
	InvalidAmount     = NewStatusError("Product amount must be positive", http.StatusBadRequest)
	InvalidMonth      = NewStatusError("Month must be in YYYY-MM format", http.StatusBadRequest)
	InvalidDate       = NewStatusError("Date must be in YYYY-MM-DD format", http.StatusBadRequest)
	InvalidStatus     = NewStatusError("Unknown order status", http.StatusBadRequest)
)
