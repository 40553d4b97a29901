package errs

// Result of value validation.
// Only NoValue and InvalidValue instances exist.
type Validation struct {
	message string
}

func (e *Validation) Error() string {
	return e.message
}

// Maps validation error to the status error of the caller's domain:
// 'missing' for NoValue, 'invalid' for InvalidValue.
func (e *Validation) ToStatus(missing *Status, invalid *Status) *Status {
	if e == NoValue {
		return missing
	}
	return invalid
}

var (
	NoValue      = &Validation{"validation error: no value"}
	InvalidValue = &Validation{"validation error: invalid value"}
)
