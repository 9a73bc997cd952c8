package errs

// Categories shared by every layer. Domain and use-case sentinels are marked with one of
// them so the HTTP layer can pick a status without knowing each sentinel.
var (
	ErrValidation             = New("validation failed")
	ErrNotFound               = New("not found")
	ErrBusinessRule           = New("business rule violated")
	ErrConcurrentModification = New("concurrent modification")
	ErrUnauthorized           = New("unauthorized")
	ErrForbidden              = New("forbidden")
)

// Validation returns a sentinel in the validation category.
func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

// NotFound returns a sentinel in the not-found category.
func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

// Rule returns a sentinel in the business-rule category.
func Rule(msg string) error {
	return Mark(New(msg), ErrBusinessRule)
}
