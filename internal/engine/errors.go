package engine

// UnknownIdentifierError is returned in strict mode when a query names a suspect or crime
// that does not exist in the corpus.
type UnknownIdentifierError struct {
	message string
}

// Error returns the error description.
func (e *UnknownIdentifierError) Error() string {
	return e.message
}

// NewUnknownIdentifierError creates an error for the identifier id of the given kind ("suspect" or "crime").
func NewUnknownIdentifierError(kind, id string) *UnknownIdentifierError {
	return &UnknownIdentifierError{message: "unknown " + kind + ": " + id}
}
