package store

import "fmt"

var (
	// ErrInvalidDataFormat - an import payload does not have the expected
	// shape; nothing has been written when this is returned
	ErrInvalidDataFormat = fmt.Errorf("invalid data format")

	// ErrEmptySymptom - a customized symptom needs at least a name
	ErrEmptySymptom = fmt.Errorf("empty symptom")
)
