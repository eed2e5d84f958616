package engine

import (
	"errors"
	"fmt"
)

// ErrQuestionNotFound is returned when a result references a question id
// absent from the catalog. It is fatal to that single analysis call and
// never touches the session's existing entries.
var ErrQuestionNotFound = errors.New("question not found")

func questionNotFound(id string) error {
	return fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
}
