package regex

import (
	"errors"
	"fmt"
)

// ErrUninitialized matches any error caused by using a derived index (letter
// positions or parent links) before it was built.
var ErrUninitialized = errors.New("uninitialized derived index")

var (
	ErrNotIndexed = errors.New("letter positions are not indexed")
	ErrNotLinked  = errors.New("parent links are not built")
	ErrNoPosition = errors.New("no letter at position")
)

// IndexError reports a failed position query on a Tree.
type IndexError struct {
	Op  string
	Pos int
	Err error
}

func (e *IndexError) Error() string {
	if e.Pos > 0 || errors.Is(e.Err, ErrNoPosition) {
		return fmt.Sprintf("regex: %s(%d): %v", e.Op, e.Pos, e.Err)
	}
	return fmt.Sprintf("regex: %s: %v", e.Op, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// Is makes both missing-index errors match ErrUninitialized.
func (e *IndexError) Is(target error) bool {
	return target == ErrUninitialized && (e.Err == ErrNotIndexed || e.Err == ErrNotLinked)
}
