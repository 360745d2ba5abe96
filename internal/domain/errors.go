package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers branch on with errors.Is.
var (
	// ErrNotReady is returned when a question is asked before any
	// document has been loaded.
	ErrNotReady = errors.New("no document loaded")

	// ErrEmptyDocument is returned when a loaded file yields no text.
	ErrEmptyDocument = errors.New("document contains no text")
)

// ChunkParamsError reports invalid chunking parameters.
type ChunkParamsError struct {
	Size    int
	Overlap int
	Reason  string
}

func (e *ChunkParamsError) Error() string {
	return fmt.Sprintf("invalid chunk params (size=%d overlap=%d): %s", e.Size, e.Overlap, e.Reason)
}

// IndexError reports a programming-error-class index fault such as a
// chunk id collision. It is not retryable.
type IndexError struct {
	Op  string
	Msg string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %s: %s", e.Op, e.Msg)
}

// RetrievalError wraps a vector-store backend failure so callers can
// distinguish "no context available" from other faults.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// GenerationError reports a language-model backend failure together
// with the backend status. Status is 0 when the backend was unreachable.
type GenerationError struct {
	Status int
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("generation failed: backend status %d", e.Status)
	}
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PartialAddError reports that an index population stopped partway,
// leaving the collection in a degraded but defined state.
type PartialAddError struct {
	Added int
	Total int
	Err   error
}

func (e *PartialAddError) Error() string {
	return fmt.Sprintf("indexed %d of %d chunks: %v", e.Added, e.Total, e.Err)
}

func (e *PartialAddError) Unwrap() error { return e.Err }
