package daw

import "fmt"

// ParseError describes a syntactic problem in notation or tempo-map text:
// an illegal beat, an illegal bpm, an integer overflow, or a grammar
// mismatch. It always carries the offset where the problem was found,
// counted in runes by the notation and tempo-map parsers.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// NewParseError builds a ParseError at the given offset.
func NewParseError(offset int, format string, args ...any) *ParseError {
	return &ParseError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// DomainError describes an illegal Duration, Timestamp, Beat or
// BeatsPerMinute construction: negative, NaN, or infinite where the domain
// forbids it.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return "domain error: " + e.Message }

func newDomainError(format string, args ...any) *DomainError {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}

// StructuralError describes an illegal Graph mutation: removing a reserved
// slot, connecting/disconnecting a reserved slot in a forbidden polarity, or
// disconnecting an edge that does not exist. These are programmer errors;
// by convention callers do not recover from them locally.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string { return "structural error: " + e.Message }

// NewStructuralError builds a StructuralError.
func NewStructuralError(format string, args ...any) *StructuralError {
	return &StructuralError{Message: fmt.Sprintf(format, args...)}
}

// ProcessingError is returned out of Node.Process when a node hits an
// unrecoverable precondition failure, such as a Sample channel mismatch.
type ProcessingError struct {
	Message string
}

func (e *ProcessingError) Error() string { return "processing error: " + e.Message }

// NewProcessingError builds a ProcessingError.
func NewProcessingError(format string, args ...any) *ProcessingError {
	return &ProcessingError{Message: fmt.Sprintf(format, args...)}
}
