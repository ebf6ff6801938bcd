package client

import (
	"context"
	"errors"
)

// FormState is the lifecycle position of a FormSession
type FormState string

// Form lifecycle states
const (
	FormClosed     FormState = "closed"
	FormOpen       FormState = "open"
	FormSubmitting FormState = "submitting"
)

// FormMode distinguishes a blank create form from an edit form prefilled
// with an existing record
type FormMode string

// Form modes
const (
	FormCreate FormMode = "create"
	FormEdit   FormMode = "edit"
)

// ErrFormNotOpen is returned by Submit when the session has nothing to submit
var ErrFormNotOpen = errors.New("form session is not open")

// FormSession is a generic form container for any write shape. One session
// backs every entity form in the dashboard: open it in create or edit mode,
// mutate the value, then submit. A failed submit keeps the form open with the
// error attached so nothing typed in is lost; Cancel discards everything.
type FormSession[T any] struct {
	state FormState
	mode  FormMode
	value T
	err   error
}

// NewFormSession returns a closed session
func NewFormSession[T any]() *FormSession[T] {
	return &FormSession[T]{state: FormClosed}
}

// State returns the current lifecycle state
func (s *FormSession[T]) State() FormState {
	return s.state
}

// Mode returns the mode of the last open. Only meaningful while the session
// is open or submitting.
func (s *FormSession[T]) Mode() FormMode {
	return s.mode
}

// Value returns the current form value
func (s *FormSession[T]) Value() T {
	return s.value
}

// Err returns the error of the last failed submit, cleared on every
// transition out of the open state
func (s *FormSession[T]) Err() error {
	return s.err
}

// OpenCreate opens a blank create form seeded with initial
func (s *FormSession[T]) OpenCreate(initial T) {
	s.state = FormOpen
	s.mode = FormCreate
	s.value = initial
	s.err = nil
}

// OpenEdit opens an edit form prefilled with the existing record
func (s *FormSession[T]) OpenEdit(prefill T) {
	s.state = FormOpen
	s.mode = FormEdit
	s.value = prefill
	s.err = nil
}

// SetValue replaces the form value while the session is open
func (s *FormSession[T]) SetValue(value T) {
	if s.state != FormOpen {
		return
	}
	s.value = value
}

// Submit runs the save function with the current value. On success the
// session closes; on failure it stays open with the error recorded, and the
// value is untouched. One attempt per call, no retry.
func (s *FormSession[T]) Submit(ctx context.Context, save func(context.Context, T) error) error {
	if s.state != FormOpen {
		return ErrFormNotOpen
	}

	s.state = FormSubmitting
	if err := save(ctx, s.value); err != nil {
		s.state = FormOpen
		s.err = err
		return err
	}

	s.state = FormClosed
	s.err = nil
	return nil
}

// Cancel discards the form value and closes the session
func (s *FormSession[T]) Cancel() {
	var zero T
	s.state = FormClosed
	s.value = zero
	s.err = nil
}
