package errors

import (
	"encoding/json"
)

// BusinessErr signals a business rule violation recoverable by the
// caller correcting input
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr signals that a referenced entity does not exist
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// ConflictErr signals a uniqueness constraint violation
type ConflictErr struct {
	target  string
	message string
}

func (e *ConflictErr) Error() string {
	return e.message
}

func (e *ConflictErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewConflictErr(target string, msg string) *ConflictErr {
	return &ConflictErr{
		target:  target,
		message: msg,
	}
}
