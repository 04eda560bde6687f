package note

import "errors"

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrLeadNotFound = errors.New("lead not found")
	ErrNotAuthor    = errors.New("note belongs to another user")
	ErrEmptyContent = errors.New("note content is required")
)
