package contypes

import "errors"

// Error taxonomy shared by the registry, the handler store and the pipeline.
var (
	ErrDuplicateName     = errors.New("name already registered")
	ErrNotFound          = errors.New("not found")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrOutOfRange        = errors.New("value out of range")
	ErrReadOnly          = errors.New("variable is read-only")
	ErrCheatsDisabled    = errors.New("cheats are disabled")
	ErrTokenizeAmbiguous = errors.New("unterminated quote")
	ErrInvalidName       = errors.New("invalid name")
	ErrReentrant         = errors.New("command is already running")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrQueueFull         = errors.New("input queue is full")
)

// EntryError attaches the failing operation and entry name to a sentinel error.
type EntryError struct {
	Op   string
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	if e.Name == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Name + ": " + e.Err.Error()
}

func (e *EntryError) Unwrap() error { return e.Err }

// NewEntryError builds an EntryError.
func NewEntryError(op, name string, err error) error {
	return &EntryError{Op: op, Name: name, Err: err}
}
