package contypes

import "github.com/google/uuid"

// EventKind discriminates the console event types.
type EventKind int

const (
	EventInput EventKind = iota
	EventOutput
	EventVarChanged
	EventVarToggled
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventInput:
		return "input"
	case EventOutput:
		return "output"
	case EventVarChanged:
		return "var_changed"
	case EventVarToggled:
		return "var_toggled"
	case EventClear:
		return "clear"
	}
	return "unknown"
}

// Event is a message that decouples the pipeline from presentation.
type Event interface {
	Kind() EventKind
}

// OutputLevel is the severity of an output line.
type OutputLevel int

const (
	LevelInfo OutputLevel = iota
	LevelWarn
	LevelError
	// LevelCommand marks the echo of an invocation.
	LevelCommand
)

func (l OutputLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelCommand:
		return "command"
	}
	return "unknown"
}

// InputEvent is one line of raw text submitted by the host.
type InputEvent struct {
	ID   uuid.UUID
	Text string
}

// NewInputEvent stamps text with a fresh ID used for log correlation.
func NewInputEvent(text string) InputEvent {
	return InputEvent{ID: uuid.New(), Text: text}
}

// Kind implements Event.
func (InputEvent) Kind() EventKind { return EventInput }

// OutputEvent is one line of console output.
type OutputEvent struct {
	Text  string
	Level OutputLevel
}

// Kind implements Event.
func (OutputEvent) Kind() EventKind { return EventOutput }

// VarChangedEvent is queued by every successful mutation of a variable.
// Values are rendered display strings.
type VarChangedEvent struct {
	Name     string
	OldValue string
	NewValue string
	Notify   bool
}

// Kind implements Event.
func (VarChangedEvent) Kind() EventKind { return EventVarChanged }

// VarToggledEvent follows the VarChangedEvent of a toggle.
type VarToggledEvent struct {
	Name  string
	Value string
}

// Kind implements Event.
func (VarToggledEvent) Kind() EventKind { return EventVarToggled }

// ClearEvent asks the presentation layer to clear its scrollback.
type ClearEvent struct{}

// Kind implements Event.
func (ClearEvent) Kind() EventKind { return EventClear }

// Info builds an info-level output event.
func Info(text string) OutputEvent { return OutputEvent{Text: text, Level: LevelInfo} }

// Warn builds a warn-level output event.
func Warn(text string) OutputEvent { return OutputEvent{Text: text, Level: LevelWarn} }

// Error builds an error-level output event.
func Error(text string) OutputEvent { return OutputEvent{Text: text, Level: LevelError} }
