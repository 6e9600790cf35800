package output

import (
	"fmt"

	"devconsole/pkg/contypes"
)

// Sink renders console events through a Printer. It implements events.Sink.
type Sink struct {
	printer *Printer
	// ShowChanges prints every variable change, not just NOTIFY ones.
	ShowChanges bool
}

// NewSink creates a sink writing to printer.
func NewSink(printer *Printer) *Sink {
	return &Sink{printer: printer}
}

// Handle renders one event.
func (s *Sink) Handle(e contypes.Event) {
	switch ev := e.(type) {
	case contypes.OutputEvent:
		s.printer.Line(levelSemantic(ev.Level), ev.Text)
	case contypes.VarChangedEvent:
		if ev.Notify || s.ShowChanges {
			s.printer.Line(SemanticVariable, fmt.Sprintf("%s changed from %q to %q", ev.Name, ev.OldValue, ev.NewValue))
		}
	case contypes.ClearEvent:
		s.printer.Clear()
	}
}

func levelSemantic(level contypes.OutputLevel) SemanticType {
	switch level {
	case contypes.LevelWarn:
		return SemanticWarning
	case contypes.LevelError:
		return SemanticError
	case contypes.LevelCommand:
		return SemanticCommand
	default:
		return SemanticInfo
	}
}
