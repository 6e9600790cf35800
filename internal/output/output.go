package output

import "sync"

var (
	globalPrinter = NewPrinter()
	globalMu      sync.RWMutex
)

// SetGlobalPrinter replaces the printer used by the package-level helpers.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the printer used by the package-level helpers.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// ConfigureGlobal replaces the global printer with one built from options.
func ConfigureGlobal(options ...Option) {
	SetGlobalPrinter(NewPrinter(options...))
}

// Println writes a plain line through the global printer.
func Println(text string) { GetGlobalPrinter().Println(text) }

// Info writes an info line through the global printer.
func Info(text string) { GetGlobalPrinter().Info(text) }

// Warning writes a warning line through the global printer.
func Warning(text string) { GetGlobalPrinter().Warning(text) }

// Error writes an error line through the global printer.
func Error(text string) { GetGlobalPrinter().Error(text) }
