package output

import (
	"bytes"
	"strings"
	"sync"
)

// CaptureBuffer is a concurrency safe io.Writer that records output for tests.
type CaptureBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewCaptureBuffer creates an empty buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Write implements io.Writer.
func (c *CaptureBuffer) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns everything written so far.
func (c *CaptureBuffer) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the output split into lines, without the trailing newline.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// Reset discards the recorded output.
func (c *CaptureBuffer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}

// Contains reports whether the output contains text.
func (c *CaptureBuffer) Contains(text string) bool {
	return strings.Contains(c.String(), text)
}

// CaptureOutput runs fn with a deterministic printer and returns what it wrote.
func CaptureOutput(fn func(*Printer)) string {
	buffer := NewCaptureBuffer()
	fn(NewPrinter(WithWriter(buffer), TestMode()))
	return buffer.String()
}

// MockStyleProvider wraps text in [semantic]...[/semantic] markers.
type MockStyleProvider struct {
	available bool
}

// NewMockStyleProvider creates an available mock provider.
func NewMockStyleProvider() *MockStyleProvider {
	return &MockStyleProvider{available: true}
}

// SetAvailable toggles availability.
func (m *MockStyleProvider) SetAvailable(available bool) { m.available = available }

// GetStyle implements StyleProvider.
func (m *MockStyleProvider) GetStyle(semantic SemanticType) TextStyle {
	return mockStyle(semantic)
}

// IsAvailable implements StyleProvider.
func (m *MockStyleProvider) IsAvailable() bool { return m.available }

type mockStyle SemanticType

func (m mockStyle) Render(strs ...string) string {
	return "[" + string(m) + "]" + strings.Join(strs, " ") + "[/" + string(m) + "]"
}
