package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"devconsole/internal/commands"
	"devconsole/internal/console"
	"devconsole/internal/output"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newHost(t *testing.T, opts ...console.Option) (*Host, *output.CaptureBuffer) {
	t.Helper()
	c, err := console.New(opts...)
	require.NoError(t, err)
	require.NoError(t, c.RegisterVar(registry.NewVar("sv_gravity", 800.0, registry.WithDescription("World gravity"))))

	buf := output.NewCaptureBuffer()
	h, err := New(c, output.NewPrinter(output.WithWriter(buf), output.TestMode()), "] ")
	require.NoError(t, err)
	return h, buf
}

func TestHost_Process(t *testing.T) {
	h, buf := newHost(t)

	require.NoError(t, h.Process("sv_gravity 600; echo done"))
	assert.Equal(t, []string{`"sv_gravity" = "600"`, "done"}, buf.Lines())

	buf.Reset()
	require.NoError(t, h.Process("   "))
	assert.Empty(t, buf.String())
}

func TestHost_HandleLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"plain", "echo from shell", []string{"from shell"}},
		{"quoted spaces kept", `echo "a   b"`, []string{"a   b"}},
		{"heredoc marker is text", "echo a << b", []string{"a << b"}},
		{"blank", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newHost(t)
			h.HandleLine(tt.line)
			if tt.expected == nil {
				assert.Empty(t, buf.String())
				return
			}
			assert.Equal(t, tt.expected, buf.Lines())
		})
	}
}

func TestHost_HandleLineUnterminatedQuote(t *testing.T) {
	h, buf := newHost(t)

	h.HandleLine(`echo "still  open`)
	lines := buf.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], contypes.ErrTokenizeAmbiguous.Error())
	assert.Equal(t, "still  open", lines[1])
}

func TestHost_HandleLineSuggest(t *testing.T) {
	h, buf := newHost(t)

	h.HandleLine("? sgr")
	lines := buf.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "sv_gravity - World gravity", lines[0])
}

func TestHost_HandleLineReportsBackpressure(t *testing.T) {
	h, buf := newHost(t, console.WithMaxPending(1))
	require.NoError(t, h.Console().Submit("echo queued"))

	h.HandleLine("echo x")
	assert.True(t, buf.Contains(contypes.ErrQueueFull.Error()))
}

func TestHost_Quit(t *testing.T) {
	h, _ := newHost(t)
	assert.False(t, h.Stopped())

	require.NoError(t, h.Process("quit"))
	assert.True(t, h.Stopped())
}

func TestQuit_WithoutStopper(t *testing.T) {
	err := quit(&commands.Context{Env: struct{}{}})
	assert.Error(t, err)
}

func TestHost_RunScript(t *testing.T) {
	h, buf := newHost(t)

	script := strings.Join([]string{
		"// setup",
		"sv_gravity 100",
		"",
		"echo one; echo two",
		"quit",
		"echo never",
	}, "\n")
	require.NoError(t, h.RunScript(strings.NewReader(script)))

	assert.Equal(t, []string{`"sv_gravity" = "100"`, "one", "two"}, buf.Lines())
}

func TestHost_RunScriptRejectedLine(t *testing.T) {
	h, _ := newHost(t, console.WithMaxPending(1))
	require.NoError(t, h.Console().Submit("echo queued"))

	err := h.RunScript(strings.NewReader("echo x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.ErrorIs(t, err, contypes.ErrQueueFull)
}

func TestHost_Suggest(t *testing.T) {
	h, buf := newHost(t)

	h.Suggest("sgr")
	lines := buf.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "sv_gravity - World gravity", lines[0])

	buf.Reset()
	h.Suggest("zzzz")
	assert.Equal(t, []string{"No suggestions"}, buf.Lines())
}
