package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconsole/internal/commands"
	"devconsole/internal/commands/builtin"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

func setup(t *testing.T) *Completer {
	t.Helper()
	reg := registry.New()
	store := commands.NewStore()
	require.NoError(t, builtin.Register(reg, store, commands.NewAliases()))
	for _, cv := range []*registry.ConVar{
		registry.NewVar("sv_gravity", 800.0, registry.WithDescription("World gravity")),
		registry.NewVar("sv_cheats", 0),
		registry.NewVar("r_fov", 90),
		registry.NewVar("sv_secret", "x", registry.WithFlags(contypes.FlagHidden)),
	} {
		require.NoError(t, reg.RegisterVar(cv))
	}
	return New(reg, store)
}

func texts(s []Suggestion) []string {
	var out []string
	for _, x := range s {
		out = append(out, x.Text)
	}
	return out
}

func TestSuggest_FirstToken(t *testing.T) {
	c := setup(t)

	got := c.Suggest("sgr", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "sv_gravity", got[0].Text)
	assert.Equal(t, []int{0, 3, 4}, got[0].Indices)
	assert.Equal(t, "World gravity", got[0].Description)
	assert.Equal(t, 0, got[0].Start)
}

func TestSuggest_Limit(t *testing.T) {
	c := setup(t)

	assert.Len(t, c.Suggest("", 0), MaxSuggestions)
	assert.Len(t, c.Suggest("help ", 5), MaxSuggestions)
}

func TestSuggest_SkipsHidden(t *testing.T) {
	c := setup(t)

	assert.NotContains(t, texts(c.Suggest("secret", 6)), "sv_secret")
}

func TestSuggest_Arguments(t *testing.T) {
	c := setup(t)

	tests := []struct {
		name     string
		line     string
		expected []string
		start    int
	}{
		{"toggle vars", "toggle sv_", []string{"sv_cheats", "sv_gravity"}, 7},
		{"reset vars", "reset r_", []string{"r_fov"}, 6},
		{"help commands", "help tog", []string{"toggle"}, 5},
		{"cvarlist excludes commands", "cvarlist e", nil, 9},
		{"variable has no completer", "sv_gravity 1", nil, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Suggest(tt.line, len([]rune(tt.line)))
			assert.Equal(t, tt.expected, texts(got))
			for _, s := range got {
				assert.Equal(t, tt.start, s.Start)
			}
		})
	}
}

func TestSuggest_ArgumentIndices(t *testing.T) {
	c := setup(t)

	got := c.Suggest("toggle sv_g", 11)
	require.Len(t, got, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, got[0].Indices)
}

func TestSuggest_CurrentInvocationOnly(t *testing.T) {
	c := setup(t)

	got := c.Suggest("echo one; hel", 13)
	require.NotEmpty(t, got)
	assert.Equal(t, "help", got[0].Text)
	assert.Equal(t, 10, got[0].Start)
}

func TestSuggest_CursorInsideLine(t *testing.T) {
	c := setup(t)

	got := c.Suggest("tog sv_gravity", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "toggle", got[0].Text)
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected word
	}{
		{"empty", "", word{}},
		{"first word", "sv_gr", word{command: "sv_gr", text: "sv_gr"}},
		{"trailing space", "toggle ", word{command: "toggle", index: 1, start: 7}},
		{"second word", "toggle sv", word{command: "toggle", text: "sv", index: 1, start: 7}},
		{"after separator", "a; b c", word{command: "b", text: "c", index: 1, start: 5}},
		{"quoted separator", `echo "a; b`, word{command: "echo", text: "a; b", index: 1, start: 5}},
		{"escaped separator", `echo a\; b`, word{command: "echo", text: "b", index: 2, start: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, locate([]rune(tt.input)))
		})
	}
}

func TestReadlineAdapter(t *testing.T) {
	a := NewReadlineAdapter(setup(t))

	tests := []struct {
		name     string
		line     string
		expected [][]rune
		length   int
	}{
		{"command", "tog", [][]rune{[]rune("gle ")}, 3},
		{"argument", "toggle sv_g", [][]rune{[]rune("ravity ")}, 4},
		{"no candidates", "sv_gravity 1", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := []rune(tt.line)
			got, length := a.Do(line, len(line))
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.length, length)
		})
	}
}
