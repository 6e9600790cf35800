package console

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconsole/internal/commands"
	"devconsole/internal/events"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

type world struct {
	spawned []string
}

func newTestConsole(t *testing.T, opts ...Option) (*Console, *events.Collector) {
	t.Helper()
	c, err := New(opts...)
	require.NoError(t, err)
	require.NoError(t, c.RegisterVar(registry.NewVar("sv_gravity", 800.0,
		registry.WithFlags(contypes.FlagArchive), registry.WithRange(0, 10000))))
	col := &events.Collector{}
	c.Subscribe(col)
	return c, col
}

func TestConsole_SetThenQuery(t *testing.T) {
	c, col := newTestConsole(t)

	require.NoError(t, c.Process(nil, "sv_gravity 1000; sv_gravity"))

	expected := []contypes.Event{
		contypes.VarChangedEvent{Name: "sv_gravity", OldValue: "800", NewValue: "1000"},
		contypes.Info(`"sv_gravity" = "1000"`),
		contypes.Info(`"sv_gravity" = "1000"`),
	}
	if diff := cmp.Diff(expected, col.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestConsole_ToggleCheats(t *testing.T) {
	c, col := newTestConsole(t)

	require.NoError(t, c.Process(nil, "toggle sv_cheats"))
	v, err := registry.Get[int](c.Registry(), "sv_cheats")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Contains(t, col.Events(), contypes.Event(contypes.VarToggledEvent{Name: "sv_cheats", Value: "1"}))

	col.Reset()
	require.NoError(t, c.Process(nil, "toggle sv_cheats"))
	v, _ = registry.Get[int](c.Registry(), "sv_cheats")
	assert.Equal(t, 0, v)
	assert.Contains(t, col.Events(), contypes.Event(contypes.VarToggledEvent{Name: "sv_cheats", Value: "0"}))
}

func TestConsole_PhasesAreStaged(t *testing.T) {
	c, col := newTestConsole(t)

	require.NoError(t, c.Submit("echo one; echo two"))
	require.NoError(t, c.Submit("echo three"))
	assert.Equal(t, 2, c.Pending())

	assert.Equal(t, 3, c.Parse())
	assert.Equal(t, 3, c.Pending())
	assert.Empty(t, col.Events(), "nothing is observable before emit")

	assert.Equal(t, 3, c.Execute(nil))
	assert.Empty(t, col.Events(), "nothing is observable before emit")

	assert.Equal(t, 3, c.Emit())
	assert.Equal(t, []string{"one", "two", "three"}, col.Outputs())
	assert.Equal(t, 0, c.Emit())
}

func TestConsole_ErrorsDoNotAbortBatch(t *testing.T) {
	c, col := newTestConsole(t)

	require.NoError(t, c.Process(nil, "nope; sv_gravity 99999; sv_gravity abc; echo still here"))

	outs := col.Events()
	require.Len(t, outs, 4)
	assert.Equal(t, contypes.Error("Unknown command or variable: 'nope'"), outs[0])
	assert.Equal(t, contypes.LevelError, outs[1].(contypes.OutputEvent).Level)
	assert.Contains(t, outs[1].(contypes.OutputEvent).Text, "Cannot set 'sv_gravity'")
	assert.Equal(t, contypes.LevelError, outs[2].(contypes.OutputEvent).Level)
	assert.Equal(t, contypes.Info("still here"), outs[3])

	v, _ := registry.Get[float64](c.Registry(), "sv_gravity")
	assert.Equal(t, 800.0, v)
}

func TestConsole_ReinsertAfterPanic(t *testing.T) {
	c, col := newTestConsole(t)
	calls := 0
	require.NoError(t, c.RegisterFunc("boom", "always panics", func(*commands.Context) error {
		calls++
		panic("kaboom")
	}))

	require.NoError(t, c.Process(nil, "boom"))
	assert.True(t, c.Handlers().Has("boom"), "handler must be reinserted after a panic")
	assert.False(t, c.Handlers().Running("boom"))
	assert.Equal(t, []string{"Command 'boom' panicked: kaboom"}, col.Outputs())

	require.NoError(t, c.Process(nil, "boom"))
	assert.Equal(t, 2, calls, "handler is still callable")
}

func TestConsole_ReinsertAfterError(t *testing.T) {
	c, col := newTestConsole(t)
	require.NoError(t, c.RegisterFunc("fail", "", func(*commands.Context) error {
		return errors.New("no luck")
	}))

	require.NoError(t, c.Process(nil, "fail; fail"))
	assert.Equal(t, []string{"no luck", "no luck"}, col.Outputs())
	assert.True(t, c.Handlers().Has("fail"))
}

func TestConsole_HandlerSeesEnvironment(t *testing.T) {
	c, _ := newTestConsole(t)
	require.NoError(t, c.RegisterFunc("spawn", "", func(ctx *commands.Context) error {
		w := ctx.Env.(*world)
		w.spawned = append(w.spawned, ctx.Args.GetOr(0, "crate"))
		return nil
	}))

	w := &world{}
	require.NoError(t, c.Process(w, "spawn barrel; spawn"))
	assert.Equal(t, []string{"barrel", "crate"}, w.spawned)
}

func TestConsole_Reentrancy(t *testing.T) {
	c, col := newTestConsole(t)
	var nestedErr error
	require.NoError(t, c.RegisterFunc("self", "", func(ctx *commands.Context) error {
		nestedErr = ctx.Exec("self")
		return nil
	}))
	require.NoError(t, c.RegisterFunc("ping", "", func(ctx *commands.Context) error {
		return ctx.Exec("pong")
	}))
	require.NoError(t, c.RegisterFunc("pong", "", func(ctx *commands.Context) error {
		return ctx.Exec("ping")
	}))

	require.NoError(t, c.Process(nil, "self"))
	assert.ErrorIs(t, nestedErr, contypes.ErrReentrant)
	assert.True(t, c.Handlers().Has("self"))

	col.Reset()
	require.NoError(t, c.Process(nil, "ping"))
	outs := col.Outputs()
	require.Len(t, outs, 1)
	assert.Contains(t, outs[0], contypes.ErrReentrant.Error())
	assert.True(t, c.Handlers().Has("ping"))
	assert.True(t, c.Handlers().Has("pong"))
}

func TestConsole_NestedExec(t *testing.T) {
	c, col := newTestConsole(t)
	require.NoError(t, c.RegisterFunc("lowgrav", "", func(ctx *commands.Context) error {
		return ctx.Exec("sv_gravity 100; echo gravity lowered")
	}))

	require.NoError(t, c.Process(nil, "lowgrav"))
	v, _ := registry.Get[float64](c.Registry(), "sv_gravity")
	assert.Equal(t, 100.0, v)
	assert.Equal(t, []string{`"sv_gravity" = "100"`, "gravity lowered"}, col.Outputs())
}

func TestConsole_Aliases(t *testing.T) {
	c, col := newTestConsole(t)

	require.NoError(t, c.Process(nil, `alias setgrav "sv_gravity"; alias both "echo a; echo b"`))
	col.Reset()

	require.NoError(t, c.Process(nil, "setgrav 321; both c"))
	v, _ := registry.Get[float64](c.Registry(), "sv_gravity")
	assert.Equal(t, 321.0, v)
	assert.Equal(t, []string{`"sv_gravity" = "321"`, "a", "b c"}, col.Outputs())

	col.Reset()
	require.NoError(t, c.Process(nil, "alias loop loop; loop"))
	outs := col.Outputs()
	require.Len(t, outs, 2)
	assert.Contains(t, outs[1], ErrTooDeep.Error())
}

func TestConsole_CheatCommand(t *testing.T) {
	c, col := newTestConsole(t)
	ran := false
	require.NoError(t, c.RegisterCommand(&commands.Func{
		CmdName:  "noclip",
		CmdFlags: contypes.FlagCheat,
		Run:      func(*commands.Context) error { ran = true; return nil },
	}))

	require.NoError(t, c.Process(nil, "noclip"))
	assert.False(t, ran)
	require.Len(t, col.Outputs(), 1)
	assert.Contains(t, col.Outputs()[0], "Cannot execute 'noclip'")

	require.NoError(t, c.Process(nil, "sv_cheats 1; noclip"))
	assert.True(t, ran)
}

func TestConsole_CustomCheatsPredicate(t *testing.T) {
	c, _ := newTestConsole(t, WithCheatsPredicate(func() bool { return true }))
	require.NoError(t, c.RegisterVar(registry.NewVar("god", false, registry.WithFlags(contypes.FlagCheat))))

	require.NoError(t, c.Process(nil, "god 1"))
	v, _ := registry.Get[bool](c.Registry(), "god")
	assert.True(t, v)
}

func TestConsole_Permissions(t *testing.T) {
	c, col := newTestConsole(t, WithPermission(contypes.PermissionUser))

	require.NoError(t, c.Process(nil, "sv_cheats 1"))
	require.Len(t, col.Outputs(), 1)
	assert.Contains(t, col.Outputs()[0], "permission denied")

	col.Reset()
	require.NoError(t, c.Process(nil, "sv_cheats"))
	assert.Equal(t, []string{`"sv_cheats" = "0"`, " - Enable cheat-protected commands and variables"}, col.Outputs(),
		"queries need no permission")

	c.SetPermission(contypes.PermissionAdmin)
	col.Reset()
	require.NoError(t, c.Process(nil, "sv_cheats 1"))
	assert.Equal(t, []string{`"sv_cheats" = "1"`}, col.Outputs())
}

func TestConsole_DevOnly(t *testing.T) {
	c, col := newTestConsole(t, WithDevMode(false))
	require.NoError(t, c.RegisterVar(registry.NewVar("r_wireframe", false, registry.WithFlags(contypes.FlagDevOnly))))

	require.NoError(t, c.Process(nil, "r_wireframe 1"))
	assert.Equal(t, []string{"Unknown command or variable: 'r_wireframe'"}, col.Outputs())

	dev, devCol := newTestConsole(t)
	require.NoError(t, dev.RegisterVar(registry.NewVar("r_wireframe", false, registry.WithFlags(contypes.FlagDevOnly))))
	require.NoError(t, dev.Process(nil, "r_wireframe 1"))
	assert.Equal(t, []string{`"r_wireframe" = "1"`}, devCol.Outputs())
}

func TestConsole_EchoCommands(t *testing.T) {
	c, col := newTestConsole(t, WithEchoCommands(true))

	require.NoError(t, c.Process(nil, `echo "hi there" // note`))
	assert.Equal(t, []contypes.Event{
		contypes.OutputEvent{Text: `] echo "hi there"`, Level: contypes.LevelCommand},
		contypes.Info("hi there"),
	}, col.Events())
}

func TestConsole_ParseWarning(t *testing.T) {
	c, col := newTestConsole(t)

	require.NoError(t, c.Process(nil, `echo "unterminated`))
	evs := col.Events()
	require.Len(t, evs, 2)
	assert.Equal(t, contypes.LevelWarn, evs[0].(contypes.OutputEvent).Level)
	assert.Equal(t, contypes.Info("unterminated"), evs[1])
}

func TestConsole_Backpressure(t *testing.T) {
	c, _ := newTestConsole(t, WithMaxPending(2))

	require.NoError(t, c.Submit("echo 1"))
	require.NoError(t, c.Submit("echo 2"))
	assert.ErrorIs(t, c.Submit("echo 3"), contypes.ErrQueueFull)

	c.Tick(nil)
	assert.NoError(t, c.Submit("echo 3"), "draining makes room")
}

func TestConsole_EventQueueDropsOldest(t *testing.T) {
	c, col := newTestConsole(t, WithMaxEvents(2))

	require.NoError(t, c.Process(nil, "echo 1; echo 2; echo 3"))
	assert.Equal(t, []string{"2", "3"}, col.Outputs())
	assert.Equal(t, uint64(1), c.Dropped())
}

func TestConsole_ClearAndHelp(t *testing.T) {
	c, col := newTestConsole(t)

	require.NoError(t, c.Process(nil, "clear"))
	assert.Equal(t, []contypes.Event{contypes.ClearEvent{}}, col.Events())

	col.Reset()
	require.NoError(t, c.Process(nil, "help sv_gravity"))
	assert.Equal(t, "sv_gravity - No description", col.Outputs()[0])
}

func TestConsole_ConcurrentSubmit(t *testing.T) {
	c, col := newTestConsole(t, WithMaxPending(0))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				assert.NoError(t, c.Submit("echo x"))
			}
		}()
	}
	wg.Wait()

	c.Tick(nil)
	assert.Len(t, col.Outputs(), 200)
}

func TestConsole_DuplicateRegistration(t *testing.T) {
	c, _ := newTestConsole(t)

	err := c.RegisterVar(registry.NewVar("echo", 1))
	assert.ErrorIs(t, err, contypes.ErrDuplicateName)
	err = c.RegisterFunc("sv_gravity", "", func(*commands.Context) error { return nil })
	assert.ErrorIs(t, err, contypes.ErrDuplicateName)
	assert.False(t, c.Handlers().Has("sv_gravity"))
}
