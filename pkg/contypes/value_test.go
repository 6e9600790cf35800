package contypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"bool true", Bool(true), "1"},
		{"bool false", Bool(false), "0"},
		{"int", Int(-42), "-42"},
		{"integral float", Float(800), "800"},
		{"fractional float", Float(0.5), "0.5"},
		{"string", String("hello world"), "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		raw      string
		expected Value
		wantErr  bool
	}{
		{"bool true word", KindBool, "true", Bool(true), false},
		{"bool on uppercase", KindBool, "ON", Bool(true), false},
		{"bool yes", KindBool, "yes", Bool(true), false},
		{"bool one", KindBool, "1", Bool(true), false},
		{"bool off", KindBool, "off", Bool(false), false},
		{"bool no", KindBool, "no", Bool(false), false},
		{"bool garbage", KindBool, "maybe", Value{}, true},
		{"int", KindInt, "1000", Int(1000), false},
		{"int rejects float", KindInt, "1.5", Value{}, true},
		{"float", KindFloat, "9.81", Float(9.81), false},
		{"float from int text", KindFloat, "1000", Float(1000), false},
		{"float garbage", KindFloat, "fast", Value{}, true},
		{"string keeps spaces", KindString, " a b ", String(" a b "), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.kind, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrTypeMismatch))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
		})
	}
}

func TestAs(t *testing.T) {
	f, err := As[float64](Float(800))
	require.NoError(t, err)
	assert.Equal(t, 800.0, f)

	n, err := As[int](Int(3))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = As[string](Int(3))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = As[int64](Float(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestValueOf(t *testing.T) {
	assert.Equal(t, KindBool, ValueOf(true).Kind())
	assert.Equal(t, KindInt, ValueOf(int32(7)).Kind())
	assert.Equal(t, KindFloat, ValueOf(float32(1.5)).Kind())
	assert.Equal(t, KindString, ValueOf("x").Kind())
	assert.Equal(t, KindInt, KindOf[int]())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Int(1).Equal(Int(1)))
	assert.False(t, Int(1).Equal(Float(1)))
	assert.False(t, Bool(true).Equal(Int(1)))
	assert.True(t, String("a").Equal(String("a")))
}

func TestFlags(t *testing.T) {
	f := FlagArchive.With(FlagNotify)

	assert.True(t, f.Has(FlagArchive))
	assert.True(t, f.Has(FlagNotify))
	assert.False(t, f.Has(FlagCheat))
	assert.False(t, f.Has(FlagArchive|FlagCheat))
	assert.Equal(t, "archive|notify", f.String())
	assert.Equal(t, "none", FlagNone.String())
	assert.Equal(t, FlagNotify, f.Without(FlagArchive))
	assert.Equal(t, Flags(1), FlagArchive)
}

func TestPermissionLevel(t *testing.T) {
	assert.True(t, PermissionServer.Allows(PermissionAdmin))
	assert.True(t, PermissionAdmin.Allows(PermissionAdmin))
	assert.False(t, PermissionUser.Allows(PermissionAdmin))

	p, err := ParsePermission("Admin")
	require.NoError(t, err)
	assert.Equal(t, PermissionAdmin, p)

	_, err = ParsePermission("root")
	assert.Error(t, err)
}

func TestArgs(t *testing.T) {
	args := NewArgs([]string{"give", "42", "1.5"})

	assert.Equal(t, 3, args.Len())
	assert.Equal(t, "give", args.GetOr(0, ""))
	assert.Equal(t, "fallback", args.GetOr(5, "fallback"))
	assert.Equal(t, "42 1.5", args.JoinFrom(1))
	assert.Equal(t, "", args.JoinFrom(9))

	n, err := args.Int(1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = args.Int(0)
	assert.Error(t, err)

	f, err := args.Float(2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	_, err = args.Float(3)
	assert.Error(t, err)
}

func TestEntryError(t *testing.T) {
	err := NewEntryError("set", "sv_gravity", ErrReadOnly)

	assert.Equal(t, "set sv_gravity: variable is read-only", err.Error())
	assert.ErrorIs(t, err, ErrReadOnly)

	var ee *EntryError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "sv_gravity", ee.Name)
}
