package trie

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrie_InsertGet(t *testing.T) {
	tr := New[int]()

	assert.True(t, tr.Insert("sv_gravity", 1))
	assert.True(t, tr.Insert("sv_cheats", 2))
	assert.False(t, tr.Insert("sv_gravity", 3))
	assert.Equal(t, 2, tr.Len())

	v, ok := tr.Get("sv_gravity")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = tr.Get("sv_")
	assert.False(t, ok, "interior node must not be a key")

	_, ok = tr.Get("sv_gravity_extra")
	assert.False(t, ok)

	assert.True(t, tr.Contains("sv_cheats"))
	assert.False(t, tr.Contains(""))
}

func TestTrie_PrefixIter(t *testing.T) {
	tr := New[int]()
	for i, k := range []string{"zoom", "sv_gravity", "sv", "cl_fov", "sv_cheats", "echo"} {
		tr.Insert(k, i)
	}

	tests := []struct {
		name     string
		prefix   string
		expected []string
	}{
		{"empty prefix yields everything sorted", "", []string{"cl_fov", "echo", "sv", "sv_cheats", "sv_gravity", "zoom"}},
		{"shared prefix", "sv_", []string{"sv_cheats", "sv_gravity"}},
		{"prefix equal to key", "sv", []string{"sv", "sv_cheats", "sv_gravity"}},
		{"no match", "q", nil},
		{"prefix longer than any key", "sv_gravity_max", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tr.Keys(tt.prefix)); diff != "" {
				t.Errorf("Keys(%q) mismatch (-want +got):\n%s", tt.prefix, diff)
			}
		})
	}
}

func TestTrie_PrefixIterEarlyStop(t *testing.T) {
	tr := New[int]()
	for i := 0; i < 10; i++ {
		tr.Insert(fmt.Sprintf("k%d", i), i)
	}

	var seen []string
	for k := range tr.PrefixIter("k") {
		seen = append(seen, k)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"k0", "k1", "k2"}, seen)
}

func TestTrie_EmptyPrefixYieldsEachOnce(t *testing.T) {
	tr := New[string]()
	const n = 200
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("var_%03d", i)
		tr.Insert(name, name)
	}

	counts := map[string]int{}
	for k, v := range tr.PrefixIter("") {
		assert.Equal(t, k, v)
		counts[k]++
	}
	assert.Len(t, counts, n)
	for k, c := range counts {
		assert.Equal(t, 1, c, k)
	}
}

func TestTrie_Unicode(t *testing.T) {
	tr := New[int]()
	tr.Insert("größe", 1)
	tr.Insert("grün", 2)

	assert.Equal(t, []string{"größe", "grün"}, tr.Keys("gr"))
	v, ok := tr.Get("grün")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}
