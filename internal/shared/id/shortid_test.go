package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	for _, length := range []int{1, 8, 12, 32} {
		got, err := Generate(length)
		require.NoError(t, err)
		assert.Len(t, got, length)
	}
}

func TestGenerate_DefaultLength(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)

	got, err = Generate(-5)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_Alphabet(t *testing.T) {
	got, err := Generate(64)
	require.NoError(t, err)
	for _, c := range got {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[got], "duplicate ID generated: %s", got)
		seen[got] = true
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixLineItem, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "sli_"))
	assert.Len(t, got, len("sli_")+DefaultLength)
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("sli_abc123", PrefixLineItem))
	assert.False(t, HasPrefix("sub_abc123", PrefixLineItem))
	assert.False(t, HasPrefix("sliabc123", PrefixLineItem))
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "abc123", StripPrefix("sli_abc123", PrefixLineItem))
	assert.Equal(t, "sub_abc123", StripPrefix("sub_abc123", PrefixLineItem))
}

func FuzzGenerate(f *testing.F) {
	f.Add(12)
	f.Add(1)
	f.Add(0)
	f.Fuzz(func(t *testing.T, length int) {
		if length > 1024 {
			t.Skip()
		}
		got, err := Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d) returned error: %v", length, err)
		}
		want := length
		if want <= 0 {
			want = DefaultLength
		}
		if len(got) != want {
			t.Fatalf("Generate(%d) length = %d, want %d", length, len(got), want)
		}
	})
}
