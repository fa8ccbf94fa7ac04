package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceNext(t *testing.T) {
	var s Sequence
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		n := s.Next()
		require.False(t, seen[n], "id %d handed out twice", n)
		seen[n] = true
	}
	assert.Equal(t, int64(1001), s.Next())
}

func TestSequenceObserve(t *testing.T) {
	var s Sequence
	s.Observe(41)
	assert.Equal(t, int64(42), s.Next())

	// Observing a lower id does not move the sequence back.
	s.Observe(3)
	assert.Equal(t, int64(43), s.Next())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "#1", Format(1))
	assert.Equal(t, "#120", Format(120))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1", 1},
		{"#12", 12},
		{" #7 ", 7},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParse_Errors(t *testing.T) {
	badInputs := []string{
		"",
		"#",
		"abc",
		"0",
		"-4",
		"#1a",
	}
	for _, input := range badInputs {
		_, err := Parse(input)
		assert.Error(t, err, "expected error for input: %s", input)
	}
}
