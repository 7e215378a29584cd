package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_MatchesBothSentinelAndKind(t *testing.T) {
	errAlready := Kind("booking already processed", ErrStateConflict)

	wrapped := Wrap(errAlready, "approve booking 7")

	assert.True(t, Is(wrapped, errAlready))
	assert.True(t, Is(wrapped, ErrStateConflict))
	assert.False(t, Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "booking already processed")
}

func TestMark_NilReturnsMarker(t *testing.T) {
	assert.Equal(t, ErrNotFound, Mark(nil, ErrNotFound))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines_Limits(t *testing.T) {
	err := Wrap(New("boom"), "outer")

	lines := ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Nil(t, ExtractStackLines(nil, 3))
}
