package asciimap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromRows_Ragged verifies that rows padding failed to square up are
// reported as invalid input.
func TestFromRows_Ragged(t *testing.T) {
	_, err := fromRows([][]rune{[]rune("@-+"), []rune("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrNonRectangular)
}

// TestFromRows_Copies verifies dimensions and that the rows are copied.
func TestFromRows_Copies(t *testing.T) {
	rows := [][]rune{[]rune("@-"), []rune(" x")}
	m, err := fromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width)
	assert.Equal(t, 2, m.Height)

	rows[0][0] = '#'
	r, ok := m.At(Position{})
	require.True(t, ok)
	assert.Equal(t, '@', r)
}
