package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternCatalogue(t *testing.T) {
	for _, name := range PatternNames() {
		t.Run(name, func(t *testing.T) {
			p, err := PatternByName(name)
			require.NoError(t, err)
			assert.NotEmpty(t, p.Cells)
			for _, c := range p.Cells {
				assert.Less(t, c[0], p.Rows)
				assert.Less(t, c[1], p.Cols)
			}
		})
	}

	gun, err := PatternByName("glider-gun")
	require.NoError(t, err)
	assert.Len(t, gun.Cells, 36)
	assert.Equal(t, 9, gun.Rows)
	assert.Equal(t, 36, gun.Cols)
}

func TestPatternByNameUnknown(t *testing.T) {
	_, err := PatternByName("spaceship-9000")
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestParsePlaintext(t *testing.T) {
	p, err := ParsePlaintext("test", "!comment\n.O\nO.\n")
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 0}}, p.Cells)
	assert.Equal(t, 2, p.Rows)
	assert.Equal(t, 2, p.Cols)

	_, err = ParsePlaintext("bad", "O#")
	assert.Error(t, err)
}

func TestPlaceClipsAtEdges(t *testing.T) {
	block, err := PatternByName("block")
	require.NoError(t, err)

	life := New(3, 3)
	life.Place(block, 2, 2)
	assert.Equal(t, 1, life.Population())
	assert.True(t, life.Alive(2, 2))

	centered := New(6, 6)
	centered.PlaceCentered(block)
	assert.True(t, centered.Alive(2, 2))
	assert.True(t, centered.Alive(3, 3))
}
