package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFillsEveryCell(t *testing.T) {
	b := New()

	require.Equal(t, Rows, b.Rows())
	require.Equal(t, Cols, b.Cols())

	seen := make(map[*Tile]bool)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			tile, err := b.TileAt(r, c)
			require.NoError(t, err)
			require.NotNil(t, tile, "cell (%d, %d) is empty", r, c)
			assert.False(t, seen[tile], "tile %s occupies more than one cell", tile)
			seen[tile] = true
		}
	}
}

func TestRoomPlacement(t *testing.T) {
	b := New()

	for _, p := range Layout {
		room := b.Room(p.Name)
		require.NotNil(t, room, p.Name)
		assert.True(t, room.IsRoom())
		coord, err := b.CoordinatesOf(room)
		require.NoError(t, err)
		assert.Equal(t, p.Coord, coord, p.Name)
	}

	t.Run("start room sits in the centre", func(t *testing.T) {
		coord, err := b.CoordinatesOf(b.Start())
		require.NoError(t, err)
		assert.Equal(t, Coord{5, 6}, coord)
		assert.True(t, b.Start().IsRoom())
		assert.True(t, b.Start().IsStart())
		assert.Same(t, b.Start(), b.Room(StartRoom))
	})

	t.Run("rooms listing excludes the start room", func(t *testing.T) {
		rooms := b.Rooms()
		assert.Len(t, rooms, len(Layout))
		for _, r := range rooms {
			assert.False(t, r.IsStart())
		}
	})
}

func TestSpacesAreNamedByCoordinates(t *testing.T) {
	b := New()

	space := b.Space("Space_2_5")
	require.NotNil(t, space)
	coord, err := b.CoordinatesOf(space)
	require.NoError(t, err)
	assert.Equal(t, Coord{2, 5}, coord)
}

func TestLookupMissesReturnNil(t *testing.T) {
	b := New()

	assert.Nil(t, b.Room("Attic"))
	assert.Nil(t, b.Space("Space_99_99"))
	assert.Nil(t, b.Room("kitchen"), "lookups are exact")
	assert.Nil(t, b.Space("Kitchen"))
}

func TestAdjacencyIsSpaceToSpaceOnly(t *testing.T) {
	b := New()

	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			tile, _ := b.TileAt(r, c)
			if tile.IsRoom() {
				assert.Empty(t, tile.Neighbors(), "room %s has adjacency links", tile.Name())
				continue
			}
			for _, n := range tile.Neighbors() {
				assert.True(t, n.IsSpace())
				nc, err := b.CoordinatesOf(n)
				require.NoError(t, err)
				assert.Equal(t, 1, Distance(Coord{r, c}, nc))
			}
		}
	}

	t.Run("a space boxed by rooms loses those links", func(t *testing.T) {
		// Space_0_1 sits between Kitchen (0,0) and Space_0_2, above Space_1_1.
		space := b.Space("Space_0_1")
		require.NotNil(t, space)
		assert.Len(t, space.Neighbors(), 2)
	})

	t.Run("an open space has four links", func(t *testing.T) {
		assert.Len(t, b.Space("Space_2_2").Neighbors(), 4)
	})
}

func TestSecretPassagesAreSymmetric(t *testing.T) {
	b := New()

	for _, pair := range SecretPassages {
		a, z := b.Room(pair[0]), b.Room(pair[1])
		assert.Same(t, z, a.SecretPassage())
		assert.Same(t, a, z.SecretPassage())
	}
	assert.Nil(t, b.Room("Hall").SecretPassage())
	assert.Nil(t, b.Start().SecretPassage())
}

func TestCoordinatesOfUnknownTile(t *testing.T) {
	b := New()

	_, err := b.CoordinatesOf(nil)
	assert.ErrorIs(t, err, ErrTileNotFound)

	_, err = b.CoordinatesOf(New().Room("Kitchen"))
	assert.ErrorIs(t, err, ErrTileNotFound, "tiles of another board are not found")
}

func TestTileAtOutOfBounds(t *testing.T) {
	b := New()

	for _, c := range []Coord{{-1, 0}, {0, -1}, {Rows, 0}, {0, Cols}} {
		_, err := b.TileAt(c.Row, c.Col)
		assert.ErrorIs(t, err, ErrOutOfBounds, c.String())
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance(Coord{3, 3}, Coord{3, 3}))
	assert.Equal(t, 5, Distance(Coord{5, 6}, Coord{2, 4}))
	assert.Equal(t, 8, Distance(Coord{5, 6}, Coord{0, 3}))
}

func TestSnapshot(t *testing.T) {
	b := New()

	snap := b.Snapshot(map[Coord][]string{{5, 6}: {"P2", "P1"}})

	require.Len(t, snap, Rows)
	require.Len(t, snap[0], Cols)
	assert.Equal(t, StartRoom, snap[5][6].Name)
	assert.Equal(t, []string{"P2", "P1"}, snap[5][6].Occupants)
	assert.Equal(t, "Study", snap[0][0].SecretPassage)
	assert.Equal(t, "Study", snap[6][11].Name)
	assert.Equal(t, KindSpace, snap[1][1].Kind)
	assert.Empty(t, snap[1][1].Occupants)
}
