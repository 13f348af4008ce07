package board

import (
	"errors"
	"fmt"
)

// Reference board dimensions.
const (
	Rows = 10
	Cols = 12
)

// StartRoom is the name of the room at the centre of the board.
const StartRoom = "Start Space"

// ErrTileNotFound is returned by CoordinatesOf when the tile is not on the board.
var ErrTileNotFound = errors.New("tile not found on board")

// ErrOutOfBounds is returned by TileAt for coordinates outside the grid.
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// Coord is a (row, column) position on the grid.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// Distance is the Manhattan distance between two coordinates.
func Distance(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// RoomPlacement is one entry of the fixed room layout.
type RoomPlacement struct {
	Name  string
	Coord Coord
}

// Layout is the fixed position of every murder room.
var Layout = []RoomPlacement{
	{"Kitchen", Coord{0, 0}},
	{"Library", Coord{0, 3}},
	{"Dining Room", Coord{0, 7}},
	{"Lounge", Coord{0, 11}},
	{"Ballroom", Coord{4, 0}},
	{"Study", Coord{6, 11}},
	{"Hall", Coord{8, 0}},
	{"Conservatory", Coord{9, 5}},
	{"Billiard Room", Coord{9, 11}},
}

// SecretPassages pairs rooms joined by a two-way secret passage.
var SecretPassages = [][2]string{
	{"Study", "Kitchen"},
	{"Conservatory", "Lounge"},
}

// Board is the fixed grid of Room and Space tiles.
type Board struct {
	grid   [][]*Tile
	rooms  map[string]*Tile
	spaces map[string]*Tile
	start  *Tile
}

// New builds the reference board: rooms at their fixed coordinates, the Start
// room in the centre cell, and a Space in every remaining cell. Spaces are
// linked only to orthogonally adjacent Spaces.
func New() *Board {
	b := &Board{
		grid:   make([][]*Tile, Rows),
		rooms:  make(map[string]*Tile),
		spaces: make(map[string]*Tile),
	}
	for r := range b.grid {
		b.grid[r] = make([]*Tile, Cols)
	}

	for _, p := range Layout {
		room := newRoom(p.Name)
		b.rooms[p.Name] = room
		b.grid[p.Coord.Row][p.Coord.Col] = room
	}

	b.start = newRoom(StartRoom)
	b.start.start = true
	b.rooms[StartRoom] = b.start
	b.grid[Rows/2][Cols/2] = b.start

	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.grid[r][c] == nil {
				space := newSpace(fmt.Sprintf("Space_%d_%d", r, c))
				b.spaces[space.name] = space
				b.grid[r][c] = space
			}
		}
	}

	steps := []Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			tile := b.grid[r][c]
			if !tile.IsSpace() {
				continue
			}
			for _, s := range steps {
				nr, nc := r+s.Row, c+s.Col
				if !inBounds(nr, nc) {
					continue
				}
				if next := b.grid[nr][nc]; next.IsSpace() {
					tile.connect(next)
				}
			}
		}
	}

	for _, pair := range SecretPassages {
		a, z := b.rooms[pair[0]], b.rooms[pair[1]]
		a.passage = z
		z.passage = a
	}
	return b
}

func inBounds(r, c int) bool {
	return r >= 0 && r < Rows && c >= 0 && c < Cols
}

func (b *Board) Rows() int { return len(b.grid) }
func (b *Board) Cols() int { return len(b.grid[0]) }

// Start returns the Start room.
func (b *Board) Start() *Tile { return b.start }

// Room looks a room up by exact name; nil when absent.
func (b *Board) Room(name string) *Tile { return b.rooms[name] }

// Space looks a space up by exact name; nil when absent.
func (b *Board) Space(name string) *Tile { return b.spaces[name] }

// Rooms returns the murder rooms in layout order. The Start room is excluded.
func (b *Board) Rooms() []*Tile {
	out := make([]*Tile, 0, len(Layout))
	for _, p := range Layout {
		out = append(out, b.rooms[p.Name])
	}
	return out
}

// TileAt returns the tile at the given coordinates.
func (b *Board) TileAt(row, col int) (*Tile, error) {
	if !inBounds(row, col) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, Coord{row, col})
	}
	return b.grid[row][col], nil
}

// CoordinatesOf scans the grid for the tile.
func (b *Board) CoordinatesOf(t *Tile) (Coord, error) {
	if t == nil {
		return Coord{}, fmt.Errorf("%w: nil tile", ErrTileNotFound)
	}
	for r, row := range b.grid {
		for c, tile := range row {
			if tile == t {
				return Coord{r, c}, nil
			}
		}
	}
	return Coord{}, fmt.Errorf("%w: %s", ErrTileNotFound, t)
}

// Cell is the view of one grid cell handed to renderers.
type Cell struct {
	Name          string
	Kind          Kind
	SecretPassage string
	Occupants     []string
}

// Snapshot is the occupancy of every cell, row-major.
type Snapshot [][]Cell

// Snapshot builds a view of the board with the given occupants per coordinate.
// Occupant order is preserved.
func (b *Board) Snapshot(occupants map[Coord][]string) Snapshot {
	snap := make(Snapshot, len(b.grid))
	for r, row := range b.grid {
		snap[r] = make([]Cell, len(row))
		for c, tile := range row {
			cell := Cell{Name: tile.name, Kind: tile.kind}
			if tile.passage != nil {
				cell.SecretPassage = tile.passage.name
			}
			if names := occupants[Coord{r, c}]; len(names) > 0 {
				cell.Occupants = append([]string(nil), names...)
			}
			snap[r][c] = cell
		}
	}
	return snap
}
