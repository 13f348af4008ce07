package board

// Kind tags the variant held by a Tile.
type Kind int

const (
	KindSpace Kind = iota
	KindRoom
)

func (k Kind) String() string {
	return []string{"space", "room"}[k]
}

// Tile is a single cell of the board. Rooms may carry a secret passage,
// Spaces carry adjacency links to neighbouring Spaces only.
type Tile struct {
	name      string
	kind      Kind
	start     bool
	passage   *Tile
	neighbors []*Tile
}

func newRoom(name string) *Tile  { return &Tile{name: name, kind: KindRoom} }
func newSpace(name string) *Tile { return &Tile{name: name, kind: KindSpace} }

func (t *Tile) Name() string  { return t.name }
func (t *Tile) Kind() Kind    { return t.kind }
func (t *Tile) IsRoom() bool  { return t.kind == KindRoom }
func (t *Tile) IsSpace() bool { return t.kind == KindSpace }

// IsStart reports whether the tile is the Start room every player begins on.
func (t *Tile) IsStart() bool { return t.start }

// SecretPassage returns the room this room's passage leads to, or nil.
func (t *Tile) SecretPassage() *Tile { return t.passage }

// Neighbors returns the Spaces linked to this Space. Rooms have none.
func (t *Tile) Neighbors() []*Tile {
	out := make([]*Tile, len(t.neighbors))
	copy(out, t.neighbors)
	return out
}

func (t *Tile) connect(other *Tile) {
	for _, n := range t.neighbors {
		if n == other {
			return
		}
	}
	t.neighbors = append(t.neighbors, other)
}

func (t *Tile) String() string {
	return t.kind.String() + "(" + t.name + ")"
}
