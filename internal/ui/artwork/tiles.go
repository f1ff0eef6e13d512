package artwork

import (
	"strings"
	"sync"
	"sync/atomic"

	art "github.com/llehouerou/storesearch/internal/artwork"
)

// Global image ID counter
var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Placement asks for the image of URL to be drawn in a tile slot.
// Row and Col are 1-based terminal coordinates.
type Placement struct {
	Slot int
	URL  string
	Row  int
	Col  int
}

type placementKey struct {
	image uint32
	slot  uint32
}

// Tiles manages the images shown by grid tiles. Each URL is transmitted
// once; every visible tile gets its own placement, keyed by its slot on the
// page, so switching pages only moves or removes placements.
type Tiles struct {
	proto ImageProtocol

	mu      sync.Mutex
	images  map[string]uint32
	placed  map[placementKey]struct{}
	pending strings.Builder

	// Tile size in cells
	width  int
	height int
}

// NewTiles creates a tile renderer. A nil protocol disables images.
func NewTiles(proto ImageProtocol) *Tiles {
	return &Tiles{
		proto:  proto,
		images: make(map[string]uint32),
		placed: make(map[placementKey]struct{}),
	}
}

// Enabled returns true if the terminal can show images.
func (t *Tiles) Enabled() bool {
	return t != nil && t.proto != nil
}

// SetTileSize sets the image size in cells. Changing it drops every
// transmitted image so they are re-scaled on the next Prepare.
func (t *Tiles) SetTileSize(width, height int) {
	if !t.Enabled() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.width == width && t.height == height {
		return
	}
	t.clearLocked()
	t.width = width
	t.height = height
}

// Has returns true if the image for url has been transmitted.
func (t *Tiles) Has(url string) bool {
	if !t.Enabled() {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.images[url]
	return ok
}

// Prepare decodes and scales data and queues its transmission.
func (t *Tiles) Prepare(url string, data []byte) error {
	if !t.Enabled() {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.images[url]; ok {
		return nil
	}

	pw, ph := t.proto.TargetPixelSize(max(t.width, 1), max(t.height, 1))
	img, err := art.Decode(data, pw, ph)
	if err != nil {
		return err
	}

	id := getNextImageID()
	cmd, err := t.proto.Prepare(img, id)
	if err != nil {
		return err
	}
	t.images[url] = id
	t.pending.WriteString(cmd)
	return nil
}

// TakePending returns queued transmit and delete commands and clears the
// queue. The output must be written before any placement referencing it.
func (t *Tiles) TakePending() string {
	if !t.Enabled() {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.pending.String()
	t.pending.Reset()
	return s
}

// Place returns the commands drawing placements and removing placements
// from the previous call that are not repeated.
func (t *Tiles) Place(placements []Placement) string {
	if !t.Enabled() {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	var sb strings.Builder
	next := make(map[placementKey]struct{}, len(placements))

	for _, p := range placements {
		id, ok := t.images[p.URL]
		if !ok {
			continue
		}
		key := placementKey{image: id, slot: uint32(p.Slot + 1)} //nolint:gosec // slot is small
		next[key] = struct{}{}
		sb.WriteString(t.proto.Place(key.image, key.slot, p.Row, p.Col, t.width, t.height))
	}

	for key := range t.placed {
		if _, keep := next[key]; !keep {
			sb.WriteString(t.proto.Unplace(key.image, key.slot))
		}
	}
	t.placed = next

	return sb.String()
}

// Clear deletes every transmitted image and returns the commands doing so.
func (t *Tiles) Clear() string {
	if !t.Enabled() {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clearLocked()
	s := t.pending.String()
	t.pending.Reset()
	return s
}

func (t *Tiles) clearLocked() {
	t.pending.Reset()
	for _, id := range t.images {
		t.pending.WriteString(t.proto.Delete(id))
	}
	t.images = make(map[string]uint32)
	t.placed = make(map[placementKey]struct{})
}
