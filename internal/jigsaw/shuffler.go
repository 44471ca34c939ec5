package jigsaw

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
)

// Region is an axis-aligned rectangle in canvas pixels.
type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (that Region) Intersects(other Region) bool {
	return that.X < other.X+other.Width && other.X < that.X+that.Width &&
		that.Y < other.Y+other.Height && other.Y < that.Y+that.Height
}

// Shuffler scatters pieces over a staging region. Safe for concurrent use.
type Shuffler struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	staging Region
}

// NewShuffler seeds its source with seed, or with the clock when seed is 0.
func NewShuffler(seed int64, staging Region) *Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Shuffler{
		rnd:     rand.New(rand.NewSource(seed)), //nolint: gosec // layout only
		staging: staging,
	}
}

func (that *Shuffler) Staging() Region {
	return that.staging
}

// Shuffle resets every piece to unplaced at a uniform point of the staging region and permutes
// the slice in place.
func (that *Shuffler) Shuffle(pieces []entity.Piece, gridSize, cellSize int) error {
	grid := Region{Width: float64(gridSize * cellSize), Height: float64(gridSize * cellSize)}
	if that.staging.Width < 0 || that.staging.Height < 0 || that.staging.Intersects(grid) {
		return fmt.Errorf("%w: %+v", apperror.ErrStagingOverlap, that.staging)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for i := range pieces {
		pieces[i].CurrentX = that.staging.X + that.rnd.Float64()*that.staging.Width
		pieces[i].CurrentY = that.staging.Y + that.rnd.Float64()*that.staging.Height
		pieces[i].Placed = false
	}

	that.rnd.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})

	return nil
}

// Intn draws from the same source so that a seeded run is fully reproducible.
func (that *Shuffler) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}
