package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
)

type Category string

const (
	CategoryForest   Category = "forest"
	CategoryOcean    Category = "ocean"
	CategoryWildlife Category = "wildlife"
	CategoryClimate  Category = "climate"
)

const DefaultPuzzlePoints = 100

// Puzzle is the static description of one category's puzzle.
type Puzzle struct {
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Asset       string   `json:"asset"`
	Fact        string   `json:"fact"`
	Points      int      `json:"points"`
}

// Catalog lists puzzles in display order.
type Catalog struct {
	puzzles []Puzzle
	index   map[Category]int
}

func NewCatalog(puzzles ...Puzzle) *Catalog {
	catalog := &Catalog{
		puzzles: make([]Puzzle, 0, len(puzzles)),
		index:   make(map[Category]int, len(puzzles)),
	}

	for _, puzzle := range puzzles {
		if _, ok := catalog.index[puzzle.Category]; ok {
			continue
		}
		catalog.index[puzzle.Category] = len(catalog.puzzles)
		catalog.puzzles = append(catalog.puzzles, puzzle)
	}

	return catalog
}

// DefaultCatalog returns the four environmental categories.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Puzzle{
			Category:    CategoryForest,
			Name:        "Forests",
			Title:       "Lush Forest",
			Description: "Explore lush green forests and learn about their vital role in our ecosystem",
			Asset:       "forest-puzzle.jpg",
			Fact:        "🌳 Forests absorb about 2.6 billion tons of CO₂ annually, making them crucial for fighting climate change!",
			Points:      DefaultPuzzlePoints,
		},
		Puzzle{
			Category:    CategoryOcean,
			Name:        "Oceans",
			Title:       "Ocean Depths",
			Description: "Dive into the depths of our oceans and discover marine life",
			Asset:       "ocean-puzzle.jpg",
			Fact:        "🌊 Oceans produce over 50% of the world's oxygen and absorb 30% of CO₂ emissions!",
			Points:      DefaultPuzzlePoints,
		},
		Puzzle{
			Category:    CategoryWildlife,
			Name:        "Wildlife",
			Title:       "Majestic Wildlife",
			Description: "Meet amazing animals and learn about biodiversity conservation",
			Asset:       "wildlife-puzzle.jpg",
			Fact:        "🐅 We share our planet with over 8.7 million species, but we're losing them 1,000x faster than natural rates!",
			Points:      DefaultPuzzlePoints,
		},
		Puzzle{
			Category:    CategoryClimate,
			Name:        "Climate Change",
			Title:       "Climate Reality",
			Description: "Understand climate patterns and environmental challenges",
			Asset:       "climate-puzzle.jpg",
			Fact:        "🧊 Arctic sea ice is melting at a rate of 13% per decade, affecting global weather patterns!",
			Points:      DefaultPuzzlePoints,
		},
	)
}

func (that *Catalog) Get(category Category) (Puzzle, error) {
	i, ok := that.index[category]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCategory, category)
	}

	return that.puzzles[i], nil
}

func (that *Catalog) List() []Puzzle {
	puzzles := make([]Puzzle, len(that.puzzles))
	copy(puzzles, that.puzzles)

	return puzzles
}

// Others returns every category except the given one, in catalog order.
func (that *Catalog) Others(category Category) []Category {
	others := make([]Category, 0, len(that.puzzles))
	for _, puzzle := range that.puzzles {
		if puzzle.Category != category {
			others = append(others, puzzle.Category)
		}
	}

	return others
}
