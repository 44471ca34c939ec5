package entity

const (
	pointsPerLevel = 100
	badgeSuffix    = "_master"
)

// Session accumulates results across puzzles. It is a value: Complete returns a new one.
type Session struct {
	Points           int      `json:"points"`
	PuzzlesCompleted int      `json:"puzzles_completed"`
	Badges           []string `json:"badges"`
}

func NewSession() Session {
	return Session{Badges: []string{}}
}

// Complete records one finished puzzle. Badges are appended even when already earned.
func (that Session) Complete(category Category, points int) Session {
	badges := make([]string, len(that.Badges), len(that.Badges)+1)
	copy(badges, that.Badges)

	return Session{
		Points:           that.Points + points,
		PuzzlesCompleted: that.PuzzlesCompleted + 1,
		Badges:           append(badges, BadgeFor(category)),
	}
}

func BadgeFor(category Category) string {
	return string(category) + badgeSuffix
}

func (that Session) Level() int {
	return that.Points/pointsPerLevel + 1
}

func (that Session) PointsToNextLevel() int {
	return that.Level()*pointsPerLevel - that.Points
}

// LevelProgress is the percentage of the current level already earned.
func (that Session) LevelProgress() float64 {
	inLevel := that.Points - (that.Level()-1)*pointsPerLevel
	return float64(inLevel) / pointsPerLevel * 100
}

// Stats is the read model served to clients.
type Stats struct {
	Session
	Level             int     `json:"level"`
	PointsToNextLevel int     `json:"points_to_next_level"`
	LevelProgress     float64 `json:"level_progress"`
	BadgeCount        int     `json:"badge_count"`
}

func (that Session) Stats() Stats {
	return Stats{
		Session:           that,
		Level:             that.Level(),
		PointsToNextLevel: that.PointsToNextLevel(),
		LevelProgress:     that.LevelProgress(),
		BadgeCount:        len(that.Badges),
	}
}
