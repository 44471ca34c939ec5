package game

import (
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/entity"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/jigsaw"
)

type EventKind string

const (
	EventScreenChanged   EventKind = "screen:changed"
	EventLoadRequested   EventKind = "load:requested"
	EventLoadFailed      EventKind = "load:failed"
	EventPuzzleReady     EventKind = "puzzle:ready"
	EventPiecePlaced     EventKind = "piece:placed"
	EventProgressUpdated EventKind = "progress:updated"
	EventPuzzleCompleted EventKind = "puzzle:completed"
)

// Event is an output of Machine.Apply: a notification for the client or a request for the driver.
type Event struct {
	Kind      EventKind         `json:"kind"`
	Screen    Screen            `json:"screen,omitempty"`
	Category  entity.Category   `json:"category,omitempty"`
	Asset     string            `json:"asset,omitempty"`
	Placement *jigsaw.Placement `json:"placement,omitempty"`
	Progress  float64           `json:"progress"`
	Points    int               `json:"points,omitempty"`
	Fact      string            `json:"fact,omitempty"`
	Message   string            `json:"message,omitempty"`
}

func screenChanged(screen Screen) Event {
	return Event{Kind: EventScreenChanged, Screen: screen}
}

func progressUpdated(progress float64) Event {
	return Event{Kind: EventProgressUpdated, Progress: progress}
}

// Find returns the first event of the given kind.
func Find(events []Event, kind EventKind) (Event, bool) {
	for _, event := range events {
		if event.Kind == kind {
			return event, true
		}
	}

	return Event{}, false
}
