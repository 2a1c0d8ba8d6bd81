package game

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/trashsort/internal/domain"
)

type EventKind string

const (
	EventSessionStarted  EventKind = "session_started"
	EventSessionReset    EventKind = "session_reset"
	EventSessionEnded    EventKind = "session_ended"
	EventDragStarted     EventKind = "drag_started"
	EventDragCancelled   EventKind = "drag_cancelled"
	EventItemClassified  EventKind = "item_classified"
	EventFeedbackSettled EventKind = "feedback_settled"
)

// Event describes one applied engine reaction. Item fields are zero for
// session-level events.
type Event struct {
	Kind      EventKind
	SessionID string
	Score     int
	TimeLeft  int

	ItemID   int
	Category domain.Category
	Target   domain.Category
	Correct  bool
	Delta    int
}

// Observer receives engine events for logging.
type Observer interface {
	OnEvent(event Event)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnEvent(Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes engine events to w as slog text records.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnEvent(event Event) {
	attrs := make([]any, 0, 14)
	attrs = append(attrs,
		"session_id", event.SessionID,
		"score", event.Score,
		"time_left", event.TimeLeft,
	)
	if event.ItemID != 0 {
		attrs = append(attrs, "item_id", event.ItemID, "category", string(event.Category))
	}
	if event.Kind == EventItemClassified {
		attrs = append(attrs, "target", string(event.Target), "correct", event.Correct, "delta", event.Delta)
	}
	o.logger.Info(string(event.Kind), attrs...)
}
