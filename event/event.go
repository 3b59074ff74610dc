package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event describes a single occurrence announced on a bus. The value is
// immutable once created; subscribers receive it by value.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates a descriptor for the given event name.
func New(name string) Event {
	return Event{
		ID:        generateID(),
		Name:      name,
		Timestamp: time.Now(),
	}
}

func (ev Event) String() string {
	return fmt.Sprintf("Event{ID: %s, Name: %s}", ev.ID, ev.Name)
}

func generateID() string {
	return uuid.Must(uuid.NewV7()).String()
}
