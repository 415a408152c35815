package announcement

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/store"
)

// Announcement is an immutable broadcast message keyed by uuid.
type Announcement struct {
	UUID      string `json:"uuid" dynamodbav:"uuid"`
	Message   string `json:"message" dynamodbav:"message"`
	Timestamp string `json:"timestamp" dynamodbav:"timestamp"`
}

// timeLayout is fixed-width UTC with millisecond precision, so the stored
// strings sort lexicographically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000Z"

// Repository persists announcements in their DynamoDB table.
type Repository struct {
	store *store.Store
	table string
}

func NewRepository(s *store.Store, table string) *Repository {
	return &Repository{store: s, table: table}
}

// Create stores a new announcement with a generated id and a creation
// timestamp, and returns the record as stored.
func (r *Repository) Create(ctx context.Context, message string) (Announcement, error) {
	a := Announcement{
		UUID:      uuid.NewString(),
		Message:   message,
		Timestamp: time.Now().UTC().Format(timeLayout),
	}
	if err := r.store.AddItem(ctx, r.table, a); err != nil {
		return Announcement{}, err
	}
	return a, nil
}

// List returns all announcements, most recent first. Timestamps are compared
// as strings; the fixed-width format keeps that chronological.
func (r *Repository) List(ctx context.Context) ([]Announcement, error) {
	var out []Announcement
	if err := r.store.ReadItems(ctx, r.table, &out); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

// Delete removes an announcement by id. Absent ids still succeed.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteItem(ctx, r.table, "uuid", id)
}
