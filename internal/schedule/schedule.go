package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"eventdesk/internal/store"
)

// Entry is one scheduled event for a team, keyed by uuid.
type Entry struct {
	UUID      string `json:"uuid" dynamodbav:"uuid"`
	Team      string `json:"team" dynamodbav:"team"`
	Event     string `json:"event" dynamodbav:"event"`
	Timestamp string `json:"timestamp" dynamodbav:"timestamp"`
}

const timeLayout = "2006-01-02T15:04:05.000Z"

// Repository persists schedule entries in their DynamoDB table.
type Repository struct {
	store *store.Store
	table string
}

func NewRepository(s *store.Store, table string) *Repository {
	return &Repository{store: s, table: table}
}

// Create stores a new entry with a generated id and a creation timestamp,
// and returns the record as stored.
func (r *Repository) Create(ctx context.Context, team, event string) (Entry, error) {
	e := Entry{
		UUID:      uuid.NewString(),
		Team:      team,
		Event:     event,
		Timestamp: time.Now().UTC().Format(timeLayout),
	}
	if err := r.store.AddItem(ctx, r.table, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// ListByTeam returns the entries whose team matches exactly, preserving scan
// order among matches.
func (r *Repository) ListByTeam(ctx context.Context, team string) ([]Entry, error) {
	var all []Entry
	if err := r.store.ReadItems(ctx, r.table, &all); err != nil {
		return nil, err
	}
	var matched []Entry
	for _, e := range all {
		if e.Team == team {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// DeleteByFilter removes every entry matching the filter and returns the ids
// it removed. With both event and team set, both must match; with only event
// set, event alone decides. Without an event the call is a no-op returning no
// ids: there is no team-only delete. The deletes run concurrently and are all
// awaited, so a failed delete fails the whole call rather than vanishing.
func (r *Repository) DeleteByFilter(ctx context.Context, event, team string) ([]string, error) {
	if event == "" {
		return nil, nil
	}
	var all []Entry
	if err := r.store.ReadItems(ctx, r.table, &all); err != nil {
		return nil, err
	}
	var matched []string
	for _, e := range all {
		if e.Event != event {
			continue
		}
		if team != "" && e.Team != team {
			continue
		}
		matched = append(matched, e.UUID)
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range matched {
		g.Go(func() error {
			return r.store.DeleteItem(gctx, r.table, "uuid", id)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matched, nil
}
