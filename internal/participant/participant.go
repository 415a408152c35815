package participant

import (
	"context"
	"strings"

	"eventdesk/internal/password"
	"eventdesk/internal/store"
)

// Participant is a registered event attendee. Email is the table key, so a
// second registration with the same email replaces the first record.
type Participant struct {
	Email     string `json:"email" dynamodbav:"email"`
	Password  string `json:"password" dynamodbav:"password"`
	Name      string `json:"name" dynamodbav:"name"`
	Team      string `json:"team" dynamodbav:"team"`
	Hotel     string `json:"hotel" dynamodbav:"hotel"`
	Stamp     string `json:"stamp" dynamodbav:"stamp"`
	Diet      string `json:"diet" dynamodbav:"diet"`
	CheckedIn bool   `json:"checked_in" dynamodbav:"checked_in"`
}

// RegisterInput carries the caller-supplied registration fields. The
// password is never accepted from the caller.
type RegisterInput struct {
	Email string
	Name  string
	Team  string
	Hotel string
	Stamp string
	Diet  string
}

const passwordLength = 5

// Repository persists participants in their DynamoDB table.
type Repository struct {
	store *store.Store
	table string
}

func NewRepository(s *store.Store, table string) *Repository {
	return &Repository{store: s, table: table}
}

// Register stores a participant with a server-generated password and
// checked_in unset, and returns the record as stored.
func (r *Repository) Register(ctx context.Context, in RegisterInput) (Participant, error) {
	pw, err := password.Generate(passwordLength)
	if err != nil {
		return Participant{}, err
	}
	p := Participant{
		Email:     in.Email,
		Password:  pw,
		Name:      in.Name,
		Team:      in.Team,
		Hotel:     in.Hotel,
		Stamp:     in.Stamp,
		Diet:      in.Diet,
		CheckedIn: false,
	}
	if err := r.store.AddItem(ctx, r.table, p); err != nil {
		return Participant{}, err
	}
	return p, nil
}

// List returns every participant in scan order.
func (r *Repository) List(ctx context.Context) ([]Participant, error) {
	var out []Participant
	if err := r.store.ReadItems(ctx, r.table, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByEmail lower-cases the requested email and returns the last scan match,
// or nil when nothing matches. Stored emails are compared as stored, so a
// record registered with mixed case is unreachable here.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Participant, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(email)
	var found *Participant
	for i := range all {
		if all[i].Email == email {
			found = &all[i]
		}
	}
	return found, nil
}

// Delete removes the participant keyed by email. Absent keys still succeed.
func (r *Repository) Delete(ctx context.Context, email string) error {
	return r.store.DeleteItem(ctx, r.table, "email", email)
}

// Login reports whether any participant matches the email and password
// exactly. No session or token is created; every request re-authenticates.
func (r *Repository) Login(ctx context.Context, email, pw string) (bool, error) {
	all, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range all {
		if p.Email == email && p.Password == pw {
			return true, nil
		}
	}
	return false, nil
}
