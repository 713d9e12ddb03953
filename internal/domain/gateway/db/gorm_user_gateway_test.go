package db

import (
	"context"
	"errors"
	"testing"

	"weather-dashboard/internal/domain/entity"
)

type fakeLookup struct {
	usernames map[string]bool
	emails    map[string]bool
	err       error
}

func (f fakeLookup) ExistsByUsername(_ context.Context, username string) (bool, error) {
	return f.usernames[username], f.err
}

func (f fakeLookup) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.emails[email], f.err
}

func TestDuplicateUserError(t *testing.T) {
	user := &entity.User{Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name   string
		lookup fakeLookup
		want   error
	}{
		{"username clash", fakeLookup{usernames: map[string]bool{"alice": true}}, entity.ErrUsernameTaken},
		{"email clash", fakeLookup{emails: map[string]bool{"alice@example.com": true}}, entity.ErrEmailTaken},
		{"both taken", fakeLookup{usernames: map[string]bool{"alice": true}, emails: map[string]bool{"alice@example.com": true}}, entity.ErrUsernameTaken},
		{"row gone", fakeLookup{}, entity.ErrUsernameTaken},
		{"lookup failure", fakeLookup{emails: map[string]bool{"alice@example.com": true}, err: errors.New("conn reset")}, entity.ErrUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := duplicateUserError(context.Background(), tt.lookup, user); !errors.Is(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
