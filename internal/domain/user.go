package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the denormalized form other records embed when they
// reference a user. Email is only filled where the view calls for it
// (authors and connection lists); likers and commenters carry id+name.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

// Summary strips a user down to the embeddable form.
func (u *User) Summary(withEmail bool) UserSummary {
	s := UserSummary{ID: u.ID, Name: u.Name}
	if withEmail {
		s.Email = u.Email
	}
	return s
}

// Profile is the resolved view of a user: relationship lists inlined as
// summaries, credential hash structurally absent.
type Profile struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Bio         string        `json:"bio,omitempty"`
	Connections []UserSummary `json:"connections"`
	Followers   []UserSummary `json:"followers"`
	CreatedAt   time.Time     `json:"created_at"`
}
