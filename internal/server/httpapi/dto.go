package httpapi

import (
	"time"

	"github.com/irlquest/server/internal/server/identities"
	"github.com/irlquest/server/internal/server/quests"
	"github.com/irlquest/server/internal/server/tasks"
)

// identityOut never carries the password hash.
type identityOut struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toIdentityOut(i *identities.Identity) identityOut {
	return identityOut{
		ID:        i.ID,
		Email:     i.Email,
		Username:  i.Username,
		IsActive:  i.IsActive,
		CreatedAt: i.CreatedAt,
	}
}

type taskOut struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     *int64    `json:"owner_id"`
}

func toTaskOut(t *tasks.Task) taskOut {
	return taskOut{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		OwnerID:     t.OwnerID,
	}
}

type questOut struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Difficulty  int       `json:"difficulty"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     *int64    `json:"owner_id"`
}

func toQuestOut(q *quests.Quest) questOut {
	return questOut{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Difficulty:  q.Difficulty,
		CreatedAt:   q.CreatedAt,
		OwnerID:     q.OwnerID,
	}
}

type registerIn struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileIn struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type taskCreateIn struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type taskUpdateIn struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type questCreateIn struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Difficulty  *int    `json:"difficulty"`
}

type questUpdateIn struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Difficulty  *int    `json:"difficulty"`
}
