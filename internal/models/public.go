package models

import (
	"time"
)

// API-facing representations. Internal rows and wire shapes are distinct
// types with explicit mappings; owner references and credential fields never
// serialize.

// PublicUser is the API shape of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Age       *int      `json:"age"`
	Image     *string   `json:"image"`
	Job       *string   `json:"job"`
	Bio       *string   `json:"bio"`
	Country   *string   `json:"country"`
	Height    *float64  `json:"height"`
	Weight    *float64  `json:"weight"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public maps a User row to its API shape.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Image:     u.Image,
		Job:       u.Job,
		Bio:       u.Bio,
		Country:   u.Country,
		Height:    u.Height,
		Weight:    u.Weight,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PublicPost is the API shape of a Post.
type PublicPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public maps a Post row to its API shape.
func (p Post) Public() PublicPost {
	return PublicPost{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PublicComment is the API shape of a Comment.
type PublicComment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public maps a Comment row to its API shape.
func (c Comment) Public() PublicComment {
	return PublicComment{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.UserID,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// PublicAccount is the API shape of an ApiAccount.
type PublicAccount struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public maps an ApiAccount row to its API shape.
func (a ApiAccount) Public() PublicAccount {
	return PublicAccount{
		ID:        a.ID,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AuthAccount is the API shape returned by signup and signin: the public
// account plus its bearer token.
type AuthAccount struct {
	PublicAccount
	Token string `json:"token"`
}

// Auth maps an ApiAccount row to the token-bearing API shape.
func (a ApiAccount) Auth() AuthAccount {
	return AuthAccount{
		PublicAccount: a.Public(),
		Token:         a.Token,
	}
}
