// Package resource catalogs the remote collections curio can browse: the
// record types, their editable fields, and the per-resource page handles
// the CLI and dashboard drive.
package resource

import (
	"fmt"
	"strconv"
	"strings"
)

// Todo is one entry in the todos collection.
type Todo struct {
	ID        int    `json:"id,omitempty"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

func (t Todo) Key() int { return t.ID }

func (t Todo) Cells() []string {
	done := " "
	if t.Completed {
		done = "x"
	}
	return []string{strconv.Itoa(t.ID), "[" + done + "]", t.Todo}
}

// CommentUser is the author block the service nests in comment responses.
type CommentUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// Comment is one entry in the comments collection. UserID is only set on
// drafts; responses carry the nested User block instead.
type Comment struct {
	ID     int          `json:"id,omitempty"`
	Body   string       `json:"body"`
	PostID int          `json:"postId"`
	Likes  int          `json:"likes,omitempty"`
	UserID int          `json:"userId,omitempty"`
	User   *CommentUser `json:"user,omitempty"`
}

func (c Comment) Key() int { return c.ID }

func (c Comment) Cells() []string {
	author := "?"
	if c.User != nil && c.User.Username != "" {
		author = c.User.Username
	}
	return []string{strconv.Itoa(c.ID), author, c.Body}
}

// Reactions is the reaction tally on a post.
type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Post is one entry in the posts collection.
type Post struct {
	ID        int        `json:"id,omitempty"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	UserID    int        `json:"userId"`
	Tags      []string   `json:"tags,omitempty"`
	Reactions *Reactions `json:"reactions,omitempty"`
	Views     int        `json:"views,omitempty"`
}

func (p Post) Key() int { return p.ID }

func (p Post) Cells() []string {
	return []string{strconv.Itoa(p.ID), p.Title, strings.Join(p.Tags, ",")}
}

// Recipe is one entry in the recipes collection.
type Recipe struct {
	ID              int     `json:"id,omitempty"`
	Name            string  `json:"name"`
	Cuisine         string  `json:"cuisine"`
	Difficulty      string  `json:"difficulty"`
	PrepTimeMinutes int     `json:"prepTimeMinutes"`
	CookTimeMinutes int     `json:"cookTimeMinutes"`
	Servings        int     `json:"servings"`
	Rating          float64 `json:"rating,omitempty"`
}

func (r Recipe) Key() int { return r.ID }

func (r Recipe) Cells() []string {
	mins := r.PrepTimeMinutes + r.CookTimeMinutes
	return []string{strconv.Itoa(r.ID), r.Name, r.Cuisine, fmt.Sprintf("%dm", mins)}
}

// Product is one entry in the products collection.
type Product struct {
	ID       int     `json:"id,omitempty"`
	Title    string  `json:"title"`
	Brand    string  `json:"brand,omitempty"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating,omitempty"`
	Stock    int     `json:"stock"`
}

func (p Product) Key() int { return p.ID }

func (p Product) Cells() []string {
	return []string{strconv.Itoa(p.ID), p.Title, p.Category, fmt.Sprintf("$%.2f", p.Price)}
}
