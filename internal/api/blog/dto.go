package blog

import (
	"time"

	"ZencrowWebsite/internal/entity"
)

const MaxSearchLength = 200

type CreatePostRequest struct {
	Title      string    `json:"title" validate:"max=200"`
	Content    string    `json:"content"`
	Author     string    `json:"author" validate:"max=100"`
	DatePosted time.Time `json:"date_posted"`
}

type PostResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	DatePosted time.Time `json:"date_posted"`
}

type PostListResponse struct {
	Posts       []PostResponse `json:"posts"`
	Total       int            `json:"total"`
	SearchQuery string         `json:"search_query"`
}

func NewPostResponse(post entity.Post) PostResponse {
	return PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Author:     post.Author,
		DatePosted: post.DatePosted,
	}
}
