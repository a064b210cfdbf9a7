package postRepo

import (
	"context"
	"errors"

	"github.com/rehan-adi/Blog-Backend/models"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
)

type PostFields struct {
	Content    string
	Author     string
	Image      *string
	Tags       []string
	CategoryID string
}

type PostUpdate struct {
	Content string
	Image   *string
	Tags    []string
}

type PostRepo interface {
	CreatePost(ctx context.Context, fields PostFields) (models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPostsByCategory(ctx context.Context, categoryID string) ([]models.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	UpdatePost(ctx context.Context, id string, update PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
	GetOrCreateCategory(ctx context.Context, name string) (models.Category, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CountPostsByAuthor(ctx context.Context, authorID string) (int, error)
}
