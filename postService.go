package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rehan-adi/Blog-Backend/cachedRepo"
	"github.com/rehan-adi/Blog-Backend/models"
	"github.com/rehan-adi/Blog-Backend/postRepo"
	"github.com/rehan-adi/Blog-Backend/uploader"
)

const cacheTTL = 12 * time.Hour

type PostService struct {
	repo     postRepo.PostRepo
	cache    cachedRepo.Cache
	uploader uploader.Uploader
}

func NewPostService(repo postRepo.PostRepo, cache cachedRepo.Cache, uploader uploader.Uploader) *PostService {
	return &PostService{
		repo:     repo,
		cache:    cache,
		uploader: uploader,
	}
}

// ListPosts reads through the posts:all cache entry. A hit never touches the
// store; a miss (including a cache failure or an undecodable entry) falls back
// to the store and repopulates the entry with the 12h TTL.
func (ps *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	if raw, ok := ps.cache.Get(ctx, cachedRepo.AllPostsKey); ok {
		if posts, ok := cachedRepo.DecodePosts(raw); ok {
			return posts, nil
		}
	}
	posts, err := ps.repo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := cachedRepo.EncodePosts(posts); err == nil {
		ps.cache.Set(ctx, cachedRepo.AllPostsKey, data, cacheTTL)
	}
	return posts, nil
}

func (ps *PostService) GetPost(ctx context.Context, id string) (models.Post, error) {
	return ps.repo.GetPost(ctx, id)
}

func (ps *PostService) GetPostsByCategory(ctx context.Context, categoryID string) ([]models.Post, error) {
	return ps.repo.ListPostsByCategory(ctx, categoryID)
}

func (ps *PostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	if req.Author == "" {
		return models.Post{}, ErrUnauthenticated
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return models.Post{}, ErrEmptyContent
	}
	categoryName := strings.TrimSpace(req.Category)
	if categoryName == "" {
		return models.Post{}, ErrEmptyCategory
	}

	category, err := ps.repo.GetOrCreateCategory(ctx, categoryName)
	if err != nil {
		return models.Post{}, err
	}

	var image *string
	if req.ImagePath != "" {
		url, err := ps.uploader.Upload(ctx, req.ImagePath)
		if err != nil {
			return models.Post{}, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		image = &url
	}

	post, err := ps.repo.CreatePost(ctx, postRepo.PostFields{
		Content:    content,
		Author:     req.Author,
		Image:      image,
		Tags:       req.Tags,
		CategoryID: category.ID,
	})
	if err != nil {
		return models.Post{}, err
	}

	ps.patchAllPosts(ctx, func(posts []models.Post) []models.Post {
		return append([]models.Post{post}, posts...)
	})
	ps.invalidateAuthor(ctx, post.Author.ID)
	return post, nil
}

func (ps *PostService) UpdatePost(ctx context.Context, id, caller string, req models.UpdatePostRequest) (models.Post, error) {
	if caller == "" {
		return models.Post{}, ErrUnauthenticated
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return models.Post{}, ErrEmptyContent
	}

	post, err := ps.repo.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if post.Author.ID != caller {
		return models.Post{}, ErrNotPostAuthor
	}

	updated, err := ps.repo.UpdatePost(ctx, id, postRepo.PostUpdate{
		Content: content,
		Image:   req.Image,
		Tags:    req.Tags,
	})
	if err != nil {
		return models.Post{}, err
	}

	ps.patchAllPosts(ctx, func(posts []models.Post) []models.Post {
		for i := range posts {
			if posts[i].ID == updated.ID {
				posts[i] = updated
				break
			}
		}
		return posts
	})
	ps.invalidateAuthor(ctx, caller)
	return updated, nil
}

func (ps *PostService) DeletePost(ctx context.Context, id, caller string) error {
	if caller == "" {
		return ErrUnauthenticated
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidPostID
	}

	post, err := ps.repo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post.Author.ID != caller {
		return ErrNotPostAuthor
	}

	if err := ps.repo.DeletePost(ctx, id); err != nil {
		return err
	}

	ps.patchAllPosts(ctx, func(posts []models.Post) []models.Post {
		kept := posts[:0]
		for _, p := range posts {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept
	})
	ps.invalidateAuthor(ctx, caller)
	return nil
}

// patchAllPosts rewrites the cached global listing in place when it exists.
// The rewrite is a plain read-modify-write: racing writers can interleave and
// the entry is written back without a TTL, both accepted trade-offs for a
// cache that is a read accelerator rather than a system of record.
func (ps *PostService) patchAllPosts(ctx context.Context, patch func([]models.Post) []models.Post) {
	raw, ok := ps.cache.Get(ctx, cachedRepo.AllPostsKey)
	if !ok {
		return
	}
	posts, ok := cachedRepo.DecodePosts(raw)
	if !ok {
		ps.cache.Delete(ctx, cachedRepo.AllPostsKey)
		return
	}
	data, err := cachedRepo.EncodePosts(patch(posts))
	if err != nil {
		ps.cache.Delete(ctx, cachedRepo.AllPostsKey)
		return
	}
	ps.cache.Set(ctx, cachedRepo.AllPostsKey, data, 0)
}

func (ps *PostService) invalidateAuthor(ctx context.Context, userID string) {
	ps.cache.Delete(ctx, cachedRepo.ProfileKey(userID))
	ps.cache.Delete(ctx, cachedRepo.UserPostsKey(userID))
}
