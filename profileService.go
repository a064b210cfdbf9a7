package main

import (
	"context"

	"github.com/rehan-adi/Blog-Backend/cachedRepo"
	"github.com/rehan-adi/Blog-Backend/models"
	"github.com/rehan-adi/Blog-Backend/postRepo"
)

// ProfileService serves the two per-user derived views that post mutations
// invalidate: the profile entry and the own-posts entry.
type ProfileService struct {
	repo  postRepo.PostRepo
	cache cachedRepo.Cache
}

func NewProfileService(repo postRepo.PostRepo, cache cachedRepo.Cache) *ProfileService {
	return &ProfileService{
		repo:  repo,
		cache: cache,
	}
}

func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	key := cachedRepo.ProfileKey(userID)
	if raw, ok := ps.cache.Get(ctx, key); ok {
		if profile, ok := cachedRepo.DecodeProfile(raw); ok {
			return profile, nil
		}
	}

	user, err := ps.repo.GetUser(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	count, err := ps.repo.CountPostsByAuthor(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	profile := models.Profile{
		User:      user,
		PostCount: count,
	}
	if data, err := cachedRepo.EncodeProfile(profile); err == nil {
		ps.cache.Set(ctx, key, data, cacheTTL)
	}
	return profile, nil
}

func (ps *ProfileService) GetUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	key := cachedRepo.UserPostsKey(userID)
	if raw, ok := ps.cache.Get(ctx, key); ok {
		if posts, ok := cachedRepo.DecodePosts(raw); ok {
			return posts, nil
		}
	}

	if _, err := ps.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	posts, err := ps.repo.ListPostsByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if data, err := cachedRepo.EncodePosts(posts); err == nil {
		ps.cache.Set(ctx, key, data, cacheTTL)
	}
	return posts, nil
}
