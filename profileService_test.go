package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehan-adi/Blog-Backend/cachedRepo"
	"github.com/rehan-adi/Blog-Backend/postRepo"
)

func TestGetProfileReadThrough(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	posts := NewPostService(repo, cache, &fakeUploader{})
	profiles := NewProfileService(repo, cache)
	seedPosts(t, posts, aliceID, "first", "second")
	cache.Delete(context.Background(), cachedRepo.ProfileKey(aliceID))

	profile, err := profiles.GetProfile(context.Background(), aliceID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Username)
	assert.Equal(t, 2, profile.PostCount)
	assert.Equal(t, cacheTTL, cache.ttls[cachedRepo.ProfileKey(aliceID)])

	// A stale cached value is served as-is until invalidated.
	repo.users[aliceID] = repo.users[bobID]
	cachedProfile, err := profiles.GetProfile(context.Background(), aliceID)
	require.NoError(t, err)
	assert.Equal(t, "alice", cachedProfile.User.Username)
}

func TestGetProfileUnknownUser(t *testing.T) {
	repo := newFakeRepo()
	profiles := NewProfileService(repo, newFakeCache())

	_, err := profiles.GetProfile(context.Background(), "3390eea3-28a5-4062-a5a2-3e9b62e4d64c")
	assert.ErrorIs(t, err, postRepo.ErrUserNotFound)
}

func TestGetUserPostsReadThrough(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	posts := NewPostService(repo, cache, &fakeUploader{})
	profiles := NewProfileService(repo, cache)
	seedPosts(t, posts, aliceID, "first", "second")
	seedPosts(t, posts, bobID, "other")

	own, err := profiles.GetUserPosts(context.Background(), aliceID)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "second", own[0].Content, "own posts are newest first")

	cached, ok := cachedRepo.DecodePosts(cache.entries[cachedRepo.UserPostsKey(aliceID)])
	require.True(t, ok)
	assert.Equal(t, own, cached)
	assert.Equal(t, cacheTTL, cache.ttls[cachedRepo.UserPostsKey(aliceID)])
}

func TestGetUserPostsUnknownUser(t *testing.T) {
	repo := newFakeRepo()
	profiles := NewProfileService(repo, newFakeCache())

	_, err := profiles.GetUserPosts(context.Background(), "3390eea3-28a5-4062-a5a2-3e9b62e4d64c")
	assert.ErrorIs(t, err, postRepo.ErrUserNotFound)
}
