package cachedRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehan-adi/Blog-Backend/models"
)

func TestKeyScheme(t *testing.T) {
	assert.Equal(t, "posts:all", AllPostsKey)
	assert.Equal(t, "profile:42", ProfileKey("42"))
	assert.Equal(t, "posts:42", UserPostsKey("42"))
}

func TestDecodePostsRejectsGarbage(t *testing.T) {
	_, ok := DecodePosts("{not json")
	assert.False(t, ok, "garbage payload must read as a miss")
}

func TestPostsRoundTripPreservesOrder(t *testing.T) {
	posts := []models.Post{
		{ID: "b", Content: "newer"},
		{ID: "a", Content: "older"},
	}
	raw, err := EncodePosts(posts)
	require.NoError(t, err)

	decoded, ok := DecodePosts(raw)
	require.True(t, ok)
	assert.Equal(t, posts, decoded)
}

func TestDecodeProfileRejectsGarbage(t *testing.T) {
	_, ok := DecodeProfile("[]")
	assert.False(t, ok)
}
