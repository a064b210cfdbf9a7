package main

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rehan-adi/Blog-Backend/models"
	"github.com/rehan-adi/Blog-Backend/postRepo"
)

const (
	aliceID = "11111111-1111-1111-1111-111111111111"
	bobID   = "22222222-2222-2222-2222-222222222222"
)

// In-memory stand-in for the content store.
type fakeRepo struct {
	posts      []models.Post
	categories map[string]models.Category
	users      map[string]models.User
	listCalls  int
	clock      time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		categories: make(map[string]models.Category),
		users: map[string]models.User{
			aliceID: {ID: aliceID, Username: "alice", Name: "Alice", ProfilePicture: "https://img.example/alice.png"},
			bobID:   {ID: bobID, Username: "bob", Name: "Bob"},
		},
		clock: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (fr *fakeRepo) tick() time.Time {
	fr.clock = fr.clock.Add(time.Minute)
	return fr.clock
}

func (fr *fakeRepo) CreatePost(ctx context.Context, fields postRepo.PostFields) (models.Post, error) {
	author, ok := fr.users[fields.Author]
	if !ok {
		return models.Post{}, postRepo.ErrUserNotFound
	}
	var category models.Category
	found := false
	for _, c := range fr.categories {
		if c.ID == fields.CategoryID {
			category = c
			found = true
		}
	}
	if !found {
		return models.Post{}, postRepo.ErrCategoryNotFound
	}
	post := models.Post{
		ID:        uuid.NewString(),
		Content:   fields.Content,
		Author:    author,
		Image:     fields.Image,
		Tags:      fields.Tags,
		Category:  category,
		CreatedAt: fr.tick(),
	}
	fr.posts = append(fr.posts, post)
	return post, nil
}

func (fr *fakeRepo) GetPost(ctx context.Context, id string) (models.Post, error) {
	for _, p := range fr.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, postRepo.ErrPostNotFound
}

func (fr *fakeRepo) ListPosts(ctx context.Context) ([]models.Post, error) {
	fr.listCalls++
	posts := make([]models.Post, len(fr.posts))
	copy(posts, fr.posts)
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (fr *fakeRepo) ListPostsByCategory(ctx context.Context, categoryID string) ([]models.Post, error) {
	found := false
	for _, c := range fr.categories {
		if c.ID == categoryID {
			found = true
		}
	}
	if !found {
		return nil, postRepo.ErrCategoryNotFound
	}
	posts := make([]models.Post, 0)
	for _, p := range fr.posts {
		if p.Category.ID == categoryID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (fr *fakeRepo) ListPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	for _, p := range fr.posts {
		if p.Author.ID == authorID {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (fr *fakeRepo) UpdatePost(ctx context.Context, id string, update postRepo.PostUpdate) (models.Post, error) {
	for i := range fr.posts {
		if fr.posts[i].ID == id {
			fr.posts[i].Content = update.Content
			if update.Image != nil {
				fr.posts[i].Image = update.Image
			}
			if update.Tags != nil {
				fr.posts[i].Tags = update.Tags
			}
			return fr.posts[i], nil
		}
	}
	return models.Post{}, postRepo.ErrPostNotFound
}

func (fr *fakeRepo) DeletePost(ctx context.Context, id string) error {
	for i := range fr.posts {
		if fr.posts[i].ID == id {
			fr.posts = append(fr.posts[:i], fr.posts[i+1:]...)
			return nil
		}
	}
	return postRepo.ErrPostNotFound
}

func (fr *fakeRepo) GetOrCreateCategory(ctx context.Context, name string) (models.Category, error) {
	if category, ok := fr.categories[name]; ok {
		return category, nil
	}
	category := models.Category{ID: uuid.NewString(), Name: name}
	fr.categories[name] = category
	return category, nil
}

func (fr *fakeRepo) GetUser(ctx context.Context, id string) (models.User, error) {
	user, ok := fr.users[id]
	if !ok {
		return models.User{}, postRepo.ErrUserNotFound
	}
	return user, nil
}

func (fr *fakeRepo) CountPostsByAuthor(ctx context.Context, authorID string) (int, error) {
	count := 0
	for _, p := range fr.posts {
		if p.Author.ID == authorID {
			count++
		}
	}
	return count, nil
}

// In-memory stand-in for the cache layer. ttls records the TTL passed on the
// last Set for each key so tests can assert the expiry policy.
type fakeCache struct {
	entries map[string]string
	ttls    map[string]time.Duration
	failGet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string]string),
		ttls:    make(map[string]time.Duration),
	}
}

func (fc *fakeCache) Get(ctx context.Context, key string) (string, bool) {
	if fc.failGet {
		return "", false
	}
	val, ok := fc.entries[key]
	return val, ok
}

func (fc *fakeCache) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	fc.entries[key] = value
	fc.ttls[key] = ttl
}

func (fc *fakeCache) Delete(ctx context.Context, key string) {
	delete(fc.entries, key)
	delete(fc.ttls, key)
}

type fakeUploader struct {
	url     string
	err     error
	gotPath string
}

func (fu *fakeUploader) Upload(ctx context.Context, filePath string) (string, error) {
	fu.gotPath = filePath
	if fu.err != nil {
		return "", fu.err
	}
	return fu.url, nil
}

var errUploadDown = errors.New("upstream storage unavailable")
