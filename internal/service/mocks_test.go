package service

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"talkify/internal/api/config"
	"talkify/internal/model"
	"talkify/internal/pkg/oauth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	config.Cfg = &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret"},
	}
	os.Exit(m.Run())
}

// In-memory stand-ins for the mongo repositories. They mimic the
// store's observable behavior (atomic-looking single-document ops)
// so the services can be exercised without a database.

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Upsert(_ context.Context, user *model.User) error {
	stored := *user
	m.users[user.UserID] = &stored
	return nil
}

func (m *mockUserRepo) GetByUserID(_ context.Context, userID string) (*model.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

type mockPostRepo struct {
	posts map[primitive.ObjectID]*model.Post

	updateCalls int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[primitive.ObjectID]*model.Post)}
}

func (m *mockPostRepo) Create(_ context.Context, post *model.Post) error {
	post.ID = primitive.NewObjectID()
	stored := *post
	stored.Comments = append([]model.Comment(nil), post.Comments...)
	m.posts[post.ID] = &stored
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	copied.Comments = append([]model.Comment(nil), post.Comments...)
	return &copied, nil
}

func (m *mockPostRepo) GetByIDIncViews(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	post.Views++
	return m.GetByID(ctx, id)
}

func (m *mockPostRepo) GetBySlugIncViews(ctx context.Context, slug string) (*model.Post, error) {
	for id, post := range m.posts {
		if post.Slug == slug {
			post.Views++
			return m.GetByID(ctx, id)
		}
	}
	return nil, nil
}

func (m *mockPostRepo) SlugExists(_ context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	for id, post := range m.posts {
		if post.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPostRepo) UpdateFields(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	post, ok := m.posts[id]
	if !ok {
		return errors.New("post not found")
	}
	m.updateCalls++

	for k, v := range fields {
		switch k {
		case "title":
			post.Title = v.(string)
		case "content":
			post.Content = v.(string)
		case "slug":
			post.Slug = v.(string)
		case "status":
			post.Status = v.(string)
		case "readTime":
			post.ReadTime = v.(int)
		case "updatedAt":
			post.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (m *mockPostRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := m.posts[id]; !ok {
		return false, nil
	}
	delete(m.posts, id)
	return true, nil
}

func (m *mockPostRepo) List(_ context.Context, status, author string, page, limit int) ([]*model.Post, int64, error) {
	var matched []*model.Post
	for _, post := range m.posts {
		if status != "" && post.Status != status {
			continue
		}
		if author != "" && post.Author.UserID != author {
			continue
		}
		copied := *post
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func (m *mockPostRepo) Search(_ context.Context, query string) ([]*model.Post, error) {
	q := strings.ToLower(query)
	var matched []*model.Post
	for _, post := range m.posts {
		if post.Status != model.PostStatusPublished {
			continue
		}
		if strings.Contains(strings.ToLower(post.Title), q) ||
			strings.Contains(strings.ToLower(post.Content), q) {
			copied := *post
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (m *mockPostRepo) IncLikes(_ context.Context, id primitive.ObjectID, delta int) error {
	post, ok := m.posts[id]
	if !ok {
		return errors.New("post not found")
	}
	post.Likes += int64(delta)
	return nil
}

func (m *mockPostRepo) PushComment(_ context.Context, postID primitive.ObjectID, comment *model.Comment) (bool, error) {
	post, ok := m.posts[postID]
	if !ok {
		return false, nil
	}
	post.Comments = append(post.Comments, *comment)
	return true, nil
}

func (m *mockPostRepo) PullComment(_ context.Context, postID primitive.ObjectID, commentID string) (bool, error) {
	post, ok := m.posts[postID]
	if !ok {
		return false, nil
	}
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type likeKey struct {
	postID primitive.ObjectID
	userID string
}

type mockLikeRepo struct {
	likes map[likeKey]*model.Like
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{likes: make(map[likeKey]*model.Like)}
}

func (m *mockLikeRepo) Exists(_ context.Context, postID primitive.ObjectID, userID string) (bool, error) {
	_, ok := m.likes[likeKey{postID, userID}]
	return ok, nil
}

func (m *mockLikeRepo) Create(_ context.Context, like *model.Like) error {
	m.likes[likeKey{like.PostID, like.UserID}] = like
	return nil
}

func (m *mockLikeRepo) Delete(_ context.Context, postID primitive.ObjectID, userID string) (bool, error) {
	key := likeKey{postID, userID}
	if _, ok := m.likes[key]; !ok {
		return false, nil
	}
	delete(m.likes, key)
	return true, nil
}

func (m *mockLikeRepo) DeleteByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	var deleted int64
	for key := range m.likes {
		if key.postID == postID {
			delete(m.likes, key)
			deleted++
		}
	}
	return deleted, nil
}

type mockRevocationStore struct {
	signature string
	ttl       time.Duration
	calls     int
}

func (m *mockRevocationStore) Revoke(_ context.Context, signature string, ttl time.Duration) error {
	m.signature = signature
	m.ttl = ttl
	m.calls++
	return nil
}

type fakeVerifier struct {
	claims *oauth.Claims
	err    error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*oauth.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("invalid object id %q: %v", hex, err)
	}
	return id
}

// seedUser registers a user the services can snapshot as author.
func seedUser(repo *mockUserRepo, userID, name string) *model.User {
	user := &model.User{
		UserID:         userID,
		Name:           name,
		Email:          userID + "@example.com",
		ProfilePicture: "https://example.com/pic.jpg",
		LastLogin:      time.Now().UTC(),
	}
	repo.users[userID] = user
	return user
}
