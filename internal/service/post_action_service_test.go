package service

import (
	"context"
	"testing"

	"talkify/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActionServiceForTest(t *testing.T) (PostActionService, PostService, *mockPostRepo, *mockUserRepo, *mockLikeRepo) {
	t.Helper()
	postRepo := newMockPostRepo()
	userRepo := newMockUserRepo()
	likeRepo := newMockLikeRepo()
	return NewPostActionService(postRepo, likeRepo, userRepo),
		NewPostService(postRepo, userRepo, likeRepo),
		postRepo, userRepo, likeRepo
}

func TestLikePostIdempotent(t *testing.T) {
	actionSvc, postSvc, postRepo, userRepo, likeRepo := newActionServiceForTest(t)
	seedUser(userRepo, "user1", "Owner")
	seedUser(userRepo, "user2", "Fan")
	ctx := context.Background()

	created, err := postSvc.CreatePost(ctx, "user1", &dto.CreatePostDTO{Title: "Likeable", Content: "body"})
	require.NoError(t, err)
	id := mustObjectID(t, created.ID)

	require.NoError(t, actionSvc.LikePost(ctx, "user2", created.ID))
	assert.Equal(t, int64(1), postRepo.posts[id].Likes)
	assert.Len(t, likeRepo.likes, 1)

	// Second like is a no-op for both writes.
	require.NoError(t, actionSvc.LikePost(ctx, "user2", created.ID))
	assert.Equal(t, int64(1), postRepo.posts[id].Likes)
	assert.Len(t, likeRepo.likes, 1)

	// A different user still counts.
	require.NoError(t, actionSvc.LikePost(ctx, "user1", created.ID))
	assert.Equal(t, int64(2), postRepo.posts[id].Likes)
}

func TestUnlikePostIdempotent(t *testing.T) {
	actionSvc, postSvc, postRepo, userRepo, likeRepo := newActionServiceForTest(t)
	seedUser(userRepo, "user1", "Owner")
	seedUser(userRepo, "user2", "Fan")
	ctx := context.Background()

	created, err := postSvc.CreatePost(ctx, "user1", &dto.CreatePostDTO{Title: "Likeable", Content: "body"})
	require.NoError(t, err)
	id := mustObjectID(t, created.ID)

	require.NoError(t, actionSvc.LikePost(ctx, "user2", created.ID))
	require.NoError(t, actionSvc.UnlikePost(ctx, "user2", created.ID))
	assert.Equal(t, int64(0), postRepo.posts[id].Likes)
	assert.Empty(t, likeRepo.likes)

	// Unliking again must not drive the counter negative.
	require.NoError(t, actionSvc.UnlikePost(ctx, "user2", created.ID))
	assert.Equal(t, int64(0), postRepo.posts[id].Likes)
}

func TestLikeStateAndMissingPost(t *testing.T) {
	actionSvc, postSvc, _, userRepo, _ := newActionServiceForTest(t)
	seedUser(userRepo, "user1", "Owner")
	ctx := context.Background()

	created, err := postSvc.CreatePost(ctx, "user1", &dto.CreatePostDTO{Title: "State", Content: "body"})
	require.NoError(t, err)

	liked, err := actionSvc.IsLiked(ctx, "user1", created.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, actionSvc.LikePost(ctx, "user1", created.ID))
	liked, err = actionSvc.IsLiked(ctx, "user1", created.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	assert.ErrorIs(t, actionSvc.LikePost(ctx, "user1", "652d81fcafd3a1b2c3d4e5f6"), ErrPostNotFound)
	assert.ErrorIs(t, actionSvc.UnlikePost(ctx, "user1", "652d81fcafd3a1b2c3d4e5f6"), ErrPostNotFound)
	assert.ErrorIs(t, actionSvc.LikePost(ctx, "user1", "garbage"), ErrPostNotFound)
}

func TestComments(t *testing.T) {
	actionSvc, postSvc, _, userRepo, _ := newActionServiceForTest(t)
	seedUser(userRepo, "user1", "Owner")
	seedUser(userRepo, "user2", "Commenter")
	ctx := context.Background()

	created, err := postSvc.CreatePost(ctx, "user1", &dto.CreatePostDTO{Title: "Discussed", Content: "body"})
	require.NoError(t, err)

	comment, err := actionSvc.AddComment(ctx, "user2", created.ID, &dto.CreateCommentDTO{Content: "first!"})
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "first!", comment.Content)
	assert.Equal(t, "user2", comment.Author.UserID)
	assert.Equal(t, int64(0), comment.Likes)

	second, err := actionSvc.AddComment(ctx, "user1", created.ID, &dto.CreateCommentDTO{Content: "thanks"})
	require.NoError(t, err)
	assert.NotEqual(t, comment.ID, second.ID)

	comments, err := actionSvc.GetComments(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// Insertion order is display order.
	assert.Equal(t, comment.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
}

func TestAddCommentValidation(t *testing.T) {
	actionSvc, postSvc, _, userRepo, _ := newActionServiceForTest(t)
	seedUser(userRepo, "user1", "Owner")
	ctx := context.Background()

	created, err := postSvc.CreatePost(ctx, "user1", &dto.CreatePostDTO{Title: "Post", Content: "body"})
	require.NoError(t, err)

	_, err = actionSvc.AddComment(ctx, "user1", created.ID, &dto.CreateCommentDTO{Content: "   "})
	assert.ErrorIs(t, err, ErrCommentRequired)

	_, err = actionSvc.AddComment(ctx, "user1", "652d81fcafd3a1b2c3d4e5f6", &dto.CreateCommentDTO{Content: "hello"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = actionSvc.GetComments(ctx, "652d81fcafd3a1b2c3d4e5f6")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteCommentAuthorization(t *testing.T) {
	actionSvc, postSvc, _, userRepo, _ := newActionServiceForTest(t)
	seedUser(userRepo, "owner", "Post Owner")
	seedUser(userRepo, "commenter", "Commenter")
	seedUser(userRepo, "stranger", "Stranger")
	ctx := context.Background()

	created, err := postSvc.CreatePost(ctx, "owner", &dto.CreatePostDTO{Title: "Moderated", Content: "body"})
	require.NoError(t, err)

	first, err := actionSvc.AddComment(ctx, "commenter", created.ID, &dto.CreateCommentDTO{Content: "one"})
	require.NoError(t, err)
	second, err := actionSvc.AddComment(ctx, "commenter", created.ID, &dto.CreateCommentDTO{Content: "two"})
	require.NoError(t, err)

	// A third party may not delete someone else's comment.
	err = actionSvc.DeleteComment(ctx, "stranger", created.ID, first.ID)
	assert.ErrorIs(t, err, ErrNotCommentAuthor)

	// The comment's author may.
	require.NoError(t, actionSvc.DeleteComment(ctx, "commenter", created.ID, first.ID))

	// The post's author may moderate.
	require.NoError(t, actionSvc.DeleteComment(ctx, "owner", created.ID, second.ID))

	comments, err := actionSvc.GetComments(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	err = actionSvc.DeleteComment(ctx, "owner", created.ID, "missing-comment")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
