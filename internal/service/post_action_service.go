package service

import (
	"context"
	"strings"
	"time"

	"talkify/internal/api/dto"
	"talkify/internal/model"
	"talkify/internal/repository"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostActionService interface {
	LikePost(ctx context.Context, userID, postID string) error
	UnlikePost(ctx context.Context, userID, postID string) error
	IsLiked(ctx context.Context, userID, postID string) (bool, error)

	GetComments(ctx context.Context, postID string) ([]*dto.CommentDTO, error)
	AddComment(ctx context.Context, userID, postID string, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, postID, commentID string) error
}

type postActionServiceImpl struct {
	postRepo repository.PostRepo
	likeRepo repository.LikeRepo
	userRepo repository.UserRepo
}

func NewPostActionService(postRepo repository.PostRepo, likeRepo repository.LikeRepo, userRepo repository.UserRepo) PostActionService {
	return &postActionServiceImpl{
		postRepo: postRepo,
		likeRepo: likeRepo,
		userRepo: userRepo,
	}
}

// LikePost is idempotent: an existing like record short-circuits.
// The record insert and the counter increment are two separate writes;
// the counter can drift under races and is never reconciled.
func (s *postActionServiceImpl) LikePost(ctx context.Context, userID, postID string) error {
	id, err := s.postIDOf(ctx, postID)
	if err != nil {
		return err
	}

	exists, err := s.likeRepo.Exists(ctx, id, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	like := &model.Like{
		PostID:    id,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return err
	}

	return s.postRepo.IncLikes(ctx, id, 1)
}

func (s *postActionServiceImpl) UnlikePost(ctx context.Context, userID, postID string) error {
	id, err := s.postIDOf(ctx, postID)
	if err != nil {
		return err
	}

	deleted, err := s.likeRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return nil
	}

	return s.postRepo.IncLikes(ctx, id, -1)
}

func (s *postActionServiceImpl) IsLiked(ctx context.Context, userID, postID string) (bool, error) {
	id, err := s.postIDOf(ctx, postID)
	if err != nil {
		return false, err
	}

	return s.likeRepo.Exists(ctx, id, userID)
}

func (s *postActionServiceImpl) GetComments(ctx context.Context, postID string) ([]*dto.CommentDTO, error) {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments := make([]*dto.CommentDTO, 0, len(post.Comments))
	for i := range post.Comments {
		c := &dto.CommentDTO{}
		_ = copier.Copy(c, &post.Comments[i])
		comments = append(comments, c)
	}

	return comments, nil
}

func (s *postActionServiceImpl) AddComment(ctx context.Context, userID, postID string, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrCommentRequired
	}

	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	comment := &model.Comment{
		ID:        primitive.NewObjectID().Hex(),
		Content:   content,
		Author:    user.Snapshot(),
		CreatedAt: time.Now().UTC(),
		Likes:     0,
	}

	pushed, err := s.postRepo.PushComment(ctx, id, comment)
	if err != nil {
		return nil, err
	}
	if !pushed {
		return nil, ErrPostNotFound
	}

	out := &dto.CommentDTO{}
	_ = copier.Copy(out, comment)
	return out, nil
}

// DeleteComment is allowed for the comment's author and for the post's
// author, matching moderation rights of the post owner.
func (s *postActionServiceImpl) DeleteComment(ctx context.Context, userID, postID, commentID string) error {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	var comment *model.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			comment = &post.Comments[i]
			break
		}
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if comment.Author.UserID != userID && post.Author.UserID != userID {
		return ErrNotCommentAuthor
	}

	pulled, err := s.postRepo.PullComment(ctx, id, commentID)
	if err != nil {
		return err
	}
	if !pulled {
		return ErrCommentNotFound
	}

	return nil
}

// postIDOf parses the id and confirms the post still exists.
func (s *postActionServiceImpl) postIDOf(ctx context.Context, postID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return primitive.NilObjectID, ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if post == nil {
		return primitive.NilObjectID, ErrPostNotFound
	}

	return id, nil
}
