package repository

import (
	"context"

	"talkify/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LikeRepo interface {
	Exists(ctx context.Context, postID primitive.ObjectID, userID string) (bool, error)
	Create(ctx context.Context, like *model.Like) error
	Delete(ctx context.Context, postID primitive.ObjectID, userID string) (bool, error)
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
}

type likeRepoImpl struct {
	col *mongo.Collection
}

func NewLikeRepo(db *mongo.Database) LikeRepo {
	return &likeRepoImpl{
		col: db.Collection("likes"),
	}
}

func (s *likeRepoImpl) Exists(ctx context.Context, postID primitive.ObjectID, userID string) (bool, error) {
	filter := bson.M{"postId": postID, "userId": userID}
	count, err := s.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *likeRepoImpl) Create(ctx context.Context, like *model.Like) error {
	_, err := s.col.InsertOne(ctx, like)
	return err
}

func (s *likeRepoImpl) Delete(ctx context.Context, postID primitive.ObjectID, userID string) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"postId": postID, "userId": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// DeleteByPost cascades like-record deletion when a post is removed.
func (s *likeRepoImpl) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
