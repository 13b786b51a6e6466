package repository

import (
	"context"
	"errors"

	"talkify/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	Upsert(ctx context.Context, user *model.User) error
	GetByUserID(ctx context.Context, userID string) (*model.User, error)
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection("users"),
	}
}

// Upsert creates the user on first login and refreshes the profile
// fields plus lastLogin on every subsequent one.
func (s *userRepoImpl) Upsert(ctx context.Context, user *model.User) error {
	filter := bson.M{"userId": user.UserID}
	update := bson.M{"$set": bson.M{
		"name":           user.Name,
		"email":          user.Email,
		"profilePicture": user.ProfilePicture,
		"lastLogin":      user.LastLogin,
	}}

	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *userRepoImpl) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
