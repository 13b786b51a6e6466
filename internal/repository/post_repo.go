package repository

import (
	"context"
	"errors"
	"regexp"

	"talkify/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepo interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	GetByIDIncViews(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	GetBySlugIncViews(ctx context.Context, slug string) (*model.Post, error)
	SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	List(ctx context.Context, status, author string, page, limit int) ([]*model.Post, int64, error)
	Search(ctx context.Context, query string) ([]*model.Post, error)
	IncLikes(ctx context.Context, id primitive.ObjectID, delta int) error
	PushComment(ctx context.Context, postID primitive.ObjectID, comment *model.Comment) (bool, error)
	PullComment(ctx context.Context, postID primitive.ObjectID, commentID string) (bool, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection("posts"),
	}
}

func (s *postRepoImpl) Create(ctx context.Context, post *model.Post) error {
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *postRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByIDIncViews bumps the view counter in-place and returns the
// post-increment document. Reads of a single post always count a view.
func (s *postRepoImpl) GetByIDIncViews(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	return s.findAndIncViews(ctx, bson.M{"_id": id})
}

func (s *postRepoImpl) GetBySlugIncViews(ctx context.Context, slug string) (*model.Post, error) {
	return s.findAndIncViews(ctx, bson.M{"slug": slug})
}

func (s *postRepoImpl) findAndIncViews(ctx context.Context, filter bson.M) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := s.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *postRepoImpl) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (s *postRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *postRepoImpl) List(ctx context.Context, status, author string, page, limit int) ([]*model.Post, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if author != "" {
		filter["author.userId"] = author
	}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Search is a case-insensitive substring match over title and content,
// restricted to published posts. Metacharacters in the query are quoted
// so it never becomes a user-controlled regex.
func (s *postRepoImpl) Search(ctx context.Context, query string) ([]*model.Post, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"status": model.PostStatusPublished,
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
		},
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *postRepoImpl) IncLikes(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"likes": delta}})
	return err
}

func (s *postRepoImpl) PushComment(ctx context.Context, postID primitive.ObjectID, comment *model.Comment) (bool, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *postRepoImpl) PullComment(ctx context.Context, postID primitive.ObjectID, commentID string) (bool, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
