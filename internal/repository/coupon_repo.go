package repository

import (
	"context"

	"talkify/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CouponRepo interface {
	ListCoupons(ctx context.Context) ([]*model.Coupon, error)
	CouponsByCode(ctx context.Context, code string) ([]*model.Coupon, error)
	InsertCoupon(ctx context.Context, coupon *model.Coupon) error
}

type couponRepoImpl struct {
	col *mongo.Collection
}

func NewCouponRepo(db *mongo.Database) CouponRepo {
	return &couponRepoImpl{
		col: db.Collection("coupons"),
	}
}

func (s *couponRepoImpl) ListCoupons(ctx context.Context) ([]*model.Coupon, error) {
	return s.find(ctx, bson.M{})
}

func (s *couponRepoImpl) CouponsByCode(ctx context.Context, code string) ([]*model.Coupon, error) {
	return s.find(ctx, bson.M{"code": code})
}

func (s *couponRepoImpl) InsertCoupon(ctx context.Context, coupon *model.Coupon) error {
	res, err := s.col.InsertOne(ctx, coupon)
	if err != nil {
		return err
	}
	coupon.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *couponRepoImpl) find(ctx context.Context, filter bson.M) ([]*model.Coupon, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var coupons []*model.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}

	return coupons, nil
}
