package repository

import (
	"context"
	"sort"

	"talkify/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepo interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]*model.Product, error)
	ProductsByPrice(ctx context.Context, price float64) ([]*model.Product, error)
	ProductsByTitle(ctx context.Context, title string) ([]*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	InsertProduct(ctx context.Context, product *model.Product) error
}

type catalogRepoImpl struct {
	col *mongo.Collection
}

func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepoImpl{
		col: db.Collection("catalog"),
	}
}

func (s *catalogRepoImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.find(ctx, bson.M{})
}

func (s *catalogRepoImpl) ProductsByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	return s.find(ctx, bson.M{"category": category})
}

func (s *catalogRepoImpl) ProductsByPrice(ctx context.Context, price float64) ([]*model.Product, error) {
	return s.find(ctx, bson.M{"price": price})
}

func (s *catalogRepoImpl) ProductsByTitle(ctx context.Context, title string) ([]*model.Product, error) {
	return s.find(ctx, bson.M{"title": title})
}

// Categories returns the distinct category names, sorted.
func (s *catalogRepoImpl) Categories(ctx context.Context) ([]string, error) {
	values, err := s.col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok && name != "" {
			categories = append(categories, name)
		}
	}
	sort.Strings(categories)

	return categories, nil
}

func (s *catalogRepoImpl) InsertProduct(ctx context.Context, product *model.Product) error {
	res, err := s.col.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *catalogRepoImpl) find(ctx context.Context, filter bson.M) ([]*model.Product, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []*model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}
