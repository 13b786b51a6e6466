package service

import (
	"context"
	"sort"
	"testing"

	"talkify/internal/api/dto"
	"talkify/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockCatalogRepo struct {
	products []*model.Product
}

func (m *mockCatalogRepo) ListProducts(_ context.Context) ([]*model.Product, error) {
	return m.products, nil
}

func (m *mockCatalogRepo) ProductsByCategory(_ context.Context, category string) ([]*model.Product, error) {
	var matched []*model.Product
	for _, p := range m.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (m *mockCatalogRepo) ProductsByPrice(_ context.Context, price float64) ([]*model.Product, error) {
	var matched []*model.Product
	for _, p := range m.products {
		if p.Price == price {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (m *mockCatalogRepo) ProductsByTitle(_ context.Context, title string) ([]*model.Product, error) {
	var matched []*model.Product
	for _, p := range m.products {
		if p.Title == title {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (m *mockCatalogRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range m.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (m *mockCatalogRepo) InsertProduct(_ context.Context, product *model.Product) error {
	product.ID = primitive.NewObjectID()
	m.products = append(m.products, product)
	return nil
}

type mockCouponRepo struct {
	coupons []*model.Coupon
}

func (m *mockCouponRepo) ListCoupons(_ context.Context) ([]*model.Coupon, error) {
	return m.coupons, nil
}

func (m *mockCouponRepo) CouponsByCode(_ context.Context, code string) ([]*model.Coupon, error) {
	var matched []*model.Coupon
	for _, c := range m.coupons {
		if c.Code == code {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (m *mockCouponRepo) InsertCoupon(_ context.Context, coupon *model.Coupon) error {
	coupon.ID = primitive.NewObjectID()
	m.coupons = append(m.coupons, coupon)
	return nil
}

func newCatalogServiceForTest() (CatalogService, *mockCatalogRepo, *mockCouponRepo) {
	catalogRepo := &mockCatalogRepo{}
	couponRepo := &mockCouponRepo{}
	return NewCatalogService(catalogRepo, couponRepo), catalogRepo, couponRepo
}

func TestCreateAndListProducts(t *testing.T) {
	svc, _, _ := newCatalogServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &dto.CreateProductDTO{
		Title:    "Mechanical Keyboard",
		Category: "electronics",
		Price:    129.99,
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	products, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mechanical Keyboard", products[0].Title)
}

func TestCategoriesDistinctSorted(t *testing.T) {
	svc, _, _ := newCatalogServiceForTest()
	ctx := context.Background()

	for _, p := range []dto.CreateProductDTO{
		{Title: "A", Category: "toys", Price: 1},
		{Title: "B", Category: "electronics", Price: 2},
		{Title: "C", Category: "toys", Price: 3},
		{Title: "D", Category: "books", Price: 4},
	} {
		_, err := svc.CreateProduct(ctx, &p)
		require.NoError(t, err)
	}

	categories, err := svc.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"books", "electronics", "toys"}, categories)
}

func TestProductFilters(t *testing.T) {
	svc, _, _ := newCatalogServiceForTest()
	ctx := context.Background()

	for _, p := range []dto.CreateProductDTO{
		{Title: "Lamp", Category: "home", Price: 20},
		{Title: "Desk", Category: "home", Price: 99},
		{Title: "Lamp", Category: "office", Price: 25},
	} {
		_, err := svc.CreateProduct(ctx, &p)
		require.NoError(t, err)
	}

	byCategory, err := svc.GetProductsByCategory(ctx, "home")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byTitle, err := svc.GetProductsByTitle(ctx, "Lamp")
	require.NoError(t, err)
	assert.Len(t, byTitle, 2)

	byPrice, err := svc.GetProductsByPrice(ctx, 99)
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, "Desk", byPrice[0].Title)

	_, err = svc.GetProductsByPrice(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidPrice)
	_, err = svc.GetProductsByPrice(ctx, -5)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCoupons(t *testing.T) {
	svc, _, _ := newCatalogServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateCoupon(ctx, &dto.CreateCouponDTO{
		Code:     "SAVE10",
		Discount: 10,
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	coupons, err := svc.GetCoupons(ctx)
	require.NoError(t, err)
	assert.Len(t, coupons, 1)

	byCode, err := svc.GetCouponsByCode(ctx, "SAVE10")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, float64(10), byCode[0].Discount)

	byCode, err = svc.GetCouponsByCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.Empty(t, byCode)
}
