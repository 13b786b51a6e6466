package service

import (
	"context"

	"talkify/internal/api/dto"
	"talkify/internal/model"
	"talkify/internal/repository"
)

type CatalogService interface {
	GetProducts(ctx context.Context) ([]*model.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetProductsByCategory(ctx context.Context, category string) ([]*model.Product, error)
	GetProductsByPrice(ctx context.Context, price float64) ([]*model.Product, error)
	GetProductsByTitle(ctx context.Context, title string) ([]*model.Product, error)
	CreateProduct(ctx context.Context, req *dto.CreateProductDTO) (*model.Product, error)

	GetCoupons(ctx context.Context) ([]*model.Coupon, error)
	GetCouponsByCode(ctx context.Context, code string) ([]*model.Coupon, error)
	CreateCoupon(ctx context.Context, req *dto.CreateCouponDTO) (*model.Coupon, error)
}

type catalogServiceImpl struct {
	catalogRepo repository.CatalogRepo
	couponRepo  repository.CouponRepo
}

func NewCatalogService(catalogRepo repository.CatalogRepo, couponRepo repository.CouponRepo) CatalogService {
	return &catalogServiceImpl{
		catalogRepo: catalogRepo,
		couponRepo:  couponRepo,
	}
}

func (s *catalogServiceImpl) GetProducts(ctx context.Context) ([]*model.Product, error) {
	return s.catalogRepo.ListProducts(ctx)
}

func (s *catalogServiceImpl) GetCategories(ctx context.Context) ([]string, error) {
	return s.catalogRepo.Categories(ctx)
}

func (s *catalogServiceImpl) GetProductsByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	return s.catalogRepo.ProductsByCategory(ctx, category)
}

func (s *catalogServiceImpl) GetProductsByPrice(ctx context.Context, price float64) ([]*model.Product, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	return s.catalogRepo.ProductsByPrice(ctx, price)
}

func (s *catalogServiceImpl) GetProductsByTitle(ctx context.Context, title string) ([]*model.Product, error) {
	return s.catalogRepo.ProductsByTitle(ctx, title)
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *dto.CreateProductDTO) (*model.Product, error) {
	product := &model.Product{
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := s.catalogRepo.InsertProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogServiceImpl) GetCoupons(ctx context.Context) ([]*model.Coupon, error) {
	return s.couponRepo.ListCoupons(ctx)
}

func (s *catalogServiceImpl) GetCouponsByCode(ctx context.Context, code string) ([]*model.Coupon, error) {
	return s.couponRepo.CouponsByCode(ctx, code)
}

func (s *catalogServiceImpl) CreateCoupon(ctx context.Context, req *dto.CreateCouponDTO) (*model.Coupon, error) {
	coupon := &model.Coupon{
		Code:        req.Code,
		Discount:    req.Discount,
		Description: req.Description,
	}

	if err := s.couponRepo.InsertCoupon(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}
