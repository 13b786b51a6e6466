package handler

import (
	"strconv"

	"talkify/internal/api/dto"
	"talkify/internal/pkg/response"
	"talkify/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogSvc: catalogSvc,
	}
}

func (s *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := s.catalogSvc.GetProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, products)
}

func (s *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := s.catalogSvc.GetCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, categories)
}

func (s *CatalogHandler) GetProductsByCategory(c *gin.Context) {
	products, err := s.catalogSvc.GetProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, products)
}

func (s *CatalogHandler) GetProductsByPrice(c *gin.Context) {
	price, err := strconv.ParseFloat(c.Param("price"), 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	products, err := s.catalogSvc.GetProductsByPrice(c.Request.Context(), price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, products)
}

func (s *CatalogHandler) GetProductsByTitle(c *gin.Context) {
	products, err := s.catalogSvc.GetProductsByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, products)
}

func (s *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	product, err := s.catalogSvc.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, product)
}

func (s *CatalogHandler) GetCoupons(c *gin.Context) {
	coupons, err := s.catalogSvc.GetCoupons(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, coupons)
}

func (s *CatalogHandler) GetCouponsByCode(c *gin.Context) {
	coupons, err := s.catalogSvc.GetCouponsByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, coupons)
}

func (s *CatalogHandler) CreateCoupon(c *gin.Context) {
	var req dto.CreateCouponDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	coupon, err := s.catalogSvc.CreateCoupon(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, coupon)
}
