package dto

type CreateProductDTO struct {
	Title       string  `json:"title" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type CreateCouponDTO struct {
	Code        string  `json:"code" binding:"required"`
	Discount    float64 `json:"discount" binding:"required,gt=0"`
	Description string  `json:"description"`
}
