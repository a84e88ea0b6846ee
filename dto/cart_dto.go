package dto

type CreateCartItemInput struct {
	MenuItemID string  `json:"menuItemId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Recipe     string  `json:"recipe"`
	Image      string  `json:"image"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Email      string  `json:"email" binding:"required,email"`
}

type UpdateCartQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required,min=1"`
}
