package dto

type CreatePaymentInput struct {
	TransitionID string   `json:"transitionId"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Quantity     int      `json:"quantity" binding:"required,min=1"`
	Status       string   `json:"status"`
	CartIDs      []string `json:"cartItems" binding:"required,min=1"`
	MenuItems    []string `json:"menuItems"`
	ItemsName    []string `json:"itemsName"`
}

type PaymentIntentInput struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
