package dto

type CreateMenuItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// UpdateMenuItemInput replaces every mutable field of a menu item. The
// id and createdAt are never touched by an update.
type UpdateMenuItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}
