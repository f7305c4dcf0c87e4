package dto

type SocialMediaInput struct {
	Platform string `json:"platform" binding:"required"`
	Title    string `json:"title" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Icon     string `json:"icon"`
	IsActive *bool  `json:"isActive"`
	Priority int    `json:"priority"`
}

// PriorityInput moves a link one slot up or down in the display order.
type PriorityInput struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}
