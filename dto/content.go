package dto

type NotificationInput struct {
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

type PartnerInput struct {
	Name       string `json:"name" binding:"required"`
	LogoURL    string `json:"logoUrl" binding:"omitempty,url"`
	WebsiteURL string `json:"websiteUrl" binding:"omitempty,url"`
	IsActive   *bool  `json:"isActive"`
}
