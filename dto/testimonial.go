package dto

// TestimonialInput arrives as multipart form fields so an avatar file can
// ride along. Rating bounds are checked in the controller after Atoi.
type TestimonialInput struct {
	Name    string `form:"name" binding:"required"`
	Comment string `form:"comment" binding:"required"`
	Rating  int    `form:"rating" binding:"required,min=1,max=5"`
	Role    string `form:"role"`
}
