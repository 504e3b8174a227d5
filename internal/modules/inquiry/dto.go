package inquiry

// CreateInquiryRequest is the public form submission. itemName identifies
// the listing for apartment/office inquiries.
type CreateInquiryRequest struct {
	Type     string `json:"type" binding:"required" validate:"required"`
	ItemName string `json:"itemName"`
	Name     string `json:"name" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Message  string `json:"message" binding:"required" validate:"required"`
}
