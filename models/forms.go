package models

// ContactMessage is the payload of the public contact form. It is
// delivered by email, never persisted.
type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubscriptionRequest is the payload of the platform subscription form.
type SubscriptionRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	VATNumber      string `json:"vat_number"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	BusinessName   string `json:"business_name" binding:"required"`
	Address        string `json:"address"`
	CityZip        string `json:"city_zip"`
	Website        string `json:"website"`
	Plan           string `json:"plan"`
	PrioritySupport bool  `json:"priority_support"`
	DailyBackups    bool  `json:"daily_backups"`
	CustomDomain    bool  `json:"custom_domain"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes"`
}
