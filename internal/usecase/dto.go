package usecase

// CreateLeadInput mirrors the create form. Status is a UI label; it is
// folded into a storage value before persistence.
type CreateLeadInput struct {
	Name           string `json:"name" validate:"required"`
	Country        string `json:"country"`
	Status         string `json:"status"`
	PhoneNumber    string `json:"phoneNumber"`
	WhatsappNumber string `json:"whatsappNumber"`
	Website        string `json:"website"`
	Email          string `json:"email"`
	Notes          string `json:"notes"`
}

// UpdateLeadInput overwrites every editable field. Status must already be
// a storage value (HOT, PROGRESS, DISQUALIFIED).
type UpdateLeadInput struct {
	Name           string  `json:"name" validate:"required"`
	Country        *string `json:"country"`
	Status         string  `json:"status" validate:"required"`
	PhoneNumber    *string `json:"phoneNumber"`
	WhatsappNumber *string `json:"whatsappNumber"`
	Website        *string `json:"website"`
	Notes          *string `json:"notes"`
}

type TemplateInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type SendEmailInput struct {
	TemplateID int64  `json:"templateId" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}
