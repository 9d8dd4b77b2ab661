package dto

// CreateProfessionalRequest entrada para registrar un profesional.
type CreateProfessionalRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ProfessionalResponse salida de un profesional.
type ProfessionalResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
