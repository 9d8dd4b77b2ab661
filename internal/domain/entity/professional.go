package entity

// Professional representa un profesional que puede retirar estoque.
// Compartido entre todos los usuarios (no tiene UserID). Los movimientos lo
// referencian por nombre, no por ID.
type Professional struct {
	ID   string
	Name string
}
