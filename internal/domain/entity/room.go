package entity

import "time"

// RoomItem es un ítem embebido en una sala. Category es texto libre.
type RoomItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Room representa una sala con su inventario embebido.
// Items se persiste como jsonb; borrar la sala elimina la lista embebida.
type Room struct {
	ID        string
	UserID    string
	Name      string
	Items     []RoomItem
	CreatedAt time.Time
}
