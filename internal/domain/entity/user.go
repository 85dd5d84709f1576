package entity

import "time"

// User representa un usuario del sistema. Se crea en el seed o por registro;
// este servicio nunca lo elimina (el cascade delete vive en la base de datos).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
