package auth

import "golang.org/x/crypto/bcrypt"

// BcryptHasher implementación de PasswordHasher sobre bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher con el costo por defecto de bcrypt.
// Un costo distinto (p. ej. bcrypt.MinCost en tests) se pasa explícito.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash genera el digest bcrypt de la contraseña.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compara contraseña en claro contra el digest persistido.
func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
