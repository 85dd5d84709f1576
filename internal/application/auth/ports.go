package auth

// TokenService capacidad opaca de tokens: sign(userId) -> token y
// verify(token) -> userId | error. La implementación vive en pkg/jwt;
// el caso de uso no depende de ninguna librería criptográfica concreta.
type TokenService interface {
	Sign(userID string) (string, error)
	Verify(token string) (string, error)
}

// PasswordHasher capacidad opaca de contraseñas: hash(password) -> digest y
// verify(password, digest) -> bool.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
