package auth

import (
	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: login y usuario actual.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	passwords PasswordHasher
	tokens    TokenService
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, passwords PasswordHasher, tokens TokenService) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, passwords: passwords, tokens: tokens}
}

// Login verifica email/password y emite un token scoped al user id.
// Email desconocido y contraseña incorrecta producen el mismo resultado
// hacia afuera (401): no se filtra cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !uc.passwords.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.tokens.Sign(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CurrentUser devuelve el usuario del token ya verificado.
// Retorna (nil, nil) si el id ya no resuelve a un usuario.
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
