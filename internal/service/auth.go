package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/repository"
)

type AuthService struct {
	userRepo    *repository.UserRepository
	jwtSecret   string
	tokenExpiry time.Duration
	logger      *logrus.Logger
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, tokenExpiry time.Duration, logger *logrus.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
		logger:      logger,
	}
}

// SignUp registra un nuevo usuario
func (s *AuthService) SignUp(ctx context.Context, input model.SignUpInput) (*model.User, error) {
	s.logger.WithField("email", input.Email).Info("Intento de registro de nuevo usuario")

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.WithError(err).Error("No se pudo verificar la existencia del usuario")
		return nil, fmt.Errorf("error al verificar existencia del usuario: %w", err)
	}
	if exists {
		s.logger.Warn("Ya existe un usuario con ese email")
		return nil, fmt.Errorf("ya existe un usuario con ese email")
	}

	// Hash de la contraseña
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.WithError(err).Error("No se pudo hashear la contraseña")
		return nil, fmt.Errorf("error al hashear la contraseña: %w", err)
	}

	currency := input.Currency
	if currency == "" {
		currency = "CLP"
	}

	now := time.Now()
	user := &model.User{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hashedPassword),
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.WithError(err).Error("No se pudo crear el usuario en la base de datos")
		return nil, fmt.Errorf("error al crear usuario: %w", err)
	}

	s.logger.WithField("user_id", user.ID).Info("Usuario registrado exitosamente")
	return user, nil
}

// SignIn autentica al usuario y genera un token JWT
func (s *AuthService) SignIn(ctx context.Context, input model.SignInInput) (string, error) {
	s.logger.WithField("email", input.Email).Info("Intento de inicio de sesión")

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.WithError(err).Warn("Usuario no encontrado o credenciales inválidas")
		return "", fmt.Errorf("credenciales inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		s.logger.Warn("Contraseña incorrecta en intento de inicio de sesión")
		return "", fmt.Errorf("credenciales inválidas")
	}

	token, err := s.GenerateJWTToken(user.ID.String())
	if err != nil {
		s.logger.WithError(err).Error("No se pudo generar el token JWT")
		return "", fmt.Errorf("error al generar token: %w", err)
	}

	s.logger.WithField("user_id", user.ID).Info("Inicio de sesión exitoso")
	return token, nil
}

// GenerateJWTToken genera un token JWT firmado
func (s *AuthService) GenerateJWTToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenExpiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken valida un token JWT y devuelve el ID del usuario
func (s *AuthService) ParseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		s.logger.WithError(err).Warn("Token JWT inválido")
		return "", fmt.Errorf("token inválido: %w", err)
	}

	userID := claims.Subject
	if userID == "" {
		s.logger.Error("No se pudo extraer el identificador de usuario del token")
		return "", fmt.Errorf("claims del token incorrectos")
	}

	return userID, nil
}
