package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *logrus.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Warnf("Usuario %s no encontrado", userID)
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input model.UpdateProfileInput) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.Name == "" {
		input.Name = user.Name
	}
	if input.Currency == "" {
		input.Currency = user.Currency
	}
	if !model.IsValidCurrency(input.Currency) {
		return nil, fmt.Errorf("moneda no soportada: %s", input.Currency)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, input.Name, input.Currency); err != nil {
		s.logger.WithError(err).Error("Error al actualizar el perfil")
		return nil, fmt.Errorf("error al actualizar perfil: %w", err)
	}

	user.Name = input.Name
	user.Currency = input.Currency
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, input model.ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		s.logger.Warn("Contraseña actual incorrecta al intentar cambiarla")
		return fmt.Errorf("la contraseña actual es incorrecta")
	}

	if len(input.NewPassword) < 8 {
		return fmt.Errorf("la nueva contraseña debe tener al menos 8 caracteres")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error al hashear la contraseña: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		s.logger.WithError(err).Error("Error al actualizar la contraseña")
		return fmt.Errorf("error al actualizar contraseña: %w", err)
	}

	s.logger.WithField("user_id", userID).Info("Contraseña actualizada")
	return nil
}
