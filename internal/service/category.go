package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/repository"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	logger       *logrus.Logger
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, logger *logrus.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]model.Category, error) {
	return s.categoryRepo.ListByUser(ctx, userID)
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req model.CategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category := &model.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   req.Name,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}
