package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/repository"
)

type IncomeService struct {
	incomeRepo *repository.IncomeRepository
	logger     *logrus.Logger
}

func NewIncomeService(incomeRepo *repository.IncomeRepository, logger *logrus.Logger) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo, logger: logger}
}

func (s *IncomeService) List(ctx context.Context, userID uuid.UUID) ([]model.Income, error) {
	return s.incomeRepo.ListByUser(ctx, userID)
}

func (s *IncomeService) Create(ctx context.Context, userID uuid.UUID, req model.IncomeRequest) (*model.Income, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	isRecurring := true
	if req.IsRecurring != nil {
		isRecurring = *req.IsRecurring
	}

	income := &model.Income{
		ID:          uuid.New(),
		UserID:      userID,
		Source:      req.Source,
		Amount:      req.Amount,
		Frequency:   req.Frequency,
		IsRecurring: isRecurring,
		CreatedAt:   time.Now(),
	}

	if err := s.incomeRepo.Create(ctx, income); err != nil {
		return nil, err
	}

	return income, nil
}
