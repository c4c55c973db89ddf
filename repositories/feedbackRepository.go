package repositories

import (
	"TeleMed/database"
	"TeleMed/models"
	"context"
	"fmt"
	"time"
)

type FeedbackRepository struct{}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if err := database.DB.Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) GetAll(ctx context.Context) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var feedback []models.Feedback
	err := database.DB.Order("created_at DESC").Find(&feedback).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return feedback, nil
}
