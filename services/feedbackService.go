package services

import (
	"TeleMed/models"
	"TeleMed/utils"
	"context"

	"github.com/google/uuid"
)

type FeedbackService struct {
	feedback FeedbackStore
}

func NewFeedbackService(feedback FeedbackStore) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

func (s *FeedbackService) Submit(ctx context.Context, feedback *models.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	if err := utils.ValidateFeedback(*feedback); err != nil {
		return err
	}
	return s.feedback.Create(ctx, feedback)
}

func (s *FeedbackService) GetAll(ctx context.Context) ([]models.Feedback, error) {
	return s.feedback.GetAll(ctx)
}
