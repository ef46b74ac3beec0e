package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"district-scheduler/pkg/clients/endpoint"
	"district-scheduler/pkg/metrics"
	"district-scheduler/pkg/models"
	"district-scheduler/pkg/utils"
)

// SubmissionService defines the interface for delivering validated form data
type SubmissionService interface {
	ProcessSubmission(ctx context.Context, payload models.SubmissionPayload) error
}

type submissionServiceImpl struct {
	client endpoint.Client
	logger *zap.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(client endpoint.Client, logger *zap.Logger) SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &submissionServiceImpl{
		client: client,
		logger: logger,
	}
}

// ProcessSubmission sends one payload, once. Errors are transport failures
// from the endpoint client, returned unchanged.
func (s *submissionServiceImpl) ProcessSubmission(ctx context.Context, payload models.SubmissionPayload) error {
	log := s.logger.With(
		zap.String("submission_id", uuid.NewString()),
		zap.String("manager", payload.Manager),
		zap.String("phone_hash", utils.HashString(payload.Phone)),
	)
	log.Info("Processing submission",
		zap.String("district", payload.District),
		zap.String("schedule_date", payload.ScheduleDate),
	)

	start := time.Now()
	err := s.client.Submit(ctx, payload)
	metrics.SubmissionDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error("Error submitting data", zap.Error(err))
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info("Submission delivered")
	return nil
}
