package service

import (
	"context"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/repo"

	"gitlab.com/goxp/cloud0/logger"
)

type HistoryService struct {
	repo repo.PGInterface
}

func NewHistoryService(repo repo.PGInterface) HistoryServiceInterface {
	return &HistoryService{repo: repo}
}

type HistoryServiceInterface interface {
	LogHistory(ctx context.Context, req model.History)
}

// LogHistory records an audit row. Failures are logged and swallowed.
func (s *HistoryService) LogHistory(ctx context.Context, req model.History) {
	log := logger.WithCtx(ctx, "HistoryService.LogHistory").WithField("action", req.Action)

	if _, err := s.repo.LogHistory(ctx, req, nil); err != nil {
		log.WithError(err).Error("Fail to log history")
	}
}
