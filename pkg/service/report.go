package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/repo"
	"finan/ms-pos-report/pkg/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gitlab.com/goxp/cloud0/logger"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination=../mocks/mock_service.go -package=mocks finan/ms-pos-report/pkg/service ReportExporter,HistoryServiceInterface

// ReportExporter renders a store report into a downloadable file.
type ReportExporter interface {
	ExportStoreReport(ctx context.Context, storeName string, startDate time.Time, report model.StoreEndDayReport) (model.ReportFile, error)
}

type ReportService struct {
	repo     repo.PGInterface
	exporter ReportExporter
	history  HistoryServiceInterface
	loc      *time.Location
}

func NewReportService(repo repo.PGInterface, exporter ReportExporter, history HistoryServiceInterface, loc *time.Location) ReportServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{repo: repo, exporter: exporter, history: history, loc: loc}
}

type ReportServiceInterface interface {
	GetStoreEndDayReport(ctx context.Context, identity model.Identity, req model.StoreReportRequest) (model.StoreEndDayReport, error)
	GetSessionReportDetail(ctx context.Context, identity model.Identity, sessionID uuid.UUID) (model.SessionReport, error)
	DownloadStoreReport(ctx context.Context, identity model.Identity, req model.StoreReportRequest) (model.ReportFile, error)
}

// checkStoreReportRequest validates req and returns the check-in window
// [startDate, endDate + 1 day).
func (s *ReportService) checkStoreReportRequest(ctx context.Context, identity model.Identity, req model.StoreReportRequest) (from, to time.Time, err error) {
	if req.StoreID == uuid.Nil {
		return from, to, utils.NewError(http.StatusBadRequest, utils.MESS_EMPTY_STORE_ID)
	}
	if from, err = utils.ParseReportDate(req.StartDate, s.loc); err != nil {
		return from, to, err
	}
	endDate, err := utils.ParseReportDate(req.EndDate, s.loc)
	if err != nil {
		return from, to, err
	}
	if endDate.Before(from) {
		return from, to, utils.NewError(http.StatusBadRequest, utils.MESS_INVALID_DATE_RANGE)
	}
	if err = utils.CheckStoreScope(ctx, identity, req.StoreID); err != nil {
		return from, to, err
	}

	return from, endDate.AddDate(0, 0, 1), nil
}

func (s *ReportService) buildStoreReport(ctx context.Context, storeID uuid.UUID, from, to time.Time) (model.StoreEndDayReport, error) {
	var (
		categories []model.Category
		orders     []model.Order
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		brandID, err := s.repo.GetBrandIDOfStore(egCtx, storeID, nil)
		if err != nil {
			return err
		}
		categories, err = s.repo.GetListCategoryByBrand(egCtx, brandID, nil)
		return err
	})
	eg.Go(func() error {
		var err error
		orders, err = s.repo.GetListPaidOrder(egCtx, model.PaidOrderFilter{StoreID: storeID, From: from, To: to}, nil)
		return err
	})
	if err := eg.Wait(); err != nil {
		return model.StoreEndDayReport{}, err
	}

	return newStoreReportBuilder(storeID, categories, s.loc).build(ctx, orders)
}

func (s *ReportService) GetStoreEndDayReport(ctx context.Context, identity model.Identity, req model.StoreReportRequest) (model.StoreEndDayReport, error) {
	log := logger.WithCtx(ctx, "ReportService.GetStoreEndDayReport").WithField("req", req)

	from, to, err := s.checkStoreReportRequest(ctx, identity, req)
	if err != nil {
		return model.StoreEndDayReport{}, err
	}

	rs, err := s.buildStoreReport(ctx, req.StoreID, from, to)
	if err != nil {
		log.WithError(err).Error("Build store end day report error")
		return model.StoreEndDayReport{}, err
	}

	return rs, nil
}

func (s *ReportService) GetSessionReportDetail(ctx context.Context, identity model.Identity, sessionID uuid.UUID) (model.SessionReport, error) {
	log := logger.WithCtx(ctx, "ReportService.GetSessionReportDetail").WithField("session ID", sessionID)

	if sessionID == uuid.Nil {
		return model.SessionReport{}, utils.NewError(http.StatusBadRequest, utils.MESS_EMPTY_SESSION_ID)
	}

	if _, err := s.repo.GetOneSession(ctx, sessionID, identity.StoreID, nil); err != nil {
		return model.SessionReport{}, err
	}

	orders, err := s.repo.GetListPaidOrderBySession(ctx, sessionID, nil)
	if err != nil {
		log.WithError(err).Error("Get paid orders of session error")
		return model.SessionReport{}, err
	}

	return buildSessionReport(orders), nil
}

func (s *ReportService) DownloadStoreReport(ctx context.Context, identity model.Identity, req model.StoreReportRequest) (model.ReportFile, error) {
	log := logger.WithCtx(ctx, "ReportService.DownloadStoreReport").WithFields(logrus.Fields{
		"store ID":   req.StoreID,
		"start date": req.StartDate,
		"end date":   req.EndDate,
		"user ID":    identity.UserID,
	})

	from, to, err := s.checkStoreReportRequest(ctx, identity, req)
	if err != nil {
		return model.ReportFile{}, err
	}

	store, err := s.repo.GetOneStore(ctx, req.StoreID, nil)
	if err != nil {
		return model.ReportFile{}, err
	}

	report, err := s.buildStoreReport(ctx, store.ID, from, to)
	if err != nil {
		log.WithError(err).Error("Build store end day report error")
		return model.ReportFile{}, err
	}

	file, err := s.exporter.ExportStoreReport(ctx, store.Name, from, report)
	if err != nil {
		log.WithError(err).Error("Export store report error")
		return model.ReportFile{}, utils.NewError(http.StatusInternalServerError, "")
	}

	data, _ := json.Marshal(map[string]string{
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
		"file_name":  file.FileName,
	})
	s.history.LogHistory(ctx, model.History{
		ObjectID:    store.ID,
		ObjectTable: utils.TABLE_STORE,
		Action:      utils.ACTION_DOWNLOAD_STORE_REPORT,
		Description: file.FileName,
		Data:        data,
		Worker:      identity.UserID.String(),
	})

	return file, nil
}
