package service

import (
	"context"
	"net/http"
	"strings"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/repo"
	"finan/ms-pos-report/pkg/utils"
	"finan/ms-pos-report/pkg/valid"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/logger"
)

type PromotionService struct {
	repo repo.PGInterface
}

func NewPromotionService(repo repo.PGInterface) PromotionServiceInterface {
	return &PromotionService{repo: repo}
}

type PromotionServiceInterface interface {
	GetListPromotion(ctx context.Context, identity model.Identity, req model.PromotionParam) (model.ListPromotionResponse, error)
}

// GetListPromotion lists the promotions of the caller's brand.
func (s *PromotionService) GetListPromotion(ctx context.Context, identity model.Identity, req model.PromotionParam) (model.ListPromotionResponse, error) {
	log := logger.WithCtx(ctx, "PromotionService.GetListPromotion").WithField("req", req)

	if identity.BrandID == uuid.Nil {
		return model.ListPromotionResponse{}, utils.NewError(http.StatusForbidden, "")
	}
	req.BrandID = identity.BrandID
	if req.Type != nil {
		t := model.PromotionType(strings.ToUpper(strings.TrimSpace(valid.String(req.Type))))
		switch {
		case t == "":
			req.Type = nil
		case !t.IsValid():
			return model.ListPromotionResponse{}, utils.NewError(http.StatusBadRequest, utils.MESS_INVALID_PROMOTION_TYPE)
		default:
			req.Type = valid.StringPointer(string(t))
		}
	}

	rs, err := s.repo.GetListPromotion(ctx, req, nil)
	if err != nil {
		log.WithError(err).Error("Get list promotion error")
		return model.ListPromotionResponse{}, err
	}

	return rs, nil
}
