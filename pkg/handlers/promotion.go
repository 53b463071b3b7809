package handlers

import (
	"net/http"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/service"
	"finan/ms-pos-report/pkg/utils"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
)

type PromotionHandlers struct {
	service service.PromotionServiceInterface
}

func NewPromotionHandlers(service service.PromotionServiceInterface) *PromotionHandlers {
	return &PromotionHandlers{service: service}
}

func (h *PromotionHandlers) GetListPromotion(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "PromotionHandlers.GetListPromotion")

	identity, err := utils.CurrentIdentity(r.GinCtx)
	if err != nil {
		log.WithError(err).Error("Error when get current identity")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	req := model.PromotionParam{}
	r.MustBind(&req)

	rs, err := h.service.GetListPromotion(r.Context(), identity, req)
	if err != nil {
		return nil, utils.ToGinext(err)
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs.Data,
			Meta: rs.Meta,
		},
	}, nil
}
