package repo

import (
	"context"
	"net/http"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/utils"

	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
)

func (r *RepoPG) GetListPromotion(ctx context.Context, req model.PromotionParam, tx *gorm.DB) (rs model.ListPromotionResponse, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetListPromotion")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	page := r.GetPage(req.Page)
	pageSize := r.GetPageSize(req.Size)

	tx = tx.Model(&model.Promotion{}).Where("brand_id = ?", req.BrandID)
	if req.Type != nil {
		tx = tx.Where("type = ?", *req.Type)
	}

	var total int64
	if err = tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.WithError(err).Error("error_500: count promotions in GetListPromotion - RepoPG")
		return rs, utils.NewError(http.StatusInternalServerError, "")
	}

	var promotions []model.Promotion
	if err = tx.Session(&gorm.Session{}).Order("created_at DESC").
		Limit(pageSize).
		Offset(r.GetOffset(page, pageSize)).
		Find(&promotions).Error; err != nil {
		log.WithError(err).Error("error_500: get promotions in GetListPromotion - RepoPG")
		return rs, utils.NewError(http.StatusInternalServerError, "")
	}

	rs.Data = make([]model.PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		rs.Data = append(rs.Data, model.PromotionResponse{
			ID:                 p.ID,
			Name:               p.Name,
			Code:               p.Code,
			Description:        p.Description,
			Type:               p.Type,
			MaxDiscount:        p.MaxDiscount,
			MinConditionAmount: p.MinConditionAmount,
			DiscountAmount:     p.DiscountAmount,
			DiscountPercent:    p.DiscountPercent,
			StartTime:          p.StartTime,
			EndTime:            p.EndTime,
			Status:             p.Status,
		})
	}
	rs.Meta = r.GetPaginationInfo(int(total), page, pageSize)

	return rs, nil
}
