package repo

import (
	"context"
	"net/http"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/utils"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
)

func (r *RepoPG) GetListCategoryByBrand(ctx context.Context, brandID uuid.UUID, tx *gorm.DB) (rs []model.Category, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetListCategoryByBrand")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("brand_id = ?", brandID).
		Order("display_order ASC, name ASC").
		Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get categories in GetListCategoryByBrand - RepoPG")
		return nil, utils.NewError(http.StatusInternalServerError, "")
	}

	return rs, nil
}
