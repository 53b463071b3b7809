package repo

import (
	"context"
	"errors"
	"net/http"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/utils"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
)

func (r *RepoPG) GetOneStore(ctx context.Context, id uuid.UUID, tx *gorm.DB) (rs model.Store, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOneStore")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("id = ?", id).Take(&rs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rs, utils.NewError(http.StatusNotFound, utils.MESS_STORE_NOT_FOUND)
		}
		log.WithError(err).Error("error_500: get store in GetOneStore - RepoPG")
		return rs, utils.NewError(http.StatusInternalServerError, "")
	}

	return rs, nil
}

func (r *RepoPG) GetBrandIDOfStore(ctx context.Context, storeID uuid.UUID, tx *gorm.DB) (uuid.UUID, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetBrandIDOfStore")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	var data struct {
		BrandID uuid.UUID `json:"brand_id"`
	}
	if err := tx.Model(&model.Store{}).Select("brand_id").Where("id = ?", storeID).Take(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, utils.NewError(http.StatusNotFound, utils.MESS_STORE_NOT_FOUND)
		}
		log.WithError(err).Error("error_500: get brand of store in GetBrandIDOfStore - RepoPG")
		return uuid.Nil, utils.NewError(http.StatusInternalServerError, "")
	}

	return data.BrandID, nil
}
