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

// GetOneSession finds a session of storeID. A session of another store is
// reported as not found.
func (r *RepoPG) GetOneSession(ctx context.Context, id uuid.UUID, storeID uuid.UUID, tx *gorm.DB) (rs model.Session, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOneSession")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("id = ? AND store_id = ?", id, storeID).Take(&rs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rs, utils.NewError(http.StatusNotFound, utils.MESS_SESSION_NOT_FOUND)
		}
		log.WithError(err).Error("error_500: get session in GetOneSession - RepoPG")
		return rs, utils.NewError(http.StatusInternalServerError, "")
	}

	return rs, nil
}
