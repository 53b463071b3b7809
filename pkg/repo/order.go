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

// preloadOrderLines loads everything the report fold reads from an order.
func preloadOrderLines(tx *gorm.DB) *gorm.DB {
	return tx.Preload("OrderDetails", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_detail.created_at ASC")
	}).
		Preload("OrderDetails.MenuProduct.Product").
		Preload("PromotionOrderMappings")
}

func (r *RepoPG) GetListPaidOrder(ctx context.Context, filter model.PaidOrderFilter, tx *gorm.DB) (rs []model.Order, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetListPaidOrder").WithField("store ID", filter.StoreID)

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	tx = tx.Model(&model.Order{}).
		Joins("INNER JOIN session ON session.id = orders.session_id AND session.deleted_at IS NULL").
		Where("session.store_id = ?", filter.StoreID).
		Where("orders.status = ?", model.OrderStatusPaid).
		Where("orders.check_in_date >= ? AND orders.check_in_date < ?", filter.From, filter.To)

	if err = preloadOrderLines(tx).Order("orders.check_in_date DESC").Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get paid orders in GetListPaidOrder - RepoPG")
		return nil, utils.NewError(http.StatusInternalServerError, "")
	}

	return rs, nil
}

func (r *RepoPG) GetListPaidOrderBySession(ctx context.Context, sessionID uuid.UUID, tx *gorm.DB) (rs []model.Order, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetListPaidOrderBySession").WithField("session ID", sessionID)

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("session_id = ? AND status = ?", sessionID, model.OrderStatusPaid).
		Order("check_in_date DESC").
		Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get paid orders in GetListPaidOrderBySession - RepoPG")
		return nil, utils.NewError(http.StatusInternalServerError, "")
	}

	return rs, nil
}
