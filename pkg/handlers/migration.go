package handlers

import (
	"net/http"

	"finan/ms-pos-report/pkg/model"

	"github.com/gin-gonic/gin"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
)

type MigrationHandler struct {
	db *gorm.DB
}

func NewMigrationHandler(db *gorm.DB) *MigrationHandler {
	return &MigrationHandler{db: db}
}

func (h *MigrationHandler) Migrate(ctx *gin.Context) {
	log := logger.WithCtx(ctx, "MigrationHandler.Migrate")

	_ = h.db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")

	models := []interface{}{
		&model.Brand{},
		&model.Store{},
		&model.Session{},
		&model.Category{},
		&model.Product{},
		&model.MenuProduct{},
		&model.Order{},
		&model.OrderDetail{},
		&model.Promotion{},
		&model.PromotionOrderMapping{},
		&model.History{},
	}
	for _, m := range models {
		if err := h.db.AutoMigrate(m); err != nil {
			log.WithError(err).Error("error_500: auto migrate")
			_ = ctx.Error(err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Migrated"})
}
