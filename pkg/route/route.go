package route

import (
	"finan/ms-pos-report/conf"
	"finan/ms-pos-report/pkg/export"
	"finan/ms-pos-report/pkg/handlers"
	"finan/ms-pos-report/pkg/middleware"
	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/repo"
	service2 "finan/ms-pos-report/pkg/service"
	"finan/ms-pos-report/pkg/utils"

	"github.com/caarlos0/env/v6"
	"github.com/gin-contrib/cors"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/service"
)

type extraSetting struct {
	DbDebugEnable bool `env:"DB_DEBUG_ENABLE" envDefault:"true"`
}

type Service struct {
	*service.BaseApp
	setting *extraSetting
}

func NewService() *Service {
	s := &Service{
		service.NewApp("POS Report Service", "v1.0"),
		&extraSetting{},
	}

	// repo
	_ = env.Parse(s.setting)
	db := s.GetDB()
	if s.setting.DbDebugEnable {
		db = db.Debug()
	}
	repoPG := repo.NewPGRepo(db)

	cfg := conf.LoadEnv()
	s.Router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsAllowOrigins,
		AllowMethods:     []string{"PUT", "PATCH", "GET", "DELETE", "POST"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	historyService := service2.NewHistoryService(repoPG)
	reportService := service2.NewReportService(repoPG, export.NewExcelExporter(), historyService, utils.LoadLocation(cfg.ReportTimezone))
	promotionService := service2.NewPromotionService(repoPG)

	reportHandle := handlers.NewReportHandlers(reportService)
	promotionHandle := handlers.NewPromotionHandlers(promotionService)

	v1Api := s.Router.Group("/api/v1")
	v1Api.Use(middleware.Authenticate(cfg.JWTSecret, cfg.JWTIssuer))

	// promotion
	promotionApi := v1Api.Group("", middleware.RequireRoles(model.RoleBrandAdmin))
	promotionApi.GET("/promotions", ginext.WrapHandler(promotionHandle.GetListPromotion))

	// report
	reportApi := v1Api.Group("", middleware.RequireRoles(model.RoleStoreManager, model.RoleStaff))
	reportApi.GET("/stores/:id/day-report", ginext.WrapHandler(reportHandle.GetStoreEndDayReport))
	reportApi.GET("/stores/:id/day-report/download", reportHandle.DownloadStoreReport)
	reportApi.GET("/sessions/:id/report", ginext.WrapHandler(reportHandle.GetSessionReportDetail))

	// Migrate
	migrateHandler := handlers.NewMigrationHandler(db)
	s.Router.POST("/internal/migrate", migrateHandler.Migrate)

	return s
}
