package repo

import (
	"context"
	"math"
	"time"

	"finan/ms-pos-report/pkg/model"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gorm.io/gorm"
)

const (
	generalQueryTimeout = 60 * time.Second
	defaultPageSize     = 30
	maxPageSize         = 1000
)

func NewPGRepo(db *gorm.DB) PGInterface {
	return &RepoPG{DB: db}
}

//go:generate mockgen -destination=../mocks/mock_repo.go -package=mocks finan/ms-pos-report/pkg/repo PGInterface
type PGInterface interface {
	// DB
	DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc)

	// store
	GetOneStore(ctx context.Context, id uuid.UUID, tx *gorm.DB) (model.Store, error)
	GetBrandIDOfStore(ctx context.Context, storeID uuid.UUID, tx *gorm.DB) (uuid.UUID, error)

	// category
	GetListCategoryByBrand(ctx context.Context, brandID uuid.UUID, tx *gorm.DB) ([]model.Category, error)

	// order
	GetListPaidOrder(ctx context.Context, filter model.PaidOrderFilter, tx *gorm.DB) ([]model.Order, error)
	GetListPaidOrderBySession(ctx context.Context, sessionID uuid.UUID, tx *gorm.DB) ([]model.Order, error)

	// session
	GetOneSession(ctx context.Context, id uuid.UUID, storeID uuid.UUID, tx *gorm.DB) (model.Session, error)

	// promotion
	GetListPromotion(ctx context.Context, req model.PromotionParam, tx *gorm.DB) (model.ListPromotionResponse, error)

	// history
	LogHistory(ctx context.Context, history model.History, tx *gorm.DB) (model.History, error)
}

type RepoPG struct {
	DB *gorm.DB
}

func (r *RepoPG) DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, generalQueryTimeout)
	return r.DB.WithContext(ctx), cancel
}

func (r *RepoPG) GetPage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

func (r *RepoPG) GetOffset(page int, pageSize int) int {
	return (page - 1) * pageSize
}

func (r *RepoPG) GetPageSize(pageSize int) int {
	if pageSize <= 0 {
		return defaultPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}

func (r *RepoPG) GetTotalPages(totalRows, pageSize int) int {
	return int(math.Ceil(float64(totalRows) / float64(pageSize)))
}

func (r *RepoPG) GetPaginationInfo(totalRow, page, pageSize int) ginext.BodyMeta {
	return ginext.BodyMeta{
		"page":        page,
		"page_size":   pageSize,
		"total_pages": r.GetTotalPages(totalRow, pageSize),
		"total_rows":  totalRow,
	}
}
