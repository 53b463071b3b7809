package model

import (
	"github.com/google/uuid"
)

type StoreReportRequest struct {
	StoreID   uuid.UUID `json:"store_id" form:"-"`
	StartDate string    `json:"start_date" form:"startDate" valid:"Required"`
	EndDate   string    `json:"end_date" form:"endDate" valid:"Required"`
}

type ProductReport struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	SellingPrice  float64   `json:"selling_price"`
	TotalAmount   float64   `json:"total_amount"`
	TotalDiscount float64   `json:"total_discount"`
	FinalAmount   float64   `json:"final_amount"`
}

type CategoryReport struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	TotalProduct   int             `json:"total_product"`
	TotalAmount    float64         `json:"total_amount"`
	TotalDiscount  float64         `json:"total_discount"`
	FinalAmount    float64         `json:"final_amount"`
	ProductReports []ProductReport `json:"product_reports"`
}

type StoreEndDayReport struct {
	StoreID uuid.UUID `json:"store_id"`

	TotalAmount        float64 `json:"total_amount"`
	TotalDiscount      float64 `json:"total_discount"`
	VatAmount          float64 `json:"vat_amount"`
	FinalAmount        float64 `json:"final_amount"`
	TotalOrder         int     `json:"total_order"`
	TotalPromotionUsed int     `json:"total_promotion_used"`

	InStoreAmount      float64 `json:"in_store_amount"`
	TotalOrderInStore  int     `json:"total_order_in_store"`
	TakeAwayAmount     float64 `json:"take_away_amount"`
	TotalOrderTakeAway int     `json:"total_order_take_away"`
	DeliAmount         float64 `json:"deli_amount"`
	TotalOrderDeli     int     `json:"total_order_deli"`

	VisaAmount    float64 `json:"visa_amount"`
	TotalVisa     int     `json:"total_visa"`
	MomoAmount    float64 `json:"momo_amount"`
	TotalMomo     int     `json:"total_momo"`
	BankingAmount float64 `json:"banking_amount"`
	TotalBanking  int     `json:"total_banking"`
	CashAmount    float64 `json:"cash_amount"`
	TotalCash     int     `json:"total_cash"`

	CategoryReports        []CategoryReport `json:"category_reports"`
	TotalProduct           int              `json:"total_product"`
	TotalProductDiscount   float64          `json:"total_product_discount"`
	TotalPromotionDiscount float64          `json:"total_promotion_discount"`
	AverageBill            float64          `json:"average_bill"`
	ProductCosAmount       float64          `json:"product_cos_amount"`
	TotalRevenue           float64          `json:"total_revenue"`

	TotalSizeS       int     `json:"total_size_s"`
	TotalSizeM       int     `json:"total_size_m"`
	TotalSizeL       int     `json:"total_size_l"`
	TotalAmountSizeS float64 `json:"total_amount_size_s"`
	TotalAmountSizeM float64 `json:"total_amount_size_m"`
	TotalAmountSizeL float64 `json:"total_amount_size_l"`

	TimeLine            []int     `json:"time_line"`
	TotalOrderTimeLine  []int     `json:"total_order_time_line"`
	TotalAmountTimeLine []float64 `json:"total_amount_time_line"`
}

type SessionReport struct {
	TotalAmount   float64 `json:"total_amount"`
	TotalDiscount float64 `json:"total_discount"`
	FinalAmount   float64 `json:"final_amount"`
	TotalOrder    int     `json:"total_order"`
	VisaAmount    float64 `json:"visa_amount"`
	TotalVisa     int     `json:"total_visa"`
	MomoAmount    float64 `json:"momo_amount"`
	TotalMomo     int     `json:"total_momo"`
	BankingAmount float64 `json:"banking_amount"`
	TotalBanking  int     `json:"total_banking"`
	CashAmount    float64 `json:"cash_amount"`
	TotalCash     int     `json:"total_cash"`
}

// ReportFile is a rendered report ready to be streamed to the client.
type ReportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
