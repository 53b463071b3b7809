package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	SessionID              uuid.UUID               `json:"session_id" sql:"index" gorm:"column:session_id;type:uuid;not null;"`
	Session                *Session                `json:"session,omitempty" gorm:"foreignKey:SessionID"`
	InvoiceID              string                  `json:"invoice_id" sql:"index" gorm:"column:invoice_id;"`
	TotalAmount            float64                 `json:"total_amount" gorm:"column:total_amount"`
	Discount               float64                 `json:"discount" gorm:"column:discount"`
	VatAmount              float64                 `json:"vat_amount" gorm:"column:vat_amount"`
	FinalAmount            float64                 `json:"final_amount" gorm:"column:final_amount"`
	OrderType              OrderType               `json:"order_type" sql:"index" gorm:"column:order_type;not null;"`
	PaymentType            PaymentType             `json:"payment_type" sql:"index" gorm:"column:payment_type;"`
	Status                 OrderStatus             `json:"status" sql:"index" gorm:"column:status;not null;"`
	CheckInDate            time.Time               `json:"check_in_date" sql:"index" gorm:"column:check_in_date;not null;"`
	CheckOutDate           time.Time               `json:"check_out_date" gorm:"column:check_out_date;"`
	NumberOfGuest          int                     `json:"number_of_guest" gorm:"column:number_of_guest;"`
	OrderDetails           []OrderDetail           `json:"order_details" gorm:"foreignKey:OrderID"`
	PromotionOrderMappings []PromotionOrderMapping `json:"promotion_order_mappings" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderDetail is one line of an order.
type OrderDetail struct {
	BaseModel
	OrderID       uuid.UUID   `json:"order_id" sql:"index" gorm:"column:order_id;type:uuid;not null;"`
	MenuProductID uuid.UUID   `json:"menu_product_id" gorm:"column:menu_product_id;type:uuid;not null;"`
	MenuProduct   MenuProduct `json:"menu_product" gorm:"foreignKey:MenuProductID"`
	Quantity      int         `json:"quantity" gorm:"column:quantity"`
	SellingPrice  float64     `json:"selling_price" gorm:"column:selling_price"`
	TotalAmount   float64     `json:"total_amount" gorm:"column:total_amount"`
	Discount      float64     `json:"discount" gorm:"column:discount"`
	FinalAmount   float64     `json:"final_amount" gorm:"column:final_amount"`
	Notes         string      `json:"notes" gorm:"column:notes"`
}

func (OrderDetail) TableName() string {
	return "order_detail"
}

type PromotionOrderMapping struct {
	BaseModel
	PromotionID    uuid.UUID `json:"promotion_id" sql:"index" gorm:"column:promotion_id;type:uuid;not null;"`
	OrderID        uuid.UUID `json:"order_id" sql:"index" gorm:"column:order_id;type:uuid;not null;"`
	Quantity       int       `json:"quantity" gorm:"column:quantity"`
	DiscountAmount float64   `json:"discount_amount" gorm:"column:discount_amount"`
}

func (PromotionOrderMapping) TableName() string {
	return "promotion_order_mapping"
}

// PaidOrderFilter selects paid orders of a store whose check-in falls in [From, To).
type PaidOrderFilter struct {
	StoreID uuid.UUID
	From    time.Time
	To      time.Time
}
