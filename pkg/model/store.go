package model

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	BaseModel
	Name        string `json:"name" gorm:"column:name;not null;"`
	Email       string `json:"email" gorm:"column:email;"`
	PhoneNumber string `json:"phone_number" gorm:"column:phone_number;"`
	Status      string `json:"status" gorm:"column:status;"`
}

func (Brand) TableName() string {
	return "brand"
}

type Store struct {
	BaseModel
	BrandID   uuid.UUID `json:"brand_id" sql:"index" gorm:"column:brand_id;type:uuid;not null;"`
	Name      string    `json:"name" gorm:"column:name;not null;"`
	ShortName string    `json:"short_name" gorm:"column:short_name;"`
	Code      string    `json:"code" gorm:"column:code;"`
	Address   string    `json:"address" gorm:"column:address;"`
	Status    string    `json:"status" gorm:"column:status;"`
}

func (Store) TableName() string {
	return "store"
}

// Session is a till shift of one store. Orders are placed under a session.
type Session struct {
	BaseModel
	StoreID        uuid.UUID  `json:"store_id" sql:"index" gorm:"column:store_id;type:uuid;not null;"`
	Name           string     `json:"name" gorm:"column:name;"`
	StartDateTime  time.Time  `json:"start_date_time" gorm:"column:start_date_time;"`
	EndDateTime    *time.Time `json:"end_date_time" gorm:"column:end_date_time;"`
	NumberOfOrders int        `json:"number_of_orders" gorm:"column:number_of_orders;"`
	TotalAmount    float64    `json:"total_amount" gorm:"column:total_amount;"`
	TotalDiscount  float64    `json:"total_discount" gorm:"column:total_discount;"`
	TotalFinal     float64    `json:"total_final_amount" gorm:"column:total_final_amount;"`
}

func (Session) TableName() string {
	return "session"
}
