package model

import (
	"github.com/google/uuid"
)

type Category struct {
	BaseModel
	BrandID      uuid.UUID `json:"brand_id" sql:"index" gorm:"column:brand_id;type:uuid;not null;"`
	Code         string    `json:"code" gorm:"column:code;"`
	Name         string    `json:"name" gorm:"column:name;not null;"`
	Type         string    `json:"type" gorm:"column:type;"`
	DisplayOrder int       `json:"display_order" gorm:"column:display_order;"`
	Status       string    `json:"status" gorm:"column:status;"`
}

func (Category) TableName() string {
	return "category"
}

type Product struct {
	BaseModel
	BrandID         uuid.UUID   `json:"brand_id" sql:"index" gorm:"column:brand_id;type:uuid;not null;"`
	CategoryID      uuid.UUID   `json:"category_id" sql:"index" gorm:"column:category_id;type:uuid;not null;"`
	Code            string      `json:"code" gorm:"column:code;"`
	Name            string      `json:"name" gorm:"column:name;not null;"`
	Size            ProductSize `json:"size" gorm:"column:size;"`
	SellingPrice    float64     `json:"selling_price" gorm:"column:selling_price;"`
	HistoricalPrice float64     `json:"historical_price" gorm:"column:historical_price;"`
	Status          string      `json:"status" gorm:"column:status;"`
}

func (Product) TableName() string {
	return "product"
}

// MenuProduct is a product as it appears on a store menu.
type MenuProduct struct {
	BaseModel
	MenuID        uuid.UUID `json:"menu_id" sql:"index" gorm:"column:menu_id;type:uuid;"`
	ProductID     uuid.UUID `json:"product_id" sql:"index" gorm:"column:product_id;type:uuid;not null;"`
	Product       Product   `json:"product" gorm:"foreignKey:ProductID"`
	SellingPrice  float64   `json:"selling_price" gorm:"column:selling_price;"`
	DiscountPrice float64   `json:"discount_price" gorm:"column:discount_price;"`
	Status        string    `json:"status" gorm:"column:status;"`
}

func (MenuProduct) TableName() string {
	return "menu_product"
}
