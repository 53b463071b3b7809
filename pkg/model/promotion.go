package model

import (
	"time"

	"github.com/google/uuid"
)

type Promotion struct {
	BaseModel
	BrandID            uuid.UUID     `json:"brand_id" sql:"index" gorm:"column:brand_id;type:uuid;not null;"`
	Name               string        `json:"name" gorm:"column:name;not null;"`
	Code               string        `json:"code" sql:"index" gorm:"column:code;"`
	Description        string        `json:"description" gorm:"column:description;"`
	Type               PromotionType `json:"type" sql:"index" gorm:"column:type;not null;"`
	MaxDiscount        float64       `json:"max_discount" gorm:"column:max_discount"`
	MinConditionAmount float64       `json:"min_condition_amount" gorm:"column:min_condition_amount"`
	DiscountAmount     float64       `json:"discount_amount" gorm:"column:discount_amount"`
	DiscountPercent    float64       `json:"discount_percent" gorm:"column:discount_percent"`
	StartTime          *time.Time    `json:"start_time" gorm:"column:start_time"`
	EndTime            *time.Time    `json:"end_time" gorm:"column:end_time"`
	Status             string        `json:"status" gorm:"column:status;"`
}

func (Promotion) TableName() string {
	return "promotion"
}

type PromotionParam struct {
	BrandID uuid.UUID `json:"brand_id" form:"-"`
	Type    *string   `json:"type" form:"type"`
	Page    int       `json:"page" form:"page"`
	Size    int       `json:"size" form:"size"`
}

type PromotionResponse struct {
	ID                 uuid.UUID     `json:"id"`
	Name               string        `json:"name"`
	Code               string        `json:"code"`
	Description        string        `json:"description"`
	Type               PromotionType `json:"type"`
	MaxDiscount        float64       `json:"max_discount"`
	MinConditionAmount float64       `json:"min_condition_amount"`
	DiscountAmount     float64       `json:"discount_amount"`
	DiscountPercent    float64       `json:"discount_percent"`
	StartTime          *time.Time    `json:"start_time"`
	EndTime            *time.Time    `json:"end_time"`
	Status             string        `json:"status"`
}

type ListPromotionResponse struct {
	Data []PromotionResponse    `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}
