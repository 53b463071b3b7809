package model

type Role string

const (
	RoleSysAdmin     Role = "SysAdmin"
	RoleBrandManager Role = "BrandManager"
	RoleBrandAdmin   Role = "BrandAdmin"
	RoleStoreManager Role = "StoreManager"
	RoleStaff        Role = "Staff"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

type OrderType string

const (
	OrderTypeEatIn    OrderType = "EAT_IN"
	OrderTypeTakeAway OrderType = "TAKE_AWAY"
	OrderTypeDelivery OrderType = "DELIVERY"
)

// Channel maps an order type to its report bucket. Anything that is not
// dine-in or take-away is reported as delivery.
func (t OrderType) Channel() OrderType {
	switch t {
	case OrderTypeEatIn:
		return OrderTypeEatIn
	case OrderTypeTakeAway:
		return OrderTypeTakeAway
	default:
		return OrderTypeDelivery
	}
}

type PaymentType string

const (
	PaymentTypeVisa    PaymentType = "VISA"
	PaymentTypeMomo    PaymentType = "MOMO"
	PaymentTypeBanking PaymentType = "BANKING"
	PaymentTypeCash    PaymentType = "CASH"
)

// Bucket maps a payment type to its report bucket, cash being the fallback.
func (p PaymentType) Bucket() PaymentType {
	switch p {
	case PaymentTypeVisa:
		return PaymentTypeVisa
	case PaymentTypeMomo:
		return PaymentTypeMomo
	case PaymentTypeBanking:
		return PaymentTypeBanking
	default:
		return PaymentTypeCash
	}
}

type ProductSize string

const (
	ProductSizeS ProductSize = "S"
	ProductSizeM ProductSize = "M"
	ProductSizeL ProductSize = "L"
)

// Bucket returns the size bucket of a product. ok is false when the product
// declares no size. Any declared size other than S or M lands in L.
func (s ProductSize) Bucket() (bucket ProductSize, ok bool) {
	switch s {
	case "":
		return "", false
	case ProductSizeS:
		return ProductSizeS, true
	case ProductSizeM:
		return ProductSizeM, true
	default:
		return ProductSizeL, true
	}
}

type PromotionType string

const (
	PromotionTypeAmount  PromotionType = "AMOUNT"
	PromotionTypePercent PromotionType = "PERCENT"
	PromotionTypeProduct PromotionType = "PRODUCT"
)

func (t PromotionType) IsValid() bool {
	switch t {
	case PromotionTypeAmount, PromotionTypePercent, PromotionTypeProduct:
		return true
	}
	return false
}
