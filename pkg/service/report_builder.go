package service

import (
	"context"
	"time"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/utils"

	"github.com/google/uuid"
)

type categoryAcc struct {
	report   model.CategoryReport
	products map[uuid.UUID]int // product id -> index in report.ProductReports
}

// storeReportBuilder folds the paid orders of one store into a
// StoreEndDayReport. It is owned by a single aggregation call.
type storeReportBuilder struct {
	loc        *time.Location
	report     model.StoreEndDayReport
	categories []*categoryAcc
	byCategory map[uuid.UUID]*categoryAcc
}

func newStoreReportBuilder(storeID uuid.UUID, categories []model.Category, loc *time.Location) *storeReportBuilder {
	if loc == nil {
		loc = time.UTC
	}
	b := &storeReportBuilder{
		loc:        loc,
		categories: make([]*categoryAcc, 0, len(categories)),
		byCategory: make(map[uuid.UUID]*categoryAcc, len(categories)),
	}
	b.report.StoreID = storeID

	for _, c := range categories {
		if _, ok := b.byCategory[c.ID]; ok {
			continue
		}
		acc := &categoryAcc{
			report: model.CategoryReport{
				ID:             c.ID,
				Name:           c.Name,
				ProductReports: []model.ProductReport{},
			},
			products: map[uuid.UUID]int{},
		}
		b.categories = append(b.categories, acc)
		b.byCategory[c.ID] = acc
	}

	buckets := utils.TIMELINE_END_HOUR - utils.TIMELINE_START_HOUR
	b.report.TimeLine = make([]int, buckets)
	b.report.TotalOrderTimeLine = make([]int, buckets)
	b.report.TotalAmountTimeLine = make([]float64, buckets)
	for i := range b.report.TimeLine {
		b.report.TimeLine[i] = utils.TIMELINE_START_HOUR + i
	}

	return b
}

func (b *storeReportBuilder) addOrder(o model.Order) {
	r := &b.report

	r.TotalAmount += o.TotalAmount
	r.TotalDiscount += o.Discount
	r.VatAmount += o.VatAmount
	r.FinalAmount += o.FinalAmount
	r.TotalOrder++
	if len(o.PromotionOrderMappings) > 0 {
		r.TotalPromotionUsed++
	}

	switch o.OrderType.Channel() {
	case model.OrderTypeEatIn:
		r.TotalOrderInStore++
		r.InStoreAmount += o.FinalAmount
	case model.OrderTypeTakeAway:
		r.TotalOrderTakeAway++
		r.TakeAwayAmount += o.FinalAmount
	default:
		r.TotalOrderDeli++
		r.DeliAmount += o.FinalAmount
	}

	switch o.PaymentType.Bucket() {
	case model.PaymentTypeVisa:
		r.TotalVisa++
		r.VisaAmount += o.FinalAmount
	case model.PaymentTypeMomo:
		r.TotalMomo++
		r.MomoAmount += o.FinalAmount
	case model.PaymentTypeBanking:
		r.TotalBanking++
		r.BankingAmount += o.FinalAmount
	default:
		r.TotalCash++
		r.CashAmount += o.FinalAmount
	}

	for _, d := range o.OrderDetails {
		b.addLine(d)
	}

	if o.CheckOutDate.IsZero() {
		return
	}
	hour := o.CheckOutDate.In(b.loc).Hour()
	if hour >= utils.TIMELINE_START_HOUR && hour < utils.TIMELINE_END_HOUR {
		i := hour - utils.TIMELINE_START_HOUR
		r.TotalOrderTimeLine[i]++
		r.TotalAmountTimeLine[i] += o.FinalAmount
	}
}

func (b *storeReportBuilder) addLine(d model.OrderDetail) {
	product := d.MenuProduct.Product
	acc, ok := b.byCategory[product.CategoryID]
	if !ok {
		return
	}

	idx, ok := acc.products[product.ID]
	if !ok {
		acc.report.ProductReports = append(acc.report.ProductReports, model.ProductReport{
			ID:           product.ID,
			Name:         product.Name,
			SellingPrice: product.SellingPrice,
		})
		idx = len(acc.report.ProductReports) - 1
		acc.products[product.ID] = idx
	}

	p := &acc.report.ProductReports[idx]
	p.Quantity += d.Quantity
	p.TotalAmount += d.TotalAmount
	p.TotalDiscount += d.Discount
	p.FinalAmount += d.FinalAmount

	c := &acc.report
	c.TotalProduct += d.Quantity
	c.TotalAmount += d.TotalAmount
	c.TotalDiscount += d.Discount
	c.FinalAmount += d.FinalAmount

	r := &b.report
	r.TotalProduct += d.Quantity
	r.TotalProductDiscount += d.Discount
	r.ProductCosAmount += product.HistoricalPrice * float64(d.Quantity)

	if size, ok := product.Size.Bucket(); ok {
		switch size {
		case model.ProductSizeS:
			r.TotalSizeS += d.Quantity
			r.TotalAmountSizeS += d.FinalAmount
		case model.ProductSizeM:
			r.TotalSizeM += d.Quantity
			r.TotalAmountSizeM += d.FinalAmount
		default:
			r.TotalSizeL += d.Quantity
			r.TotalAmountSizeL += d.FinalAmount
		}
	}
}

// build folds orders and derives the summary figures. No partial report is
// returned when ctx is done mid way.
func (b *storeReportBuilder) build(ctx context.Context, orders []model.Order) (model.StoreEndDayReport, error) {
	for i := range orders {
		if err := ctx.Err(); err != nil {
			return model.StoreEndDayReport{}, err
		}
		b.addOrder(orders[i])
	}

	r := b.report
	r.CategoryReports = make([]model.CategoryReport, 0, len(b.categories))
	for _, acc := range b.categories {
		r.CategoryReports = append(r.CategoryReports, acc.report)
	}

	r.TotalPromotionDiscount = r.TotalDiscount - r.TotalProductDiscount
	if r.TotalOrder > 0 {
		r.AverageBill = r.FinalAmount / float64(r.TotalOrder)
	}
	r.TotalRevenue = r.FinalAmount - r.ProductCosAmount

	return r, nil
}

// buildSessionReport folds the paid orders of a session.
func buildSessionReport(orders []model.Order) model.SessionReport {
	var r model.SessionReport
	for _, o := range orders {
		r.TotalAmount += o.TotalAmount
		r.TotalDiscount += o.Discount
		r.FinalAmount += o.FinalAmount
		r.TotalOrder++

		switch o.PaymentType.Bucket() {
		case model.PaymentTypeVisa:
			r.TotalVisa++
			r.VisaAmount += o.FinalAmount
		case model.PaymentTypeMomo:
			r.TotalMomo++
			r.MomoAmount += o.FinalAmount
		case model.PaymentTypeBanking:
			r.TotalBanking++
			r.BankingAmount += o.FinalAmount
		default:
			r.TotalCash++
			r.CashAmount += o.FinalAmount
		}
	}
	return r
}
