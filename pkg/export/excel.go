package export

import (
	"context"
	"time"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/utils"

	"github.com/xuri/excelize/v2"
	"gitlab.com/goxp/cloud0/logger"
)

var storeReportTitles = []string{
	"Danh mục",
	"Tên sản phẩm",
	"Đơn giá",
	"Số lượng",
	"Thành tiền",
	"Giảm giá",
	"Tổng cộng",
}

// ExcelExporter writes store reports as xlsx workbooks with a single sheet.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

type sheetStyles struct {
	header int
	total  int
	label  int
}

func newSheetStyles(f *excelize.File) (rs sheetStyles, err error) {
	if rs.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return rs, err
	}
	if rs.total, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 14},
	}); err != nil {
		return rs, err
	}
	if rs.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return rs, err
	}
	return rs, nil
}

// sheetWriter remembers the first error so rows can be written without
// checking every cell.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, value interface{}, style int) {
	if w.err != nil {
		return
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if w.err = w.f.SetCellValue(w.sheet, axis, value); w.err != nil {
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(w.sheet, axis, axis, style)
	}
}

func (e *ExcelExporter) ExportStoreReport(ctx context.Context, storeName string, startDate time.Time, report model.StoreEndDayReport) (model.ReportFile, error) {
	log := logger.WithCtx(ctx, "ExcelExporter.ExportStoreReport").WithField("store ID", report.StoreID)

	f := excelize.NewFile()
	sheet := utils.StoreReportSheetName(startDate)
	f.SetSheetName("Sheet1", sheet)

	styles, err := newSheetStyles(f)
	if err != nil {
		log.WithError(err).Error("Create sheet styles error")
		return model.ReportFile{}, err
	}

	w := &sheetWriter{f: f, sheet: sheet}
	row := 1
	for i, title := range storeReportTitles {
		w.set(i+1, row, title, styles.header)
	}
	row++

	for _, c := range report.CategoryReports {
		for _, p := range c.ProductReports {
			w.set(1, row, c.Name, 0)
			w.set(2, row, p.Name, 0)
			w.set(3, row, p.SellingPrice, 0)
			w.set(4, row, p.Quantity, 0)
			w.set(5, row, p.TotalAmount, 0)
			w.set(6, row, p.TotalDiscount, 0)
			w.set(7, row, p.FinalAmount, 0)
			row++
		}
	}

	w.set(4, row, report.TotalProduct, styles.total)
	w.set(5, row, report.TotalAmount, styles.total)
	w.set(6, row, report.TotalProductDiscount, styles.total)
	w.set(7, row, report.FinalAmount, styles.total)
	row += 2

	w.set(1, row, "Đơn tại quán:", styles.label)
	w.set(2, row, report.TotalOrderInStore, 0)
	w.set(4, row, "Doanh thu tại quán:", styles.label)
	w.set(5, row, report.InStoreAmount, 0)
	w.set(7, row, "Đơn mang đi", styles.label)
	w.set(8, row, report.TotalOrderTakeAway, 0)
	w.set(10, row, "Doanh thu mang di", styles.label)
	w.set(11, row, report.TakeAwayAmount, 0)

	if w.err == nil {
		w.err = f.SetColWidth(sheet, "A", "B", 30)
	}
	if w.err == nil {
		w.err = f.SetColWidth(sheet, "C", "K", 20)
	}
	if w.err != nil {
		log.WithError(w.err).Error("Write sheet error")
		return model.ReportFile{}, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.WithError(err).Error("Write workbook error")
		return model.ReportFile{}, err
	}

	return model.ReportFile{
		FileName:    utils.StoreReportFileName(storeName, startDate),
		ContentType: utils.MIME_XLSX,
		Content:     buf.Bytes(),
	}, nil
}
