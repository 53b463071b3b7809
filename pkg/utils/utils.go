package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"finan/ms-pos-report/pkg/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func CurrentIdentity(c *gin.Context) (model.Identity, error) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return model.Identity{}, errors.New("identity not found in request")
	}
	identity, ok := v.(model.Identity)
	if !ok {
		return model.Identity{}, errors.New("identity in request has unexpected type")
	}
	return identity, nil
}

// ParseReportDate parses a yyyy-MM-dd query value as midnight in loc.
func ParseReportDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, NewError(http.StatusBadRequest, MESS_INVALID_DATE)
	}
	t, err := time.ParseInLocation(DATE_FORMAT_QUERY, value, loc)
	if err != nil {
		return time.Time{}, NewError(http.StatusBadRequest, MESS_INVALID_DATE)
	}
	return t, nil
}

// StoreReportRange renders the dd/MM/yyyy range shown in the export.
// Both ends use startDate; report consumers match on this exact text.
func StoreReportRange(startDate time.Time) string {
	return fmt.Sprintf("%s-%s", startDate.Format(DATE_FORMAT_REPORT), startDate.Format(DATE_FORMAT_REPORT))
}

func StoreReportFileName(storeName string, startDate time.Time) string {
	return fmt.Sprintf("Report_%s_%s.xlsx", storeName, StoreReportRange(startDate))
}

// StoreReportSheetName is StoreReportRange without '/', which excel refuses
// in sheet names.
func StoreReportSheetName(startDate time.Time) string {
	return strings.ReplaceAll(StoreReportRange(startDate), "/", "-")
}

// TransformString strips vietnamese diacritics. With toLower the result is
// also lower cased.
func TransformString(in string, toLower bool) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, in)
	if err != nil {
		out = in
	}
	out = strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
	if toLower {
		out = strings.ToLower(out)
	}
	return out
}

// ASCIIFileName turns name into something safe for a quoted
// Content-Disposition filename.
func ASCIIFileName(name string) string {
	name = TransformString(name, false)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r > unicode.MaxASCII || r < 0x20, r == '"', r == '\\', r == '/':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LoadLocation falls back to UTC when name is unknown to the tz database.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
