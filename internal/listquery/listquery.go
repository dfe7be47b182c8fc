// Package listquery implements the filtering, sorting, pagination, and CSV
// export contract shared by every admin list view (inbound, outbound,
// inventory, orders). Sort fields go through a per-resource whitelist —
// that whitelist is the single defense against injection via the sort
// parameter; every other filter value is always a bound parameter.
package listquery

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params carries the request-scoped list parameters. The server keeps no
// per-resource paging state; clients resubmit page/sort on every call.
type Params struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	Category  string `form:"category"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Sort      string `form:"sort"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
	Export    string `form:"export"` // "csv" switches to CSV output
	Scope     string `form:"scope"`  // "page" restricts the export to the current page
}

// Normalize clamps page and pageSize to their documented bounds.
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset is the row offset for the normalized page.
func (p *Params) Offset() int { return (p.Page - 1) * p.PageSize }

// ExportCSV reports whether the caller asked for a CSV document.
func (p *Params) ExportCSV() bool { return p.Export == "csv" }

// PageScoped reports whether a CSV export covers only the current page.
func (p *Params) PageScoped() bool { return p.Scope == "page" }

// SanitizeSort validates a `"<field> <ASC|DESC>"` input against a whitelist
// and returns an ORDER BY clause. Anything unknown silently falls back to
// the resource default — never an error, never raw input in SQL.
func SanitizeSort(input string, whitelist []string, fallback string) string {
	if input == "" {
		return fallback
	}
	parts := strings.Fields(input)
	field := parts[0]
	ok := false
	for _, w := range whitelist {
		if w == field {
			ok = true
			break
		}
	}
	if !ok {
		return fallback
	}
	dir := "DESC"
	if len(parts) > 1 && strings.EqualFold(parts[1], "ASC") {
		dir = "ASC"
	}
	return field + " " + dir
}

// Like wraps a search term for case-insensitive substring matching.
func Like(search string) string { return "%" + search + "%" }

var dateLayouts = []string{"2006-01-02", "01/02/2006", time.RFC3339}

// ParseDate parses a date-only (`YYYY-MM-DD` or `MM/DD/YYYY`) or RFC 3339
// input. Date-only values land at midnight UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeDate is ParseDate with the documented fallback: unparseable or
// empty input becomes the current timestamp.
func NormalizeDate(s string) time.Time {
	if t, ok := ParseDate(s); ok {
		return t
	}
	return time.Now().UTC()
}

// DateRange converts the inclusive startDate..endDate filter into timestamp
// bounds: [from, to) where to is the day after endDate.
func DateRange(start, end string) (from, to *time.Time) {
	if t, ok := ParseDate(start); ok {
		from = &t
	}
	if t, ok := ParseDate(end); ok {
		next := t.Add(24 * time.Hour)
		to = &next
	}
	return from, to
}

// WriteCSV streams rows as an RFC 4180 CSV attachment. The header row is the
// result column names in query order.
func WriteCSV(w http.ResponseWriter, filename string, header []string, records [][]string) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
