package listquery

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClampsPageAndSize(t *testing.T) {
	cases := []struct {
		name             string
		page, size       int
		wantPage, wantSz int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize},
		{"negative page", -3, 25, 1, 25},
		{"oversized page size", 2, 5000, 2, MaxPageSize},
		{"in range untouched", 4, 50, 4, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Params{Page: tc.page, PageSize: tc.size}
			p.Normalize()
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantSz, p.PageSize)
		})
	}
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, PageSize: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestSanitizeSort(t *testing.T) {
	whitelist := []string{"inbound_number", "supplier", "created_at"}
	const fallback = "created_at DESC"

	cases := []struct {
		name, input, want string
	}{
		{"empty input falls back", "", fallback},
		{"whitelisted asc", "supplier ASC", "supplier ASC"},
		{"whitelisted lowercase asc", "supplier asc", "supplier ASC"},
		{"missing direction defaults desc", "inbound_number", "inbound_number DESC"},
		{"unknown direction becomes desc", "supplier SIDEWAYS", "supplier DESC"},
		{"unknown field falls back", "unit_price DESC", fallback},
		{"injection attempt falls back", "created_at; DROP TABLE users --", fallback},
		{"partial field match rejected", "supplier_name ASC", fallback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeSort(tc.input, whitelist, fallback))
		})
	}
}

func TestParseDateLayouts(t *testing.T) {
	d, ok := ParseDate("2024-03-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDate("03/15/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDate("2024-03-15T08:30:00Z")
	require.True(t, ok)
	assert.Equal(t, 8, d.Hour())

	_, ok = ParseDate("not a date")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestNormalizeDateFallsBackToNow(t *testing.T) {
	before := time.Now().UTC()
	got := NormalizeDate("garbage")
	after := time.Now().UTC()
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestDateRangeEndInclusive(t *testing.T) {
	from, to := DateRange("2024-03-01", "2024-03-31")
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *from)
	// end bound is exclusive: the whole of March 31 still matches
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), *to)

	from, to = DateRange("", "2024-03-31")
	assert.Nil(t, from)
	assert.NotNil(t, to)

	from, to = DateRange("bogus", "")
	assert.Nil(t, from)
	assert.Nil(t, to)
}

func TestWriteCSV(t *testing.T) {
	w := httptest.NewRecorder()
	header := []string{"sku", "name"}
	records := [][]string{
		{"SKU1", "plain"},
		{"SKU2", `has "quotes", commas`},
	}
	require.NoError(t, WriteCSV(w, "inventory.csv", header, records))

	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=inventory.csv", w.Header().Get("Content-Disposition"))

	body := w.Body.String()
	assert.Contains(t, body, "sku,name\n")
	assert.Contains(t, body, "SKU1,plain\n")
	// RFC 4180 quoting for embedded quotes and commas
	assert.Contains(t, body, `SKU2,"has ""quotes"", commas"`)
}
