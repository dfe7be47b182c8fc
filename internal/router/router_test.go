package router_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/config"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/infra"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/repository"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/router"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopMailer struct{}

func (nopMailer) EnqueueReset(string, string) {}

type testServer struct {
	engine *gin.Engine
	db     *storage.DB
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := infra.NewDatabase("sqlite", "", dsn)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:                "test",
		PublicURL:          "http://localhost:3000",
		JWTSecret:          "router-test-secret",
		JWTExpirationHours: 1,
	}

	users := repository.NewUserRepository(db)
	for _, u := range []struct{ username, role string }{
		{"admin", "admin"},
		{"client", "client"},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.username+"pass"), bcrypt.MinCost)
		require.NoError(t, err)
		require.NoError(t, users.Create(context.Background(), &model.User{
			Username: u.username,
			Email:    u.username + "@example.com",
			Password: string(hash),
			Role:     u.role,
		}))
	}

	return &testServer{engine: router.New(cfg, db, nil, nopMailer{}), db: db}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username, "password": username + "pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestHealthAndVersion(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"connected"`)

	w = s.do(t, http.MethodGet, "/api/version", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"driver":"sqlite"`)
}

func TestLoginFailure(t *testing.T) {
	s := newServer(t)
	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	clientToken := s.login(t, "client")
	w = s.do(t, http.MethodGet, "/api/admin/stats", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := s.login(t, "admin")
	w = s.do(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInboundFlowOverHTTP(t *testing.T) {
	s := newServer(t)
	token := s.login(t, "admin")

	w := s.do(t, http.MethodPost, "/api/admin/inbound", token, gin.H{
		"supplier":      "Golden Trading",
		"inboundNumber": "IN900",
		"productName":   "Shrink Film",
		"category":      "consumables",
		"quantity":      25,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"inbound_number":"IN900"`)

	// duplicate number conflicts
	w = s.do(t, http.MethodPost, "/api/admin/inbound", token, gin.H{
		"supplier": "Golden Trading", "inboundNumber": "IN900",
		"productName": "Shrink Film", "category": "consumables", "quantity": 5,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// missing required field is a 400 before any mutation
	w = s.do(t, http.MethodPost, "/api/admin/inbound", token, gin.H{
		"productName": "Shrink Film", "category": "consumables", "quantity": 5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/admin/inbound?search=shrink", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Page     int             `json:"page"`
		PageSize int             `json:"pageSize"`
		Total    int64           `json:"total"`
		Rows     json.RawMessage `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 10, list.PageSize)
	assert.Equal(t, int64(1), list.Total)

	w = s.do(t, http.MethodGet, "/api/admin/inbound/IN900", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"product_name":"Shrink Film"`)

	w = s.do(t, http.MethodGet, "/api/admin/inbound/IN-NOPE", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOutboundInsufficientStockOverHTTP(t *testing.T) {
	s := newServer(t)
	token := s.login(t, "admin")

	w := s.do(t, http.MethodPost, "/api/admin/inbound", token, gin.H{
		"supplier": "S", "productName": "Rope", "category": "rigging", "quantity": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/api/admin/outbound", token, gin.H{
		"customer": "Acme", "productName": "Rope", "quantity": 50,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock: 10 available")

	w = s.do(t, http.MethodPost, "/api/admin/outbound", token, gin.H{
		"customer": "Acme", "productName": "Rope", "quantity": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"remaining":0`)
}

func TestInventoryCSVExportOverHTTP(t *testing.T) {
	s := newServer(t)
	token := s.login(t, "admin")

	for _, name := range []string{"Alpha", "Beta"} {
		w := s.do(t, http.MethodPost, "/api/admin/inbound", token, gin.H{
			"supplier": "S", "productName": name, "category": "c", "quantity": 3,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/admin/inventory?export=csv", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inventory.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3) // header + 2 products
	assert.Equal(t, "sku,name,category,safety_stock,current_stock,available_stock,reserved_stock,last_updated,stock_status", lines[0])
	assert.Contains(t, w.Body.String(), "Alpha")
	assert.Contains(t, w.Body.String(), "Beta")
}

// A page-scoped CSV export must contain exactly the rows the JSON view of
// the same page returns, in the same order.
func TestInboundPageExportMatchesJSONPage(t *testing.T) {
	s := newServer(t)
	token := s.login(t, "admin")

	for i := 1; i <= 5; i++ {
		w := s.do(t, http.MethodPost, "/api/admin/inbound", token, gin.H{
			"supplier":      fmt.Sprintf("Supplier %d", i),
			"inboundNumber": fmt.Sprintf("IN%03d", i),
			"productName":   fmt.Sprintf("Part %d", i),
			"category":      "parts",
			"quantity":      i * 10,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	const query = "page=2&pageSize=2&sort=inbound_number%20ASC"

	w := s.do(t, http.MethodGet, "/api/admin/inbound?"+query, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.InboundListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Rows, 2)
	assert.Equal(t, "IN003", list.Rows[0].InboundNumber)

	w = s.do(t, http.MethodGet, "/api/admin/inbound?"+query+"&export=csv&scope=page", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+len(list.Rows))
	assert.Equal(t, dto.InboundCSVHeader, records[0])
	for i, row := range list.Rows {
		assert.Equal(t, row.CSVRecord(), records[i+1])
	}
}

func TestTrackingPublicLookup(t *testing.T) {
	s := newServer(t)

	loc := "Yangon hub"
	require.NoError(t, s.db.Gorm().Create(&model.Tracking{
		TrackingNumber:  "MLL001",
		CurrentStatus:   "in-transit",
		CurrentLocation: &loc,
	}).Error)

	w := s.do(t, http.MethodGet, "/api/tracking/MLL001", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tracking_number":"MLL001"`)

	w = s.do(t, http.MethodGet, "/api/tracking/UNKNOWN", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogoutWithoutRedisSucceeds(t *testing.T) {
	s := newServer(t)
	token := s.login(t, "admin")

	w := s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// without redis there is no server-side revocation; the token still parses
	w = s.do(t, http.MethodGet, "/api/admin/stats", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
