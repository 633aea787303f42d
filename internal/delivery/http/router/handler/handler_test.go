package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderpad/config"
	"orderpad/internal/delivery/http/middleware"
	"orderpad/internal/delivery/http/router"
	"orderpad/internal/delivery/http/router/handler"
	"orderpad/internal/delivery/http/validator"
	"orderpad/internal/domain/entity"
	"orderpad/internal/infra/persistence/localstore"
	"orderpad/internal/usecase"
	"orderpad/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the unified response structure for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

type stubSeedSource struct {
	products []*entity.Product
}

func (s *stubSeedSource) Fetch(ctx context.Context) ([]*entity.Product, error) {
	return s.products, nil
}

// testApp wires the full HTTP surface over an in-memory store.
type testApp struct {
	echo    *echo.Echo
	catalog usecase.CatalogUsecase
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.History.MaxEntries = 20
	cfg.Favourites.Limit = 5
	cfg.Export.AppName = "OrderPad"
	cfg.Theme.Default = "dark"

	store := localstore.NewMem()
	logger := slog.New(slog.DiscardHandler)

	catalogRepo := localstore.NewCatalogRepository(store)
	historyRepo := localstore.NewHistoryRepository(store)
	preferenceRepo := localstore.NewPreferenceRepository(store)

	favourites := impl.NewFavouritesService(impl.FavouritesServiceParams{
		HistoryRepo: historyRepo,
		CatalogRepo: catalogRepo,
		Config:      cfg,
	})
	catalog := impl.NewCatalogService(impl.CatalogServiceParams{
		CatalogRepo: catalogRepo,
		SeedSource:  &stubSeedSource{},
		Favourites:  favourites,
		Logger:      logger,
	})
	order := impl.NewOrderService(impl.OrderServiceParams{
		CatalogRepo: catalogRepo,
		HistoryRepo: historyRepo,
	})
	history := impl.NewHistoryService(impl.HistoryServiceParams{
		HistoryRepo: historyRepo,
		CatalogRepo: catalogRepo,
		Config:      cfg,
		Logger:      logger,
	})
	preference := impl.NewPreferenceService(impl.PreferenceServiceParams{
		PreferenceRepo: preferenceRepo,
		Config:         cfg,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		CatalogHandler:    handler.NewCatalogHandler(catalog, logger),
		OrderHandler:      handler.NewOrderHandler(order, history, logger),
		HistoryHandler:    handler.NewHistoryHandler(history, logger),
		PreferenceHandler: handler.NewPreferenceHandler(preference, logger),
	}).RegisterRoutes(e)

	return &testApp{echo: e, catalog: catalog}
}

func (a *testApp) do(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}

	return rec, env
}

func (a *testApp) addProduct(t *testing.T, name, size string, price float64, category string) *entity.Product {
	t.Helper()

	rec, env := a.do(t, http.MethodPost, "/catalog", map[string]any{
		"name":     name,
		"size":     size,
		"price":    price,
		"category": category,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var product entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))

	return &product
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	rec, _ := app.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestCatalogAddAndList(t *testing.T) {
	app := newTestApp(t)
	app.addProduct(t, "Milk", "1L", 2.5, "Dairy")

	rec, env := app.do(t, http.MethodGet, "/catalog", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var groups []usecase.ProductGroup
	require.NoError(t, json.Unmarshal(env.Data, &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "Dairy", groups[0].Name)
	require.Len(t, groups[0].Products, 1)
	assert.Equal(t, "Milk", groups[0].Products[0].Product.Name)
	assert.True(t, groups[0].Products[0].Visible)
}

func TestCatalogAddRejectsMissingName(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/catalog", map[string]any{
		"price":    1.0,
		"category": "Dairy",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestCatalogSearchHidesWithoutRemoving(t *testing.T) {
	app := newTestApp(t)
	app.addProduct(t, "Milk", "1L", 2.5, "Dairy")
	app.addProduct(t, "Bread", "500g", 1.2, "Bakery")

	rec, env := app.do(t, http.MethodGet, "/catalog?search=milk", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var groups []usecase.ProductGroup
	require.NoError(t, json.Unmarshal(env.Data, &groups))
	require.Len(t, groups, 2)

	visible := map[string]bool{}
	for _, g := range groups {
		for _, pv := range g.Products {
			visible[pv.Product.Name] = pv.Visible
		}
	}
	assert.True(t, visible["Milk"])
	assert.False(t, visible["Bread"])
}

func TestCatalogRemoveUnknownIsNoOp(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodDelete, "/catalog/no-such-id", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestOrderQuantityCoercion(t *testing.T) {
	app := newTestApp(t)
	p := app.addProduct(t, "Milk", "1L", 2.5, "Dairy")

	rec, env := app.do(t, http.MethodPut, "/order/items/"+p.ID, map[string]any{"quantity": "3"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"quantity":3`)

	// Non-numeric input counts as 0.
	_, env = app.do(t, http.MethodPut, "/order/items/"+p.ID, map[string]any{"quantity": "abc"})
	assert.Contains(t, string(env.Data), `"quantity":0`)

	// Negative input clamps to 0.
	_, env = app.do(t, http.MethodPut, "/order/items/"+p.ID, map[string]any{"quantity": -4})
	assert.Contains(t, string(env.Data), `"quantity":0`)
}

func TestOrderStepperFloorsAtZero(t *testing.T) {
	app := newTestApp(t)
	p := app.addProduct(t, "Milk", "1L", 2.5, "Dairy")

	_, env := app.do(t, http.MethodPost, "/order/items/"+p.ID+"/increment", nil)
	assert.Contains(t, string(env.Data), `"quantity":1`)

	_, env = app.do(t, http.MethodPost, "/order/items/"+p.ID+"/decrement", nil)
	assert.Contains(t, string(env.Data), `"quantity":0`)

	_, env = app.do(t, http.MethodPost, "/order/items/"+p.ID+"/decrement", nil)
	assert.Contains(t, string(env.Data), `"quantity":0`)
}

func TestOrderTotalDisplay(t *testing.T) {
	app := newTestApp(t)
	p := app.addProduct(t, "Coffee", "250g", 25, "Pantry")

	_, _ = app.do(t, http.MethodPut, "/order/items/"+p.ID, map[string]any{"quantity": 3})

	rec, env := app.do(t, http.MethodGet, "/order/total", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var total handler.TotalResponse
	require.NoError(t, json.Unmarshal(env.Data, &total))
	assert.InDelta(t, 75, total.Total, 1e-9)
	assert.Equal(t, "75.00", total.Display)
}

func TestOrderSaveRejectsEmptyDraft(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/order/save", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EMPTY_ORDER", env.Error.Code)
}

func TestOrderSaveAndHistoryRoundTrip(t *testing.T) {
	app := newTestApp(t)
	p := app.addProduct(t, "Milk", "1L", 2.5, "Dairy")

	_, _ = app.do(t, http.MethodPut, "/order/items/"+p.ID, map[string]any{"quantity": 2})

	rec, env := app.do(t, http.MethodPost, "/order/save", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var saved entity.HistoryEntry
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.InDelta(t, 5, saved.Total, 1e-9)

	rec, env = app.do(t, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []entity.HistoryEntry
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, saved.ID, entries[0].ID)

	rec, env = app.do(t, http.MethodGet, "/history/"+saved.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entry entity.HistoryEntry
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	assert.Equal(t, saved.ID, entry.ID)
}

func TestOrderLoadLastWithEmptyHistory(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/order/load-last", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HISTORY_EMPTY", env.Error.Code)
}

func TestHistoryListRejectsMalformedDate(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/history?start=not-a-date", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_DATE", env.Error.Code)
}

func TestHistoryGetRejectsMalformedID(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/history/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestHistoryDeleteRejectsEmptySelection(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/history/delete", map[string]any{"ids": []string{}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOTHING_SELECTED", env.Error.Code)
}

func TestHistoryExportRejectsNonNumericFilter(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/history/export?month=abc&year=2026", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_EXPORT_FILTER", env.Error.Code)
}

func TestHistoryExportDownloadsCSV(t *testing.T) {
	app := newTestApp(t)
	p := app.addProduct(t, "Milk", "1L", 2.5, "Dairy")

	_, _ = app.do(t, http.MethodPut, "/order/items/"+p.ID, map[string]any{"quantity": 2})
	rec, _ := app.do(t, http.MethodPost, "/order/save", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	now := time.Now()
	target := fmt.Sprintf("/history/export?month=%d&year=%d", int(now.Month()), now.Year())
	rec, _ = app.do(t, http.MethodGet, target, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "OrderPad_History_")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Date,Total Amount,Products"))
	assert.Contains(t, rec.Body.String(), "2 x Milk")
}

func TestPreferenceThemeRoundTrip(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/preference/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"theme":"dark"`)

	rec, _ = app.do(t, http.MethodPut, "/preference/theme", map[string]any{"theme": "light"})
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = app.do(t, http.MethodGet, "/preference/theme", nil)
	assert.Contains(t, string(env.Data), `"theme":"light"`)
}

func TestPreferenceThemeRejectsUnknownValue(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPut, "/preference/theme", map[string]any{"theme": "sepia"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_THEME", env.Error.Code)
}
