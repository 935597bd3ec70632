package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/domain/catalog"
	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/domain/user"
	"github.com/loopcart-io/loopcart/internal/infrastructure/config"
	"github.com/loopcart-io/loopcart/internal/infrastructure/migration"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/infrastructure/repository"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type testApp struct {
	db     *gorm.DB
	engine *gin.Engine

	subscribableSID string
	subscriptionSID string
	subscriptionID  uint
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewLogger()
	ctx := t.Context()

	userRepo := repository.NewUserRepository(gdb, log)
	owner, err := user.NewUser("jordan@example.com", "Jordan")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(ctx, owner))

	subscribableRepo := repository.NewSubscribableRepository(gdb, log)
	item, err := catalog.NewSubscribable("Coffee Beans", 1500, "USD")
	require.NoError(t, err)
	require.NoError(t, subscribableRepo.Create(ctx, item))

	subscriptionRepo := repository.NewSubscriptionRepository(gdb, log)
	sub, err := subscription.NewSubscription(owner.ID(), recurrence.Interval{Length: 1, Units: recurrence.UnitMonth})
	require.NoError(t, err)
	require.NoError(t, subscriptionRepo.Create(ctx, sub))

	router := NewRouter(gdb, nil, &config.Config{}, log)
	router.SetupRoutes()

	return &testApp{
		db:              gdb,
		engine:          router.GetEngine(),
		subscribableSID: item.SID(),
		subscriptionSID: sub.SID(),
		subscriptionID:  sub.ID(),
	}
}

func (a *testApp) request(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, apiEnvelope) {
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
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var envelope apiEnvelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func (a *testApp) eventCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, a.db.Model(&models.SubscriptionEventModel{}).Count(&count).Error)
	return count
}

func TestLineItemLifecycle(t *testing.T) {
	app := setupTestApp(t)

	createBody := map[string]any{
		"subscribable_sid": app.subscribableSID,
		"quantity":         2,
		"interval_length":  1,
		"interval_units":   "month",
		"subscription_sid": app.subscriptionSID,
	}

	w, envelope := app.request(t, http.MethodPost, "/api/v1/line-items", createBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.True(t, envelope.Success)

	var created struct {
		SID            string `json:"sid"`
		Quantity       int    `json:"quantity"`
		SubscriptionID *uint  `json:"subscription_id"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &created))
	assert.NotEmpty(t, created.SID)
	assert.Equal(t, 2, created.Quantity)
	require.NotNil(t, created.SubscriptionID)
	assert.Equal(t, app.subscriptionID, *created.SubscriptionID)

	assert.Equal(t, int64(1), app.eventCount(t))

	t.Run("get by SID", func(t *testing.T) {
		w, envelope := app.request(t, http.MethodGet, "/api/v1/line-items/"+created.SID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			SID           string `json:"sid"`
			IntervalUnits string `json:"interval_units"`
			DummyLineItem *struct {
				UnitPriceCents int64 `json:"unit_price_cents"`
				TotalCents     int64 `json:"total_cents"`
			} `json:"dummy_line_item"`
		}
		require.NoError(t, json.Unmarshal(envelope.Data, &got))
		assert.Equal(t, created.SID, got.SID)
		assert.Equal(t, "month", got.IntervalUnits)
		// The computed dummy line item rides along on every single-resource
		// read.
		require.NotNil(t, got.DummyLineItem)
		assert.Equal(t, int64(1500), got.DummyLineItem.UnitPriceCents)
		assert.Equal(t, int64(3000), got.DummyLineItem.TotalCents)
	})

	t.Run("update quantity writes event", func(t *testing.T) {
		w, envelope := app.request(t, http.MethodPut, "/api/v1/line-items/"+created.SID, map[string]any{"quantity": 5})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated struct {
			Quantity int `json:"quantity"`
		}
		require.NoError(t, json.Unmarshal(envelope.Data, &updated))
		assert.Equal(t, 5, updated.Quantity)
		assert.Equal(t, int64(2), app.eventCount(t))
	})

	t.Run("preview prices the line", func(t *testing.T) {
		w, envelope := app.request(t, http.MethodGet, "/api/v1/line-items/"+created.SID+"/preview", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var preview struct {
			LineItems []struct {
				UnitPriceCents int64 `json:"unit_price_cents"`
				TotalCents     int64 `json:"total_cents"`
			} `json:"line_items"`
			TotalCents int64 `json:"total_cents"`
		}
		require.NoError(t, json.Unmarshal(envelope.Data, &preview))
		require.Len(t, preview.LineItems, 1)
		assert.Equal(t, int64(1500), preview.LineItems[0].UnitPriceCents)
		assert.Equal(t, int64(7500), preview.TotalCents)

		// Previewing writes no events and persists nothing.
		assert.Equal(t, int64(2), app.eventCount(t))
		var orderCount int64
		require.NoError(t, app.db.Model(&models.OrderModel{}).Count(&orderCount).Error)
		assert.Zero(t, orderCount)
	})

	t.Run("dummy line item tracks updated quantity", func(t *testing.T) {
		w, envelope := app.request(t, http.MethodGet, "/api/v1/line-items/"+created.SID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			DummyLineItem *struct {
				TotalCents int64 `json:"total_cents"`
			} `json:"dummy_line_item"`
		}
		require.NoError(t, json.Unmarshal(envelope.Data, &got))
		require.NotNil(t, got.DummyLineItem)
		assert.Equal(t, int64(7500), got.DummyLineItem.TotalCents)
	})

	t.Run("events listed newest first", func(t *testing.T) {
		w, envelope := app.request(t, http.MethodGet, fmt.Sprintf("/api/v1/subscriptions/%s/events", app.subscriptionSID), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list struct {
			Items []struct {
				EventType string         `json:"event_type"`
				Details   map[string]any `json:"details"`
			} `json:"items"`
			Total int64 `json:"total"`
		}
		require.NoError(t, json.Unmarshal(envelope.Data, &list))
		require.Equal(t, int64(2), list.Total)
		assert.Equal(t, "line_item_updated", list.Items[0].EventType)
		assert.Equal(t, "line_item_created", list.Items[1].EventType)

		// Payload is the external representation minus the transient and
		// recurrence detail keys.
		details := list.Items[0].Details
		assert.Contains(t, details, "sid")
		assert.Contains(t, details, "quantity")
		assert.NotContains(t, details, "dummy_line_item")
		assert.NotContains(t, details, "interval_units")
		assert.NotContains(t, details, "interval_length")
		assert.NotContains(t, details, "end_date")
		assert.NotContains(t, details, "source_line_item_id")
	})

	t.Run("delete writes destroyed event", func(t *testing.T) {
		w, _ := app.request(t, http.MethodDelete, "/api/v1/line-items/"+created.SID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, int64(3), app.eventCount(t))

		w, _ = app.request(t, http.MethodGet, "/api/v1/line-items/"+created.SID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLineItemValidation(t *testing.T) {
	app := setupTestApp(t)

	t.Run("quantity required", func(t *testing.T) {
		w, _ := app.request(t, http.MethodPost, "/api/v1/line-items", map[string]any{
			"subscribable_sid": app.subscribableSID,
			"interval_length":  1,
			"interval_units":   "month",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("interval required without subscription", func(t *testing.T) {
		w, _ := app.request(t, http.MethodPost, "/api/v1/line-items", map[string]any{
			"subscribable_sid": app.subscribableSID,
			"quantity":         1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("interval optional with subscription", func(t *testing.T) {
		w, _ := app.request(t, http.MethodPost, "/api/v1/line-items", map[string]any{
			"subscribable_sid": app.subscribableSID,
			"quantity":         1,
			"subscription_sid": app.subscriptionSID,
		})
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("unknown subscribable", func(t *testing.T) {
		w, _ := app.request(t, http.MethodPost, "/api/v1/line-items", map[string]any{
			"subscribable_sid": "itm_doesnotexist",
			"quantity":         1,
			"interval_length":  1,
			"interval_units":   "month",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad identifier", func(t *testing.T) {
		w, _ := app.request(t, http.MethodGet, "/api/v1/line-items/not-an-id", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStandaloneLineItemPreview(t *testing.T) {
	app := setupTestApp(t)

	// A line item can live without a subscription during a quote flow; it
	// still previews, against an empty order shell.
	w, envelope := app.request(t, http.MethodPost, "/api/v1/line-items", map[string]any{
		"subscribable_sid": app.subscribableSID,
		"quantity":         3,
		"interval_length":  2,
		"interval_units":   "week",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		SID string `json:"sid"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &created))
	assert.Equal(t, int64(0), app.eventCount(t))

	t.Run("get carries dummy line item", func(t *testing.T) {
		w, envelope := app.request(t, http.MethodGet, "/api/v1/line-items/"+created.SID, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got struct {
			DummyLineItem *struct {
				TotalCents int64 `json:"total_cents"`
			} `json:"dummy_line_item"`
		}
		require.NoError(t, json.Unmarshal(envelope.Data, &got))
		require.NotNil(t, got.DummyLineItem)
		assert.Equal(t, int64(4500), got.DummyLineItem.TotalCents)
	})

	t.Run("preview builds empty shell", func(t *testing.T) {
		w, envelope := app.request(t, http.MethodGet, "/api/v1/line-items/"+created.SID+"/preview", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var preview struct {
			UserID          uint            `json:"user_id"`
			ShippingAddress json.RawMessage `json:"shipping_address"`
			BillingAddress  json.RawMessage `json:"billing_address"`
			TotalCents      int64           `json:"total_cents"`
		}
		require.NoError(t, json.Unmarshal(envelope.Data, &preview))
		assert.Zero(t, preview.UserID)
		assert.Empty(t, preview.ShippingAddress)
		assert.Empty(t, preview.BillingAddress)
		assert.Equal(t, int64(4500), preview.TotalCents)
	})
}

func TestPreviewSkipsUnpurchasable(t *testing.T) {
	app := setupTestApp(t)
	ctx := t.Context()
	log := logger.NewLogger()

	subscribableRepo := repository.NewSubscribableRepository(app.db, log)
	item, err := subscribableRepo.GetBySID(ctx, app.subscribableSID)
	require.NoError(t, err)
	item.MarkUnpurchasable()
	require.NoError(t, subscribableRepo.Update(ctx, item))

	w, envelope := app.request(t, http.MethodPost, "/api/v1/line-items", map[string]any{
		"subscribable_sid": app.subscribableSID,
		"quantity":         1,
		"subscription_sid": app.subscriptionSID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		SID string `json:"sid"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &created))

	w, envelope = app.request(t, http.MethodGet, "/api/v1/line-items/"+created.SID+"/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, envelope.Data)
	assert.Equal(t, "Nothing to preview", envelope.Message)
}
