package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/auth"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/finance"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/slots"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	orders *mocks.MockOrderReader
	engine *mocks.MockStatusEngine
	tokens *mocks.MockTokenIssuer
	router chi.Router
}

func newTestDeps(t *testing.T) *testDeps {
	d := &testDeps{
		orders: mocks.NewMockOrderReader(t),
		engine: mocks.NewMockStatusEngine(t),
		tokens: mocks.NewMockTokenIssuer(t),
		router: chi.NewRouter(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler.NewHTTPHandler(logger, d.orders, d.engine, d.tokens).Init(d.router)
	return d
}

func (d *testDeps) do(t *testing.T, req *http.Request) (int, string) {
	rr := httptest.NewRecorder()
	d.router.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: "123", LocalOrderID: "L-1", Status: entities.StatusOrdered}

	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockOrderReader)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			id:   "123",
			mockBehavior: func(svc *mocks.MockOrderReader) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"local_order_id":"L-1"`,
		},
		{
			name: "not found",
			id:   "not-exist",
			mockBehavior: func(svc *mocks.MockOrderReader) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "internal error",
			id:   "123",
			mockBehavior: func(svc *mocks.MockOrderReader) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			tc.mockBehavior(d.orders)

			status, body := d.do(t, httptest.NewRequest(http.MethodGet, "/orders/"+tc.id, nil))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "123", resp["id"])
				assert.Equal(t, "ORDERED", resp["status"])
			}
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		d := newTestDeps(t)
		want := entities.OrderFilter{
			Statuses: []entities.Status{entities.StatusStored, entities.StatusArrivedAtOffice},
			ClientID: "c-1",
			Search:   "iphone",
			Limit:    10,
		}
		d.orders.EXPECT().
			ListOrders(mock.Anything, want).
			Return([]entities.Order{{ID: "1"}, {ID: "2"}}, nil).Once()

		status, body := d.do(t, httptest.NewRequest(http.MethodGet, "/orders?status=stored,ARRIVED_AT_OFFICE&client_id=c-1&q=iphone&limit=10", nil))

		assert.Equal(t, http.StatusOK, status)
		var resp []map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("unknown status", func(t *testing.T) {
		d := newTestDeps(t)

		status, body := d.do(t, httptest.NewRequest(http.MethodGet, "/orders?status=LOST", nil))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"status"`)
	})

	t.Run("bad limit", func(t *testing.T) {
		d := newTestDeps(t)

		status, _ := d.do(t, httptest.NewRequest(http.MethodGet, "/orders?limit=-1", nil))

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	d := newTestDeps(t)
	d.engine.EXPECT().
		Create(mock.Anything, "alice", mock.MatchedBy(func(in entities.NewOrder) bool {
			return in.LocalOrderID == "L-9" && in.Quantity == 2 && in.CommissionType == entities.CommissionPercentage
		})).
		Return(entities.Order{ID: "9", LocalOrderID: "L-9", Status: entities.StatusNew}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(
		`{"local_order_id":"L-9","client_id":"c","product_name":"p","quantity":2,"commission_type":"percentage","shipping_type":"normal"}`,
	))
	req.Header.Set("X-User", "alice")

	status, body := d.do(t, req)

	assert.Equal(t, http.StatusCreated, status)
	assert.Contains(t, body, `"status":"NEW"`)
}

func TestHTTPHandler_EditOrder(t *testing.T) {
	t.Run("passes only given fields", func(t *testing.T) {
		d := newTestDeps(t)
		d.engine.EXPECT().
			Edit(mock.Anything, "5", "bob", mock.MatchedBy(func(e entities.OrderEdit) bool {
				return e.TrackingNumber != nil && *e.TrackingNumber == "TRK-1" && e.Notes == nil
			})).
			Return(entities.Order{ID: "5", Status: entities.StatusOrdered, TrackingNumber: "TRK-1"}, nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/orders/5", strings.NewReader(`{"tracking_number":"TRK-1"}`))
		req.Header.Set("X-User", "bob")

		status, body := d.do(t, req)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"tracking_number":"TRK-1"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		d := newTestDeps(t)

		req := httptest.NewRequest(http.MethodPatch, "/orders/5", strings.NewReader(`{"tracking_number":`))
		status, _ := d.do(t, req)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_AdvanceOrder(t *testing.T) {
	t.Run("decodes payload by from", func(t *testing.T) {
		d := newTestDeps(t)
		d.engine.EXPECT().
			Advance(mock.Anything, "1", "bob", mock.MatchedBy(func(p entities.AdvancePayload) bool {
				in, ok := p.(*entities.ArrivedAtOfficeAdvance)
				return ok && in.Weight == 2.5 && in.StorageLocation == "B-02"
			})).
			Return(entities.Order{ID: "1", Status: entities.StatusStored, StorageLocation: "B-02"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/1/advance", strings.NewReader(
			`{"from":"ARRIVED_AT_OFFICE","weight":2.5,"storage_location":"B-02"}`,
		))
		req.Header.Set("X-User", "bob")

		status, body := d.do(t, req)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"storage_location":"B-02"`)
	})

	t.Run("unknown from", func(t *testing.T) {
		d := newTestDeps(t)

		status, body := d.do(t, httptest.NewRequest(http.MethodPost, "/orders/1/advance", strings.NewReader(`{"from":"COMPLETED"}`)))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"from"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		d := newTestDeps(t)

		status, _ := d.do(t, httptest.NewRequest(http.MethodPost, "/orders/1/advance", strings.NewReader(`{`)))

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        entities.NewValidationError("tracking_number"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"tracking_number":"invalid"`,
		},
		{
			name:       "illegal transition",
			err:        &entities.IllegalTransitionError{Operation: "advance", Status: entities.StatusCompleted, Reason: "terminal status"},
			wantStatus: http.StatusConflict,
			wantBody:   "terminal status",
		},
		{
			name:       "authentication",
			err:        &entities.AuthenticationError{Err: auth.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "re-authentication required",
		},
		{
			name:       "persistence",
			err:        &entities.PersistenceError{Operation: "advance", Err: errors.New("conn reset")},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "try again",
		},
		{
			name:       "not found",
			err:        entities.ErrOrderNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "order not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.engine.EXPECT().
				Advance(mock.Anything, "1", entities.SystemUser, mock.Anything).
				Return(entities.Order{}, tc.err).Once()

			status, body := d.do(t, httptest.NewRequest(http.MethodPost, "/orders/1/advance", strings.NewReader(`{"from":"ORDERED","tracking_number":"T"}`)))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_RevertOrder(t *testing.T) {
	d := newTestDeps(t)
	d.engine.EXPECT().
		Revert(mock.Anything, "1", "bob", "token-value").
		Return(entities.Order{ID: "1", Status: entities.StatusInTransit}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/orders/1/revert", nil)
	req.Header.Set("X-User", "bob")
	req.Header.Set("X-Reauth-Token", "token-value")

	status, body := d.do(t, req)

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"status":"IN_TRANSIT"`)
}

func TestHTTPHandler_CancelOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := newTestDeps(t)
		d.engine.EXPECT().
			Cancel(mock.Anything, "1", entities.SystemUser, "out of stock").
			Return(entities.Order{ID: "1", Status: entities.StatusCancelled}, nil).Once()

		status, _ := d.do(t, httptest.NewRequest(http.MethodPost, "/orders/1/cancel", strings.NewReader(`{"reason":"out of stock"}`)))

		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("missing reason", func(t *testing.T) {
		d := newTestDeps(t)

		status, body := d.do(t, httptest.NewRequest(http.MethodPost, "/orders/1/cancel", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"reason":"required"`)
	})
}

func TestHTTPHandler_SplitOrder(t *testing.T) {
	d := newTestDeps(t)
	d.engine.EXPECT().
		Split(mock.Anything, "1", entities.SystemUser, entities.SplitRequest{Quantity: 1, TrackingNumber: "T-2"}).
		Return(entities.SplitResult{
			Original: entities.Order{ID: "1", Quantity: 2},
			Split:    entities.Order{ID: "2", LocalOrderID: "L-1-1", Quantity: 1},
		}, nil).Once()

	status, body := d.do(t, httptest.NewRequest(http.MethodPost, "/orders/1/split", strings.NewReader(`{"quantity":1,"tracking_number":"T-2"}`)))

	assert.Equal(t, http.StatusCreated, status)

	var resp handler.SplitResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 2, resp.Original.Quantity)
	assert.Equal(t, "L-1-1", resp.Split.LocalOrderID)
}

func TestHTTPHandler_SuggestSlot(t *testing.T) {
	t.Run("with location", func(t *testing.T) {
		d := newTestDeps(t)
		d.engine.EXPECT().
			SuggestSlot(mock.Anything, "1").
			Return(slots.Suggestion{Drawer: "B", Location: "B-02", Score: 45, Reasons: []string{"same client"}}, nil).Once()

		status, body := d.do(t, httptest.NewRequest(http.MethodGet, "/orders/1/slot-suggestion", nil))

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"location":"B-02"`)
		assert.Contains(t, body, `"score":45`)
	})

	t.Run("drawer full", func(t *testing.T) {
		d := newTestDeps(t)
		d.engine.EXPECT().
			SuggestSlot(mock.Anything, "1").
			Return(slots.Suggestion{Drawer: "A"}, nil).Once()

		status, body := d.do(t, httptest.NewRequest(http.MethodGet, "/orders/1/slot-suggestion", nil))

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"location":null`)
		assert.Contains(t, body, `"reasons":[]`)
	})
}

func TestHTTPHandler_ListDrawers(t *testing.T) {
	d := newTestDeps(t)
	d.orders.EXPECT().
		Drawers(mock.Anything).
		Return([]slots.Occupancy{{Drawer: entities.StorageDrawer{Name: "A", Capacity: 20}, Used: 1, FreeSlots: []string{"A-02"}}}, nil).Once()

	status, body := d.do(t, httptest.NewRequest(http.MethodGet, "/drawers", nil))

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"name":"A"`)
	assert.Contains(t, body, `"free_slots":["A-02"]`)
}

func TestHTTPHandler_ClientBalance(t *testing.T) {
	d := newTestDeps(t)
	d.orders.EXPECT().
		ClientBalance(mock.Anything, "c-1").
		Return(finance.Summary{ClientID: "c-1", Orders: 2, Total: 1380, Paid: 500, Due: 880}, nil).Once()

	status, body := d.do(t, httptest.NewRequest(http.MethodGet, "/clients/c-1/balance", nil))

	assert.Equal(t, http.StatusOK, status)

	var resp handler.Balance
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 880.0, resp.Due)
	assert.Equal(t, 2, resp.Orders)
}

func TestHTTPHandler_Reauth(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := newTestDeps(t)
		expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		d.tokens.EXPECT().
			IssueToken(mock.Anything, "bob", "secret").
			Return(auth.Token{Value: "jwt", ExpiresAt: expires}, nil).Once()

		status, body := d.do(t, httptest.NewRequest(http.MethodPost, "/auth/reauth", strings.NewReader(`{"username":"bob","password":"secret"}`)))

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"token":"jwt"`)
	})

	t.Run("wrong password", func(t *testing.T) {
		d := newTestDeps(t)
		d.tokens.EXPECT().
			IssueToken(mock.Anything, "bob", "wrong").
			Return(auth.Token{}, &entities.AuthenticationError{Err: auth.ErrInvalidCredentials}).Once()

		status, _ := d.do(t, httptest.NewRequest(http.MethodPost, "/auth/reauth", strings.NewReader(`{"username":"bob","password":"wrong"}`)))

		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("missing password", func(t *testing.T) {
		d := newTestDeps(t)

		status, body := d.do(t, httptest.NewRequest(http.MethodPost, "/auth/reauth", strings.NewReader(`{"username":"bob"}`)))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"password"`)
	})
}
