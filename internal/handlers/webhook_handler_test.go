package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"school-payments-api/internal/models"
	"school-payments-api/internal/service"
)

type stubOrderStore struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func (s *stubOrderStore) FindByID(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (s *stubOrderStore) UpdateSchool(id, schoolID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.orders[id]
	order.SchoolID = schoolID
	s.orders[id] = order
	return nil
}

func (s *stubOrderStore) EnsureExists(order *models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.orders[order.ID]; ok {
		return &existing, nil
	}
	s.orders[order.ID] = *order
	return order, nil
}

type stubStatusStore struct {
	mu       sync.Mutex
	statuses map[string]models.OrderStatus
}

func (s *stubStatusStore) Upsert(status *models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[status.CollectID] = *status
	return nil
}

func (s *stubStatusStore) FindByCollectID(collectID string) (*models.OrderStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[collectID]
	if !ok {
		return nil, nil
	}
	return &status, nil
}

type stubLogStore struct{ count int }

func (s *stubLogStore) Append(payload []byte) error {
	s.count++
	return nil
}

func newWebhookRouter(orders *stubOrderStore, statuses *stubStatusStore, logs *stubLogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	reconciler := service.NewReconcileService(orders, statuses, logs, "fallback-school")
	handler := NewWebhookHandler(reconciler, log)

	r := gin.New()
	r.POST("/webhook", handler.Receive)
	return r
}

func TestWebhookReceive(t *testing.T) {
	orders := &stubOrderStore{orders: map[string]models.Order{
		"ord-1": {ID: "ord-1", SchoolID: "S1"},
	}}
	statuses := &stubStatusStore{statuses: map[string]models.OrderStatus{}}
	logs := &stubLogStore{}
	r := newWebhookRouter(orders, statuses, logs)

	body := `{"order_info":{"order_id":"ord-1","order_amount":2500,"transaction_amount":2500,"status":"success","payment_mode":"upi"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	stored, _ := statuses.FindByCollectID("ord-1")
	if stored == nil || stored.Status != "success" {
		t.Errorf("stored status = %+v", stored)
	}
	if logs.count != 1 {
		t.Errorf("raw log entries = %d, want 1", logs.count)
	}
}

func TestWebhookReceiveInvalidPayload(t *testing.T) {
	orders := &stubOrderStore{orders: map[string]models.Order{}}
	statuses := &stubStatusStore{statuses: map[string]models.OrderStatus{}}
	logs := &stubLogStore{}
	r := newWebhookRouter(orders, statuses, logs)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`{"no_order_info":true}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if logs.count != 1 {
		t.Errorf("malformed payload must still be logged, entries = %d", logs.count)
	}
	if len(statuses.statuses) != 0 {
		t.Errorf("statuses mutated on invalid payload: %+v", statuses.statuses)
	}
}

func TestWebhookReceiveUnknownOrder(t *testing.T) {
	orders := &stubOrderStore{orders: map[string]models.Order{}}
	statuses := &stubStatusStore{statuses: map[string]models.OrderStatus{}}
	logs := &stubLogStore{}
	r := newWebhookRouter(orders, statuses, logs)

	body := `{"order_info":{"order_id":"ext-1","school_id":"S9","order_amount":100,"status":"success"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	order, _ := orders.FindByID("ext-1")
	if order == nil || order.SchoolID != "S9" {
		t.Errorf("stand-in order = %+v, want school S9", order)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] == "" {
		t.Error("missing success message")
	}
}
