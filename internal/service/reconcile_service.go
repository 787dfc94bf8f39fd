package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"school-payments-api/internal/models"
)

// ErrInvalidPayload marks a webhook body the gateway should not retry:
// the payload itself is malformed.
var ErrInvalidPayload = errors.New("invalid webhook payload")

const (
	// errMessageDefault is stored when the gateway omits error_message.
	errMessageDefault = "NA"
	gatewayUnknown    = "Unknown"
)

// OrderStore is the slice of the order repository the reconciler needs.
type OrderStore interface {
	FindByID(id string) (*models.Order, error)
	UpdateSchool(id, schoolID string) error
	EnsureExists(order *models.Order) (*models.Order, error)
}

// StatusStore persists the latest payment state per collect_id.
type StatusStore interface {
	Upsert(status *models.OrderStatus) error
	FindByCollectID(collectID string) (*models.OrderStatus, error)
}

// WebhookLogStore captures raw notification bodies before validation.
type WebhookLogStore interface {
	Append(payload []byte) error
}

// OrderInfo is the gateway's notification schema. The gateway is known to
// emit inconsistent key names, so the misspelled and miscased variants are
// bound alongside the canonical ones and resolved in normalize.
type OrderInfo struct {
	OrderID            string     `json:"order_id"`
	SchoolID           string     `json:"school_id"`
	OrderAmount        float64    `json:"order_amount"`
	TransactionAmount  float64    `json:"transaction_amount"`
	PaymentMode        string     `json:"payment_mode"`
	PaymentDetails     string     `json:"payment_details"`
	PaymentDetailsTypo string     `json:"payemnt_details"`
	BankReference      string     `json:"bank_reference"`
	PaymentMessage     string     `json:"payment_message"`
	PaymentMessageAlt  string     `json:"Payment_message"`
	Status             string     `json:"status"`
	ErrorMessage       string     `json:"error_message"`
	PaymentTime        *time.Time `json:"payment_time"`
	Gateway            string     `json:"gateway"`
}

type WebhookPayload struct {
	OrderInfo *OrderInfo `json:"order_info"`
}

type ReconcileService struct {
	orders         OrderStore
	statuses       StatusStore
	logs           WebhookLogStore
	fallbackSchool string
	now            func() time.Time
}

func NewReconcileService(orders OrderStore, statuses StatusStore, logs WebhookLogStore, fallbackSchool string) *ReconcileService {
	return &ReconcileService{
		orders:         orders,
		statuses:       statuses,
		logs:           logs,
		fallbackSchool: fallbackSchool,
		now:            time.Now,
	}
}

// Process turns one raw gateway notification into consistent Order and
// OrderStatus state. The raw body is logged before anything else, so even
// rejected payloads stay available for replay. Redelivery of the same
// notification converges to the same state; an older notification arriving
// after a newer one still wins (last write by arrival order).
func (s *ReconcileService) Process(body []byte) (*models.OrderStatus, error) {
	if err := s.logs.Append(body); err != nil {
		return nil, fmt.Errorf("log webhook payload: %w", err)
	}

	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, ErrInvalidPayload
	}
	if payload.OrderInfo == nil || payload.OrderInfo.OrderID == "" {
		return nil, ErrInvalidPayload
	}
	info := payload.OrderInfo

	order, err := s.resolveOrder(info)
	if err != nil {
		return nil, err
	}

	paymentTime := s.now()
	if info.PaymentTime != nil {
		paymentTime = *info.PaymentTime
	}
	errorMessage := info.ErrorMessage
	if errorMessage == "" {
		errorMessage = errMessageDefault
	}

	status := &models.OrderStatus{
		CollectID:         order.ID,
		OrderAmount:       info.OrderAmount,
		TransactionAmount: info.TransactionAmount,
		PaymentMode:       info.PaymentMode,
		PaymentDetails:    firstNonEmpty(info.PaymentDetails, info.PaymentDetailsTypo),
		BankReference:     info.BankReference,
		PaymentMessage:    firstNonEmpty(info.PaymentMessage, info.PaymentMessageAlt),
		Status:            info.Status,
		ErrorMessage:      errorMessage,
		PaymentTime:       paymentTime,
	}
	if err := s.statuses.Upsert(status); err != nil {
		return nil, fmt.Errorf("upsert order status: %w", err)
	}
	return status, nil
}

// resolveOrder finds the order the notification refers to, correcting the
// stored school when the webhook disagrees (the webhook is authoritative
// for school ownership), or creates a stand-in order for an order_id never
// seen locally.
func (s *ReconcileService) resolveOrder(info *OrderInfo) (*models.Order, error) {
	order, err := s.orders.FindByID(info.OrderID)
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", info.OrderID, err)
	}
	if order != nil {
		if info.SchoolID != "" && info.SchoolID != order.SchoolID {
			if err := s.orders.UpdateSchool(order.ID, info.SchoolID); err != nil {
				return nil, fmt.Errorf("correct school for order %s: %w", order.ID, err)
			}
			order.SchoolID = info.SchoolID
		}
		return order, nil
	}

	standIn := &models.Order{
		ID:          info.OrderID,
		SchoolID:    firstNonEmpty(info.SchoolID, s.fallbackSchool),
		GatewayName: firstNonEmpty(info.Gateway, gatewayUnknown),
		OrderAmount: info.OrderAmount,
		StudentInfo: models.StudentInfo{
			Name:  "Unknown Student",
			ID:    fmt.Sprintf("WEBHOOK-%d", s.now().Unix()),
			Email: "unknown@webhook.generated",
		},
	}
	order, err = s.orders.EnsureExists(standIn)
	if err != nil {
		return nil, fmt.Errorf("create order %s: %w", info.OrderID, err)
	}
	return order, nil
}

// firstNonEmpty resolves an ordered alias fallback chain: canonical key
// first, then the known variant.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
