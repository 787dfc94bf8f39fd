package service

import (
	"errors"
	"fmt"
	"time"

	"school-payments-api/internal/models"
)

// ErrValidation marks a create-payment request missing a required field.
var ErrValidation = errors.New("missing required field")

// PaymentLinker creates a hosted payment link for an order with the
// external gateway.
type PaymentLinker interface {
	CreateCollectRequest(orderID, schoolID string, amount float64) (string, error)
}

// OrderCreator is the order-creation slice of the order repository.
type OrderCreator interface {
	Create(order *models.Order) error
}

type CreatePaymentInput struct {
	SchoolID    string
	TrusteeID   string
	StudentInfo models.StudentInfo
	OrderAmount float64
	GatewayName string
}

type CreatePaymentResult struct {
	OrderID     string
	PaymentLink string
}

type PaymentService struct {
	orders   OrderCreator
	statuses StatusStore
	gateway  PaymentLinker
	now      func() time.Time
}

func NewPaymentService(orders OrderCreator, statuses StatusStore, gateway PaymentLinker) *PaymentService {
	return &PaymentService{orders: orders, statuses: statuses, gateway: gateway, now: time.Now}
}

// CreatePayment persists the order and its pending status, then asks the
// gateway for a payment link. On gateway failure the order and pending
// status are left in place: the payment may still complete out of band and
// a later webhook will reconcile it. Nothing is rolled back.
func (s *PaymentService) CreatePayment(input CreatePaymentInput) (*CreatePaymentResult, error) {
	if input.SchoolID == "" {
		return nil, fmt.Errorf("%w: school_id", ErrValidation)
	}

	order := &models.Order{
		SchoolID:    input.SchoolID,
		TrusteeID:   input.TrusteeID,
		StudentInfo: input.StudentInfo,
		GatewayName: input.GatewayName,
		OrderAmount: input.OrderAmount,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	pending := &models.OrderStatus{
		CollectID:    order.ID,
		OrderAmount:  input.OrderAmount,
		Status:       "pending",
		ErrorMessage: errMessageDefault,
		PaymentTime:  s.now(),
	}
	if err := s.statuses.Upsert(pending); err != nil {
		return nil, fmt.Errorf("create pending status: %w", err)
	}

	link, err := s.gateway.CreateCollectRequest(order.ID, order.SchoolID, order.OrderAmount)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}
	return &CreatePaymentResult{OrderID: order.ID, PaymentLink: link}, nil
}
