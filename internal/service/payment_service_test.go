package service

import (
	"errors"
	"testing"

	"school-payments-api/internal/models"
)

type fakeGateway struct {
	link  string
	err   error
	calls int

	lastOrderID string
	lastSchool  string
	lastAmount  float64
}

func (f *fakeGateway) CreateCollectRequest(orderID, schoolID string, amount float64) (string, error) {
	f.calls++
	f.lastOrderID = orderID
	f.lastSchool = schoolID
	f.lastAmount = amount
	if f.err != nil {
		return "", f.err
	}
	return f.link, nil
}

func TestCreatePayment(t *testing.T) {
	orders := newMemOrderStore()
	statuses := newMemStatusStore()
	gw := &fakeGateway{link: "https://pay.example/abc"}
	s := NewPaymentService(orders, statuses, gw)

	result, err := s.CreatePayment(CreatePaymentInput{
		SchoolID:    "S1",
		TrusteeID:   "T1",
		StudentInfo: models.StudentInfo{Name: "Rahul Sharma", ID: "STU001", Email: "rahul@school.edu"},
		OrderAmount: 2500,
		GatewayName: "PhonePe",
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if result.PaymentLink != "https://pay.example/abc" {
		t.Errorf("paymentLink = %q", result.PaymentLink)
	}

	order, _ := orders.FindByID(result.OrderID)
	if order == nil || order.SchoolID != "S1" || order.OrderAmount != 2500 {
		t.Fatalf("persisted order = %+v", order)
	}

	status, _ := statuses.FindByCollectID(result.OrderID)
	if status == nil {
		t.Fatal("pending status not persisted")
	}
	if status.Status != "pending" || status.ErrorMessage != "NA" || status.OrderAmount != 2500 {
		t.Errorf("pending status = %+v", status)
	}
	if status.PaymentTime.IsZero() {
		t.Error("pending status missing payment_time")
	}

	if gw.lastOrderID != result.OrderID || gw.lastSchool != "S1" || gw.lastAmount != 2500 {
		t.Errorf("gateway called with %s/%s/%v", gw.lastOrderID, gw.lastSchool, gw.lastAmount)
	}
}

func TestCreatePaymentMissingSchool(t *testing.T) {
	orders := newMemOrderStore()
	statuses := newMemStatusStore()
	gw := &fakeGateway{link: "https://pay.example/abc"}
	s := NewPaymentService(orders, statuses, gw)

	_, err := s.CreatePayment(CreatePaymentInput{OrderAmount: 100})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if len(orders.orders) != 0 || gw.calls != 0 {
		t.Error("validation failure must not create orders or call the gateway")
	}
}

func TestCreatePaymentGatewayFailureKeepsOrder(t *testing.T) {
	orders := newMemOrderStore()
	statuses := newMemStatusStore()
	gw := &fakeGateway{err: errors.New("gateway down")}
	s := NewPaymentService(orders, statuses, gw)

	_, err := s.CreatePayment(CreatePaymentInput{SchoolID: "S1", OrderAmount: 100})
	if err == nil {
		t.Fatal("expected gateway failure to surface")
	}

	// The order and pending status stay persisted: the payment may still
	// complete out of band and a later webhook will reconcile it.
	if len(orders.orders) != 1 {
		t.Errorf("orders = %d, want 1 kept after gateway failure", len(orders.orders))
	}
	if len(statuses.statuses) != 1 {
		t.Errorf("statuses = %d, want pending status kept", len(statuses.statuses))
	}
}
