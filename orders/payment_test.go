package orders

import (
	"errors"
	"testing"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

func paidOrder(total float64) *models.Order {
	order := newOrder(models.StatusDelivered)
	order.Total = total
	return order
}

func TestRecordPaymentAccumulates(t *testing.T) {
	order := paidOrder(100.00)

	if err := RecordPayment(order, models.PaymentCash, 60, ""); err != nil {
		t.Fatal(err)
	}
	if order.Paid_amount != 60 {
		t.Errorf("paid_amount = %v, want 60", order.Paid_amount)
	}
	if order.Status == models.StatusPaid {
		t.Error("order promoted to PAID before being covered")
	}

	if err := RecordPayment(order, models.PaymentUPI, 40, "upi-txn-1"); err != nil {
		t.Fatal(err)
	}
	if order.Paid_amount != 100 {
		t.Errorf("paid_amount = %v, want 100", order.Paid_amount)
	}
	if order.Status != models.StatusPaid {
		t.Errorf("status = %s, want PAID", order.Status)
	}

	if len(order.Payments) != 2 {
		t.Fatalf("payments = %d records, want 2", len(order.Payments))
	}
	if order.Payments[0].Reference != nil {
		t.Error("empty reference should not be stored")
	}
	if order.Payments[1].Reference == nil || *order.Payments[1].Reference != "upi-txn-1" {
		t.Error("reference not stored")
	}
}

func TestRecordPaymentPromotionBypassesLifecycle(t *testing.T) {
	// Promotion is a direct status write: even an order still sitting in
	// NEW flips to PAID once covered.
	order := newOrder(models.StatusNew)
	order.Total = 50

	if err := RecordPayment(order, models.PaymentCard, 50, ""); err != nil {
		t.Fatal(err)
	}
	if order.Status != models.StatusPaid {
		t.Errorf("status = %s, want PAID", order.Status)
	}
}

func TestRecordPaymentOverpaymentAccepted(t *testing.T) {
	order := paidOrder(30)

	if err := RecordPayment(order, models.PaymentCash, 100, ""); err != nil {
		t.Fatalf("overpayment should be accepted, got %v", err)
	}
	if order.Paid_amount != 100 {
		t.Errorf("paid_amount = %v, want 100", order.Paid_amount)
	}
	if order.Status != models.StatusPaid {
		t.Errorf("status = %s, want PAID", order.Status)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	order := paidOrder(100)

	if err := RecordPayment(order, models.PaymentCash, 0, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount: expected ErrInvalidAmount, got %v", err)
	}
	if err := RecordPayment(order, models.PaymentCash, -5, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount: expected ErrInvalidAmount, got %v", err)
	}
	if err := RecordPayment(order, models.PaymentMethod("CHEQUE"), 10, ""); !errors.Is(err, ErrInvalidMethod) {
		t.Errorf("unknown method: expected ErrInvalidMethod, got %v", err)
	}

	if order.Paid_amount != 0 || len(order.Payments) != 0 {
		t.Error("rejected payments must not mutate the order")
	}
}

func TestPaidAmountMonotonic(t *testing.T) {
	order := paidOrder(500)

	previous := 0.0
	for _, amount := range []float64{10, 0.01, 99.99, 200} {
		if err := RecordPayment(order, models.PaymentCash, amount, ""); err != nil {
			t.Fatal(err)
		}
		if order.Paid_amount < previous {
			t.Fatalf("paid_amount decreased: %v < %v", order.Paid_amount, previous)
		}
		previous = order.Paid_amount
	}
}
