package orders

import (
	"errors"
	"time"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrInvalidMethod = errors.New("invalid payment method")
)

func validMethod(m models.PaymentMethod) bool {
	switch m {
	case models.PaymentCash, models.PaymentCard, models.PaymentUPI:
		return true
	}
	return false
}

// RecordPayment appends an immutable payment record and bumps the paid
// amount. Once the paid amount covers the total the order is marked PAID
// directly; this write deliberately skips the transition table.
// Overpayment is accepted, not rejected.
func RecordPayment(o *models.Order, method models.PaymentMethod, amount float64, reference string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !validMethod(method) {
		return ErrInvalidMethod
	}

	payment := models.Payment{
		Method:      method,
		Amount:      amount,
		Recorded_at: time.Now(),
	}
	if reference != "" {
		payment.Reference = &reference
	}

	o.Payments = append(o.Payments, payment)
	o.Paid_amount += amount

	if o.Paid_amount >= o.Total {
		o.Status = models.StatusPaid
	}
	return nil
}
