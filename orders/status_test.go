package orders

import (
	"errors"
	"testing"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

func newOrder(status models.Status) *models.Order {
	return &models.Order{
		Order_id: "order-1",
		Cafe_id:  "cafe-1",
		Table_id: "table-1",
		Status:   status,
	}
}

func TestCanTransitionTable(t *testing.T) {
	all := []models.Status{
		models.StatusNew, models.StatusAccepted, models.StatusInProgress,
		models.StatusCompleted, models.StatusDelivered, models.StatusPaid, models.StatusCancelled,
	}

	allowed := map[models.Status][]models.Status{
		models.StatusNew:        {models.StatusAccepted, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled},
		models.StatusAccepted:   {models.StatusInProgress, models.StatusCompleted, models.StatusCancelled},
		models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
		models.StatusCompleted:  {models.StatusDelivered, models.StatusCancelled},
		models.StatusDelivered:  {models.StatusPaid},
		models.StatusPaid:       {},
		models.StatusCancelled:  {},
	}

	for from, nexts := range allowed {
		permitted := make(map[models.Status]bool)
		for _, next := range nexts {
			permitted[next] = true
		}
		for _, to := range all {
			if got := CanTransition(from, to); got != permitted[to] {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, permitted[to])
			}
		}
	}
}

func TestTransitionRejectedForUnprivilegedRole(t *testing.T) {
	order := newOrder(models.StatusNew)

	err := Transition(order, models.StatusDelivered, models.RoleKitchen, "staff-1")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if order.Status != models.StatusNew {
		t.Errorf("status changed on rejected transition: %s", order.Status)
	}
}

func TestTransitionPrivilegedOverride(t *testing.T) {
	for _, role := range []string{models.RoleSuperAdmin, models.RoleAdmin} {
		order := newOrder(models.StatusNew)
		if err := Transition(order, models.StatusDelivered, role, "boss-1"); err != nil {
			t.Fatalf("%s override failed: %v", role, err)
		}
		if order.Status != models.StatusDelivered {
			t.Errorf("%s override: status = %s, want DELIVERED", role, order.Status)
		}
		if order.Delivered_by == nil || *order.Delivered_by != "boss-1" {
			t.Errorf("%s override: delivered_by not recorded", role)
		}
	}
}

func TestTransitionTerminalStates(t *testing.T) {
	for _, terminal := range []models.Status{models.StatusPaid, models.StatusCancelled} {
		order := newOrder(terminal)
		err := Transition(order, models.StatusAccepted, models.RoleWaiter, "staff-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("transition out of %s should fail, got %v", terminal, err)
		}
		if order.Status != terminal {
			t.Errorf("terminal status %s mutated to %s", terminal, order.Status)
		}
	}
}

func TestTransitionRecordsActors(t *testing.T) {
	order := newOrder(models.StatusNew)

	if err := Transition(order, models.StatusAccepted, models.RoleKitchen, "cook-1"); err != nil {
		t.Fatal(err)
	}
	if order.Accepted_by == nil || *order.Accepted_by != "cook-1" {
		t.Error("accepted_by not recorded")
	}

	if err := Transition(order, models.StatusCompleted, models.RoleKitchen, "cook-2"); err != nil {
		t.Fatal(err)
	}
	if order.Completed_by == nil || *order.Completed_by != "cook-2" {
		t.Error("completed_by not recorded")
	}

	if err := Transition(order, models.StatusDelivered, models.RoleWaiter, "waiter-1"); err != nil {
		t.Fatal(err)
	}
	if order.Delivered_by == nil || *order.Delivered_by != "waiter-1" {
		t.Error("delivered_by not recorded")
	}

	if err := Transition(order, models.StatusPaid, models.RoleWaiter, "waiter-1"); err != nil {
		t.Fatal(err)
	}
	if order.Status != models.StatusPaid {
		t.Errorf("status = %s, want PAID", order.Status)
	}
}

func TestTransitionNoActorForCancelled(t *testing.T) {
	order := newOrder(models.StatusNew)
	if err := Transition(order, models.StatusCancelled, models.RoleManager, "mgr-1"); err != nil {
		t.Fatal(err)
	}
	if order.Accepted_by != nil || order.Completed_by != nil || order.Delivered_by != nil {
		t.Error("cancellation should not record an actor")
	}
}

func TestCancelByTable(t *testing.T) {
	tests := []struct {
		status  models.Status
		wantErr bool
	}{
		{models.StatusNew, false},
		{models.StatusAccepted, false},
		{models.StatusInProgress, true},
		{models.StatusCompleted, true},
		{models.StatusDelivered, true},
		{models.StatusPaid, true},
		{models.StatusCancelled, true},
	}

	for _, tt := range tests {
		order := newOrder(tt.status)
		err := CancelByTable(order)
		if tt.wantErr {
			if !errors.Is(err, ErrCannotCancel) {
				t.Errorf("CancelByTable from %s: expected ErrCannotCancel, got %v", tt.status, err)
			}
			if order.Status != tt.status {
				t.Errorf("CancelByTable from %s mutated status to %s", tt.status, order.Status)
			}
			continue
		}
		if err != nil {
			t.Errorf("CancelByTable from %s: unexpected error %v", tt.status, err)
		}
		if order.Status != models.StatusCancelled {
			t.Errorf("CancelByTable from %s: status = %s, want CANCELLED", tt.status, order.Status)
		}
	}
}

func TestValidStatus(t *testing.T) {
	if !ValidStatus(models.StatusInProgress) {
		t.Error("IN_PROGRESS should be valid")
	}
	if ValidStatus(models.Status("SHIPPED")) {
		t.Error("SHIPPED should not be valid")
	}
}
