package orders

import (
	"errors"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrCannotCancel      = errors.New("cannot cancel at this stage")
)

// allowedNext is the lifecycle table. PAID and CANCELLED have no entries:
// once an order reaches either, nothing moves it again.
var allowedNext = map[models.Status][]models.Status{
	models.StatusNew:        {models.StatusAccepted, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled},
	models.StatusAccepted:   {models.StatusInProgress, models.StatusCompleted, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:  {models.StatusDelivered, models.StatusCancelled},
	models.StatusDelivered:  {models.StatusPaid},
}

// ValidStatus reports whether s is one of the known lifecycle statuses.
func ValidStatus(s models.Status) bool {
	switch s {
	case models.StatusNew, models.StatusAccepted, models.StatusInProgress,
		models.StatusCompleted, models.StatusDelivered, models.StatusPaid, models.StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the lifecycle table permits from -> to.
func CanTransition(from, to models.Status) bool {
	for _, next := range allowedNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// privileged roles may force any transition, bypassing the table.
func privileged(role string) bool {
	return role == models.RoleAdmin || role == models.RoleSuperAdmin
}

// Transition applies a status change requested by a staff actor. A target
// outside the allowed-next set fails with ErrInvalidTransition unless the
// actor holds an administrative role. On success the actor is recorded on
// the order for ACCEPTED, COMPLETED and DELIVERED.
func Transition(o *models.Order, target models.Status, role, actorID string) error {
	if !CanTransition(o.Status, target) && !privileged(role) {
		return ErrInvalidTransition
	}

	o.Status = target
	switch target {
	case models.StatusAccepted:
		o.Accepted_by = &actorID
	case models.StatusCompleted:
		o.Completed_by = &actorID
	case models.StatusDelivered:
		o.Delivered_by = &actorID
	}
	return nil
}

// CancelByTable is the public cancellation path available to the table
// holder. It is only open while the kitchen has not started: NEW or
// ACCEPTED. It never uses the administrative override.
func CancelByTable(o *models.Order) error {
	if o.Status != models.StatusNew && o.Status != models.StatusAccepted {
		return ErrCannotCancel
	}
	o.Status = models.StatusCancelled
	return nil
}
