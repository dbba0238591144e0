package controller

import (
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/events"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

// Notifier receives the fire-and-forget order events. Defaults to a no-op
// so handlers never care whether a hub is attached; main swaps in the
// websocket hub.
var Notifier events.Publisher = events.NopPublisher{}

func SetNotifier(p events.Publisher) {
	if p != nil {
		Notifier = p
	}
}

func orderEventPayload(order *models.Order) map[string]interface{} {
	return map[string]interface{}{
		"order_id":    order.Order_id,
		"table_id":    order.Table_id,
		"status":      order.Status,
		"total":       order.Total,
		"paid_amount": order.Paid_amount,
	}
}

// notifyOrderCreated reaches the kitchen and the admins of the cafe.
func notifyOrderCreated(order *models.Order) {
	payload := orderEventPayload(order)
	Notifier.Publish(events.CafeGroup(order.Cafe_id, events.AudienceKitchen), "order_created", payload)
	Notifier.Publish(events.CafeGroup(order.Cafe_id, events.AudienceAdmin), "order_created", payload)
}

// notifyOrderUpdated fans a transition out to the admins plus whichever
// station acts next on the order.
func notifyOrderUpdated(order *models.Order) {
	payload := orderEventPayload(order)
	Notifier.Publish(events.CafeGroup(order.Cafe_id, events.AudienceAdmin), "order_updated", payload)

	switch order.Status {
	case models.StatusAccepted, models.StatusInProgress, models.StatusCancelled:
		Notifier.Publish(events.CafeGroup(order.Cafe_id, events.AudienceKitchen), "order_updated", payload)
	case models.StatusCompleted, models.StatusDelivered:
		Notifier.Publish(events.CafeGroup(order.Cafe_id, events.AudienceWaiter), "order_updated", payload)
	}
}

func notifyPaymentRecorded(order *models.Order) {
	Notifier.Publish(events.CafeGroup(order.Cafe_id, events.AudienceAdmin), "payment_recorded", orderEventPayload(order))
}
