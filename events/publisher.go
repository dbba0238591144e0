package events

// Publisher is the fan-out port used by the order flow. Delivery is
// best-effort and at-most-once: a failed or missed broadcast is dropped,
// never retried, and never rolls back the write that triggered it.
type Publisher interface {
	Publish(groupKey, event string, payload interface{})
}

// NopPublisher drops everything. Used in tests and as the default wiring.
type NopPublisher struct{}

func (NopPublisher) Publish(groupKey, event string, payload interface{}) {}

// Subscriber group audiences within a cafe.
const (
	AudienceAdmin   = "admin"
	AudienceKitchen = "kitchen"
	AudienceWaiter  = "waiter"
)

// CafeGroup builds the group key for one audience of one cafe,
// e.g. "cafe:66f1a2:kitchen".
func CafeGroup(cafeID, audience string) string {
	return "cafe:" + cafeID + ":" + audience
}
