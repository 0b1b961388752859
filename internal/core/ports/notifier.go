package ports

// EventType discriminates the broadcast payloads sent to staff displays.
type EventType string

const (
	// EventNewOrder announces an order that just got its first lines.
	EventNewOrder EventType = "new_order"

	// EventUpdateOrder announces a merge or a delivery update; carries
	// the full recomputed snapshot.
	EventUpdateOrder EventType = "update_order"

	// EventUpdateStatus announces an explicit status change; carries only
	// the order id and the new status.
	EventUpdateStatus EventType = "update_status"

	// EventOrderPaid announces a settled order; displays use the id to
	// drop the order from their active view.
	EventOrderPaid EventType = "order_paid"
)

// Event is one broadcast message. Exactly the fields relevant for the
// event type are set; the rest stay empty and are omitted on the wire.
type Event struct {
	Type    EventType  `json:"type"`
	Order   *OrderView `json:"order,omitempty"`
	ID      string     `json:"id,omitempty"`
	Status  string     `json:"status,omitempty"`
	OrderID string     `json:"order_id,omitempty"`
}

// NewOrderCreatedEvent builds a new_order event.
func NewOrderCreatedEvent(view OrderView) Event {
	return Event{Type: EventNewOrder, Order: &view}
}

// NewOrderUpdatedEvent builds an update_order event.
func NewOrderUpdatedEvent(view OrderView) Event {
	return Event{Type: EventUpdateOrder, Order: &view}
}

// NewStatusChangedEvent builds an update_status event.
func NewStatusChangedEvent(orderID string, status string) Event {
	return Event{Type: EventUpdateStatus, ID: orderID, Status: status}
}

// NewOrderPaidEvent builds an order_paid event.
func NewOrderPaidEvent(orderID string) Event {
	return Event{Type: EventOrderPaid, OrderID: orderID}
}

// OrderNotifier fans an event out to every connected staff display.
// Delivery is best effort and decoupled from write success: a display
// that cannot be reached is dropped, never surfaced to the triggering
// request.
type OrderNotifier interface {
	Publish(event Event)
}
