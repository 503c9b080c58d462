package contracts

// Notifier pushes an event to a doctor's live connection, if any. Delivery is
// best effort: the return value reports whether a connection was found, and a
// booking never fails because a doctor is offline.
type Notifier interface {
	Notify(doctorID string, payload interface{}) bool
}
