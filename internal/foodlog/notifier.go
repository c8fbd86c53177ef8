package foodlog

import "sync"

// Notifier is a process-wide publish/subscribe channel for "log changed"
// events. There are no topics and no payload: subscribers re-read whatever
// they need from the log service.
//
// Handlers run synchronously, in registration order. Subscriptions are keyed
// by a caller-chosen name so re-subscribing is idempotent: registering the
// same name again replaces the handler in place without changing its
// position or double-invoking it.
type Notifier struct {
	mu   sync.Mutex
	subs []subscription
}

type subscription struct {
	name string
	fn   func()
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Subscribe(name string, fn func()) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.subs {
		if n.subs[i].name == name {
			n.subs[i].fn = fn
			return
		}
	}
	n.subs = append(n.subs, subscription{name: name, fn: fn})
}

func (n *Notifier) Unsubscribe(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.subs {
		if n.subs[i].name == name {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// Publish invokes every registered handler once, in registration order.
// The subscriber list is snapshotted first so handlers may subscribe or
// unsubscribe without deadlocking.
func (n *Notifier) Publish() {
	n.mu.Lock()
	snapshot := make([]func(), 0, len(n.subs))
	for _, s := range n.subs {
		snapshot = append(snapshot, s.fn)
	}
	n.mu.Unlock()

	for _, fn := range snapshot {
		fn()
	}
}
