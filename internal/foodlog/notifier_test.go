package foodlog

import "testing"

func TestNotifier_PublishInRegistrationOrder(t *testing.T) {
	n := NewNotifier()
	var got []string
	n.Subscribe("a", func() { got = append(got, "a") })
	n.Subscribe("b", func() { got = append(got, "b") })
	n.Subscribe("c", func() { got = append(got, "c") })

	n.Publish()

	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("expected [a b c], got %v", got)
	}
}

func TestNotifier_ResubscribeSameNameReplacesInPlace(t *testing.T) {
	n := NewNotifier()
	var got []string
	n.Subscribe("x", func() { got = append(got, "old") })
	n.Subscribe("y", func() { got = append(got, "y") })
	n.Subscribe("x", func() { got = append(got, "new") })

	n.Publish()

	// Not double-invoked, and x keeps its original position.
	if len(got) != 2 || got[0] != "new" || got[1] != "y" {
		t.Fatalf("expected [new y], got %v", got)
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := NewNotifier()
	calls := 0
	n.Subscribe("x", func() { calls++ })
	n.Unsubscribe("x")
	n.Unsubscribe("never-registered")

	n.Publish()

	if calls != 0 {
		t.Fatalf("expected no calls after unsubscribe, got %d", calls)
	}
}

func TestNotifier_HandlerMaySubscribeDuringPublish(t *testing.T) {
	n := NewNotifier()
	n.Subscribe("a", func() {
		n.Subscribe("late", func() {})
	})
	// Must not deadlock.
	n.Publish()
}
