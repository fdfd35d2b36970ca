package queue

import (
	"errors"
	"testing"
	"time"
)

func TestPublishWithoutSubscribersFails(t *testing.T) {
	q := NewInMemoryQueue()

	err := q.Publish(TopicEntityEvents, EntityEvent{Entity: "customer", Action: "created", ID: 1})
	if err == nil {
		t.Fatal("expected error when no subscribers are registered")
	}
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	q := NewInMemoryQueue()
	got := make(chan EntityEvent, 1)

	err := q.Subscribe(TopicEntityEvents, func(payload any) error {
		got <- payload.(EntityEvent)
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	want := EntityEvent{Entity: "product", Action: "updated", ID: 7}
	if err := q.Publish(TopicEntityEvents, want); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case ev := <-got:
		if ev != want {
			t.Errorf("expected %+v, got %+v", want, ev)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestPublishRetriesFailedHandler(t *testing.T) {
	q := NewInMemoryQueue()
	attempts := make(chan int, 8)
	count := 0

	q.Subscribe(TopicEntityEvents, func(payload any) error {
		count++
		attempts <- count
		if count == 1 {
			return errors.New("transient failure")
		}
		return nil
	})

	if err := q.Publish(TopicEntityEvents, EntityEvent{Entity: "customer", Action: "deleted", ID: 2}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case n := <-attempts:
			if n == 2 {
				return // retried and succeeded
			}
		case <-deadline:
			t.Fatal("handler was not retried after failure")
		}
	}
}
