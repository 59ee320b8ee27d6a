package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// mockSubscriber is a mock subscriber for testing.
type mockSubscriber struct {
	events []Event
	mu     sync.Mutex
	closed bool
}

func newMockSubscriber() *mockSubscriber {
	return &mockSubscriber{
		events: make([]Event, 0),
	}
}

func (m *mockSubscriber) Send(event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *mockSubscriber) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockSubscriber) EventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func (m *mockSubscriber) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// TestBroker_NewBroker tests broker creation.
func TestBroker_NewBroker(t *testing.T) {
	logger := zerolog.Nop()
	b := NewBroker(&logger)

	if b == nil {
		t.Fatal("NewBroker returned nil")
	}

	if b.subscribers == nil {
		t.Error("subscribers slice not initialized")
	}

	if b.events == nil {
		t.Error("events channel not initialized")
	}
}

// TestBroker_BasicOperation tests subscribe, publish, and fan-out.
func TestBroker_BasicOperation(t *testing.T) {
	logger := zerolog.Nop()
	b := NewBroker(&logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go b.Run(ctx)
	time.Sleep(10 * time.Millisecond)

	sub := newMockSubscriber()
	b.Subscribe(sub)
	time.Sleep(10 * time.Millisecond)

	if count := b.SubscriberCount(); count != 1 {
		t.Fatalf("expected 1 subscriber, got %d", count)
	}

	b.Publish(LeadUpdated, map[string]any{"lead_id": 7})
	time.Sleep(50 * time.Millisecond)

	if count := sub.EventCount(); count != 1 {
		t.Errorf("expected 1 event, got %d", count)
	}
}

// TestBroker_SubscribeBeforeRun ensures registration before the event
// loop starts does not block.
func TestBroker_SubscribeBeforeRun(t *testing.T) {
	logger := zerolog.Nop()
	b := NewBroker(&logger)

	done := make(chan struct{})
	go func() {
		b.Subscribe(newMockSubscriber())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Subscribe blocked before Run started")
	}
}

// TestBroker_Unsubscribe tests subscriber removal.
func TestBroker_Unsubscribe(t *testing.T) {
	logger := zerolog.Nop()
	b := NewBroker(&logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go b.Run(ctx)
	time.Sleep(10 * time.Millisecond)

	sub := newMockSubscriber()
	b.Subscribe(sub)
	time.Sleep(10 * time.Millisecond)

	b.Unsubscribe(sub)
	time.Sleep(10 * time.Millisecond)

	if count := b.SubscriberCount(); count != 0 {
		t.Errorf("expected 0 subscribers, got %d", count)
	}

	if !sub.Closed() {
		t.Error("expected subscriber to be closed on unsubscribe")
	}
}

// TestBroker_FanOut tests delivery to multiple subscribers.
func TestBroker_FanOut(t *testing.T) {
	logger := zerolog.Nop()
	b := NewBroker(&logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go b.Run(ctx)
	time.Sleep(10 * time.Millisecond)

	subs := []*mockSubscriber{newMockSubscriber(), newMockSubscriber(), newMockSubscriber()}
	for _, sub := range subs {
		b.Subscribe(sub)
	}
	time.Sleep(10 * time.Millisecond)

	b.Publish(TableReplaced, map[string]any{"leads": 12})
	time.Sleep(50 * time.Millisecond)

	for i, sub := range subs {
		if count := sub.EventCount(); count != 1 {
			t.Errorf("subscriber %d: expected 1 event, got %d", i, count)
		}
	}
}

// TestBroker_Shutdown tests graceful shutdown closes subscribers.
func TestBroker_Shutdown(t *testing.T) {
	logger := zerolog.Nop()
	b := NewBroker(&logger)

	ctx, cancel := context.WithCancel(context.Background())

	go b.Run(ctx)
	time.Sleep(10 * time.Millisecond)

	sub := newMockSubscriber()
	b.Subscribe(sub)
	time.Sleep(10 * time.Millisecond)

	cancel()
	time.Sleep(50 * time.Millisecond)

	if !sub.Closed() {
		t.Error("expected subscriber to be closed on shutdown")
	}
}
