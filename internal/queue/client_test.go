package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/geoda-coffee/storefront/internal/config"
)

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueOrderPlacedEmail(context.Background(), OrderPlacedEmailPayload{OrderID: 1, OrderNo: "GC1"}); err != nil {
		t.Fatalf("disabled enqueue should be noop, got %v", err)
	}
	var nilClient *Client
	if err := nilClient.EnqueueContactReceivedEmail(context.Background(), ContactReceivedEmailPayload{ContactID: 1}); err != nil {
		t.Fatalf("nil client enqueue should be noop, got %v", err)
	}
}

func TestNewOrderPlacedEmailTask(t *testing.T) {
	task, err := NewOrderPlacedEmailTask(OrderPlacedEmailPayload{OrderID: 9, OrderNo: "GC9", Locale: "id-ID"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if task.Type() != TaskOrderPlacedEmail {
		t.Fatalf("unexpected task type: %s", task.Type())
	}
	var payload OrderPlacedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		t.Fatalf("decode payload failed: %v", err)
	}
	if payload.OrderID != 9 || payload.OrderNo != "GC9" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" {
		t.Fatalf("unexpected addr: %s", opt.Addr)
	}
	if cfg.Concurrency != 10 || cfg.Queues[CriticalQueue] == 0 {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
}
