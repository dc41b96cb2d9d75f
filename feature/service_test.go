package feature

import (
	"context"
	"reflect"
	"testing"

	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/store"
)

func TestStoreService_SaveGet(t *testing.T) {
	svc := NewStoreService(store.NewMemoryStore(), "")
	defer svc.Close()
	ctx := context.Background()

	want := map[string]float64{"price": 59, "discount": 0.2}
	if err := svc.SaveOrderFeatures(ctx, "order-1", want); err != nil {
		t.Fatalf("SaveOrderFeatures() error = %v", err)
	}

	got, err := svc.GetOrderFeatures(ctx, "order-1")
	if err != nil {
		t.Fatalf("GetOrderFeatures() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetOrderFeatures() = %v, want %v", got, want)
	}

	if _, err := svc.GetOrderFeatures(ctx, "absent"); !core.IsNotFound(err) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestStoreService_OrderReturnKeysIsolated(t *testing.T) {
	svc := NewStoreService(store.NewMemoryStore(), "f")
	defer svc.Close()
	ctx := context.Background()

	_ = svc.SaveOrderFeatures(ctx, "x", map[string]float64{"a": 1})
	if _, err := svc.GetReturnFeatures(ctx, "x"); !core.IsNotFound(err) {
		t.Errorf("return key leaked into order namespace: err = %v", err)
	}
}

func TestStoreService_BatchGetSkipsMissing(t *testing.T) {
	svc := NewStoreService(store.NewMemoryStore(), "")
	defer svc.Close()
	ctx := context.Background()

	_ = svc.SaveReturnFeatures(ctx, "r1", map[string]float64{"condition": 2})
	_ = svc.SaveReturnFeatures(ctx, "r3", map[string]float64{"condition": 5})

	got, err := svc.BatchGetReturnFeatures(ctx, []string{"r1", "r2", "r3"})
	if err != nil {
		t.Fatalf("BatchGetReturnFeatures() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (missing id omitted)", len(got))
	}
	if got["r1"]["condition"] != 2 || got["r3"]["condition"] != 5 {
		t.Errorf("batch = %v", got)
	}
}

func TestEnrichNode_FillsOnlyMissingKeys(t *testing.T) {
	svc := NewStoreService(store.NewMemoryStore(), "")
	defer svc.Close()
	ctx := context.Background()

	_ = svc.SaveOrderFeatures(ctx, "order-1", map[string]float64{"price": 100, "discount": 0.3})

	order := core.NewRecord("order-1")
	order.Features["price"] = 59 // 调用方自带的值优先
	dctx := core.NewDecisionContext([]*core.Record{order})

	node := &EnrichNode{Service: svc, EnrichOrders: true}
	if err := node.Process(ctx, dctx, &core.BatchResult{}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if order.Features["price"] != 59 {
		t.Errorf("price = %v, want caller value 59", order.Features["price"])
	}
	if order.Features["discount"] != 0.3 {
		t.Errorf("discount = %v, want 0.3", order.Features["discount"])
	}
}

func TestEnrichNode_UnknownRecordSkipped(t *testing.T) {
	svc := NewStoreService(store.NewMemoryStore(), "")
	defer svc.Close()

	order := core.NewRecord("unknown")
	order.Features["price"] = 10
	dctx := core.NewDecisionContext([]*core.Record{order})

	node := &EnrichNode{Service: svc, EnrichOrders: true}
	if err := node.Process(context.Background(), dctx, &core.BatchResult{}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(order.Features) != 1 {
		t.Errorf("features mutated: %v", order.Features)
	}
}
