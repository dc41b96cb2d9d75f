package feast

import (
	"context"
	"testing"
)

// fakeClient 记录请求并按实体行顺序返回预置特征。
type fakeClient struct {
	lastReq *GetOnlineFeaturesRequest
	vectors []FeatureVector
	err     error
}

func (c *fakeClient) GetOnlineFeatures(_ context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error) {
	c.lastReq = req
	if c.err != nil {
		return nil, c.err
	}
	return &GetOnlineFeaturesResponse{FeatureVectors: c.vectors}, nil
}

func (c *fakeClient) Close() error { return nil }

func TestAdapter_GetOrderFeatures(t *testing.T) {
	client := &fakeClient{
		vectors: []FeatureVector{
			{Values: map[string]interface{}{"price": 59.0, "note": "skip-me"}},
		},
	}
	a := NewAdapter(client, &FeatureMapping{
		OrderFeatures: []string{"order_stats:price"},
	})

	got, err := a.GetOrderFeatures(context.Background(), "o-1001")
	if err != nil {
		t.Fatalf("GetOrderFeatures() error = %v", err)
	}
	// 非数值特征被过滤
	if len(got) != 1 || got["price"] != 59 {
		t.Errorf("features = %v", got)
	}

	if client.lastReq.EntityRows[0]["order_id"] != "o-1001" {
		t.Errorf("entity row = %v, want default order_id key", client.lastReq.EntityRows[0])
	}
	if client.lastReq.Features[0] != "order_stats:price" {
		t.Errorf("features requested = %v", client.lastReq.Features)
	}
}

func TestAdapter_BatchGetReturnFeatures(t *testing.T) {
	client := &fakeClient{
		vectors: []FeatureVector{
			{Values: map[string]interface{}{"condition": 2.0}},
			{Values: map[string]interface{}{"condition": 5.0}},
		},
	}
	a := NewAdapter(client, &FeatureMapping{
		ReturnEntityKey: "rma_id",
		ReturnFeatures:  []string{"return_stats:condition"},
	})

	got, err := a.BatchGetReturnFeatures(context.Background(), []string{"r1", "r2"})
	if err != nil {
		t.Fatalf("BatchGetReturnFeatures() error = %v", err)
	}
	if got["r1"]["condition"] != 2 || got["r2"]["condition"] != 5 {
		t.Errorf("batch = %v", got)
	}
	if client.lastReq.EntityRows[1]["rma_id"] != "r2" {
		t.Errorf("entity rows = %v", client.lastReq.EntityRows)
	}
}

func TestAdapter_NoFeaturesConfigured(t *testing.T) {
	client := &fakeClient{}
	a := NewAdapter(client, &FeatureMapping{})

	got, err := a.GetOrderFeatures(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("GetOrderFeatures() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("features = %v, want empty", got)
	}
	if client.lastReq != nil {
		t.Error("client called despite empty feature list")
	}
}
