package feast

import (
	"context"
	"fmt"

	"github.com/rushteam/returnkit/core"
)

// FeatureMapping 定义 Feast 实体/特征与本库记录的对应关系。
type FeatureMapping struct {
	// OrderEntityKey 订单实体 key，默认 "order_id"
	OrderEntityKey string

	// ReturnEntityKey 退货实体 key，默认 "return_id"
	ReturnEntityKey string

	// OrderFeatures 订单特征名列表，例如 ["order_stats:price"]
	OrderFeatures []string

	// ReturnFeatures 退货特征名列表，例如 ["return_stats:condition"]
	ReturnFeatures []string
}

// Adapter 将 Feast Client 适配为 core.FeatureService 接口。
type Adapter struct {
	client  Client
	mapping *FeatureMapping
}

// NewAdapter 创建一个新的 FeatureService 适配器。
// client 可为 NewGrpcClient 返回的客户端或任何 Client 实现。
func NewAdapter(client Client, mapping *FeatureMapping) *Adapter {
	if mapping.OrderEntityKey == "" {
		mapping.OrderEntityKey = "order_id"
	}
	if mapping.ReturnEntityKey == "" {
		mapping.ReturnEntityKey = "return_id"
	}
	return &Adapter{client: client, mapping: mapping}
}

var _ core.FeatureService = (*Adapter)(nil)

// Name 返回特征服务名称
func (a *Adapter) Name() string { return "feast" }

// GetOrderFeatures 获取单个订单的特征
func (a *Adapter) GetOrderFeatures(ctx context.Context, orderID string) (map[string]float64, error) {
	return a.getOne(ctx, a.mapping.OrderEntityKey, orderID, a.mapping.OrderFeatures)
}

// BatchGetOrderFeatures 批量获取订单特征
func (a *Adapter) BatchGetOrderFeatures(ctx context.Context, orderIDs []string) (map[string]map[string]float64, error) {
	return a.getBatch(ctx, a.mapping.OrderEntityKey, orderIDs, a.mapping.OrderFeatures)
}

// GetReturnFeatures 获取单条退货的特征
func (a *Adapter) GetReturnFeatures(ctx context.Context, returnID string) (map[string]float64, error) {
	return a.getOne(ctx, a.mapping.ReturnEntityKey, returnID, a.mapping.ReturnFeatures)
}

// BatchGetReturnFeatures 批量获取退货特征
func (a *Adapter) BatchGetReturnFeatures(ctx context.Context, returnIDs []string) (map[string]map[string]float64, error) {
	return a.getBatch(ctx, a.mapping.ReturnEntityKey, returnIDs, a.mapping.ReturnFeatures)
}

// Close 关闭底层客户端
func (a *Adapter) Close() error {
	return a.client.Close()
}

func (a *Adapter) getOne(ctx context.Context, entityKey, id string, features []string) (map[string]float64, error) {
	if len(features) == 0 {
		return make(map[string]float64), nil
	}
	resp, err := a.client.GetOnlineFeatures(ctx, &GetOnlineFeaturesRequest{
		Features:   features,
		EntityRows: []map[string]interface{}{{entityKey: id}},
	})
	if err != nil {
		return nil, fmt.Errorf("feast get features failed: %w", err)
	}
	if len(resp.FeatureVectors) == 0 {
		return make(map[string]float64), nil
	}
	return toFloat64Map(resp.FeatureVectors[0].Values), nil
}

func (a *Adapter) getBatch(ctx context.Context, entityKey string, ids []string, features []string) (map[string]map[string]float64, error) {
	result := make(map[string]map[string]float64, len(ids))
	if len(features) == 0 {
		for _, id := range ids {
			result[id] = make(map[string]float64)
		}
		return result, nil
	}

	entityRows := make([]map[string]interface{}, len(ids))
	for i, id := range ids {
		entityRows[i] = map[string]interface{}{entityKey: id}
	}
	resp, err := a.client.GetOnlineFeatures(ctx, &GetOnlineFeaturesRequest{
		Features:   features,
		EntityRows: entityRows,
	})
	if err != nil {
		return nil, fmt.Errorf("feast batch get features failed: %w", err)
	}

	for i, fv := range resp.FeatureVectors {
		if i >= len(ids) {
			break
		}
		result[ids[i]] = toFloat64Map(fv.Values)
	}
	return result, nil
}

func toFloat64Map(values map[string]interface{}) map[string]float64 {
	features := make(map[string]float64, len(values))
	for k, v := range values {
		if fv, ok := v.(float64); ok {
			features[k] = fv
		}
	}
	return features
}
