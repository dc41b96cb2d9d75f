package feature

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rushteam/returnkit/core"
)

// StoreService 是 Store 后端的特征服务实现（实现 core.FeatureService）。
// 特征以 JSON 编码的 map[string]float64 存在
// "<prefix>:order:<id>" / "<prefix>:return:<id>" 两类 key 下。
//
// 特征编码由外部协作方离线完成后写入存储；
// 本服务只负责在线读取，key 不存在返回 NOT_FOUND。
type StoreService struct {
	store  core.Store
	prefix string
}

// NewStoreService 创建一个 Store 后端的特征服务。
// prefix 为空时取 "features"。
func NewStoreService(store core.Store, prefix string) *StoreService {
	if prefix == "" {
		prefix = "features"
	}
	return &StoreService{store: store, prefix: prefix}
}

var _ core.FeatureService = (*StoreService)(nil)

func (s *StoreService) Name() string { return "store:" + s.store.Name() }

func (s *StoreService) GetOrderFeatures(ctx context.Context, orderID string) (map[string]float64, error) {
	return s.get(ctx, s.orderKey(orderID))
}

func (s *StoreService) BatchGetOrderFeatures(ctx context.Context, orderIDs []string) (map[string]map[string]float64, error) {
	return s.batchGet(ctx, orderIDs, s.orderKey)
}

func (s *StoreService) GetReturnFeatures(ctx context.Context, returnID string) (map[string]float64, error) {
	return s.get(ctx, s.returnKey(returnID))
}

func (s *StoreService) BatchGetReturnFeatures(ctx context.Context, returnIDs []string) (map[string]map[string]float64, error) {
	return s.batchGet(ctx, returnIDs, s.returnKey)
}

func (s *StoreService) Close() error {
	return s.store.Close()
}

func (s *StoreService) orderKey(id string) string  { return s.prefix + ":order:" + id }
func (s *StoreService) returnKey(id string) string { return s.prefix + ":return:" + id }

func (s *StoreService) get(ctx context.Context, key string) (map[string]float64, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeFeatures(key, data)
}

func (s *StoreService) batchGet(
	ctx context.Context,
	ids []string,
	keyFn func(string) string,
) (map[string]map[string]float64, error) {
	keys := make([]string, len(ids))
	keyToID := make(map[string]string, len(ids))
	for i, id := range ids {
		keys[i] = keyFn(id)
		keyToID[keys[i]] = id
	}

	values, err := s.store.BatchGet(ctx, keys)
	if err != nil {
		return nil, err
	}

	result := make(map[string]map[string]float64, len(values))
	for key, data := range values {
		features, err := decodeFeatures(key, data)
		if err != nil {
			return nil, err
		}
		result[keyToID[key]] = features
	}
	return result, nil
}

func decodeFeatures(key string, data []byte) (map[string]float64, error) {
	var features map[string]float64
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, fmt.Errorf("decode features at %q: %w", key, err)
	}
	return features, nil
}

// SaveOrderFeatures / SaveReturnFeatures 供离线任务灌入特征（JSON 编码）。

func (s *StoreService) SaveOrderFeatures(ctx context.Context, orderID string, features map[string]float64) error {
	return s.save(ctx, s.orderKey(orderID), features)
}

func (s *StoreService) SaveReturnFeatures(ctx context.Context, returnID string, features map[string]float64) error {
	return s.save(ctx, s.returnKey(returnID), features)
}

func (s *StoreService) save(ctx context.Context, key string, features map[string]float64) error {
	data, err := json.Marshal(features)
	if err != nil {
		return fmt.Errorf("encode features at %q: %w", key, err)
	}
	return s.store.Set(ctx, key, data)
}
