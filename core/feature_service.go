package core

import "context"

// FeatureService 是特征服务的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（feature / feast）实现
//   - 特征编码是外部协作方的职责，本接口只负责按实体 ID 取回
//     已数值化的特征（map[string]float64）
//
// 使用场景：
//   - 订单/退货记录进入链路前，由 feature.EnrichNode 补齐缺失特征
//
// 实现：
//   - feature.StoreService 实现此接口（Store 后端，JSON 编码）
//   - feast.Adapter 实现此接口（Feast Feature Store）
type FeatureService interface {
	// Name 返回特征服务名称
	Name() string

	// GetOrderFeatures 获取单个订单的特征
	GetOrderFeatures(ctx context.Context, orderID string) (map[string]float64, error)

	// BatchGetOrderFeatures 批量获取订单特征
	BatchGetOrderFeatures(ctx context.Context, orderIDs []string) (map[string]map[string]float64, error)

	// GetReturnFeatures 获取单条退货的特征
	GetReturnFeatures(ctx context.Context, returnID string) (map[string]float64, error)

	// BatchGetReturnFeatures 批量获取退货特征
	BatchGetReturnFeatures(ctx context.Context, returnIDs []string) (map[string]map[string]float64, error)

	// Close 关闭连接/释放资源
	Close() error
}
