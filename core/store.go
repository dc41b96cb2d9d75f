package core

import "context"

// Store 是存储的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//   - 避免循环依赖：领域层不依赖基础设施层
//
// 使用场景：
//   - 仓库容量快照：分配前从在线存储读取剩余槽位
//   - 特征缓存：订单/退货特征的在线读取
//
// 实现：
//   - store.MemoryStore 实现此接口（测试/开发/原型）
//   - store.RedisStore 实现此接口（生产）
type Store interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// Get 读取单个 key 的值
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入单个 key-value
	Set(ctx context.Context, key string, value []byte, ttl ...int) error

	// Delete 删除单个 key
	Delete(ctx context.Context, key string) error

	// BatchGet 批量读取（特征批量拉取常用，减少网络往返）
	BatchGet(ctx context.Context, keys []string) (map[string][]byte, error)

	// BatchSet 批量写入
	BatchSet(ctx context.Context, kvs map[string][]byte, ttl ...int) error

	// Close 关闭连接/释放资源
	Close() error
}

// KeyValueStore 是 Store 的扩展接口，补充哈希表操作。
//
// 扩展功能：
//   - 哈希表（Hash）：仓库容量映射（field=仓库标识，value=剩余槽位）
//     天然落在一个 hash key 上，读写均为字段级操作
//
// 如果后端不支持某些操作，可返回 ErrStoreNotSupported。
type KeyValueStore interface {
	Store

	// HGet 读取哈希表单个字段
	HGet(ctx context.Context, key, field string) ([]byte, error)

	// HSet 写入哈希表单个字段
	HSet(ctx context.Context, key, field string, value []byte) error

	// HGetAll 读取哈希表全部字段
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)

	// HDel 删除哈希表字段
	HDel(ctx context.Context, key string, fields ...string) error
}
