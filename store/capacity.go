package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rushteam/returnkit/core"
)

// 仓库容量快照的存取：容量映射落在一个 hash key 上，
// field 为仓库标识，value 为剩余槽位数（十进制字符串）。
//
// 读到的映射只是快照；分配运行内部总是在自己的拷贝上扣减，
// 扣减结果是否回写（SaveCapacities）由调用方的业务节奏决定。

// LoadCapacities 从存储读取仓库容量映射。
// 值无法解析为整数时返回错误；负值由 Validate 拦截（INVALID_CAPACITY）。
func LoadCapacities(ctx context.Context, kv core.KeyValueStore, key string) (core.WarehouseCapacity, error) {
	fields, err := kv.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load capacities %q: %w", key, err)
	}

	caps := make(core.WarehouseCapacity, len(fields))
	for warehouse, raw := range fields {
		n, err := strconv.Atoi(string(raw))
		if err != nil {
			return nil, fmt.Errorf("capacity of warehouse %q is not an integer: %q", warehouse, raw)
		}
		caps[warehouse] = n
	}
	if err := caps.Validate(); err != nil {
		return nil, err
	}
	return caps, nil
}

// SaveCapacities 把仓库容量映射写入存储（逐字段覆盖）。
func SaveCapacities(ctx context.Context, kv core.KeyValueStore, key string, caps core.WarehouseCapacity) error {
	if err := caps.Validate(); err != nil {
		return err
	}
	for _, warehouse := range caps.SortedWarehouses() {
		value := strconv.Itoa(caps[warehouse])
		if err := kv.HSet(ctx, key, warehouse, []byte(value)); err != nil {
			return fmt.Errorf("save capacity of warehouse %q: %w", warehouse, err)
		}
	}
	return nil
}
