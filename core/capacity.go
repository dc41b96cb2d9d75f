package core

import "sort"

// WarehouseCapacity 是仓库标识到剩余槽位数的映射。
//
// 并发纪律：一次分配运行内部只操作自己的防御性拷贝（Clone），
// 调用方如果跨并发分配共享同一个映射，需要自行同步——
// 这是本库唯一要求调用方遵守的共享状态约束。
type WarehouseCapacity map[string]int

// Validate 校验容量映射：出现负值返回 INVALID_CAPACITY 错误。
// 为了报错确定性，按字典序检查仓库标识。
func (c WarehouseCapacity) Validate() error {
	for _, id := range sortedKeys(c) {
		if c[id] < 0 {
			return NewInvalidCapacityError(id, c[id])
		}
	}
	return nil
}

// Clone 返回容量映射的拷贝，分配运行总是在拷贝上修改。
func (c WarehouseCapacity) Clone() WarehouseCapacity {
	out := make(WarehouseCapacity, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Total 返回全部仓库的剩余容量之和。
func (c WarehouseCapacity) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}

func sortedKeys(c WarehouseCapacity) []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedWarehouses 返回按字典序排列的仓库标识，
// 供分配算法做确定性的平手裁决（tie-break）。
func (c WarehouseCapacity) SortedWarehouses() []string {
	return sortedKeys(c)
}
