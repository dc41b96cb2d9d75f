package allocate

import (
	"context"
	"sort"

	"github.com/rushteam/returnkit/core"
)

// Greedy 是贪心仓库分配器：最长作业优先（longest-job-first）。
//
// 算法：
//  1. 用 Times 预测器取每条退货的处理时长预估
//  2. 按预估时长降序排列退货下标（长作业先占容量，避免长作业
//     在运行后期被容量饿死）
//  3. 依次把每条退货放进“当前剩余容量最大”的仓库，容量减一，
//     减到 0 的仓库移出候选
//  4. 所有仓库容量耗尽时提前终止，剩余退货保持未分配
//     （不是错误——计划允许不完整，调用方比较 Allocated 与批次大小）
//
// 确定性：时长平手按退货下标升序，容量平手按仓库标识字典序，
// 因此固定输入必然产出 bit-for-bit 相同的计划。
type Greedy struct {
	// Times 处理时长预测器；调用 Allocate 时必填，
	// AllocateWithTimes 直接接受外部时长则不需要
	Times core.Predictor
}

// Allocate 对退货批次执行一次完整分配（先推理时长，再贪心放置）。
// 容量映射出现负值返回 INVALID_CAPACITY；分配总是在容量拷贝上进行，
// 不修改调用方的映射。
func (g *Greedy) Allocate(
	ctx context.Context,
	returns []*core.Record,
	capacities core.WarehouseCapacity,
) (*core.AllocationPlan, error) {
	if err := capacities.Validate(); err != nil {
		return nil, err
	}
	if err := core.ValidateSchema(core.ModuleAllocate, returns); err != nil {
		return nil, err
	}

	times, err := g.Times.Predict(ctx, returns)
	if err != nil {
		return nil, err
	}
	if len(times) != len(returns) {
		return nil, core.NewShapeMismatchError(core.ModuleAllocate, len(returns), len(times))
	}
	return AllocateWithTimes(times, capacities)
}

// AllocateWithTimes 是贪心放置的核心：接受已预估的处理时长。
// 链路里时长阶段已经跑过预测时走这条路径，避免重复推理。
func AllocateWithTimes(
	times []float64,
	capacities core.WarehouseCapacity,
) (*core.AllocationPlan, error) {
	if err := capacities.Validate(); err != nil {
		return nil, err
	}

	// 防御性拷贝：一次分配运行的可变状态只存在于这份拷贝里
	remaining := capacities.Clone()
	warehouses := remaining.SortedWarehouses()

	// 时长降序；平手按下标升序保持稳定
	order := make([]int, len(times))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return times[order[a]] > times[order[b]]
	})

	plan := &core.AllocationPlan{
		Assignments: make(map[string][]int, len(warehouses)),
	}

	for pos, idx := range order {
		best := ""
		for _, w := range warehouses {
			slots := remaining[w]
			if slots <= 0 {
				continue
			}
			// 容量平手时保留先遇到的仓库（字典序靠前）
			if best == "" || slots > remaining[best] {
				best = w
			}
		}
		if best == "" {
			// 容量耗尽，剩余退货按处理优先级记为未分配
			plan.Unallocated = append(plan.Unallocated, order[pos:]...)
			break
		}

		plan.Assignments[best] = append(plan.Assignments[best], idx)
		plan.Allocated++
		remaining[best]--
	}

	return plan, nil
}
