package allocate

import (
	"context"
	"fmt"

	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/pipeline"
	"github.com/rushteam/returnkit/pkg/utils"
)

// Node 是分配阶段：对整个退货批次（不只是高风险子集）执行贪心分配。
//
// - 退货批次或容量映射缺失时整体跳过（res.Allocation 保持 nil）
// - 时长阶段已产出 res.ProcessingTimes 时直接复用；否则用 Times 预测器
// - 容量映射出现负值立即失败（INVALID_CAPACITY），分配不开始
type Node struct {
	Allocator *Greedy
}

func (n *Node) Name() string          { return "allocate.greedy" }
func (n *Node) Stage() pipeline.Stage { return pipeline.StageAllocation }

func (n *Node) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	res *core.BatchResult,
) error {
	if len(dctx.Returns) == 0 || dctx.Capacities == nil {
		return nil
	}
	if n.Allocator == nil {
		return fmt.Errorf("allocator is required")
	}

	var (
		plan *core.AllocationPlan
		err  error
	)
	if res.ProcessingTimes != nil {
		plan, err = AllocateWithTimes(res.ProcessingTimes, dctx.Capacities)
	} else {
		plan, err = n.Allocator.Allocate(ctx, dctx.Returns, dctx.Capacities)
	}
	if err != nil {
		return err
	}

	res.Allocation = plan
	dctx.PutLabel("allocation", utils.Label{
		Value:  fmt.Sprintf("%d/%d", plan.Allocated, len(dctx.Returns)),
		Source: "allocation",
	})
	return nil
}
