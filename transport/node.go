package transport

import (
	"context"
	"fmt"

	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/pipeline"
	"github.com/rushteam/returnkit/pkg/utils"
)

// Node 是运输阶段：对候选运输选项批次执行加权打分。
//
// - 退货批次或运输选项缺失时整体跳过（res.TransportPlans 保持 nil）
// - 成本权重随可持续权重动态变化：
//   weightCost = core.CostWeightBase - dctx.SustainabilityWeight
//   weightTime = core.TimeWeight
type Node struct {
	Ranker *Ranker
}

func (n *Node) Name() string          { return "transport.rank" }
func (n *Node) Stage() pipeline.Stage { return pipeline.StageTransport }

func (n *Node) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	res *core.BatchResult,
) error {
	if len(dctx.Returns) == 0 || len(dctx.TransportOptions) == 0 {
		return nil
	}
	if n.Ranker == nil {
		return fmt.Errorf("transport ranker is required")
	}

	weightCost := core.CostWeightBase - dctx.SustainabilityWeight
	weightTime := core.TimeWeight

	plans, err := n.Ranker.Rank(ctx, dctx.TransportOptions, weightCost, weightTime)
	if err != nil {
		return err
	}

	res.TransportPlans = plans
	dctx.PutLabel("transport_weights", utils.Label{
		Value:  fmt.Sprintf("cost=%.2f,time=%.2f", weightCost, weightTime),
		Source: "transport",
	})
	return nil
}
