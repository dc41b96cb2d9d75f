package sustain

import (
	"context"

	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/pipeline"
)

// Node 是可持续阶段：用处置决策标签与运输预测成本派生指标。
//
// - 前序的处置阶段或运输阶段未产出时整体跳过
//   （依赖的可选输入缺失本来就不是错误）
// - 两个输入长度不一致时返回 SHAPE_MISMATCH：
//   按约定运输选项与退货一一对应，对不上说明调用方拼批有误
type Node struct {
	Evaluator *Evaluator
}

func (n *Node) Name() string          { return "sustain.evaluate" }
func (n *Node) Stage() pipeline.Stage { return pipeline.StageSustainability }

func (n *Node) Process(
	_ context.Context,
	_ *core.DecisionContext,
	res *core.BatchResult,
) error {
	if res.Dispositions == nil || res.TransportPlans == nil {
		return nil
	}

	ev := n.Evaluator
	if ev == nil {
		ev = NewEvaluator()
	}

	labels := make([]core.Disposition, len(res.Dispositions))
	for i, d := range res.Dispositions {
		labels[i] = d.Label
	}
	costs := make([]float64, len(res.TransportPlans))
	for i, p := range res.TransportPlans {
		costs[i] = p.Cost
	}

	metrics, err := ev.Evaluate(labels, costs)
	if err != nil {
		return err
	}
	res.Sustainability = metrics
	return nil
}
