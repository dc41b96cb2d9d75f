package disposition

import (
	"context"
	"fmt"

	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/pipeline"
	"github.com/rushteam/returnkit/pkg/utils"
)

// Node 是处置阶段：用四分类器给每条退货决定处置方式。
//
// - 未提供退货批次时整体跳过（res.Dispositions 保持 nil）
// - 决策 Label 取 argmax 类别；平手时取类别顺序靠前者（确定性）
// - 概率分布按 Classifier.Classes() 对齐，写入 Probs
type Node struct {
	Classifier core.Classifier
}

func (n *Node) Name() string          { return "disposition.classify" }
func (n *Node) Stage() pipeline.Stage { return pipeline.StageDisposition }

func (n *Node) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	res *core.BatchResult,
) error {
	if len(dctx.Returns) == 0 {
		return nil
	}
	if n.Classifier == nil {
		return fmt.Errorf("disposition classifier is required")
	}
	if err := core.ValidateSchema(core.ModulePipeline, dctx.Returns); err != nil {
		return err
	}

	probs, err := n.Classifier.PredictProbabilities(ctx, dctx.Returns)
	if err != nil {
		return err
	}
	if len(probs) != len(dctx.Returns) {
		return core.NewShapeMismatchError(core.ModulePipeline, len(dctx.Returns), len(probs))
	}

	classes := n.Classifier.Classes()
	decisions := make([]core.DispositionDecision, len(probs))
	for i, row := range probs {
		if len(row) != len(classes) {
			return core.NewShapeMismatchError(core.ModulePipeline, len(classes), len(row))
		}
		best := 0
		dist := make(map[core.Disposition]float64, len(row))
		for j, p := range row {
			dist[core.Disposition(classes[j])] = p
			if p > row[best] {
				best = j
			}
		}
		decisions[i] = core.DispositionDecision{
			Label: core.Disposition(classes[best]),
			Probs: dist,
		}
	}

	res.Dispositions = decisions
	dctx.PutLabel("disposition_model", utils.Label{Value: n.Classifier.Name(), Source: "disposition"})
	return nil
}
