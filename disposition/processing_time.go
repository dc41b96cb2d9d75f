package disposition

import (
	"context"
	"fmt"

	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/pipeline"
	"github.com/rushteam/returnkit/pkg/utils"
)

// ProcessingTimeNode 是时长阶段：用回归器给每条退货预估处理时长。
// 预估结果既进入 BatchResult，也是分配阶段贪心排序的依赖
// （分配 Node 优先复用此阶段的输出，避免重复推理）。
//
// 未提供退货批次时整体跳过。
type ProcessingTimeNode struct {
	Predictor core.Predictor
}

func (n *ProcessingTimeNode) Name() string          { return "disposition.processing_time" }
func (n *ProcessingTimeNode) Stage() pipeline.Stage { return pipeline.StageProcessing }

func (n *ProcessingTimeNode) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	res *core.BatchResult,
) error {
	if len(dctx.Returns) == 0 {
		return nil
	}
	if n.Predictor == nil {
		return fmt.Errorf("processing time predictor is required")
	}
	if err := core.ValidateSchema(core.ModulePipeline, dctx.Returns); err != nil {
		return err
	}

	times, err := n.Predictor.Predict(ctx, dctx.Returns)
	if err != nil {
		return err
	}
	if len(times) != len(dctx.Returns) {
		return core.NewShapeMismatchError(core.ModulePipeline, len(dctx.Returns), len(times))
	}

	res.ProcessingTimes = times
	dctx.PutLabel("processing_model", utils.Label{Value: n.Predictor.Name(), Source: "processing"})
	return nil
}
