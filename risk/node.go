package risk

import (
	"context"
	"fmt"

	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/pipeline"
	"github.com/rushteam/returnkit/pkg/utils"
)

// Node 是风险阶段：用 ReturnRisk 预测器给每个订单打退货概率，
// 并把概率 >= Threshold 的订单下标收进高风险集合。
//
// - 订单是链路必选输入，此阶段永远执行
// - 预测器未训练时返回 NOT_FITTED，链路中止并上报此阶段
// - 写入批次 label：risk_model
type Node struct {
	Predictor core.Predictor

	// Threshold 高风险阈值；<= 0 时取 core.HighRiskThreshold。
	// 这是标定输入而非推导值，按需覆盖。
	Threshold float64
}

func (n *Node) Name() string          { return "risk.score" }
func (n *Node) Stage() pipeline.Stage { return pipeline.StageRisk }

func (n *Node) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	res *core.BatchResult,
) error {
	if n.Predictor == nil {
		return fmt.Errorf("risk predictor is required")
	}
	if err := core.ValidateSchema(core.ModulePipeline, dctx.Orders); err != nil {
		return err
	}

	scores, err := n.Predictor.Predict(ctx, dctx.Orders)
	if err != nil {
		return err
	}
	if len(scores) != len(dctx.Orders) {
		return core.NewShapeMismatchError(core.ModulePipeline, len(dctx.Orders), len(scores))
	}

	threshold := n.Threshold
	if threshold <= 0 {
		threshold = core.HighRiskThreshold
	}

	highRisk := make([]int, 0)
	for i, s := range scores {
		if s >= threshold {
			highRisk = append(highRisk, i)
		}
	}

	res.RiskScores = scores
	res.HighRisk = highRisk
	dctx.PutLabel("risk_model", utils.Label{Value: n.Predictor.Name(), Source: "risk"})
	return nil
}
