package rules

import (
	"context"

	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/pipeline"
	"github.com/rushteam/returnkit/pkg/utils"
)

// ReviewNode 是复核阶段：命中规则的订单下标写入 res.ReviewFlags，
// 供下游流转人工复核。规则只做标记，不改动高风险集合。
//
// 建议放在风险阶段之后，表达式即可引用 risk 变量。
// Rule 为 nil 时整体跳过（res.ReviewFlags 保持 nil）。
type ReviewNode struct {
	Rule *Rule
}

func (n *ReviewNode) Name() string          { return "rules.review" }
func (n *ReviewNode) Stage() pipeline.Stage { return pipeline.StageReview }

func (n *ReviewNode) Process(
	_ context.Context,
	dctx *core.DecisionContext,
	res *core.BatchResult,
) error {
	if n.Rule == nil {
		return nil
	}

	flagged := make([]int, 0)
	for i, order := range dctx.Orders {
		risk := 0.0
		if i < len(res.RiskScores) {
			risk = res.RiskScores[i]
		}
		ok, err := n.Rule.Match(order, risk, dctx.Params)
		if err != nil {
			return err
		}
		if ok {
			flagged = append(flagged, i)
		}
	}

	res.ReviewFlags = flagged
	dctx.PutLabel("review_rule", utils.Label{Value: n.Rule.Expr(), Source: "rule"})
	return nil
}
