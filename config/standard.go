package config

import (
	"github.com/rushteam/returnkit/allocate"
	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/disposition"
	"github.com/rushteam/returnkit/pipeline"
	"github.com/rushteam/returnkit/risk"
	"github.com/rushteam/returnkit/rules"
	"github.com/rushteam/returnkit/sustain"
	"github.com/rushteam/returnkit/transport"
)

// Standard 按注入的预测器集合组装标准决策链：
//
//	risk → (review) → disposition → processing → allocation → transport → sustainability
//
// 可选输入缺失的阶段在运行时自行跳过，链本身总是完整组装。
// 这是程序化组装的入口；配置驱动见 pipeline.Config + DefaultFactory。
func Standard(set core.PredictorSet, opts ...StandardOption) *pipeline.Pipeline {
	cfg := &standardConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	nodes := []pipeline.Node{
		&risk.Node{Predictor: set.ReturnRisk, Threshold: cfg.threshold},
	}
	if cfg.reviewRule != nil {
		nodes = append(nodes, &rules.ReviewNode{Rule: cfg.reviewRule})
	}
	nodes = append(nodes,
		&disposition.Node{Classifier: set.Disposition},
		&disposition.ProcessingTimeNode{Predictor: set.ProcessingTime},
		&allocate.Node{Allocator: &allocate.Greedy{Times: set.ProcessingTime}},
		&transport.Node{Ranker: &transport.Ranker{Cost: set.TransportCost, Time: set.TransportTime}},
		&sustain.Node{Evaluator: cfg.evaluator},
	)

	return &pipeline.Pipeline{Nodes: nodes}
}

type standardConfig struct {
	threshold  float64
	reviewRule *rules.Rule
	evaluator  *sustain.Evaluator
}

// StandardOption 标准链组装选项。
type StandardOption func(*standardConfig)

// WithThreshold 覆盖高风险阈值（默认 core.HighRiskThreshold）。
func WithThreshold(threshold float64) StandardOption {
	return func(c *standardConfig) {
		c.threshold = threshold
	}
}

// WithReviewRule 在风险阶段之后插入人工复核规则。
func WithReviewRule(rule *rules.Rule) StandardOption {
	return func(c *standardConfig) {
		c.reviewRule = rule
	}
}

// WithEvaluator 覆盖可持续指标的标定系数。
func WithEvaluator(ev *sustain.Evaluator) StandardOption {
	return func(c *standardConfig) {
		c.evaluator = ev
	}
}
