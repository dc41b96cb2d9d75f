package core

import "github.com/rushteam/returnkit/pkg/utils"

// DecisionContext 承载一次批量决策的全部输入，贯穿整个链路透传。
//
// Orders 是必选输入；Returns / TransportOptions / Capacities 是可选输入，
// 缺失时依赖它们的阶段整体跳过（对应 BatchResult 字段保持 nil）。
// 链路不修改任何输入。
type DecisionContext struct {
	// BatchID 批次标识（用于日志/解释标签，可为空）
	BatchID string

	// Orders 订单批次，ReturnRisk 阶段的输入
	Orders []*Record

	// Returns 退货批次；仅对已确认退货的条目存在
	Returns []*Record

	// TransportOptions 候选运输选项批次
	TransportOptions []*Record

	// Capacities 各仓库剩余容量
	Capacities WarehouseCapacity

	// SustainabilityWeight 可持续权重，
	// 运输成本权重 = CostWeightBase - SustainabilityWeight
	SustainabilityWeight float64

	// Labels 批次级标签，可驱动链路行为（如：旺季批次、加急批次）
	Labels map[string]utils.Label

	// Params 请求级上下文参数，供规则表达式等扩展点使用
	Params map[string]any
}

// NewDecisionContext 创建一个批量决策上下文，可持续权重取默认值。
func NewDecisionContext(orders []*Record) *DecisionContext {
	return &DecisionContext{
		Orders:               orders,
		SustainabilityWeight: DefaultSustainabilityWeight,
	}
}

// PutLabel 写入批次级 Label。
func (dctx *DecisionContext) PutLabel(key string, lbl utils.Label) {
	if dctx.Labels == nil {
		dctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := dctx.Labels[key]; ok {
		dctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	dctx.Labels[key] = lbl
}

// GetLabel 获取批次级 Label。
func (dctx *DecisionContext) GetLabel(key string) (utils.Label, bool) {
	if dctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := dctx.Labels[key]
	return lbl, ok
}
