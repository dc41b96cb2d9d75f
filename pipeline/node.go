package pipeline

import (
	"context"

	"github.com/rushteam/returnkit/core"
)

// Stage 用于标记 Node 所属阶段，方便观测/治理/编排（例如按阶段打点）。
type Stage string

const (
	StageFeature        Stage = "feature"        // 特征补齐：预测前补全记录特征
	StageRisk           Stage = "risk"           // 风险阶段：订单退货概率与高风险集合
	StageReview         Stage = "review"         // 复核阶段：规则命中的订单标记人工复核
	StageDisposition    Stage = "disposition"    // 处置阶段：退货处置方式分类
	StageProcessing     Stage = "processing"     // 时长阶段：退货处理时长预估
	StageAllocation     Stage = "allocation"     // 分配阶段：退货分派到仓库
	StageTransport      Stage = "transport"      // 运输阶段：运输选项归一化打分
	StageSustainability Stage = "sustainability" // 可持续阶段：碳足迹/减废/回收指标
)

// Node 是决策链路的最小可扩展单元。
// 统一采用“读 DecisionContext、写 BatchResult”的形态：
//   - 可选输入缺失时 Node 自行跳过（返回 nil，且不写自己的结果段）
//   - 出错时返回 error，链路中止并保留已完成阶段的结果
type Node interface {
	Name() string
	Stage() Stage

	Process(
		ctx context.Context,
		dctx *core.DecisionContext,
		res *core.BatchResult,
	) error
}

// NodeBuilder 根据配置构建 Node，供配置驱动的工厂使用。
type NodeBuilder func(config map[string]interface{}) (Node, error)
