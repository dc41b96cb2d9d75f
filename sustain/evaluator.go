package sustain

import "github.com/rushteam/returnkit/core"

// Evaluator 从处置决策与运输成本派生可持续指标。
// 纯函数：无状态、无随机性，输出完全由两个输入决定。
//
// 系数是简化的标定占位值（不是物理模型），零值字段取 core 策略常量；
// 需要重新标定时覆盖对应字段。
type Evaluator struct {
	// CarbonFactor 碳足迹代理系数，carbon = cost * CarbonFactor
	CarbonFactor float64

	// WasteScore 非废弃处置的减废得分（Dispose 得 0）
	WasteScore float64

	// RecoveryRecycle / RecoveryRepair / RecoveryDefault 资源回收得分
	RecoveryRecycle float64
	RecoveryRepair  float64
	RecoveryDefault float64
}

// NewEvaluator 创建一个使用默认标定系数的 Evaluator。
func NewEvaluator() *Evaluator {
	return &Evaluator{
		CarbonFactor:    core.CarbonCostFactor,
		WasteScore:      core.WasteReductionScore,
		RecoveryRecycle: core.RecoveryScoreRecycle,
		RecoveryRepair:  core.RecoveryScoreRepair,
		RecoveryDefault: core.RecoveryScoreDefault,
	}
}

// Evaluate 逐条计算碳足迹、减废得分、资源回收得分。
// labels 与 costs 必须等长，否则返回 SHAPE_MISMATCH。
func (e *Evaluator) Evaluate(
	labels []core.Disposition,
	costs []float64,
) (*core.SustainabilityMetrics, error) {
	if len(labels) != len(costs) {
		return nil, core.NewShapeMismatchError(core.ModuleSustain, len(labels), len(costs))
	}

	m := &core.SustainabilityMetrics{
		Carbon:           make([]float64, len(labels)),
		WasteReduction:   make([]float64, len(labels)),
		ResourceRecovery: make([]float64, len(labels)),
	}
	for i, label := range labels {
		m.Carbon[i] = costs[i] * e.CarbonFactor

		if label != core.DispositionDispose {
			m.WasteReduction[i] = e.WasteScore
		}

		switch label {
		case core.DispositionRecycle:
			m.ResourceRecovery[i] = e.RecoveryRecycle
		case core.DispositionRepair:
			m.ResourceRecovery[i] = e.RecoveryRepair
		default:
			m.ResourceRecovery[i] = e.RecoveryDefault
		}
	}
	return m, nil
}
