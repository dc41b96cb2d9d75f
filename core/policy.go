package core

// 决策链路的策略常量。
//
// 这些值是业务标定输入（calibration inputs），不是推导出来的物理常数：
// 阈值与系数都是简化的占位标定，保留字面值以保证可复现，
// 需要调整时通过各 Node / Evaluator 的字段覆盖，而不是修改此处。
const (
	// HighRiskThreshold 高风险订单阈值：退货概率 >= 此值即判为高风险
	HighRiskThreshold = 0.6

	// DefaultSustainabilityWeight 默认可持续权重，
	// 运输成本权重 = CostWeightBase - SustainabilityWeight
	DefaultSustainabilityWeight = 0.3

	// CostWeightBase 运输成本权重基数
	CostWeightBase = 0.7

	// TimeWeight 运输时长权重（固定，不随可持续权重变化）
	TimeWeight = 0.3

	// CarbonCostFactor 碳足迹代理系数：carbon = predictedCost * 此系数
	CarbonCostFactor = 0.2

	// WasteReductionScore 非废弃处置（Dispose 之外）的减废得分
	WasteReductionScore = 0.8

	// 资源回收得分：按处置方式取值
	RecoveryScoreRecycle = 0.9 // Recycle
	RecoveryScoreRepair  = 0.5 // Repair（含再制造）
	RecoveryScoreDefault = 0.1 // Resell / Dispose 及其他
)
