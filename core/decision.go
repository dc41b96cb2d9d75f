package core

// Disposition 是退货的最终处置方式。
type Disposition string

const (
	DispositionResell  Disposition = "Resell"  // 二次销售
	DispositionRepair  Disposition = "Repair"  // 维修/再制造
	DispositionRecycle Disposition = "Recycle" // 回收
	DispositionDispose Disposition = "Dispose" // 废弃
)

// DispositionClasses 返回处置分类器的标准类别顺序。
// 分类器的概率分布按此顺序对齐。
func DispositionClasses() []string {
	return []string{
		string(DispositionResell),
		string(DispositionRepair),
		string(DispositionRecycle),
		string(DispositionDispose),
	}
}

// DispositionDecision 是单条退货的处置决策。
// 不变式：Probs 各项之和为 1（浮点容差内），Label 为概率最大的类别。
type DispositionDecision struct {
	Label Disposition
	Probs map[Disposition]float64
}

// TransportPlan 是单个运输选项的打分结果，随批次重算、不持久化。
// 保持输入顺序，Score 越低越优；排序（如需要）由调用方自行执行。
type TransportPlan struct {
	// Cost / Time 为模型预测的原始成本与时长
	Cost float64
	Time float64

	// NormCost / NormTime 为批内 min-max 归一化值，落在 [0,1]
	NormCost float64
	NormTime float64

	// Score = weightCost*NormCost + weightTime*NormTime
	Score float64
}

// AllocationPlan 是一次分配运行的结果：仓库 -> 有序退货下标列表。
// 每批构建一次，用完即弃。容量不足时计划不完整（不是错误），
// 调用方通过 Allocated 与批次大小比较判断是否有遗留。
type AllocationPlan struct {
	// Assignments 仓库标识 -> 分配到该仓库的退货下标（按分配先后排列）
	Assignments map[string][]int

	// Allocated 已分配条数
	Allocated int

	// Unallocated 容量耗尽后未分配的退货下标（按处理优先级排列）
	Unallocated []int
}

// SustainabilityMetrics 是派生的可持续指标，纯函数输出，无独立生命周期。
// 三个切片与退货批次一一对应。
type SustainabilityMetrics struct {
	Carbon           []float64 // 碳足迹（成本代理）
	WasteReduction   []float64 // 减废得分
	ResourceRecovery []float64 // 资源回收得分
}

// BatchResult 是决策链路单次运行的汇总输出，由调用方持有。
//
// 部分输入策略：可选输入缺失时，对应字段保持 nil（"未计算"），
// 与"计算结果为空"严格区分。阶段失败时已完成阶段的结果保留在此结构中，
// FailedStage 标记失败阶段（空串表示整链成功）。
type BatchResult struct {
	// RiskScores 每个订单的退货概率，[0,1]
	RiskScores []float64

	// HighRisk 风险分 >= 阈值的订单下标
	HighRisk []int

	// ReviewFlags 命中人工复核规则的订单下标（未配置规则时为 nil）
	ReviewFlags []int

	// Dispositions 每条退货的处置决策（未提供 returns 时为 nil）
	Dispositions []DispositionDecision

	// ProcessingTimes 每条退货的处理时长预估（未提供 returns 时为 nil）
	ProcessingTimes []float64

	// Allocation 仓库分配计划（未提供 capacities 时为 nil）
	Allocation *AllocationPlan

	// TransportPlans 运输选项打分（未提供 transport options 时为 nil）
	TransportPlans []TransportPlan

	// Sustainability 可持续指标（依赖处置与运输两者齐备）
	Sustainability *SustainabilityMetrics

	// FailedStage 失败阶段名；空串表示全部到达的阶段均成功
	FailedStage string
}
