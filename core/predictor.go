package core

import "context"

// Predictor 是统计预测能力的领域接口（外部协作方提供具体实现）。
//
// 设计原则：
//   - 定义在领域层（core），由 model / service 等基础设施层实现
//   - 遵循依赖倒置原则：决策链路只依赖接口，不依赖具体模型
//   - 训练（Fit）与推理（Predict）是同一能力的两个动作；
//     未 Fit 即 Predict 返回 NOT_FITTED 错误
//
// 实现：
//   - model.Linear / model.Logistic / model.NearestCentroid（本地模型）
//   - model.RPCPredictor（远程模型服务，经 core.MLService）
type Predictor interface {
	// Name 返回预测器名称（用于日志/解释标签）
	Name() string

	// Fit 用批次记录与标签训练预测器
	Fit(ctx context.Context, records []*Record, labels []float64) error

	// Predict 批量预测，返回值与输入记录一一对应
	Predict(ctx context.Context, records []*Record) ([]float64, error)
}

// Classifier 是分类预测能力，在 Predictor 之上补充类别概率分布。
// Predict 返回 argmax 类别下标（float64 形式），
// PredictProbabilities 返回每条记录在 Classes() 上的概率分布。
type Classifier interface {
	Predictor

	// Classes 返回类别名列表，概率分布按此顺序对齐
	Classes() []string

	// PredictProbabilities 批量预测概率分布（每行和为 1，浮点容差内）
	PredictProbabilities(ctx context.Context, records []*Record) ([][]float64, error)
}

// PredictorSet 是决策链路需要的全部预测能力的显式集合。
// 五个预测器相互独立训练，由调用方注入，链路本身不持有任何隐藏状态。
type PredictorSet struct {
	// ReturnRisk 订单退货概率预测（Predict 返回 [0,1] 概率）
	ReturnRisk Predictor

	// Disposition 退货处置方式分类（四类，见 Disposition 常量）
	Disposition Classifier

	// ProcessingTime 退货处理时长回归
	ProcessingTime Predictor

	// TransportCost 运输成本回归
	TransportCost Predictor

	// TransportTime 运输时长回归
	TransportTime Predictor
}
