package model

import (
	"context"
	"encoding/json"
	"math"
	"os"

	"github.com/rushteam/returnkit/core"
)

// Logistic 实现了逻辑回归 (Logistic Regression) 二分类模型，
// 用于订单退货概率预估。
//
// 预测原理：
//  1. 线性加权求和: z = Bias + sum(Weight_i * Feature_i)
//  2. Sigmoid 变换: P = 1 / (1 + exp(-z))
//
// Predict 直接输出正类概率 P ∈ (0, 1)（即退货概率）；
// PredictProbabilities 输出 [1-P, P]，与 Classes() 对齐。
type Logistic struct {
	Bias    float64            // 偏置项 (Bias / Intercept)
	Weights map[string]float64 // 特征权重 (Weights / Coefficients)

	// ClassNames 类别名，零值取 ["kept", "returned"]
	ClassNames []string

	// LearningRate / Epochs 梯度下降超参；零值取 0.1 / 200
	LearningRate float64
	Epochs       int

	state fitState
}

// LoadLogistic 从 JSON 权重文件加载逻辑回归模型，加载成功即视为已训练。
// 文件格式：{"bias": -0.5, "weights": {"discount": 1.3, ...}}
func LoadLogistic(path string) (*Logistic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw struct {
		Bias    float64            `json:"bias"`
		Weights map[string]float64 `json:"weights"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	m := &Logistic{Bias: raw.Bias, Weights: raw.Weights}
	m.state.markFitted()
	return m, nil
}

func (m *Logistic) Name() string { return "logistic" }

// Classes 返回类别顺序，PredictProbabilities 的每行按此对齐。
func (m *Logistic) Classes() []string {
	if len(m.ClassNames) == 2 {
		return m.ClassNames
	}
	return []string{"kept", "returned"}
}

// Fit 批量梯度下降拟合对数损失；labels 取 0/1。
func (m *Logistic) Fit(ctx context.Context, records []*core.Record, labels []float64) error {
	if len(records) != len(labels) {
		return core.NewShapeMismatchError(core.ModuleModel, len(records), len(labels))
	}
	if err := core.ValidateSchema(core.ModuleModel, records); err != nil {
		return err
	}
	if len(records) == 0 {
		return core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "fit on empty batch")
	}

	lr := m.LearningRate
	if lr <= 0 {
		lr = 0.1
	}
	epochs := m.Epochs
	if epochs <= 0 {
		epochs = 200
	}

	if m.Weights == nil {
		m.Weights = make(map[string]float64)
	}
	n := float64(len(records))
	for epoch := 0; epoch < epochs; epoch++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		gradBias := 0.0
		gradW := make(map[string]float64, len(m.Weights))
		for i, r := range records {
			diff := m.prob(r.Features) - labels[i]
			gradBias += diff
			for k, v := range r.Features {
				gradW[k] += diff * v
			}
		}
		m.Bias -= lr * gradBias / n
		for k, g := range gradW {
			m.Weights[k] -= lr * g / n
		}
	}

	m.state.markFitted()
	return nil
}

// Predict 批量输出正类概率；未训练返回 NOT_FITTED。
func (m *Logistic) Predict(ctx context.Context, records []*core.Record) ([]float64, error) {
	if !m.state.isFitted() {
		return nil, core.NewNotFittedError(core.ModuleModel, m.Name())
	}
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = m.prob(r.Features)
	}
	return out, nil
}

// PredictProbabilities 批量输出 [P(负类), P(正类)]。
func (m *Logistic) PredictProbabilities(ctx context.Context, records []*core.Record) ([][]float64, error) {
	probs, err := m.Predict(ctx, records)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(probs))
	for i, p := range probs {
		out[i] = []float64{1 - p, p}
	}
	return out, nil
}

func (m *Logistic) prob(features map[string]float64) float64 {
	score := m.Bias
	for k, v := range features {
		if w, ok := m.Weights[k]; ok {
			score += w * v
		}
	}
	return 1 / (1 + math.Exp(-score))
}
