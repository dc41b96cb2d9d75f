package model

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rushteam/returnkit/core"
)

// Linear 实现了线性回归模型，用于处理时长、运输成本/时长等回归预测。
//
// 预测原理：y = Bias + sum(Weight_i * Feature_i)
//
// Fit 使用批量梯度下降（特征以 map 形式参与，缺失特征视为 0），
// 面向原型与测试；生产训练由外部协作方完成，经 LoadLinear 加载权重
// 或经 RPCPredictor 走远程服务。
type Linear struct {
	Bias    float64            // 偏置项 (Bias / Intercept)
	Weights map[string]float64 // 特征权重 (Weights / Coefficients)

	// LearningRate / Epochs 梯度下降超参；零值取 0.01 / 200
	LearningRate float64
	Epochs       int

	state fitState
}

// LoadLinear 从 JSON 权重文件加载线性模型，加载成功即视为已训练。
// 文件格式：{"bias": 1.2, "weights": {"distance": 0.8, ...}}
func LoadLinear(path string) (*Linear, error) {
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
	m := &Linear{Bias: raw.Bias, Weights: raw.Weights}
	m.state.markFitted()
	return m, nil
}

func (m *Linear) Name() string { return "linear" }

// Fit 批量梯度下降拟合均方误差。
func (m *Linear) Fit(ctx context.Context, records []*core.Record, labels []float64) error {
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
		lr = 0.01
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
			pred := m.score(r.Features)
			diff := pred - labels[i]
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

// Predict 批量预测；未训练返回 NOT_FITTED。
func (m *Linear) Predict(ctx context.Context, records []*core.Record) ([]float64, error) {
	if !m.state.isFitted() {
		return nil, core.NewNotFittedError(core.ModuleModel, m.Name())
	}
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = m.score(r.Features)
	}
	return out, nil
}

func (m *Linear) score(features map[string]float64) float64 {
	score := m.Bias
	for k, v := range features {
		if w, ok := m.Weights[k]; ok {
			score += w * v
		}
	}
	return score
}
