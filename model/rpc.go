package model

import (
	"context"
	"fmt"

	"github.com/rushteam/returnkit/core"
)

// RPCPredictor 是通过远程模型服务（core.MLService）推理的 Predictor 实现。
// 支持 GBDT、XGBoost、TensorFlow Serving、TorchServe 等托管模型。
//
// 训练发生在服务端：Fit 返回 NOT_SUPPORTED，
// Predict / PredictProbabilities 始终可用（是否已训练由服务端保证）。
type RPCPredictor struct {
	Service core.MLService

	// ModelName / ModelVersion 透传给服务端（服务端支持多模型时使用）
	ModelName    string
	ModelVersion string

	// ClassNames 分类模型的类别名；回归模型留空
	ClassNames []string
}

func (m *RPCPredictor) Name() string {
	if m.ModelName != "" {
		return "rpc." + m.ModelName
	}
	return "rpc"
}

// Classes 返回类别顺序（分类模型）。
func (m *RPCPredictor) Classes() []string { return m.ClassNames }

// Fit 不支持：远程模型的训练由服务端完成。
func (m *RPCPredictor) Fit(ctx context.Context, records []*core.Record, labels []float64) error {
	return core.NewDomainError(core.ModuleModel, core.ErrorCodeNotSupported,
		fmt.Sprintf("predictor %q trains server-side", m.Name()))
}

// Predict 批量调用远程服务。
func (m *RPCPredictor) Predict(ctx context.Context, records []*core.Record) ([]float64, error) {
	resp, err := m.call(ctx, records)
	if err != nil {
		return nil, err
	}
	if len(resp.Predictions) != len(records) {
		return nil, core.NewShapeMismatchError(core.ModuleModel, len(records), len(resp.Predictions))
	}
	return resp.Predictions, nil
}

// PredictProbabilities 批量调用远程服务并取概率分布。
func (m *RPCPredictor) PredictProbabilities(ctx context.Context, records []*core.Record) ([][]float64, error) {
	resp, err := m.call(ctx, records)
	if err != nil {
		return nil, err
	}
	if len(resp.Probabilities) != len(records) {
		return nil, core.NewShapeMismatchError(core.ModuleModel, len(records), len(resp.Probabilities))
	}
	return resp.Probabilities, nil
}

func (m *RPCPredictor) call(ctx context.Context, records []*core.Record) (*core.MLPredictResponse, error) {
	if m.Service == nil {
		return nil, core.NewDomainError(core.ModuleModel, core.ErrorCodeUnavailable,
			"rpc predictor has no ml service")
	}
	features := make([]map[string]float64, len(records))
	for i, r := range records {
		features[i] = r.Features
	}
	return m.Service.Predict(ctx, &core.MLPredictRequest{
		Features:     features,
		ModelName:    m.ModelName,
		ModelVersion: m.ModelVersion,
	})
}
