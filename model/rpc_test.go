package model

import (
	"context"
	"testing"

	"github.com/rushteam/returnkit/core"
)

// fakeMLService 记录请求并返回预置响应。
type fakeMLService struct {
	lastReq *core.MLPredictRequest
	resp    *core.MLPredictResponse
	err     error
}

func (s *fakeMLService) Predict(_ context.Context, req *core.MLPredictRequest) (*core.MLPredictResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *fakeMLService) Health(_ context.Context) error { return nil }
func (s *fakeMLService) Close(_ context.Context) error  { return nil }

func TestRPCPredictor_FitNotSupported(t *testing.T) {
	m := &RPCPredictor{Service: &fakeMLService{}, ModelName: "risk_gbdt"}
	err := m.Fit(context.Background(), nil, nil)
	if !core.IsNotSupported(err) {
		t.Errorf("err = %v, want NOT_SUPPORTED", err)
	}
}

func TestRPCPredictor_Predict(t *testing.T) {
	svc := &fakeMLService{resp: &core.MLPredictResponse{Predictions: []float64{0.7, 0.2}}}
	m := &RPCPredictor{Service: svc, ModelName: "risk_gbdt", ModelVersion: "3"}

	records := makeRecords([]map[string]float64{{"x": 1}, {"x": 2}})
	preds, err := m.Predict(context.Background(), records)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if preds[0] != 0.7 || preds[1] != 0.2 {
		t.Errorf("preds = %v", preds)
	}
	if svc.lastReq.ModelName != "risk_gbdt" || svc.lastReq.ModelVersion != "3" {
		t.Errorf("request model = %s@%s", svc.lastReq.ModelName, svc.lastReq.ModelVersion)
	}
	if len(svc.lastReq.Features) != 2 || svc.lastReq.Features[1]["x"] != 2 {
		t.Errorf("request features = %v", svc.lastReq.Features)
	}
}

func TestRPCPredictor_PredictShapeMismatch(t *testing.T) {
	svc := &fakeMLService{resp: &core.MLPredictResponse{Predictions: []float64{0.7}}}
	m := &RPCPredictor{Service: svc}

	_, err := m.Predict(context.Background(), makeRecords([]map[string]float64{{"x": 1}, {"x": 2}}))
	if !core.IsShapeMismatch(err) {
		t.Errorf("err = %v, want SHAPE_MISMATCH", err)
	}
}

func TestRPCPredictor_NoService(t *testing.T) {
	m := &RPCPredictor{}
	_, err := m.Predict(context.Background(), makeRecords([]map[string]float64{{"x": 1}}))
	if !core.IsUnavailable(err) {
		t.Errorf("err = %v, want UNAVAILABLE", err)
	}
}

func TestRPCPredictor_Name(t *testing.T) {
	if got := (&RPCPredictor{ModelName: "disposition"}).Name(); got != "rpc.disposition" {
		t.Errorf("Name() = %q", got)
	}
	if got := (&RPCPredictor{}).Name(); got != "rpc" {
		t.Errorf("Name() = %q", got)
	}
}
