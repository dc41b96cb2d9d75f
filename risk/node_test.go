package risk

import (
	"context"
	"reflect"
	"testing"

	"github.com/rushteam/returnkit/core"
)

type stubPredictor struct {
	values []float64
}

func (s *stubPredictor) Name() string { return "stub" }

func (s *stubPredictor) Fit(_ context.Context, _ []*core.Record, _ []float64) error { return nil }

func (s *stubPredictor) Predict(_ context.Context, _ []*core.Record) ([]float64, error) {
	return s.values, nil
}

func orders(n int) []*core.Record {
	out := make([]*core.Record, n)
	for i := range out {
		r := core.NewRecord("o" + string(rune('0'+i)))
		r.Features["price"] = 1
		out[i] = r
	}
	return out
}

func TestNode_DefaultThreshold(t *testing.T) {
	// 阈值未设置取 0.6，判定为 >=（0.6 本身算高风险）
	node := &Node{Predictor: &stubPredictor{values: []float64{0.2, 0.65, 0.9, 0.1, 0.6}}}
	dctx := core.NewDecisionContext(orders(5))
	res := &core.BatchResult{}

	if err := node.Process(context.Background(), dctx, res); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !reflect.DeepEqual(res.HighRisk, []int{1, 2, 4}) {
		t.Errorf("HighRisk = %v, want [1 2 4]", res.HighRisk)
	}
}

func TestNode_CustomThreshold(t *testing.T) {
	node := &Node{
		Predictor: &stubPredictor{values: []float64{0.2, 0.65, 0.9}},
		Threshold: 0.8,
	}
	dctx := core.NewDecisionContext(orders(3))
	res := &core.BatchResult{}

	if err := node.Process(context.Background(), dctx, res); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !reflect.DeepEqual(res.HighRisk, []int{2}) {
		t.Errorf("HighRisk = %v, want [2]", res.HighRisk)
	}
}

func TestNode_NoHighRiskIsEmptyNotNil(t *testing.T) {
	node := &Node{Predictor: &stubPredictor{values: []float64{0.1, 0.2}}}
	dctx := core.NewDecisionContext(orders(2))
	res := &core.BatchResult{}

	if err := node.Process(context.Background(), dctx, res); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	// 空集合与“未计算”（nil）区分
	if res.HighRisk == nil || len(res.HighRisk) != 0 {
		t.Errorf("HighRisk = %#v, want empty non-nil", res.HighRisk)
	}
}

func TestNode_ShapeMismatch(t *testing.T) {
	node := &Node{Predictor: &stubPredictor{values: []float64{0.2}}}
	dctx := core.NewDecisionContext(orders(2))

	err := node.Process(context.Background(), dctx, &core.BatchResult{})
	if !core.IsShapeMismatch(err) {
		t.Errorf("err = %v, want SHAPE_MISMATCH", err)
	}
}

func TestNode_SchemaMismatch(t *testing.T) {
	batch := orders(2)
	batch[1].Features = map[string]float64{"weight": 1}

	node := &Node{Predictor: &stubPredictor{values: []float64{0.2, 0.3}}}
	dctx := core.NewDecisionContext(batch)

	err := node.Process(context.Background(), dctx, &core.BatchResult{})
	if !core.IsSchemaMismatch(err) {
		t.Errorf("err = %v, want SCHEMA_MISMATCH", err)
	}
}

func TestNode_WritesModelLabel(t *testing.T) {
	node := &Node{Predictor: &stubPredictor{values: []float64{0.2}}}
	dctx := core.NewDecisionContext(orders(1))

	if err := node.Process(context.Background(), dctx, &core.BatchResult{}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	lbl, ok := dctx.GetLabel("risk_model")
	if !ok || lbl.Value != "stub" {
		t.Errorf("risk_model label = %+v ok=%v", lbl, ok)
	}
}
