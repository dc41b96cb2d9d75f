package model

import (
	"context"
	"math"
	"testing"

	"github.com/rushteam/returnkit/core"
)

func TestNearestCentroid_FitPredict(t *testing.T) {
	m := &NearestCentroid{ClassNames: []string{"low", "high"}}

	records := makeRecords([]map[string]float64{
		{"v": 1}, {"v": 2}, {"v": 10}, {"v": 11},
	})
	labels := []float64{0, 0, 1, 1}
	if err := m.Fit(context.Background(), records, labels); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	preds, err := m.Predict(context.Background(), makeRecords([]map[string]float64{
		{"v": 0}, {"v": 12},
	}))
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if preds[0] != 0 || preds[1] != 1 {
		t.Errorf("preds = %v, want [0 1]", preds)
	}
}

func TestNearestCentroid_ProbabilitiesAligned(t *testing.T) {
	m := &NearestCentroid{}

	// 四个处置类别各一条样本
	records := makeRecords([]map[string]float64{
		{"condition": 9}, {"condition": 6}, {"condition": 3}, {"condition": 0},
	})
	labels := []float64{0, 1, 2, 3}
	if err := m.Fit(context.Background(), records, labels); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	classes := m.Classes()
	if len(classes) != 4 || classes[0] != string(core.DispositionResell) {
		t.Fatalf("Classes() = %v", classes)
	}

	probs, err := m.PredictProbabilities(context.Background(), makeRecords([]map[string]float64{
		{"condition": 8.5},
	}))
	if err != nil {
		t.Fatalf("PredictProbabilities() error = %v", err)
	}
	row := probs[0]
	if len(row) != len(classes) {
		t.Fatalf("row has %d entries, want %d", len(row), len(classes))
	}
	sum := 0.0
	best := 0
	for j, p := range row {
		sum += p
		if p > row[best] {
			best = j
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %v", sum)
	}
	if classes[best] != string(core.DispositionResell) {
		t.Errorf("argmax class = %v, want Resell", classes[best])
	}
}

func TestNearestCentroid_LabelOutOfRange(t *testing.T) {
	m := &NearestCentroid{ClassNames: []string{"a", "b"}}
	err := m.Fit(context.Background(),
		makeRecords([]map[string]float64{{"v": 1}}), []float64{5})
	if err == nil {
		t.Fatal("Fit() error = nil, want INVALID_INPUT")
	}
	if !core.IsDomainError(err) {
		t.Fatalf("err = %v, want DomainError", err)
	}
}

func TestNearestCentroid_NotFittedBeforeFit(t *testing.T) {
	m := &NearestCentroid{}
	_, err := m.PredictProbabilities(context.Background(),
		makeRecords([]map[string]float64{{"v": 1}}))
	if !core.IsNotFitted(err) {
		t.Errorf("err = %v, want NOT_FITTED", err)
	}
}
