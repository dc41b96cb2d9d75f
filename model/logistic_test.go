package model

import (
	"context"
	"testing"

	"github.com/rushteam/returnkit/core"
)

func TestLogistic_NotFittedBeforeFit(t *testing.T) {
	m := &Logistic{}
	_, err := m.Predict(context.Background(), makeRecords([]map[string]float64{{"x": 1}}))
	if !core.IsNotFitted(err) {
		t.Errorf("err = %v, want NOT_FITTED", err)
	}
}

func TestLogistic_FitSeparatesClasses(t *testing.T) {
	// 单特征线性可分：x < 0 → 0，x > 0 → 1
	records := makeRecords([]map[string]float64{
		{"x": -3}, {"x": -2}, {"x": -1}, {"x": 1}, {"x": 2}, {"x": 3},
	})
	labels := []float64{0, 0, 0, 1, 1, 1}

	m := &Logistic{LearningRate: 0.5, Epochs: 1000}
	if err := m.Fit(context.Background(), records, labels); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	probs, err := m.Predict(context.Background(), records)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	for i, p := range probs {
		if p < 0 || p > 1 {
			t.Fatalf("prob[%d] = %v out of [0,1]", i, p)
		}
		predicted := 0.0
		if p >= 0.5 {
			predicted = 1
		}
		if predicted != labels[i] {
			t.Errorf("record %d classified %v (p=%v), want %v", i, predicted, p, labels[i])
		}
	}
}

func TestLogistic_PredictProbabilitiesSumToOne(t *testing.T) {
	m := &Logistic{Bias: 0.3, Weights: map[string]float64{"x": 1.5}}
	m.state.markFitted()

	probs, err := m.PredictProbabilities(context.Background(), makeRecords([]map[string]float64{
		{"x": -1}, {"x": 0}, {"x": 2},
	}))
	if err != nil {
		t.Fatalf("PredictProbabilities() error = %v", err)
	}
	for i, row := range probs {
		if len(row) != 2 {
			t.Fatalf("row %d has %d entries, want 2", i, len(row))
		}
		if sum := row[0] + row[1]; sum < 1-1e-9 || sum > 1+1e-9 {
			t.Errorf("row %d sums to %v", i, sum)
		}
	}
}

func TestLogistic_Classes(t *testing.T) {
	m := &Logistic{}
	want := []string{"kept", "returned"}
	got := m.Classes()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Classes() = %v, want %v", got, want)
	}

	m.ClassNames = []string{"neg", "pos"}
	if got := m.Classes(); got[0] != "neg" || got[1] != "pos" {
		t.Errorf("Classes() = %v, want [neg pos]", got)
	}
}
