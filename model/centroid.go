package model

import (
	"context"
	"fmt"
	"math"

	"github.com/rushteam/returnkit/core"
)

// NearestCentroid 实现了最近质心多分类器，用于退货处置方式分类。
//
// 训练：对每个类别求特征均值（质心）。
// 预测：对每条记录算到各质心的欧氏距离，softmax(-distance) 得到
// 概率分布（距离越近概率越大），argmax 即预测类别。
//
// labels 以类别下标（float64 形式）给出，对齐 ClassNames 顺序。
type NearestCentroid struct {
	// ClassNames 类别名；零值取 core.DispositionClasses()
	ClassNames []string

	centroids []map[string]float64
	state     fitState
}

func (m *NearestCentroid) Name() string { return "nearest_centroid" }

// Classes 返回类别顺序，PredictProbabilities 的每行按此对齐。
func (m *NearestCentroid) Classes() []string {
	if len(m.ClassNames) > 0 {
		return m.ClassNames
	}
	return core.DispositionClasses()
}

// Fit 按类别聚合特征均值。
func (m *NearestCentroid) Fit(ctx context.Context, records []*core.Record, labels []float64) error {
	if len(records) != len(labels) {
		return core.NewShapeMismatchError(core.ModuleModel, len(records), len(labels))
	}
	if err := core.ValidateSchema(core.ModuleModel, records); err != nil {
		return err
	}
	if len(records) == 0 {
		return core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "fit on empty batch")
	}

	classes := m.Classes()
	sums := make([]map[string]float64, len(classes))
	counts := make([]int, len(classes))
	for i := range sums {
		sums[i] = make(map[string]float64)
	}

	for i, r := range records {
		cls := int(labels[i])
		if cls < 0 || cls >= len(classes) {
			return core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput,
				fmt.Sprintf("label %v at index %d out of class range [0,%d)", labels[i], i, len(classes)))
		}
		counts[cls]++
		for k, v := range r.Features {
			sums[cls][k] += v
		}
	}

	centroids := make([]map[string]float64, len(classes))
	for c := range classes {
		centroids[c] = make(map[string]float64, len(sums[c]))
		if counts[c] == 0 {
			continue
		}
		for k, total := range sums[c] {
			centroids[c][k] = total / float64(counts[c])
		}
	}

	m.centroids = centroids
	m.state.markFitted()
	return nil
}

// Predict 批量输出 argmax 类别下标（float64 形式）。
func (m *NearestCentroid) Predict(ctx context.Context, records []*core.Record) ([]float64, error) {
	probs, err := m.PredictProbabilities(ctx, records)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(probs))
	for i, row := range probs {
		best := 0
		for j, p := range row {
			if p > row[best] {
				best = j
			}
		}
		out[i] = float64(best)
	}
	return out, nil
}

// PredictProbabilities 批量输出 softmax(-distance) 概率分布。
func (m *NearestCentroid) PredictProbabilities(ctx context.Context, records []*core.Record) ([][]float64, error) {
	if !m.state.isFitted() {
		return nil, core.NewNotFittedError(core.ModuleModel, m.Name())
	}

	out := make([][]float64, len(records))
	for i, r := range records {
		dists := make([]float64, len(m.centroids))
		for c, centroid := range m.centroids {
			dists[c] = euclidean(r.Features, centroid)
		}
		out[i] = softmaxNeg(dists)
	}
	return out, nil
}

func euclidean(a, b map[string]float64) float64 {
	sum := 0.0
	for k, va := range a {
		d := va - b[k]
		sum += d * d
	}
	for k, vb := range b {
		if _, ok := a[k]; !ok {
			sum += vb * vb
		}
	}
	return math.Sqrt(sum)
}

// softmaxNeg 对 -dists 做 softmax，减去最大值防止上溢。
func softmaxNeg(dists []float64) []float64 {
	out := make([]float64, len(dists))
	if len(dists) == 0 {
		return out
	}
	max := -dists[0]
	for _, d := range dists[1:] {
		if -d > max {
			max = -d
		}
	}
	sum := 0.0
	for i, d := range dists {
		out[i] = math.Exp(-d - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
