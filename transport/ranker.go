package transport

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/returnkit/core"
)

// Ranker 是多目标运输打分器：分别预测每个运输选项的成本与时长，
// 各自做批内 min-max 归一化后加权合成单一分数，分数越低越优。
//
// 职责边界：Ranker 只打分、不排序、不截断——输出保持输入顺序，
// 选优（如需要）由调用方对 Score 另行 sort。
//
// 成本与时长预测相互独立，内部用 errgroup 并发执行；
// 打分本身是确定性的内存计算。
type Ranker struct {
	Cost core.Predictor
	Time core.Predictor
}

// Rank 给一批运输选项打分。
// weightCost / weightTime 是任意非负标量，不要求和为 1
// （链路动态取 weightCost = CostWeightBase - SustainabilityWeight）。
func (r *Ranker) Rank(
	ctx context.Context,
	options []*core.Record,
	weightCost, weightTime float64,
) ([]core.TransportPlan, error) {
	if len(options) == 0 {
		return []core.TransportPlan{}, nil
	}
	if err := core.ValidateSchema(core.ModuleTransport, options); err != nil {
		return nil, err
	}

	var costs, times []float64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		costs, err = r.Cost.Predict(egCtx, options)
		return err
	})
	eg.Go(func() error {
		var err error
		times, err = r.Time.Predict(egCtx, options)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if len(costs) != len(options) {
		return nil, core.NewShapeMismatchError(core.ModuleTransport, len(options), len(costs))
	}
	if len(times) != len(options) {
		return nil, core.NewShapeMismatchError(core.ModuleTransport, len(options), len(times))
	}

	normCosts := MinMaxNormalize(costs)
	normTimes := MinMaxNormalize(times)

	plans := make([]core.TransportPlan, len(options))
	for i := range options {
		plans[i] = core.TransportPlan{
			Cost:     costs[i],
			Time:     times[i],
			NormCost: normCosts[i],
			NormTime: normTimes[i],
			Score:    weightCost*normCosts[i] + weightTime*normTimes[i],
		}
	}
	return plans, nil
}

// MinMaxNormalize 对向量做 (v-min)/(max-min) 归一化，结果落在 [0,1]。
// 批内全部相等时 max-min = 0，此时整个向量归一化为 0
// （而不是让除零的 NaN 顺流而下）。
func MinMaxNormalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return out
	}
	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}
