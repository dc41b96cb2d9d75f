package pipeline

import (
	"context"
	"fmt"

	"github.com/rushteam/returnkit/core"
)

// Pipeline 是 Returnkit 的核心抽象：把批量决策拆成可组合的 Node 链。
//
// 执行语义：
//   - 各 Node 顺序执行，前一个完全结束后下一个才开始（单线程视角，
//     Node 内部可以自行并行，如运输阶段并发调用成本/时长预测器）
//   - 可选输入缺失的 Node 自行跳过，不视为错误
//   - 某个 Node 失败时立即中止：返回携带已完成阶段结果的部分
//     BatchResult，FailedStage 标记失败阶段，error 说明失败原因
//   - 链路不修改 DecisionContext 中的任何输入
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	dctx *core.DecisionContext,
) (*core.BatchResult, error) {
	res := &core.BatchResult{}
	for _, node := range p.Nodes {
		if err := node.Process(ctx, dctx, res); err != nil {
			res.FailedStage = string(node.Stage())
			return res, fmt.Errorf("stage %s (%s): %w", node.Stage(), node.Name(), err)
		}
	}
	return res, nil
}
