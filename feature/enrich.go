package feature

import (
	"context"
	"fmt"

	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/pipeline"
)

// EnrichNode 是特征补齐节点：预测开始前，用特征服务按记录 ID
// 补全订单/退货记录缺失的特征。
//
// 补齐策略：
//   - 只补缺失的 key，记录自带的特征值优先（调用方给的就是对的）
//   - 特征服务查不到某条记录（NOT_FOUND）时跳过该条，不视为错误——
//     schema 校验留给后续预测阶段统一把关
//
// 注意：这是链路中唯一会写记录 Features 的节点，显式启用才进链。
type EnrichNode struct {
	// Service 特征服务（store 后端或 feast）
	Service core.FeatureService

	// EnrichOrders / EnrichReturns 控制补齐范围，默认都不补
	EnrichOrders  bool
	EnrichReturns bool
}

func (n *EnrichNode) Name() string          { return "feature.enrich" }
func (n *EnrichNode) Stage() pipeline.Stage { return pipeline.StageFeature }

func (n *EnrichNode) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	_ *core.BatchResult,
) error {
	if n.Service == nil {
		return fmt.Errorf("feature service is required")
	}

	if n.EnrichOrders && len(dctx.Orders) > 0 {
		if err := n.enrich(ctx, dctx.Orders, n.Service.BatchGetOrderFeatures); err != nil {
			return fmt.Errorf("enrich orders: %w", err)
		}
	}
	if n.EnrichReturns && len(dctx.Returns) > 0 {
		if err := n.enrich(ctx, dctx.Returns, n.Service.BatchGetReturnFeatures); err != nil {
			return fmt.Errorf("enrich returns: %w", err)
		}
	}
	return nil
}

func (n *EnrichNode) enrich(
	ctx context.Context,
	records []*core.Record,
	fetch func(context.Context, []string) (map[string]map[string]float64, error),
) error {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if r != nil && r.ID != "" {
			ids = append(ids, r.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	batch, err := fetch(ctx, ids)
	if err != nil {
		return err
	}

	for _, r := range records {
		if r == nil {
			continue
		}
		features, ok := batch[r.ID]
		if !ok {
			continue
		}
		if r.Features == nil {
			r.Features = make(map[string]float64, len(features))
		}
		for k, v := range features {
			if _, exists := r.Features[k]; !exists {
				r.Features[k] = v
			}
		}
	}
	return nil
}
