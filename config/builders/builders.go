// Package builders 注册内置 Node 的配置构建器。
// 使用配置驱动时在入口处 import _ "github.com/rushteam/returnkit/config/builders"。
package builders

import (
	"fmt"

	"github.com/rushteam/returnkit/allocate"
	"github.com/rushteam/returnkit/config"
	"github.com/rushteam/returnkit/core"
	"github.com/rushteam/returnkit/disposition"
	"github.com/rushteam/returnkit/model"
	"github.com/rushteam/returnkit/pipeline"
	"github.com/rushteam/returnkit/pkg/conv"
	"github.com/rushteam/returnkit/risk"
	"github.com/rushteam/returnkit/rules"
	"github.com/rushteam/returnkit/service"
	"github.com/rushteam/returnkit/sustain"
	"github.com/rushteam/returnkit/transport"
)

func init() {
	config.Register("risk", buildRiskNode)
	config.Register("review", buildReviewNode)
	config.Register("disposition", buildDispositionNode)
	config.Register("processing", buildProcessingNode)
	config.Register("allocate", buildAllocateNode)
	config.Register("transport", buildTransportNode)
	config.Register("sustain", buildSustainNode)
}

// buildPredictor 根据 model 配置构建预测器。
// 支持：
//   - linear:   {type: linear, path: weights.json}
//   - logistic: {type: logistic, path: weights.json}
//   - rest:     {type: rest, endpoint: "http://...", model_name: risk}
//
// NearestCentroid 没有权重文件格式（质心在进程内拟合），
// 需要程序化组装（config.Standard），不走配置驱动。
func buildPredictor(cfg map[string]interface{}) (core.Predictor, error) {
	modelType := conv.ConfigGet[string](cfg, "type", "")
	switch modelType {
	case "linear":
		path := conv.ConfigGet[string](cfg, "path", "")
		if path == "" {
			return nil, fmt.Errorf("linear model requires path")
		}
		return model.LoadLinear(path)
	case "logistic":
		path := conv.ConfigGet[string](cfg, "path", "")
		if path == "" {
			return nil, fmt.Errorf("logistic model requires path")
		}
		return model.LoadLogistic(path)
	case "rest":
		endpoint := conv.ConfigGet[string](cfg, "endpoint", "")
		if endpoint == "" {
			return nil, fmt.Errorf("rest model requires endpoint")
		}
		name := conv.ConfigGet[string](cfg, "model_name", "")
		return &model.RPCPredictor{
			Service:   service.NewRESTClient(endpoint, name),
			ModelName: name,
		}, nil
	default:
		return nil, fmt.Errorf("unknown model type: %q", modelType)
	}
}

// buildClassifier 同 buildPredictor，但要求实现 core.Classifier。
func buildClassifier(cfg map[string]interface{}) (core.Classifier, error) {
	p, err := buildPredictor(cfg)
	if err != nil {
		return nil, err
	}
	if rpc, ok := p.(*model.RPCPredictor); ok {
		rpc.ClassNames = core.DispositionClasses()
		if classes := conv.ConfigGet[[]interface{}](cfg, "classes", nil); classes != nil {
			names := make([]string, 0, len(classes))
			for _, c := range classes {
				if s, ok := c.(string); ok {
					names = append(names, s)
				}
			}
			rpc.ClassNames = names
		}
	}
	c, ok := p.(core.Classifier)
	if !ok {
		return nil, fmt.Errorf("model type does not support probabilities")
	}
	return c, nil
}

func modelConfig(cfg map[string]interface{}, key string) map[string]interface{} {
	m, _ := cfg[key].(map[string]interface{})
	return m
}

func buildRiskNode(cfg map[string]interface{}) (pipeline.Node, error) {
	p, err := buildPredictor(modelConfig(cfg, "model"))
	if err != nil {
		return nil, fmt.Errorf("risk model: %w", err)
	}
	return &risk.Node{
		Predictor: p,
		Threshold: conv.ConfigGetFloat64(cfg, "threshold", 0),
	}, nil
}

func buildReviewNode(cfg map[string]interface{}) (pipeline.Node, error) {
	expr := conv.ConfigGet[string](cfg, "expr", "")
	rule, err := rules.NewRule(expr)
	if err != nil {
		return nil, fmt.Errorf("review rule: %w", err)
	}
	return &rules.ReviewNode{Rule: rule}, nil
}

func buildDispositionNode(cfg map[string]interface{}) (pipeline.Node, error) {
	c, err := buildClassifier(modelConfig(cfg, "model"))
	if err != nil {
		return nil, fmt.Errorf("disposition model: %w", err)
	}
	return &disposition.Node{Classifier: c}, nil
}

func buildProcessingNode(cfg map[string]interface{}) (pipeline.Node, error) {
	p, err := buildPredictor(modelConfig(cfg, "model"))
	if err != nil {
		return nil, fmt.Errorf("processing model: %w", err)
	}
	return &disposition.ProcessingTimeNode{Predictor: p}, nil
}

func buildAllocateNode(cfg map[string]interface{}) (pipeline.Node, error) {
	p, err := buildPredictor(modelConfig(cfg, "model"))
	if err != nil {
		return nil, fmt.Errorf("allocate model: %w", err)
	}
	return &allocate.Node{Allocator: &allocate.Greedy{Times: p}}, nil
}

func buildTransportNode(cfg map[string]interface{}) (pipeline.Node, error) {
	cost, err := buildPredictor(modelConfig(cfg, "cost_model"))
	if err != nil {
		return nil, fmt.Errorf("transport cost model: %w", err)
	}
	time, err := buildPredictor(modelConfig(cfg, "time_model"))
	if err != nil {
		return nil, fmt.Errorf("transport time model: %w", err)
	}
	return &transport.Node{Ranker: &transport.Ranker{Cost: cost, Time: time}}, nil
}

func buildSustainNode(cfg map[string]interface{}) (pipeline.Node, error) {
	ev := sustain.NewEvaluator()
	ev.CarbonFactor = conv.ConfigGetFloat64(cfg, "carbon_factor", ev.CarbonFactor)
	ev.WasteScore = conv.ConfigGetFloat64(cfg, "waste_score", ev.WasteScore)
	ev.RecoveryRecycle = conv.ConfigGetFloat64(cfg, "recovery_recycle", ev.RecoveryRecycle)
	ev.RecoveryRepair = conv.ConfigGetFloat64(cfg, "recovery_repair", ev.RecoveryRepair)
	ev.RecoveryDefault = conv.ConfigGetFloat64(cfg, "recovery_default", ev.RecoveryDefault)
	return &sustain.Node{Evaluator: ev}, nil
}
