// Package returnkit 是一个逆向物流决策工具包（Return Decision Kit）。
//
// 设计要点：
// - Pipeline-first: 批量决策通过 Node 串联（Risk → Disposition → Allocation → Transport → Sustainability）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - Predictor 可注入: 五个预测能力独立训练、显式注入（本地或 RPC 模型均可），链路本身无隐藏状态
package returnkit

import "github.com/rushteam/returnkit/pipeline"

// 轻量 facade：便于用户直接 import "returnkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Stage = pipeline.Stage

const (
	StageFeature        = pipeline.StageFeature
	StageRisk           = pipeline.StageRisk
	StageReview         = pipeline.StageReview
	StageDisposition    = pipeline.StageDisposition
	StageProcessing     = pipeline.StageProcessing
	StageAllocation     = pipeline.StageAllocation
	StageTransport      = pipeline.StageTransport
	StageSustainability = pipeline.StageSustainability
)
