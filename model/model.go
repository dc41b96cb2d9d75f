// Package model 提供 core.Predictor 的本地实现与远程适配。
//
// 本地模型（Linear / Logistic / NearestCentroid）面向原型与测试：
// 训练是外部协作方的职责，线上通常经 RPCPredictor 挂接远程推理服务，
// 或用 LoadXXX 从 JSON 权重文件加载离线训练结果。
package model

import "sync"

// fitState 是各本地模型共享的训练状态标记。
// Fit 成功后置位；未置位时 Predict 返回 NOT_FITTED 错误。
type fitState struct {
	mu     sync.RWMutex
	fitted bool
}

func (s *fitState) markFitted() {
	s.mu.Lock()
	s.fitted = true
	s.mu.Unlock()
}

func (s *fitState) isFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}
