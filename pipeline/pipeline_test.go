package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rushteam/returnkit/core"
)

// fakeNode 按配置写结果或失败。
type fakeNode struct {
	name  string
	stage Stage
	fail  error
	ran   bool
}

func (n *fakeNode) Name() string { return n.name }
func (n *fakeNode) Stage() Stage { return n.stage }

func (n *fakeNode) Process(_ context.Context, _ *core.DecisionContext, res *core.BatchResult) error {
	n.ran = true
	if n.fail != nil {
		return n.fail
	}
	if n.stage == StageRisk {
		res.RiskScores = []float64{0.5}
	}
	return nil
}

func TestPipeline_RunInOrder(t *testing.T) {
	first := &fakeNode{name: "a", stage: StageRisk}
	second := &fakeNode{name: "b", stage: StageDisposition}
	p := &Pipeline{Nodes: []Node{first, second}}

	res, err := p.Run(context.Background(), core.NewDecisionContext(nil))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !first.ran || !second.ran {
		t.Error("not all nodes ran")
	}
	if res.FailedStage != "" {
		t.Errorf("FailedStage = %q, want empty", res.FailedStage)
	}
}

func TestPipeline_StopsAtFailure(t *testing.T) {
	boom := errors.New("boom")
	first := &fakeNode{name: "a", stage: StageRisk}
	second := &fakeNode{name: "b", stage: StageAllocation, fail: boom}
	third := &fakeNode{name: "c", stage: StageTransport}
	p := &Pipeline{Nodes: []Node{first, second, third}}

	res, err := p.Run(context.Background(), core.NewDecisionContext(nil))
	if err == nil {
		t.Fatal("Run() error = nil, want failure")
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "allocation") || !strings.Contains(err.Error(), "b") {
		t.Errorf("err = %v, want stage and node name", err)
	}
	if third.ran {
		t.Error("node after failure still ran")
	}

	// 失败时返回部分结果：已完成阶段的结果保留
	if res == nil {
		t.Fatal("partial result is nil")
	}
	if res.FailedStage != string(StageAllocation) {
		t.Errorf("FailedStage = %q, want %q", res.FailedStage, StageAllocation)
	}
	if len(res.RiskScores) != 1 {
		t.Errorf("RiskScores = %v, want preserved", res.RiskScores)
	}
}

func TestPipeline_Empty(t *testing.T) {
	p := &Pipeline{}
	res, err := p.Run(context.Background(), core.NewDecisionContext(nil))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res == nil {
		t.Fatal("result is nil")
	}
}
