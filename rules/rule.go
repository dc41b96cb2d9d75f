package rules

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/returnkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("record", cel.DynType),
		cel.Variable("risk", cel.DynType),
		cel.Variable("params", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	if celEnv == nil && err == nil {
		err = fmt.Errorf("cel env not initialized")
	}
	return celEnv, err
}

// Rule 是业务规则解释器，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
//
// 表达式语法（CEL 标准语法），可用变量：
//   - record: 记录特征 map，如 record.price > 200.0
//   - risk: 该记录的退货概率（风险阶段之后可用），如 risk >= 0.5
//   - params: 请求级上下文参数，如 params.season == "peak"
//
// 示例：
//   - `risk >= 0.5 && record.price > 500.0` → 高价高风险订单
//   - `record.discount > 0.4` → 深折扣订单
type Rule struct {
	expr string
	prg  cel.Program
}

// NewRule 编译一条规则表达式。表达式只编译一次，Match 可以被并发调用。
func NewRule(expr string) (*Rule, error) {
	if expr == "" {
		return nil, fmt.Errorf("rule expression is empty")
	}
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}

	return &Rule{expr: expr, prg: prg}, nil
}

// Expr 返回规则的原始表达式（用于日志/解释标签）。
func (r *Rule) Expr() string { return r.expr }

// Match 对单条记录求值，返回布尔结果。
// risk 为该记录的退货概率（不可用时传 0），params 可为 nil。
func (r *Rule) Match(record *core.Record, risk float64, params map[string]any) (bool, error) {
	if record == nil {
		return false, nil
	}

	input := map[string]interface{}{
		"record": buildRecordInput(record),
		"risk":   risk,
		"params": params,
	}
	out, _, err := r.prg.Eval(input)
	if err != nil {
		// 访问不存在的 key 时 CEL 会报错；
		// 表达式应使用 record.key != null 检查存在性
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildRecordInput 构建 CEL 表达式的记录输入：特征平铺为顶层字段。
func buildRecordInput(record *core.Record) map[string]interface{} {
	input := make(map[string]interface{}, len(record.Features)+1)
	for k, v := range record.Features {
		input[k] = v
	}
	input["id"] = record.ID
	return input
}
