package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rushteam/returnkit/pkg/utils"
)

// Record 是决策链路中的统一承载结构：特征、元信息、标签。
// 同一结构按所在批次扮演不同角色：
//   - 订单记录（OrderRecord）：品类、价格、折扣、渠道、客户历史等特征
//   - 退货记录（ReturnRecord）：成色、使用时长、退货原因、仓库上下文等特征
//   - 运输选项（TransportOption）：起止类型、运输方式、距离、重量、体积等特征
//
// 特征编码由外部协作方完成，进入链路时已全部数值化（map[string]float64）。
// Labels 用于解释与策略驱动，贯穿各阶段透传。
type Record struct {
	ID       string
	Features map[string]float64
	Meta     map[string]any
	Labels   map[string]utils.Label
}

func NewRecord(id string) *Record {
	return &Record{
		ID:       id,
		Features: make(map[string]float64),
		Meta:     make(map[string]any),
		Labels:   make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (r *Record) PutLabel(key string, lbl utils.Label) {
	if r.Labels == nil {
		r.Labels = make(map[string]utils.Label)
	}
	if old, ok := r.Labels[key]; ok {
		r.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	r.Labels[key] = lbl
}

// featureKeys 返回记录特征名的有序列表，用于 schema 比较与错误提示。
func featureKeys(r *Record) []string {
	keys := make([]string, 0, len(r.Features))
	for k := range r.Features {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidateSchema 校验批次内所有记录的特征字段集合一致。
// 批次要求同构（uniformly-shaped）：任何记录字段集合与首条记录不同，
// 即返回 SCHEMA_MISMATCH 错误，链路不产生部分结果。
func ValidateSchema(module string, records []*Record) error {
	if len(records) == 0 {
		return nil
	}
	if records[0] == nil {
		return NewSchemaMismatchError(module, "record at index 0 is nil")
	}
	want := featureKeys(records[0])
	for i, r := range records[1:] {
		if r == nil {
			return NewSchemaMismatchError(module, fmt.Sprintf("record at index %d is nil", i+1))
		}
		got := featureKeys(r)
		if len(got) != len(want) {
			return NewSchemaMismatchError(module, fmt.Sprintf(
				"record %d has %d features, want %d ([%s] vs [%s])",
				i+1, len(got), len(want), strings.Join(got, ","), strings.Join(want, ",")))
		}
		for j := range want {
			if got[j] != want[j] {
				return NewSchemaMismatchError(module, fmt.Sprintf(
					"record %d feature set differs: has %q, want %q", i+1, got[j], want[j]))
			}
		}
	}
	return nil
}
