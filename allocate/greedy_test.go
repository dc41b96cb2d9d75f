package allocate

import (
	"reflect"
	"testing"

	"github.com/rushteam/returnkit/core"
)

func TestAllocateWithTimes_FullAllocation(t *testing.T) {
	tests := []struct {
		name       string
		times      []float64
		capacities core.WarehouseCapacity
		wantPlan   map[string][]int
	}{
		{
			name:       "capacity exceeds batch",
			times:      []float64{10, 30, 20},
			capacities: core.WarehouseCapacity{"A": 2, "B": 2},
			// 排序后 [1,2,0]：1→A（容量平手取字典序），2→B（此时 B 剩余最多），0→A
			wantPlan: map[string][]int{"A": {1, 0}, "B": {2}},
		},
		{
			name:       "single warehouse",
			times:      []float64{5, 1, 3},
			capacities: core.WarehouseCapacity{"W1": 3},
			wantPlan:   map[string][]int{"W1": {0, 2, 1}},
		},
		{
			name:       "tie on time keeps index order",
			times:      []float64{7, 7, 7},
			capacities: core.WarehouseCapacity{"A": 3},
			wantPlan:   map[string][]int{"A": {0, 1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := AllocateWithTimes(tt.times, tt.capacities)
			if err != nil {
				t.Fatalf("AllocateWithTimes() error = %v", err)
			}
			if plan.Allocated != len(tt.times) {
				t.Errorf("Allocated = %d, want %d", plan.Allocated, len(tt.times))
			}
			if len(plan.Unallocated) != 0 {
				t.Errorf("Unallocated = %v, want empty", plan.Unallocated)
			}
			if !reflect.DeepEqual(plan.Assignments, tt.wantPlan) {
				t.Errorf("Assignments = %v, want %v", plan.Assignments, tt.wantPlan)
			}

			// 每个仓库分配数不得超过初始容量
			for w, items := range plan.Assignments {
				if len(items) > tt.capacities[w] {
					t.Errorf("warehouse %s got %d items, capacity %d", w, len(items), tt.capacities[w])
				}
			}
		})
	}
}

func TestAllocateWithTimes_CapacityExhausted(t *testing.T) {
	// 两个仓库各 1 槽位，三条退货，预估时长 [5, 50, 20]
	// 时长降序 → [1, 2, 0]：1 先放（容量平手取 A），2 放 B，0 留空
	times := []float64{5, 50, 20}
	capacities := core.WarehouseCapacity{"A": 1, "B": 1}

	plan, err := AllocateWithTimes(times, capacities)
	if err != nil {
		t.Fatalf("AllocateWithTimes() error = %v", err)
	}

	if plan.Allocated != 2 {
		t.Errorf("Allocated = %d, want 2", plan.Allocated)
	}
	if !reflect.DeepEqual(plan.Assignments["A"], []int{1}) {
		t.Errorf("A = %v, want [1]", plan.Assignments["A"])
	}
	if !reflect.DeepEqual(plan.Assignments["B"], []int{2}) {
		t.Errorf("B = %v, want [2]", plan.Assignments["B"])
	}
	if !reflect.DeepEqual(plan.Unallocated, []int{0}) {
		t.Errorf("Unallocated = %v, want [0]", plan.Unallocated)
	}
}

func TestAllocateWithTimes_ExactCount(t *testing.T) {
	// 总容量 C < 批次 N 时恰好分配 C 条
	times := []float64{9, 8, 7, 6, 5, 4}
	capacities := core.WarehouseCapacity{"A": 2, "B": 1}

	plan, err := AllocateWithTimes(times, capacities)
	if err != nil {
		t.Fatalf("AllocateWithTimes() error = %v", err)
	}
	if plan.Allocated != 3 {
		t.Errorf("Allocated = %d, want 3", plan.Allocated)
	}
	if got := len(plan.Unallocated); got != 3 {
		t.Errorf("len(Unallocated) = %d, want 3", got)
	}
}

func TestAllocateWithTimes_Deterministic(t *testing.T) {
	times := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	capacities := core.WarehouseCapacity{"north": 3, "south": 3, "east": 2}

	first, err := AllocateWithTimes(times, capacities)
	if err != nil {
		t.Fatalf("AllocateWithTimes() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := AllocateWithTimes(times, capacities)
		if err != nil {
			t.Fatalf("AllocateWithTimes() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}

func TestAllocateWithTimes_DoesNotMutateCapacities(t *testing.T) {
	capacities := core.WarehouseCapacity{"A": 2, "B": 1}
	if _, err := AllocateWithTimes([]float64{1, 2, 3}, capacities); err != nil {
		t.Fatalf("AllocateWithTimes() error = %v", err)
	}
	if capacities["A"] != 2 || capacities["B"] != 1 {
		t.Errorf("caller capacities mutated: %v", capacities)
	}
}

func TestAllocateWithTimes_InvalidCapacity(t *testing.T) {
	_, err := AllocateWithTimes([]float64{1}, core.WarehouseCapacity{"A": -1})
	if !core.IsInvalidCapacity(err) {
		t.Errorf("err = %v, want INVALID_CAPACITY", err)
	}
}

func TestAllocateWithTimes_FinalCapacityNeverNegative(t *testing.T) {
	times := []float64{2, 4, 6, 8}
	capacities := core.WarehouseCapacity{"A": 1, "B": 2}

	plan, err := AllocateWithTimes(times, capacities)
	if err != nil {
		t.Fatalf("AllocateWithTimes() error = %v", err)
	}
	// 每个仓库的最终容量 = 初始容量 - 分配数，不得为负
	for w, initial := range capacities {
		remaining := initial - len(plan.Assignments[w])
		if remaining < 0 {
			t.Errorf("warehouse %s remaining = %d", w, remaining)
		}
	}
	if plan.Allocated != 3 {
		t.Errorf("Allocated = %d, want 3", plan.Allocated)
	}
}
