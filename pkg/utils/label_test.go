package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			name:     "both populated",
			existing: Label{Value: "peak", Source: "rule"},
			incoming: Label{Value: "vip", Source: "risk"},
			want:     Label{Value: "peak|vip", Source: "rule,risk"},
		},
		{
			name:     "empty existing takes incoming",
			existing: Label{},
			incoming: Label{Value: "vip", Source: "risk"},
			want:     Label{Value: "vip", Source: "risk"},
		},
		{
			name:     "empty incoming keeps existing",
			existing: Label{Value: "peak", Source: "rule"},
			incoming: Label{},
			want:     Label{Value: "peak", Source: "rule"},
		},
		{
			name:     "missing incoming source",
			existing: Label{Value: "a", Source: "rule"},
			incoming: Label{Value: "b"},
			want:     Label{Value: "a|b", Source: "rule"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeLabel(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("MergeLabel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
