package hdmr

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/stat/combin"
)

func TestCombinations(t *testing.T) {
	tests := []struct {
		name    string
		d       int
		order   int
		want    [][]int
		wantErr bool
	}{
		{
			name:  "order 1 of 3",
			d:     3,
			order: 1,
			want:  [][]int{{0}, {1}, {2}},
		},
		{
			name:  "order 2 of 4",
			d:     4,
			order: 2,
			want:  [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		},
		{
			name:  "order equals dimension",
			d:     3,
			order: 3,
			want:  [][]int{{0, 1, 2}},
		},
		{
			name:    "order exceeds dimension",
			d:       2,
			order:   3,
			wantErr: true,
		},
		{
			name:    "order zero",
			d:       4,
			order:   0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Combinations(tt.d, tt.order)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Combinations() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Combinations() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombinationsCount(t *testing.T) {
	// C(d, order) combinations, each a distinct sorted subset.
	for d := 1; d <= 6; d++ {
		for order := 1; order <= d; order++ {
			combos, err := Combinations(d, order)
			if err != nil {
				t.Fatalf("Combinations(%d, %d) error: %v", d, order, err)
			}
			if len(combos) != combin.Binomial(d, order) {
				t.Errorf("Combinations(%d, %d) produced %d combos, want %d",
					d, order, len(combos), combin.Binomial(d, order))
			}
			seen := map[string]bool{}
			for _, combo := range combos {
				for i := 1; i < len(combo); i++ {
					if combo[i-1] >= combo[i] {
						t.Errorf("Combinations(%d, %d): combo %v not strictly sorted", d, order, combo)
					}
				}
				key := ""
				for _, c := range combo {
					key += string(rune('a' + c))
				}
				if seen[key] {
					t.Errorf("Combinations(%d, %d): duplicate combo %v", d, order, combo)
				}
				seen[key] = true
			}
		}
	}
}

func TestCombinationsDeterministic(t *testing.T) {
	first, err := Combinations(6, 3)
	if err != nil {
		t.Fatalf("Combinations() error: %v", err)
	}
	second, err := Combinations(6, 3)
	if err != nil {
		t.Fatalf("Combinations() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two calls with the same inputs produced different sequences")
	}
}
