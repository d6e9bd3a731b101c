package catalog

import (
	"testing"

	"photolib/internal/storage"
)

func TestEstimateTextAmount(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{name: "empty", description: "", want: storage.TextAmountNone},
		{name: "one word", description: "cat", want: storage.TextAmountMinimal},
		{name: "two words", description: "black cat", want: storage.TextAmountMinimal},
		{name: "three words", description: "black cat sleeping", want: storage.TextAmountModerate},
		{name: "seven words", description: "a black cat sleeping on the sofa", want: storage.TextAmountModerate},
		{name: "eight words", description: "a black cat sleeping on the red sofa", want: storage.TextAmountSubstantial},
		{name: "whitespace runs", description: "  two   words  ", want: storage.TextAmountMinimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateTextAmount(tt.description); got != tt.want {
				t.Errorf("EstimateTextAmount(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}
