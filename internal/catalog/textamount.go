package catalog

import (
	"strings"

	"photolib/internal/storage"
)

// EstimateTextAmount buckets a photo description by word count. The bucket
// is a coarse proxy for how much text the image itself likely contains.
func EstimateTextAmount(description string) string {
	if description == "" {
		return storage.TextAmountNone
	}
	words := len(strings.Fields(description))
	if words < 3 {
		return storage.TextAmountMinimal
	}
	if words < 8 {
		return storage.TextAmountModerate
	}
	return storage.TextAmountSubstantial
}
