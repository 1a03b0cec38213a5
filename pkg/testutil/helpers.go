// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/cesantias/internal/settlement"
)

// FindSettlement finds a settlement by employee name in the results slice.
// Returns a pointer to the settlement if found, nil otherwise.
func FindSettlement(results []settlement.Settlement, name string) *settlement.Settlement {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
