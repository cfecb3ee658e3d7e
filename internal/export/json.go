package export

import (
	"encoding/json"
	"fmt"
	"os"

	"covidstats/internal/transform"
)

// WriteJSON serializes the dataset directly as an array of arrays, no
// wrapping object: [["2020-10-12",3,5],...].
func WriteJSON(path string, ds transform.Dataset) error {
	data, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
