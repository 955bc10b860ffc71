package constants_test

import (
	"fmt"
	"path/filepath"

	"github.com/eridu-basin/stratcheck/pkg/constants"
)

// Example demonstrates resolving the default input documents.
func Example() {
	records := filepath.Join(constants.DefaultDataDir, constants.DefaultRecordsFile)
	reference := filepath.Join(constants.DefaultDataDir, constants.DefaultReferenceFile)

	fmt.Println(filepath.ToSlash(records))
	fmt.Println(filepath.ToSlash(reference))
	fmt.Println(constants.UndeterminedSentinel)

	// Output:
	// data/eridu_basin_stratigraphy.csv
	// data/organic_material_master_list.json
	// Undetermined
}
