package validation

import (
	"fmt"
	"os"
	"path/filepath"
)

// PrereqsChecker verifies that the three expected artifact files exist in
// the bundle directory and are readable.
type PrereqsChecker struct {
	Dir string
}

// Check reports one error per missing or unreadable artifact file.
func (c *PrereqsChecker) Check() Result {
	result := Result{Checkpoint: CheckpointPrereqs, Valid: true}

	for _, name := range []string{ContextFileName, SpecFileName, PlanFileName} {
		path := filepath.Join(c.Dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				result.AddError(fmt.Sprintf("missing required file: %s", name))
			} else {
				result.AddError(fmt.Sprintf("cannot access %s: %v", name, err))
			}
			continue
		}
		if info.IsDir() {
			result.AddError(fmt.Sprintf("%s is a directory, not a file", name))
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			result.AddError(fmt.Sprintf("cannot read %s: %v", name, err))
			continue
		}
		f.Close()
	}

	return result
}
