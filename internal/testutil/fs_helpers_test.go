package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteValidBundle(t *testing.T) {
	dir := WriteValidBundle(t)

	for _, name := range []string{"context.json", "spec.md", "implementation_plan.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestFixturesAreWellFormedJSON(t *testing.T) {
	for name, body := range map[string]string{
		"context": ValidContextJSON,
		"plan":    ValidPlanJSON,
	} {
		var data map[string]any
		if err := json.Unmarshal([]byte(body), &data); err != nil {
			t.Errorf("%s fixture is not valid JSON: %v", name, err)
		}
	}
}
