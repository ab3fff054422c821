// Package testutil provides test utilities and helpers for speccheck tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ValidContextJSON is a minimal context.json that satisfies the default
// context schema.
const ValidContextJSON = `{
  "task_description": "Add user authentication to the API"
}`

// ValidSpecMarkdown is a spec.md carrying every default required and
// recommended section.
const ValidSpecMarkdown = `# Test Spec

## Overview
Adds token-based authentication to the public API.

## Workflow Type
Feature development.

## Task Scope
Auth middleware and token issuance endpoints only.

## Success Criteria
All requests without a valid token are rejected with 401.

## Files to Modify
- internal/api/middleware.go

## Requirements
- Tokens expire after 24 hours.
`

// ValidPlanJSON is an implementation_plan.json with well-formed phases
// and subtasks.
const ValidPlanJSON = `{
  "feature": "API authentication",
  "workflow_type": "feature",
  "phases": [
    {
      "id": "phase-1",
      "name": "Middleware",
      "subtasks": [
        {"id": "task-1", "description": "Add auth middleware", "status": "pending"},
        {"id": "task-2", "description": "Wire middleware into router", "status": "pending"}
      ]
    },
    {
      "id": "phase-2",
      "name": "Token endpoints",
      "subtasks": [
        {"id": "task-3", "description": "Issue tokens", "status": "in_progress"}
      ]
    }
  ]
}`

// WriteBundle creates a spec bundle directory containing the three given
// artifact bodies. Returns the bundle directory. Cleanup is handled by
// t.TempDir.
func WriteBundle(t *testing.T, contextJSON, specMD, planJSON string) string {
	t.Helper()

	dir := t.TempDir()
	WriteArtifact(t, dir, "context.json", contextJSON)
	WriteArtifact(t, dir, "spec.md", specMD)
	WriteArtifact(t, dir, "implementation_plan.json", planJSON)
	return dir
}

// WriteValidBundle creates a bundle that passes every default checkpoint.
func WriteValidBundle(t *testing.T) string {
	t.Helper()
	return WriteBundle(t, ValidContextJSON, ValidSpecMarkdown, ValidPlanJSON)
}

// WriteArtifact writes one artifact file into dir.
func WriteArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
