package manifest

import (
	"fmt"

	"github.com/spf13/afero"
)

// Check runs the schema validation and the constraint check over the manifest
// at path and returns one human-readable finding per problem. The error return
// is for unreadable or malformed files.
func Check(fsys afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	var findings []string
	for _, issue := range result.Issues {
		findings = append(findings, issue.String())
	}

	constraints, err := CheckConstraints(data)
	if err != nil {
		return nil, fmt.Errorf("checking %s constraints: %w", path, err)
	}
	for _, c := range constraints {
		findings = append(findings, c.String())
	}

	return findings, nil
}
