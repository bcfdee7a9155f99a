package manifest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ConstraintIssue is a dependency whose version constraint does not parse.
type ConstraintIssue struct {
	Section    string // "require" or "require-dev"
	Package    string
	Constraint string
	Err        error
}

func (c ConstraintIssue) String() string {
	return fmt.Sprintf("%s.%s: constraint %q is not a valid version range", c.Section, c.Package, c.Constraint)
}

type links struct {
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
}

// CheckConstraints parses every require and require-dev constraint.
// Composer stability flags (e.g. "@dev") and branch aliases ("dev-main") are
// not semver ranges and are reported.
func CheckConstraints(data []byte) ([]ConstraintIssue, error) {
	var l links
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	var issues []ConstraintIssue
	issues = append(issues, checkSection("require", l.Require)...)
	issues = append(issues, checkSection("require-dev", l.RequireDev)...)
	return issues, nil
}

func checkSection(section string, deps map[string]string) []ConstraintIssue {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	var issues []ConstraintIssue
	for _, name := range names {
		c := deps[name]
		if _, err := semver.NewConstraint(normalizeConstraint(c)); err != nil {
			issues = append(issues, ConstraintIssue{
				Section:    section,
				Package:    name,
				Constraint: c,
				Err:        err,
			})
		}
	}
	return issues
}

// normalizeConstraint rewrites Composer's single-pipe OR ("^8.2|^8.3") into
// the "||" form semver parses. Existing "||" separators are kept.
func normalizeConstraint(c string) string {
	return strings.ReplaceAll(strings.ReplaceAll(c, "||", "|"), "|", "||")
}
