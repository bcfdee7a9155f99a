package rewrite

import "fmt"

// README files in the template tree.
const (
	ReadmeFile     = "README.md"
	ReadmeTemplate = "README-TEMPLATE.md"
)

// SwapReadme moves README-TEMPLATE.md over README.md when the template variant
// exists. It reports whether a swap happened.
func (e *Engine) SwapReadme() (bool, error) {
	if !e.Exists(ReadmeTemplate) {
		return false, nil
	}

	e.discard(ReadmeFile)
	if err := e.fs.Rename(ReadmeTemplate, ReadmeFile); err != nil {
		return false, fmt.Errorf("renaming %s to %s: %w", ReadmeTemplate, ReadmeFile, err)
	}

	e.log.Debug().Str("from", ReadmeTemplate).Str("to", ReadmeFile).Msg("swapped readme")
	return true, nil
}
