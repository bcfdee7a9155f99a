package rewrite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// License files in the template tree.
const (
	LicenseFile         = "LICENSE.md"
	FreeLicenseTemplate = "LICENSE-TEMPLATE-FREE.md"
	PaidLicenseTemplate = "LICENSE-TEMPLATE-PAID.md"
	YearPlaceholder     = "[YEAR]"
)

// LicenseResult describes the outcome of SetupLicense.
type LicenseResult struct {
	Source  string // template chosen for the selected license
	Created bool   // LICENSE.md was written from Source
}

// LicenseTemplates returns the template to use and the one to discard.
func LicenseTemplates(isFree bool) (source, other string) {
	if isFree {
		return FreeLicenseTemplate, PaidLicenseTemplate
	}
	return PaidLicenseTemplate, FreeLicenseTemplate
}

// SetupLicense replaces LICENSE.md with the selected template, stamping the
// year into it. Both license templates are gone afterwards. A missing source
// template leaves the tree without a LICENSE.md.
func (e *Engine) SetupLicense(isFree bool, year int) (*LicenseResult, error) {
	source, other := LicenseTemplates(isFree)
	result := &LicenseResult{Source: source}

	e.discard(LicenseFile)

	if e.Exists(source) {
		data, err := afero.ReadFile(e.fs, source)
		if err != nil {
			return nil, fmt.Errorf("cannot read file: %s: %w", source, err)
		}

		content := strings.ReplaceAll(string(data), YearPlaceholder, strconv.Itoa(year))
		if err := afero.WriteFile(e.fs, LicenseFile, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("cannot write file: %s: %w", LicenseFile, err)
		}

		e.discard(source)
		result.Created = true
		e.reporter.Success(fmt.Sprintf("Created %s from %s", LicenseFile, source))
	}

	e.discard(other)
	return result, nil
}
