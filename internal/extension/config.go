package extension

import (
	"strings"

	"github.com/tipowerup/tiext-setup/internal/branding"
)

// License values written to composer.json.
const (
	LicenseMIT         = "MIT"
	LicenseProprietary = "proprietary"
)

// DefaultDescription is offered when the user does not type a description.
const DefaultDescription = "A custom TastyIgniter extension"

// Config is the configuration record built during a wizard session. The
// primary fields are filled from user input; the derived fields are populated
// by Derive once every primary field has been validated.
type Config struct {
	Name        string `validate:"required"`
	Slug        string `validate:"required,slug"`
	Vendor      string `validate:"required,slug"`
	Namespace   string `validate:"required,namespace"`
	Description string `validate:"required,notblank"`
	IsFree      bool

	LicenseType      string `validate:"required"`
	ComposerPackage  string `validate:"required"`
	Code             string `validate:"required"`
	TranslationKey   string `validate:"required,eqfield=Code"`
	NamespaceEscaped string `validate:"required"`
	FullSlug         string `validate:"required"`
}

// Derive computes every derived field from the primary fields.
func (c *Config) Derive() {
	prefix := branding.PackagePrefix()

	c.LicenseType = LicenseType(c.IsFree)
	c.FullSlug = prefix + c.Slug
	c.ComposerPackage = c.Vendor + "/" + c.FullSlug
	c.Code = c.Vendor + "." + strings.ReplaceAll(c.Slug, "-", "")
	c.TranslationKey = c.Code
	c.NamespaceEscaped = EscapeNamespace(c.Namespace)
}

// ComposerLicense returns the SPDX-style license value for composer.json.
func (c *Config) ComposerLicense() string {
	if c.IsFree {
		return LicenseMIT
	}
	return LicenseProprietary
}

// LicenseType returns the display name of the license for the given choice.
func LicenseType(isFree bool) string {
	if isFree {
		return LicenseMIT
	}
	return branding.PaidLicenseName()
}

// EscapeNamespace doubles every namespace separator so the namespace can be
// embedded in a quoted string literal.
func EscapeNamespace(ns string) string {
	return strings.ReplaceAll(ns, NamespaceSeparator, NamespaceSeparator+NamespaceSeparator)
}
