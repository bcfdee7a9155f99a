// Package branding provides compile-time identity values for the setup wizard
// and the placeholder table of the template it personalizes.
//
// Forks of the extension template edit branding.yaml in this package so the
// wizard looks for their own placeholder strings. Go's //go:embed bakes the
// file into the binary.
package branding

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
	loadErr  error
)

// Template holds the literal strings found in the pristine template tree.
type Template struct {
	ComposerPackage      string `yaml:"composer_package"`
	Namespace            string `yaml:"namespace"`
	NamespaceEscaped     string `yaml:"namespace_escaped"`
	ExtensionSlug        string `yaml:"extension_slug"`
	ExtensionCode        string `yaml:"extension_code"`
	ExtensionName        string `yaml:"extension_name"`
	ExtensionDescription string `yaml:"extension_description"`
	TranslationKey       string `yaml:"translation_key"`
}

type brand struct {
	CLIName         string   `yaml:"cli_name"`
	DisplayName     string   `yaml:"display_name"`
	Description     string   `yaml:"description"`
	HostName        string   `yaml:"host_name"`
	PackagePrefix   string   `yaml:"package_prefix"`
	PaidLicenseName string   `yaml:"paid_license_name"`
	InstallCommand  string   `yaml:"install_command"`
	EnvPrefix       string   `yaml:"env_prefix"`
	Template        Template `yaml:"template"`
	SetupFiles      []string `yaml:"setup_files"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "tiext-setup",
			DisplayName:     "TastyIgniter Extension Setup",
			Description:     "Personalize a freshly cloned TastyIgniter extension template",
			HostName:        "TastyIgniter",
			PackagePrefix:   "ti-ext-",
			PaidLicenseName: "TI Powerup License",
			InstallCommand:  "php artisan igniter:extension-install",
			EnvPrefix:       "TIEXT",
			Template: Template{
				ComposerPackage:      "tipowerup/ti-ext-template",
				Namespace:            `Tipowerup\Template`,
				NamespaceEscaped:     `Tipowerup\\Template`,
				ExtensionSlug:        "ti-ext-template",
				ExtensionCode:        "tipowerup.template",
				ExtensionName:        "TiPowerUp Template",
				ExtensionDescription: "TastyIgniter extension template for TiPowerUp",
				TranslationKey:       "tipowerup.template",
			},
			SetupFiles: []string{"SETUP.md", "license-headers.md", "tipowerup-license.md"},
		}
		// Overlay with embedded YAML values. A parse error keeps the hard
		// defaults and is reported through Err.
		if err := yaml.Unmarshal(rawBranding, &defaults); err != nil {
			loadErr = fmt.Errorf("parsing embedded branding.yaml: %w", err)
		}
	})
}

// Err returns the error from parsing the embedded branding.yaml, if any.
func Err() error { load(); return loadErr }

// CLIName returns the root command name (e.g., "tiext-setup").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable tool name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short tool description.
func Description() string { load(); return defaults.Description }

// HostName returns the name of the host web framework (e.g., "TastyIgniter").
func HostName() string { load(); return defaults.HostName }

// PackagePrefix returns the prefix of extension package slugs (e.g., "ti-ext-").
func PackagePrefix() string { load(); return defaults.PackagePrefix }

// PaidLicenseName returns the display name of the commercial license.
func PaidLicenseName() string { load(); return defaults.PaidLicenseName }

// InstallCommand returns the host command that installs an extension by code.
func InstallCommand() string { load(); return defaults.InstallCommand }

// EnvPrefix returns the environment variable prefix (e.g., "TIEXT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Placeholders returns the template placeholder strings.
func Placeholders() Template { load(); return defaults.Template }

// Strings returns every non-empty placeholder, longest first so that a scan
// reports the most specific match.
func (t Template) Strings() []string {
	all := []string{
		t.ExtensionDescription, t.ComposerPackage, t.ExtensionName, t.NamespaceEscaped,
		t.ExtensionSlug, t.Namespace, t.ExtensionCode, t.TranslationKey,
	}
	out := make([]string, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, s := range all {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// SetupFiles returns the auxiliary template-only files removed during cleanup.
func SetupFiles() []string {
	load()
	out := make([]string, len(defaults.SetupFiles))
	copy(out, defaults.SetupFiles)
	return out
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("vendor") → "TIEXT_VENDOR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
