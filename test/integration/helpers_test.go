//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// templateFiles is a minimal extension template checkout.
var templateFiles = map[string]string{
	"composer.json": `{
    "name": "tipowerup/ti-ext-template",
    "description": "TastyIgniter extension template for TiPowerUp",
    "type": "tastyigniter-package",
    "license": "MIT",
    "require": {
        "tastyigniter/core": "^4.0"
    },
    "autoload": {
        "psr-4": {
            "Tipowerup\\Template\\": "src/"
        }
    },
    "extra": {
        "tastyigniter-extension": {
            "code": "tipowerup.template",
            "name": "TiPowerUp Template"
        }
    }
}
`,
	"src/Extension.php":               "<?php\n\nnamespace Tipowerup\\Template;\n\nclass Extension {}\n",
	"README.md":                       "# ti-ext-template\n",
	"README-TEMPLATE.md":              "# TiPowerUp Template\n\ncomposer require tipowerup/ti-ext-template\n",
	"LICENSE.md":                      "Template license\n",
	"LICENSE-TEMPLATE-FREE.md":        "MIT License\n\nCopyright (c) [YEAR]\n",
	"LICENSE-TEMPLATE-PAID.md":        "TI Powerup License\n\nCopyright (c) [YEAR]\n",
	"resources/lang/en/default.php":   "<?php\n\nreturn ['help' => 'lang:tipowerup.template::default.title'];\n",
	"tests/TestCase.php":              "<?php\n\nnamespace Tipowerup\\Template\\Tests;\n",
	"tests/Pest.php":                  "<?php\n\nuses(Tipowerup\\Template\\Tests\\TestCase::class);\n",
	"tests/Feature/ExtensionTest.php": "<?php\n\nuse Tipowerup\\Template\\Extension;\n",
	"SETUP.md":                        "# Setup\n",
	"license-headers.md":              "# Headers\n",
	"tipowerup-license.md":            "# License\n",
	"tiext-setup":                     "binary",
}

// setupTemplate writes templateFiles into a fresh directory and returns it.
func setupTemplate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range templateFiles {
		writeFile(t, filepath.Join(dir, name), content)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertContains(t *testing.T, path, want string) {
	t.Helper()
	if got := readFile(t, path); !strings.Contains(got, want) {
		t.Errorf("%s: expected to contain %q, got:\n%s", path, want, got)
	}
}
