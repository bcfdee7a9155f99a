package wizard

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/tipowerup/tiext-setup/internal/console"
)

const selfBinary = "tiext-setup"

// pristineTemplate is a trimmed copy of the extension template as cloned.
var pristineTemplate = map[string]string{
	"composer.json": `{
    "name": "tipowerup/ti-ext-template",
    "description": "TastyIgniter extension template for TiPowerUp",
    "type": "tastyigniter-package",
    "license": "MIT",
    "require": {
        "php": "^8.2",
        "tastyigniter/core": "^4.0"
    },
    "require-dev": {
        "tipowerup/testbench": "^1.0",
        "pestphp/pest": "^3.0"
    },
    "autoload": {
        "psr-4": {
            "Tipowerup\\Template\\": "src/"
        }
    },
    "autoload-dev": {
        "psr-4": {
            "Tipowerup\\Template\\Tests\\": "tests/"
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
	"src/Extension.php": `<?php

declare(strict_types=1);

namespace Tipowerup\Template;

use Igniter\System\Classes\BaseExtension;

class Extension extends BaseExtension
{
}
`,
	"README.md": "# ti-ext-template\n\nRun the setup wizard to create your extension.\n",
	"README-TEMPLATE.md": "# TiPowerUp Template\n\nTastyIgniter extension template for TiPowerUp\n\n" +
		"    composer require tipowerup/ti-ext-template\n" +
		"    php artisan igniter:extension-install tipowerup.template\n\n" +
		"Namespace: `Tipowerup\\Template`\n" +
		"Repository: https://github.com/tipowerup/ti-ext-template\n",
	"LICENSE.md":               "Template repository license\n",
	"LICENSE-TEMPLATE-FREE.md": "MIT License\n\nCopyright (c) [YEAR] The Authors\n",
	"LICENSE-TEMPLATE-PAID.md": "TI Powerup License\n\nCopyright (c) [YEAR]. All rights reserved.\n",
	"resources/lang/en/default.php": `<?php

return [
    'text_title' => 'TiPowerUp Template',
    'text_help' => 'lang:tipowerup.template::default.text_title',
];
`,
	"tests/TestCase.php": `<?php

namespace Tipowerup\Template\Tests;

abstract class TestCase extends \Tipowerup\Testbench\TestCase
{
    protected function getExtensionProviders(): array
    {
        return [\Tipowerup\Template\Extension::class];
    }
}
`,
	"tests/Pest.php": `<?php

uses(Tipowerup\Template\Tests\TestCase::class)->in(__DIR__);
`,
	"tests/Feature/ExtensionTest.php": `<?php

use Tipowerup\Template\Extension;

it('registers the extension', function () {
    expect(app()->getProvider('Tipowerup\\Template\\Extension'))->not->toBeNull();
});
`,
	"SETUP.md":             "# Setup\n",
	"license-headers.md":   "# License headers\n",
	"tipowerup-license.md": "# TI Powerup License\n",
	selfBinary:             "\x7fELF",
}

var fixedNow = func() time.Time { return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC) }

type harness struct {
	fs  afero.Fs
	out *bytes.Buffer
	w   *Wizard
}

func newTemplateFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewBasePathFs(afero.NewMemMapFs(), "/")
	for path, content := range pristineTemplate {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
	}
	return fsys
}

// newHarness builds a wizard over a pristine template fed with the given
// answers, one per line.
func newHarness(t *testing.T, fsys afero.Fs, answers ...string) *harness {
	t.Helper()
	return newHarnessWithInput(t, fsys, strings.NewReader(strings.Join(answers, "\n")+"\n"))
}

func newHarnessWithInput(t *testing.T, fsys afero.Fs, in io.Reader) *harness {
	t.Helper()
	out := &bytes.Buffer{}
	w := New(Options{
		Fs:          fsys,
		In:          in,
		Console:     console.New(out, false),
		Interactive: true,
		Logger:      zerolog.Nop(),
		Now:         fixedNow,
		SelfPath:    selfBinary,
	})
	return &harness{fs: fsys, out: out, w: w}
}

// snapshot returns every regular file on fsys keyed by path.
func snapshot(t *testing.T, fsys afero.Fs) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := afero.Walk(fsys, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		files[strings.TrimPrefix(path, "/")] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func read(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

func exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
