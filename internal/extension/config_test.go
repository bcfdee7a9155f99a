package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name            string
		vendor, slug    string
		namespace       string
		isFree          bool
		wantPackage     string
		wantCode        string
		wantFullSlug    string
		wantEscaped     string
		wantLicenseType string
		wantComposer    string
	}{
		{
			name: "free single word", vendor: "acme", slug: "widgets", namespace: `Acme\Widgets`, isFree: true,
			wantPackage: "acme/ti-ext-widgets", wantCode: "acme.widgets", wantFullSlug: "ti-ext-widgets",
			wantEscaped: `Acme\\Widgets`, wantLicenseType: "MIT", wantComposer: "MIT",
		},
		{
			name: "paid hyphenated", vendor: "my-vendor", slug: "cool-thing", namespace: `MyVendor\CoolThing`, isFree: false,
			wantPackage: "my-vendor/ti-ext-cool-thing", wantCode: "my-vendor.coolthing", wantFullSlug: "ti-ext-cool-thing",
			wantEscaped: `MyVendor\\CoolThing`, wantLicenseType: "TI Powerup License", wantComposer: "proprietary",
		},
		{
			name: "deep namespace", vendor: "acme", slug: "a-b-c", namespace: `Acme\Sub\Abc`, isFree: true,
			wantPackage: "acme/ti-ext-a-b-c", wantCode: "acme.abc", wantFullSlug: "ti-ext-a-b-c",
			wantEscaped: `Acme\\Sub\\Abc`, wantLicenseType: "MIT", wantComposer: "MIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Vendor: tt.vendor, Slug: tt.slug, Namespace: tt.namespace, IsFree: tt.isFree}
			c.Derive()

			assert.Equal(t, tt.wantPackage, c.ComposerPackage)
			assert.Equal(t, tt.wantCode, c.Code)
			assert.Equal(t, tt.wantCode, c.TranslationKey)
			assert.Equal(t, tt.wantFullSlug, c.FullSlug)
			assert.Equal(t, tt.wantEscaped, c.NamespaceEscaped)
			assert.Equal(t, tt.wantLicenseType, c.LicenseType)
			assert.Equal(t, tt.wantComposer, c.ComposerLicense())
		})
	}
}

func TestEscapeNamespace(t *testing.T) {
	assert.Equal(t, `Acme`, EscapeNamespace(`Acme`))
	assert.Equal(t, `A\\B\\C`, EscapeNamespace(`A\B\C`))
}
