package wizard

import (
	"context"
	"fmt"

	"github.com/tipowerup/tiext-setup/internal/branding"
	"github.com/tipowerup/tiext-setup/internal/extension"
	"github.com/tipowerup/tiext-setup/internal/manifest"
	"github.com/tipowerup/tiext-setup/internal/rewrite"
)

// Template files rewritten by the wizard.
const (
	ComposerFile    = "composer.json"
	ExtensionFile   = "src/Extension.php"
	LangFile        = "resources/lang/en/default.php"
	TestCaseFile    = "tests/TestCase.php"
	PestFile        = "tests/Pest.php"
	FeatureTestFile = "tests/Feature/ExtensionTest.php"
)

// TemplateFiles lists every file the wizard reads, rewrites or swaps in, in
// the order apply touches them.
func TemplateFiles() []string {
	return []string{
		rewrite.LicenseFile,
		rewrite.FreeLicenseTemplate,
		rewrite.PaidLicenseTemplate,
		ComposerFile,
		ExtensionFile,
		rewrite.ReadmeFile,
		rewrite.ReadmeTemplate,
		LangFile,
		TestCaseFile,
		PestFile,
		FeatureTestFile,
	}
}

// FileRewrite is one entry of the rewrite plan.
type FileRewrite struct {
	Path         string
	Replacements rewrite.Replacements
}

// Plan returns the ordered file rewrites for cfg. The license and README
// swaps happen around these rewrites and are not part of the plan.
func Plan(cfg *extension.Config) []FileRewrite {
	tpl := branding.Placeholders()

	composerLicense := rewrite.Pair{
		Search:  `"license": "MIT"`,
		Replace: fmt.Sprintf(`"license": "%s"`, cfg.ComposerLicense()),
	}
	namespaces := rewrite.Replacements{
		{Search: tpl.NamespaceEscaped, Replace: cfg.NamespaceEscaped},
		{Search: tpl.Namespace, Replace: cfg.Namespace},
	}

	return []FileRewrite{
		{
			Path: ComposerFile,
			Replacements: rewrite.Replacements{
				{Search: tpl.ComposerPackage, Replace: cfg.ComposerPackage},
				{Search: tpl.ExtensionDescription, Replace: cfg.Description},
				{Search: tpl.NamespaceEscaped, Replace: cfg.NamespaceEscaped},
				{Search: tpl.Namespace, Replace: cfg.Namespace},
				{Search: tpl.ExtensionCode, Replace: cfg.Code},
				{Search: tpl.ExtensionName, Replace: cfg.Name},
				composerLicense,
			},
		},
		{
			Path: ExtensionFile,
			Replacements: rewrite.Replacements{
				{Search: tpl.Namespace, Replace: cfg.Namespace},
			},
		},
		{
			Path: rewrite.ReadmeFile,
			Replacements: rewrite.Replacements{
				{Search: tpl.ExtensionName, Replace: cfg.Name},
				{Search: tpl.ExtensionDescription, Replace: cfg.Description},
				{Search: tpl.ComposerPackage, Replace: cfg.ComposerPackage},
				{Search: tpl.Namespace, Replace: cfg.Namespace},
				{Search: tpl.ExtensionCode, Replace: cfg.Code},
				{Search: tpl.ExtensionSlug, Replace: cfg.FullSlug},
			},
		},
		{
			Path: LangFile,
			Replacements: rewrite.Replacements{
				{Search: tpl.TranslationKey, Replace: cfg.TranslationKey},
			},
		},
		{Path: TestCaseFile, Replacements: namespaces},
		{Path: PestFile, Replacements: namespaces},
		{Path: FeatureTestFile, Replacements: namespaces},
	}
}

// apply rewrites the template tree. Missing files are skipped with a warning;
// read and write failures stop the run where they happen.
func (w *Wizard) apply(ctx context.Context) error {
	w.out.Header("Applying Configuration")

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("applying configuration: %w", err)
	}
	w.out.Info("Setting up license...")
	if _, err := w.engine.SetupLicense(w.cfg.IsFree, w.now().Year()); err != nil {
		return fmt.Errorf("setting up license: %w", err)
	}
	w.out.Success(fmt.Sprintf("License configured (%s)", w.cfg.LicenseType))

	for _, fr := range Plan(&w.cfg) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("applying configuration: %w", err)
		}

		if fr.Path == rewrite.ReadmeFile {
			w.out.Info("Setting up README.md...")
			if _, err := w.engine.SwapReadme(); err != nil {
				return err
			}
		} else {
			w.out.Info(fmt.Sprintf("Updating %s...", fr.Path))
		}

		status, err := w.engine.ReplaceInFile(fr.Path, fr.Replacements)
		if err != nil {
			return fmt.Errorf("rewriting %s: %w", fr.Path, err)
		}
		if status == rewrite.Missing {
			continue
		}
		w.out.Success(fr.Path + " updated")

		if fr.Path == ComposerFile {
			w.checkManifest()
		}
	}

	return nil
}

// checkManifest reports problems in the rewritten composer.json. It never fails
// the run.
func (w *Wizard) checkManifest() {
	findings, err := manifest.Check(w.engine.Fs(), ComposerFile)
	if err != nil {
		w.out.Warning(fmt.Sprintf("Could not check %s: %v", ComposerFile, err))
		return
	}
	for _, f := range findings {
		w.out.Warning(fmt.Sprintf("%s: %s", ComposerFile, f))
	}
}
