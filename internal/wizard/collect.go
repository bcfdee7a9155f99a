package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/tipowerup/tiext-setup/internal/branding"
	"github.com/tipowerup/tiext-setup/internal/console"
	"github.com/tipowerup/tiext-setup/internal/extension"
)

// License choices.
const (
	choiceFree = "1"
	choicePaid = "2"
)

var errInvalidChoice = errors.New("Please enter 1 for Free or 2 for Paid")

func validateChoice(s string) error {
	if s != choiceFree && s != choicePaid {
		return errInvalidChoice
	}
	return nil
}

// collect fills the configuration record field by field and derives the
// remaining fields once every input is valid.
func (w *Wizard) collect(ctx context.Context) error {
	w.out.Header("Extension Information")

	var err error
	c := &w.cfg

	c.Name, err = w.prompt.Ask(ctx, `Enter extension name (e.g., "My Awesome Extension")`, true, "", nil)
	if err != nil {
		return fmt.Errorf("reading extension name: %w", err)
	}

	c.Slug, err = w.prompt.Ask(ctx, `Enter extension slug (e.g., "my-extension")`, true,
		extension.SuggestSlug(c.Name), extension.ValidateSlug)
	if err != nil {
		return fmt.Errorf("reading extension slug: %w", err)
	}

	vendorDefault := ""
	if extension.ValidateSlug(w.defaultVendor) == nil {
		vendorDefault = w.defaultVendor
	}
	c.Vendor, err = w.prompt.Ask(ctx, `Enter vendor name (e.g., "tipowerup")`, true, vendorDefault, extension.ValidateSlug)
	if err != nil {
		return fmt.Errorf("reading vendor name: %w", err)
	}

	suggested := extension.SuggestNamespace(c.Vendor, c.Slug)
	c.Namespace, err = w.prompt.Ask(ctx, fmt.Sprintf("Enter PHP namespace (e.g., '%s')", suggested), false,
		suggested, extension.ValidateNamespace)
	if err != nil {
		return fmt.Errorf("reading namespace: %w", err)
	}

	c.Description, err = w.prompt.Ask(ctx, "Enter extension description (optional)", false,
		extension.DefaultDescription, extension.ValidateDescription)
	if err != nil {
		return fmt.Errorf("reading description: %w", err)
	}

	w.out.Header("License Type")
	w.out.Println("Choose the license type for your extension:")
	w.out.Printf("  %s - Free (MIT License) - Open source, can be freely distributed\n",
		w.out.Colorize(choiceFree, console.Yellow))
	w.out.Printf("  %s - Paid (%s) - Commercial, restricted distribution\n",
		w.out.Colorize(choicePaid, console.Yellow), branding.PaidLicenseName())
	w.out.Println()

	choice, err := w.prompt.Ask(ctx, "Enter choice (1 or 2)", true, "", validateChoice)
	if err != nil {
		return fmt.Errorf("reading license choice: %w", err)
	}
	c.IsFree = choice == choiceFree

	c.Derive()
	return nil
}
