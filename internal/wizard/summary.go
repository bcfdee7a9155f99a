package wizard

import "github.com/tipowerup/tiext-setup/internal/console"

func (w *Wizard) showSummary() {
	c := w.cfg
	w.out.Header("Configuration Summary")

	rows := []struct {
		label string
		value string
	}{
		{"Extension Name:", c.Name},
		{"Extension Slug:", c.Slug},
		{"Vendor:", c.Vendor},
		{"Composer Package:", c.ComposerPackage},
		{"Extension Code:", c.Code},
		{"PHP Namespace:", c.Namespace},
		{"Translation Key:", c.TranslationKey},
		{"Description:", c.Description},
	}
	for _, row := range rows {
		w.out.Printf("%-20s%s\n", row.label, w.out.Colorize(row.value, console.Green))
	}

	licenseColor := console.Yellow
	if c.IsFree {
		licenseColor = console.Green
	}
	w.out.Printf("%-20s%s\n", "License:", w.out.Colorize(c.LicenseType, licenseColor))
	w.out.Println()
}
