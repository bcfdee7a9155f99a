package wizard

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tipowerup/tiext-setup/internal/branding"
	"github.com/tipowerup/tiext-setup/internal/console"
)

func (w *Wizard) showSuccess() {
	y := func(s string) string { return w.out.Colorize(s, console.Yellow) }

	w.out.Header("Setup Complete!")
	w.out.Println(w.out.Colorize(
		fmt.Sprintf("Your extension '%s' has been configured successfully!", w.cfg.Name), console.Green))
	w.out.Println()

	w.out.Info("Next steps:")
	w.out.Println("  1. Install dependencies:")
	w.out.Println("     " + y("composer install"))
	w.out.Println()
	w.out.Println("  2. Start building your extension in:")
	w.out.Println("     - " + y(ExtensionFile) + " for main extension class")
	w.out.Println("     - " + y("src/Models/") + " for Eloquent models")
	w.out.Println("     - " + y("src/Http/Controllers/") + " for controllers")
	w.out.Println("     - " + y("database/migrations/") + " for migrations")
	w.out.Println("     - " + y("resources/views/") + " for Blade views")
	w.out.Println("     - " + y("resources/lang/") + " for translations")
	w.out.Println()
	w.out.Println("  3. Run tests:")
	w.out.Println("     " + y("composer test"))
	w.out.Println()
	w.out.Println("  4. Install in " + branding.HostName() + ":")
	w.out.Println("     " + y(branding.InstallCommand()+" "+w.cfg.Code))
	w.out.Println()

	w.out.Success("Happy coding!")
}

// cleanup offers to remove the setup-only files and the wizard binary. Files
// already gone are skipped, so running it twice is harmless. A cancelled ctx
// leaves every file in place.
func (w *Wizard) cleanup(ctx context.Context) error {
	files := branding.SetupFiles()
	self := w.selfPath

	w.out.Header("Cleanup")
	w.out.Println()
	w.out.Warning(fmt.Sprintf("The setup files (%s) can now be removed.", joinNames(w.setupNames(files))))
	w.out.Println()

	remove, err := w.prompt.Confirm(ctx, "Do you want to delete the setup files? (RECOMMENDED)", true)
	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	if !remove {
		w.out.Info("Setup files kept. You can delete them manually later:")
		if self != "" {
			w.out.Println("  - " + w.out.Colorize(self, console.Yellow))
		}
		for _, f := range files {
			w.out.Println("  - " + w.out.Colorize(f, console.Yellow))
		}
		return nil
	}

	w.out.Info("Removing setup files...")
	for _, f := range files {
		w.removeReported(f)
	}

	if self == "" {
		w.out.Info("Setup binary is outside this directory; leaving it in place.")
	} else {
		w.out.Info("Removing setup script...")
		w.removeReported(self)
	}
	w.out.Success("Setup files removed")
	return nil
}

func (w *Wizard) removeReported(path string) {
	removed, err := w.engine.Remove(path)
	if err != nil {
		w.out.Warning(fmt.Sprintf("Could not remove %s: %v", path, err))
		return
	}
	if removed {
		w.out.Success(path + " removed")
	}
}

// setupNames lists the wizard binary (when known) and every setup file for
// the cleanup banner.
func (w *Wizard) setupNames(files []string) []string {
	var names []string
	if w.selfPath != "" {
		names = append(names, w.selfPath)
	}
	return append(names, files...)
}

// joinNames renders "a", "a and b" or "a, b and c".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// ResolveSelfPath returns exe relative to workDir when exe lives inside it,
// or "" otherwise. Binaries built by "go run" or installed on PATH resolve
// to "".
func ResolveSelfPath(workDir, exe string) string {
	if workDir == "" || exe == "" {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	if resolved, err := filepath.EvalSymlinks(workDir); err == nil {
		workDir = resolved
	}

	rel, err := filepath.Rel(workDir, exe)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}
