// Package wizard runs the interactive setup session that personalizes an
// extension template.
//
// A session is linear:
//
//	Start → Confirmed → Collecting → Summarized → Applying → Done
//
// with Aborted reachable from Start and Summarized when the user declines a
// confirmation. Field input goes through a prompt-validate-retry loop that
// keeps asking until the value is valid. The apply phase rewrites a fixed set
// of template files through the rewrite package; the final cleanup step can
// remove the setup-only files and the wizard binary itself.
package wizard
