package dircmp

import (
	"fmt"
	"io"
)

// ReportOption represents optional parameters for report rendering
type ReportOption func(*reportOptions)

type reportOptions struct {
	showUnchanged bool
}

func defaultReportOptions() *reportOptions {
	return &reportOptions{
		showUnchanged: false,
	}
}

// WithUnchanged includes unchanged paths in the rendered report
func WithUnchanged() ReportOption {
	return func(opts *reportOptions) {
		opts.showUnchanged = true
	}
}

// WriteReport renders a comparison result as plain text, one line per
// path in sorted order. Unchanged paths are suppressed unless requested.
func WriteReport(w io.Writer, result *Result, options ...ReportOption) error {
	opts := defaultReportOptions()
	for _, opt := range options {
		opt(opts)
	}

	for _, warning := range result.Warnings {
		if _, err := fmt.Fprintf(w, "[!] %s: %v\n", warning.Path, warning.Error); err != nil {
			return err
		}
	}

	if !result.HasChanges() && !opts.showUnchanged {
		_, err := fmt.Fprintln(w, "No change has been found!")
		return err
	}

	if _, err := fmt.Fprintln(w, "Changes:"); err != nil {
		return err
	}

	for _, entry := range result.Entries {
		var line string

		switch entry.Type {
		case ChangeAdded:
			line = "[+] " + entry.Path
		case ChangeRemoved:
			line = "[-] " + entry.Path
		case ChangeModified:
			line = "[m] " + entry.Path
			if entry.Degraded {
				line += " (unverified: " + entry.Reason.Error() + ")"
			}
		case ChangeUnchanged:
			if !opts.showUnchanged {
				continue
			}
			line = "[=] " + entry.Path
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
