package report

import (
	"fmt"
	"io"

	"bookmarks/marklint/internal/analysis"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Exit code bits. Codes are additive: dead links and duplicates together
// yield 3.
const (
	ExitDeadLinks  = 1
	ExitDuplicates = 2
)

// ExitCode composes the process exit code from the two findings.
func ExitCode(deadFound, dupesFound bool) int {
	code := 0
	if deadFound {
		code |= ExitDeadLinks
	}
	if dupesFound {
		code |= ExitDuplicates
	}
	return code
}

// Printer renders the human-readable report.
type Printer struct {
	w   io.Writer
	msg *message.Printer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:   w,
		msg: message.NewPrinter(language.English),
	}
}

// Summary prints the bookmark and unique-link counts with thousands
// separators.
func (p *Printer) Summary(total, unique int) {
	fmt.Fprintf(p.w, "Found %s bookmarks.\n", p.msg.Sprintf("%d", total))
	fmt.Fprintf(p.w, "found %s unique links.\n", p.msg.Sprintf("%d", unique))
}

func (p *Printer) TestingHeader() {
	fmt.Fprint(p.w, "\nTesting URLs:\n")
}

// DeadLinks lists every failing URL with its reason, in probe order. The
// order slice is the full list of checked URLs; entries without a failure
// are skipped.
func (p *Printer) DeadLinks(order []string, badURLs map[string]string) {
	fmt.Fprint(p.w, "\nThe following URLs had errors:\n")
	for _, url := range order {
		if reason, ok := badURLs[url]; ok {
			fmt.Fprintf(p.w, "    %s: %s\n", url, reason)
		}
	}
}

func (p *Printer) AllLinksOK() {
	fmt.Fprint(p.w, "\nAll links were retrieved successfully.\n")
}

// DuplicateURLs prints each duplicated URL followed by the indented folder
// paths it appears under.
func (p *Printer) DuplicateURLs(groups []analysis.URLGroup) {
	for _, group := range groups {
		fmt.Fprintln(p.w, group.URL)
		for _, path := range group.Paths {
			fmt.Fprintf(p.w, "    %s\n", path)
		}
	}
}

// IdenticalFolders prints the folder pairs whose link sets match. Nothing is
// printed when there are none.
func (p *Printer) IdenticalFolders(pairs []analysis.FolderPair) {
	if len(pairs) == 0 {
		return
	}
	fmt.Fprintln(p.w, "Identical children:")
	for _, pair := range pairs {
		fmt.Fprintf(p.w, "  %q and %q\n", pair.First, pair.Second)
	}
}

func (p *Printer) NothingToDo() {
	fmt.Fprintln(p.w, "Nothing else to do! (Both dead link check and duplicates check disabled).")
}
