package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bookmarks/marklint/internal/analysis"
	"bookmarks/marklint/internal/checker"
	"bookmarks/marklint/internal/domain"
	"bookmarks/marklint/internal/parser"
	"bookmarks/marklint/internal/report"

	log "github.com/sirupsen/logrus"
)

// Options selects which checks a run performs.
type Options struct {
	CheckDead    bool   // probe every unique link over the network
	NoDuplicates bool   // disable the (default enabled) duplicate checks
	Limit        int    // cap on probed links, -1 for unlimited
	Format       string // "auto", "json" or "html"
	DumpTitles   string // when set, write the flattened path list to this file
}

type Service struct {
	checker checker.Checker
	printer *report.Printer
}

func NewService(checker checker.Checker, printer *report.Printer) *Service {
	return &Service{
		checker: checker,
		printer: printer,
	}
}

// Run parses the backup file and executes the selected checks, returning the
// process exit code. Parse failures abort the run with an error; check
// findings only raise the exit code.
func (s *Service) Run(ctx context.Context, backupPath string, opts Options) (int, error) {
	root, err := s.parseBackup(backupPath, opts.Format)
	if err != nil {
		return 0, err
	}

	allURLs := root.CollectURLs()
	uniqueURLs := analysis.UniqueURLs(root)
	s.printer.Summary(len(allURLs), len(uniqueURLs))

	if opts.DumpTitles != "" {
		if err := s.dumpTitles(root, opts.DumpTitles); err != nil {
			return 0, err
		}
	}

	deadFound := false
	dupesFound := false

	if opts.CheckDead {
		s.printer.TestingHeader()
		badURLs := s.checker.Verify(ctx, uniqueURLs, opts.Limit)
		if len(badURLs) > 0 {
			deadFound = true
			s.printer.DeadLinks(uniqueURLs, badURLs)
		} else {
			s.printer.AllLinksOK()
		}
	}

	if !opts.NoDuplicates {
		groups := analysis.FindDuplicateURLs(root)
		pairs := analysis.FindDuplicateFolderSets(root)
		s.printer.DuplicateURLs(groups)
		s.printer.IdenticalFolders(pairs)
		dupesFound = len(groups) > 0 || len(pairs) > 0
	}

	if !opts.CheckDead && opts.NoDuplicates {
		s.printer.NothingToDo()
	}

	return report.ExitCode(deadFound, dupesFound), nil
}

func (s *Service) parseBackup(backupPath, format string) (domain.Node, error) {
	file, err := os.Open(backupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	if format == "" || format == "auto" {
		format = detectFormat(backupPath)
	}

	log.Debugf("Parsing %s as %s", backupPath, format)

	switch format {
	case "html":
		return parser.ParseNetscapeHTML(file)
	case "json":
		return parser.ParseBackup(file)
	default:
		return nil, fmt.Errorf("unknown backup format %q", format)
	}
}

func detectFormat(backupPath string) string {
	switch strings.ToLower(filepath.Ext(backupPath)) {
	case ".html", ".htm":
		return "html"
	default:
		return "json"
	}
}

func (s *Service) dumpTitles(root domain.Node, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create titles dump file: %w", err)
	}
	defer file.Close()

	report.DumpTitles(file, root)
	log.Infof("Wrote bookmark titles to %s", path)
	return nil
}
