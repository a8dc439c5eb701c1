package container

import (
	"os"

	"bookmarks/marklint/internal/checker"
	"bookmarks/marklint/internal/config"
	"bookmarks/marklint/internal/report"
	"bookmarks/marklint/internal/service"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Checker checker.Checker
	Printer *report.Printer
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	printer := report.NewPrinter(os.Stdout)
	progress := report.NewDotProgress(os.Stdout)
	linkChecker := checker.New(cfg.Checker, progress)

	return &Container{
		Config:  cfg,
		Checker: linkChecker,
		Printer: printer,
		Service: service.NewService(linkChecker, printer),
	}, nil
}
