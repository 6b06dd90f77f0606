// Command runoff tracks money and ballot returns in the San Diego County
// District 1 Supervisor runoff.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sdvotes/runoff/internal/adapters/driven/config/file"
	"github.com/sdvotes/runoff/internal/adapters/driven/csvparse"
	fetchfile "github.com/sdvotes/runoff/internal/adapters/driven/fetch/file"
	"github.com/sdvotes/runoff/internal/adapters/driven/fetch/web"
	"github.com/sdvotes/runoff/internal/adapters/driven/storage/memory"
	"github.com/sdvotes/runoff/internal/adapters/driving/cli"
	"github.com/sdvotes/runoff/internal/core/ports/driven"
	"github.com/sdvotes/runoff/internal/core/services"
	"github.com/sdvotes/runoff/internal/logger"
)

// version is set by the build via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	if opts.DataBase != "" {
		settingsService.Override("data.base", opts.DataBase)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var fetcher driven.DatasetFetcher
	if settings.Data.IsRemote() {
		logger.Debug("fetching datasets from %s", settings.Data.Base)
		fetcher = web.NewFetcher(web.Config{
			BaseURL:           settings.Data.Base,
			RequestsPerSecond: settings.Fetch.RequestsPerSecond,
		})
	} else {
		logger.Debug("reading datasets from %s", settings.Data.Base)
		fetcher = fetchfile.NewFetcher(settings.Data.Base)
	}

	loader := services.NewDatasetLoader(fetcher, csvparse.NewParser(), memory.NewDatasetStore(), settingsService)

	return &cli.Services{
		Datasets:      loader,
		Expenditures:  services.NewExpenditureDashboard(loader, settingsService),
		Contributions: services.NewContributionDashboard(loader, settingsService),
		Ballots:       services.NewBallotDashboard(loader, settingsService),
		Settings:      settingsService,
	}, nil
}
