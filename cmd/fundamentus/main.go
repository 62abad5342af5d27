// Command fundamentus exports the Fundamentus stock screener.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/fundamentus-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/fundamentus-cli/internal/adapters/driven/output"
	fileout "github.com/custodia-labs/fundamentus-cli/internal/adapters/driven/output/file"
	"github.com/custodia-labs/fundamentus-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/fundamentus-cli/internal/charset"
	"github.com/custodia-labs/fundamentus-cli/internal/connectors/fundamentus"
	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/services"
	"github.com/custodia-labs/fundamentus-cli/internal/normalisers/html"
	"github.com/custodia-labs/fundamentus-cli/internal/normalisers/ptbr"
)

// EnvHome overrides the configuration directory.
const EnvHome = "FUNDAMENTUS_HOME"

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal; a malformed one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	configStore, err := file.NewConfigStore(os.Getenv(EnvHome))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, os.Getenv)
	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	cli.SetVersion(version)
	cli.SetServices(newExportService(*settings), settingsService)
	return cli.Execute()
}

func newExportService(settings domain.Settings) *services.ExportService {
	return services.NewExportService(
		settings,
		fundamentus.NewFactory(settings.Source),
		charset.New(settings.Decoder.ReplacementThreshold),
		html.New(),
		ptbr.New(),
		fileout.NewStore(),
		output.Default(settings),
	)
}
