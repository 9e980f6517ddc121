package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/node-reporter/internal/adapter"
	"github.com/MKhiriev/node-reporter/internal/bandwidth"
	"github.com/MKhiriev/node-reporter/internal/clock"
	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/crypto"
	"github.com/MKhiriev/node-reporter/internal/diskusage"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/internal/service"
	"github.com/MKhiriev/node-reporter/internal/store"
	"github.com/MKhiriev/node-reporter/internal/workers"
)

// Options overrides collaborators that NewApp otherwise builds from the
// configuration. Zero fields fall back to the production implementations.
type Options struct {
	Vault    crypto.KeyVault
	Password PasswordSource
	Resolver adapter.AddressResolver
	Measurer diskusage.Measurer
	Clock    clock.Clock
}

type App struct {
	cfg      *config.StructuredConfig
	identity *crypto.Identity
	journal  store.Journal
	services *service.Services
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp unlocks the node identity and wires the telemetry pipeline. Any
// error returned here is meant to be fatal.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, opts Options, log *logger.Logger) (*App, error) {
	opts = withDefaultOptions(cfg, opts, log)

	identity, err := UnlockIdentity(cfg.Key.File, opts.Vault, opts.Password)
	if err != nil {
		return nil, fmt.Errorf("unlock node identity: %w", err)
	}
	log.Info().Str("node_id", identity.NodeID()).Msg(MsgIdentityUnlocked)

	a := &App{cfg: cfg, identity: identity, logger: log}
	if !cfg.Telemetry.IsEnabled() {
		return a, nil
	}

	if err = a.wireTelemetry(ctx, opts); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func withDefaultOptions(cfg *config.StructuredConfig, opts Options, log *logger.Logger) Options {
	if opts.Vault == nil {
		opts.Vault = crypto.NewKeyVault()
	}
	if opts.Password == nil {
		if cfg.Key.Password != "" {
			opts.Password = StaticPassword(cfg.Key.Password)
		} else {
			opts.Password = TerminalPassword("Key password: ")
		}
	}
	if opts.Resolver == nil {
		opts.Resolver = adapter.NewSTUNResolver(cfg.Network.STUNServers, 0, log.GetChildLogger())
	}
	if opts.Measurer == nil {
		opts.Measurer = diskusage.NewMeasurer()
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	return opts
}

func (a *App) wireTelemetry(ctx context.Context, opts Options) error {
	cfg := a.cfg

	reporter, err := adapter.NewHTTPReportAdapter(cfg.Telemetry, a.identity, a.logger.GetChildLogger())
	if err != nil {
		return fmt.Errorf("create report adapter: %w", err)
	}
	tester, err := adapter.NewHTTPSpeedTestAdapter(cfg.Telemetry, a.logger.GetChildLogger())
	if err != nil {
		return fmt.Errorf("create speed test adapter: %w", err)
	}

	journal, err := store.NewJournal(ctx, cfg.Storage, a.logger.GetChildLogger())
	if err != nil {
		return fmt.Errorf("open tick journal: %w", err)
	}
	a.journal = journal
	logJournalSummary(ctx, journal, a.logger)

	cache := bandwidth.NewCache(
		bandwidth.NewFileSampleStore(cfg.Telemetry.CachePath),
		tester,
		opts.Clock,
		cfg.Telemetry.FreshnessWindow,
		a.logger.GetChildLogger(),
	)

	contact := resolveContact(ctx, cfg.Network, a.identity.NodeID(), opts.Resolver, a.logger)

	services, err := service.NewServices(cfg, contact, service.TelemetryDeps{
		Bandwidth: cache,
		Measurer:  opts.Measurer,
		Reporter:  reporter,
		Journal:   journal,
		Clock:     opts.Clock,
	}, a.logger.GetChildLogger())
	if err != nil {
		return fmt.Errorf("create telemetry services: %w", err)
	}
	a.services = services
	a.workers = workers.NewWorkers(services.ReportJob)

	capacity, _ := cfg.Storage.CapacityBytes()
	a.logger.Info().
		Str("path", cfg.Storage.Path).
		Str("capacity", config.HumanCapacity(capacity)).
		Dur("interval", cfg.Telemetry.Interval).
		Str("endpoint", cfg.Telemetry.Endpoint).
		Msg("telemetry configured")
	return nil
}

// Run blocks until ctx is cancelled. With telemetry enabled the report job
// runs in the background meanwhile. Key material is wiped before Run
// returns.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if a.workers == nil {
		a.logger.Info().Msg(MsgTelemetryDisabled)
		<-ctx.Done()
	} else {
		a.workers.Run(ctx)
	}

	a.logger.Info().Str("cause", context.Cause(ctx).Error()).Msg(MsgShutdown)
	return nil
}

// Close wipes the private key and closes the journal. Safe to call twice.
func (a *App) Close() {
	if a.identity != nil {
		a.identity.Close()
	}
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("failed to close tick journal")
		}
		a.journal = nil
	}
}
