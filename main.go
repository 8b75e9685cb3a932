package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MMN3003/carbondesk/src/Infrastructure/registry"
	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	"github.com/MMN3003/carbondesk/src/config"
	cronDomain "github.com/MMN3003/carbondesk/src/cron/domain"
	cronRepo "github.com/MMN3003/carbondesk/src/cron/repository"
	cronUC "github.com/MMN3003/carbondesk/src/cron/usecase"
	"github.com/MMN3003/carbondesk/src/ledger/adapter/simulated"
	ledger "github.com/MMN3003/carbondesk/src/ledger/domain"
	ledgerRepo "github.com/MMN3003/carbondesk/src/ledger/repository"
	"github.com/MMN3003/carbondesk/src/logger"
	mintHD "github.com/MMN3003/carbondesk/src/mint/delivery/http"
	mint "github.com/MMN3003/carbondesk/src/mint/usecase"
	notificationHD "github.com/MMN3003/carbondesk/src/notification/delivery/http"
	notification "github.com/MMN3003/carbondesk/src/notification/usecase"
	redeemHD "github.com/MMN3003/carbondesk/src/redeem/delivery/http"
	redeem "github.com/MMN3003/carbondesk/src/redeem/usecase"
	registryNet "github.com/MMN3003/carbondesk/src/registry/adapter/network"
	registryHD "github.com/MMN3003/carbondesk/src/registry/delivery/http"
	registryDomain "github.com/MMN3003/carbondesk/src/registry/domain"
	registryUC "github.com/MMN3003/carbondesk/src/registry/usecase"
	swapHD "github.com/MMN3003/carbondesk/src/swap/delivery/http"
	swapRepo "github.com/MMN3003/carbondesk/src/swap/repository"
	swap "github.com/MMN3003/carbondesk/src/swap/usecase"
	tokenHD "github.com/MMN3003/carbondesk/src/token/delivery/http"
	tokenDomain "github.com/MMN3003/carbondesk/src/token/domain"
	tokenRepo "github.com/MMN3003/carbondesk/src/token/repository"
	token "github.com/MMN3003/carbondesk/src/token/usecase"
	walletHD "github.com/MMN3003/carbondesk/src/wallet/delivery/http"
	wallet "github.com/MMN3003/carbondesk/src/wallet/usecase"
	whitelistHD "github.com/MMN3003/carbondesk/src/whitelist/delivery/http"
	whitelistRepo "github.com/MMN3003/carbondesk/src/whitelist/repository"
	whitelist "github.com/MMN3003/carbondesk/src/whitelist/usecase"

	_ "github.com/MMN3003/carbondesk/docs" // Swagger docs
	_ "github.com/lib/pq"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

//	@title			carbondesk API
//	@version		1.0
//	@description	Operator dashboard for tokenized carbon credits: swap quotes, minting, redemption, whitelist and registry configuration.
//	@BasePath		/

func main() {
	cfg := config.LoadFromEnv()
	logg := logger.New(cfg.Env)
	clk := clock.New()

	// --- Ledger backend ---
	var (
		led   ledger.Ledger
		locks cronDomain.CronRepository
	)
	switch cfg.Backend {
	case config.BackendLive:
		logg.Infof("Connecting to database")
		gormDB, err := gorm.Open(postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.DatabaseURL,
		}), &gorm.Config{
			Logger:         gormLogger.Default.LogMode(gormLogger.Warn),
			TranslateError: true,
		})
		if err != nil {
			logg.Fatalf("Failed to connect to database: %v", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			logg.Fatalf("Failed to get generic DB handle: %v", err)
		}
		defer sqlDB.Close()

		// Connection pool tuning
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(10 * time.Minute)

		led = ledgerRepo.NewJournal(gormDB, logg)
		locks = cronRepo.NewCronRepo(gormDB, logg)
	default:
		seed := append(simulated.SeedMintHistory(), simulated.SeedRedemptions()...)
		led = simulated.New(cfg.Ledger.SimulatedLatency, logg, simulated.WithOperations(seed...))
		locks = cronRepo.NewMemoryCronRepo()
	}

	// --- Notifications ---
	center := notification.NewCenter(clk, logg,
		notification.WithDefaultDuration(cfg.Notification.Duration),
		notification.WithStep(cfg.Notification.Step),
	)
	defer center.Close()

	// --- Tokens ---
	var catalog tokenDomain.Catalog
	if cfg.TokensFile != "" {
		c, err := tokenRepo.LoadCatalogFile(cfg.TokensFile)
		if err != nil {
			logg.Fatalf("Failed to load token catalog: %v", err)
		}
		catalog = c
	} else {
		c, err := tokenRepo.NewMemoryCatalog(tokenRepo.DefaultTokens())
		if err != nil {
			logg.Fatalf("Failed to build token catalog: %v", err)
		}
		catalog = c
	}
	factory := token.NewFactory(catalog, led, actionUC.NewRunner("create-token", center, logg), logg)

	// --- Wallet ---
	walletSvc := wallet.NewService(logg)

	// --- Swap ---
	engine := swap.NewEngine(swap.ParseArithmetic(cfg.Swap.Arithmetic))
	session, err := swap.NewSession(
		catalog,
		swapRepo.NewRateTable(cfg.Swap.DefaultRate),
		engine,
		led,
		actionUC.NewRunner("swap", center, logg),
		logg,
		cfg.Swap.DefaultSlippage,
		swap.WithAccount(walletSvc.Account),
	)
	if err != nil {
		logg.Fatalf("Failed to start swap session: %v", err)
	}
	defer session.Close()
	logg.Infof("Quote engine arithmetic: %s", engine.Mode())

	// --- Mint / Redeem / Whitelist ---
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mintSvc := mint.NewService(led, actionUC.NewRunner("mint", center, logg), walletSvc, logg)
	if err := mintSvc.Load(ctx); err != nil {
		logg.Fatalf("Failed to load mint history: %v", err)
	}
	redeemSvc := redeem.NewService(led, actionUC.NewRunner("redeem", center, logg), logg)
	if err := redeemSvc.Load(ctx); err != nil {
		logg.Fatalf("Failed to load redemptions: %v", err)
	}
	whitelistSvc := whitelist.NewService(
		whitelistRepo.NewMemoryRepo(whitelistRepo.SeedEntries()...),
		led,
		actionUC.NewRunner("whitelist", center, logg),
		logg,
	)

	// --- Registry ---
	var prober registryDomain.Prober
	if cfg.Registry.Endpoint != "" {
		prober = registryNet.NewHTTPProber(registry.NewClient(
			registry.WithLogger(logg.Zerolog()),
			registry.WithRateLimit(cfg.Registry.RateLimit),
		))
	} else {
		prober = registryNet.NewSimulatedProber(cfg.Ledger.SimulatedLatency, nil, logg)
	}
	registrySvc := registryUC.NewService(
		led,
		prober,
		actionUC.NewRunner("registry-save", center, logg),
		actionUC.NewRunner("registry-test", center, logg),
		clk,
		logg,
		registryDomain.Config{
			Endpoint:  cfg.Registry.Endpoint,
			APIKey:    cfg.Registry.APIKey,
			AccountID: cfg.Registry.AccountID,
		},
	)

	// --- Cron ---
	scheduler := cron.New(cron.WithSeconds())
	cronSvc := cronUC.NewService(scheduler, locks, logg)
	if err := registryUC.NewCronService(cronSvc, cfg.Registry.ProbeSchedule, registrySvc); err != nil {
		logg.Fatalf("Failed to schedule registry probe: %v", err)
	}

	// --- Router ---
	r := gin.New()

	// Core middleware
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logg.Infof("%s %s status:%d duration:%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	})

	// --- Healthcheck ---
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": cfg.Backend})
	})

	// --- Swagger ---
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- API routes ---
	notificationHD.NewHandler(center, logg).RegisterRoutes(r)
	tokenHD.NewHandler(catalog, factory, logg).RegisterRoutes(r)
	walletHD.NewHandler(walletSvc, logg).RegisterRoutes(r)
	swapHD.NewHandler(session, logg).RegisterRoutes(r)
	mintHD.NewHandler(mintSvc, logg).RegisterRoutes(r)
	redeemHD.NewHandler(redeemSvc, logg).RegisterRoutes(r)
	whitelistHD.NewHandler(whitelistSvc, logg).RegisterRoutes(r)
	registryHD.NewHandler(registrySvc, logg).RegisterRoutes(r)

	// --- Start server ---
	logg.Infof("Starting service on %s (env=%s, backend=%s)", cfg.ListenAddr, cfg.Env, cfg.Backend)
	logg.Infof("Swagger UI available at http://localhost%s/swagger/index.html", cfg.ListenAddr)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()
		<-scheduler.Stop().Done()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Infof("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logg.Fatalf("Server terminated unexpectedly: %v", err)
	}
}
