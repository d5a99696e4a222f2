package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"appserve/core/config"
	"appserve/core/handler"
	"appserve/core/logger"
	"appserve/core/server"
	"appserve/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title appserve API
// @version 1.0
// @description HTTP surface of the apps installed by a settings module.
// @host localhost:8000
// @BasePath /

var configFile string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [SETTINGS_PATH]",
	Short: "Serve the apps installed by a settings module",
	Long: `Locates the settings module (from SETTINGS_PATH, $APPSERVE_SETTINGS_MODULE
or ./settings.yaml), merges it into the live settings and serves every
installed app until interrupted.`,
	Args: zeroOrOneArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".", configFile, cmd.Flags())
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logg)

		// 3. Locate, import and merge settings
		proj, err := bootstrap(settingsArg(args), logg)
		if err != nil {
			return err
		}
		live, resolved := proj.settings, proj.resolved

		// LOGGING_CONFIG may have installed a new global logger.
		procName := cfg.Server.ProcNameOr(resolved.ModuleName)
		logg = zap.L().With(zap.String("proc", procName))
		defer logg.Sync()
		logg.Info("Loaded settings",
			zap.String("module", resolved.ModuleName),
			zap.Strings("installed_apps", live.InstalledApps))

		// 4. Connect to Database (Optional)
		db := connectDatabase(live, logg)

		// 5. Build the handler
		opts := handler.Options{
			Settings: live,
			ApiKey:   cfg.Server.ApiKey,
			ProcName: procName,
			Logger:   logg,
			DB:       db,
		}
		var app *fiber.App
		if mediaPath := cfg.Server.AdminMediaPath; mediaPath != "" {
			if storage.IsURL(mediaPath) {
				store, err := storage.NewClient(cfg.Storage)
				if err != nil {
					return fmt.Errorf("%w: %w", handler.ErrBuild, err)
				}
				opts.Storage = store
				opts.Bucket = cfg.Storage.Bucket
			}
			app, err = handler.BuildWithMedia(opts, mediaPath)
		} else {
			app, err = handler.Build(opts)
		}
		if err != nil {
			return err
		}

		// 6. Bind
		if err := cfg.Server.Validate(); err != nil {
			return err
		}
		ln, err := server.Listen(cfg.Server)
		if err != nil {
			return err
		}

		// 7. Serve until interrupted
		serveErr := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("bind", ln.Addr().String()))
			serveErr <- app.Listener(ln)
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case <-c:
			logg.Info("Shutting down server...")
			return app.Shutdown()
		case err := <-serveErr:
			return err
		}
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "server option file (yaml, toml or json)")
	f.String("bind", "127.0.0.1:8000", "address to listen on")
	f.String("api-key", "", "API key required by installed apps")
	f.String("name", "", "process name (defaults to the settings module name)")
	f.String("admin-media-path", "", "directory or s3://bucket/prefix served under ADMIN_MEDIA_PREFIX")
	f.String("log-level", "info", "bootstrap log level")
	f.String("log-format", "json", "bootstrap log format (json or console)")

	RootCmd.AddCommand(runCmd)
}
