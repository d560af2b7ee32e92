package cmd

import (
	"os/signal"
	"syscall"

	"i18next-typesafe/core/loader"
	"i18next-typesafe/core/locale"
	"i18next-typesafe/core/logger"
	"i18next-typesafe/core/middleware/auth"
	"i18next-typesafe/core/middleware/rayid"

	"i18next-typesafe/feature/generate"
	"i18next-typesafe/feature/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title i18next-typesafe API
// @version 1.0
// @description Validation reports and key type generation for i18next catalogs.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve validation reports over HTTP",
	Long:  `Starts the HTTP server exposing the validation checks and the generated key type.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.logg.Sync()
		zap.ReplaceGlobals(rt.logg)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fsys := afero.NewOsFs()
		source, err := locale.Open(ctx, rt.cfg, fsys)
		if err != nil {
			return err
		}
		rt.logg.Info("Locale backend ready", zap.String("backend", rt.cfg.Backend))

		app, err := newServer(rt, source, fsys)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			rt.logg.Info("Starting server",
				zap.String("addr", rt.cfg.Server.Addr()),
				zap.Bool("auth", rt.cfg.Server.AuthEnabled()),
			)
			errCh <- app.Listen(rt.cfg.Server.Addr())
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		rt.logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(rt.cfg.Server.ShutdownTimeout())
	},
}

// newServer builds the fiber app with middleware and every feature loaded.
func newServer(rt *session, source locale.Source, fsys afero.Fs) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager(rt.logg)
	mgr.Register(validation.NewFeature(
		validation.NewService(validation.OptionsFromConfig(rt.cfg), source, fsys, rt.logg),
	))
	mgr.Register(generate.NewFeature(
		generate.NewGenerator(fsys, rt.cfg.Input, rt.cfg.Output, rt.logg),
	))

	// RayID first so every later log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(rt.logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(auth.New(rt.cfg.Server.ApiKey))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on")
	RootCmd.AddCommand(serveCmd)
}
