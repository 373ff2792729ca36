package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"

	"github.com/arabellachen/portfolio/internal/contact"
	"github.com/arabellachen/portfolio/internal/scene"
	"github.com/arabellachen/portfolio/internal/terminal"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio site and terminal viewer",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(viewCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			logger := newLogger(cfg, nil)
			r, err := newRouter(cfg, logger, logMailer{logger: logger.Named("mail")})
			if err != nil {
				return err
			}

			logger.Info("server starting", "port", cfg.Port)
			if err := r.Run(":" + cfg.Port); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func viewCmd() *cobra.Command {
	var (
		url  string
		dark bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the portfolio in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if url != "" {
				cfg.PortfolioURL = url
			}

			// The screen owns stderr while the view runs.
			logger := newLogger(cfg, io.Discard)

			mode := scene.Light
			if dark {
				mode = scene.Dark
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return terminal.Run(ctx, terminal.Options{
				Poster:         contact.NewClient(cfg.PortfolioURL),
				Mode:           mode,
				AcceptLanguage: localeFromEnv(),
				Logger:         logger,
			})
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "portfolio server URL (overrides PORTFOLIO_URL)")
	cmd.Flags().BoolVar(&dark, "dark", false, "start in dark mode")
	return cmd
}

// localeFromEnv turns LANG-style values such as zh_CN.UTF-8 into a language
// range the about block can match.
func localeFromEnv() string {
	for _, key := range []string{"LC_ALL", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}
