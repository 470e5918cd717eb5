// Command catbrowse is a terminal client for the cat distribution backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"catdistribution/backend/client"
	"catdistribution/backend/config"
	"catdistribution/backend/generator"
	"catdistribution/backend/logging"
	"catdistribution/backend/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		baseURL  string
		user     string
		token    string
		pageSize int
		interval time.Duration
		logFile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "catbrowse",
		Short:        "Browse, edit and generate cats from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return generator.ErrInvalidInterval
			}

			flush, err := logging.Install("production", logLevel, logFile)
			if err != nil {
				return err
			}
			defer flush()

			base := client.New(baseURL)
			base.Token = token
			cats := client.NewCatClient(base)

			defaults := config.Default()
			images := generator.StaticImage(defaults.CatAPI.DefaultImage)
			factory := generator.NewCatFactory(uint64(time.Now().UnixNano()), nameTaken(cats), images)

			model := tui.New(cats, client.NewLogClient(base), tui.Options{
				User:     user,
				PageSize: pageSize,
				Interval: interval,
				Factory:  factory.Generate,
			})
			defer model.Shutdown()

			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", envOr("CATDIST_URL", "http://localhost:8080/api"), "backend base URL")
	cmd.Flags().StringVarP(&user, "user", "u", envOr("CATDIST_USER", "admin"), "user recorded in operation logs")
	cmd.Flags().StringVar(&token, "token", os.Getenv("CATDIST_TOKEN"), "Firebase ID token sent as a bearer token")
	cmd.Flags().IntVar(&pageSize, "page-size", 9, "cats per page")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "how often local generation adds a cat")
	cmd.Flags().StringVar(&logFile, "log-file", "catbrowse.log", "where to write logs")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}

// nameTaken asks the backend whether a generated name is in use
func nameTaken(cats *client.CatClient) generator.NameTaken {
	return func(ctx context.Context, name string) (bool, error) {
		_, err := cats.GetByName(ctx, name)
		var statusErr *client.StatusError
		switch {
		case err == nil:
			return true, nil
		case errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound:
			return false, nil
		default:
			return false, err
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
