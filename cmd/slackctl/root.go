// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opsmode/slackweb"
)

var (
	// Global flags
	flagJSON    bool
	flagVerbose bool

	cfg    config
	log    zerolog.Logger
	sender slackweb.RequestSender
)

type config struct {
	Token    string `envconfig:"SLACK_TOKEN" required:"true"`
	Endpoint string `envconfig:"SLACK_API_ENDPOINT"`
	LogLevel string `envconfig:"SLACKCTL_LOG_LEVEL" default:"info"`
}

var rootCmd = &cobra.Command{
	Use:           "slackctl",
	Short:         "A small command line frontend for the Slack Web API",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a .env file is optional
		_ = godotenv.Load()

		if err := envconfig.Process("", &cfg); err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
		}

		if flagVerbose {
			level = zerolog.DebugLevel
		}

		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().
			Timestamp().
			Logger().
			Level(level)

		client, err := slackweb.New(&http.Client{Timeout: 15 * time.Second}, cfg.Endpoint)
		if err != nil {
			return errors.Wrap(err, "failed to build API client")
		}

		sender = &loggingSender{s: client, log: log}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every API call")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loggingSender wraps a RequestSender and logs every call at debug level.
// Parameter values are never logged, only their keys; they can contain
// message text and tokens.
type loggingSender struct {
	s   slackweb.RequestSender
	log zerolog.Logger
}

func (l *loggingSender) SendAuthed(method, token string, params map[string]string) ([]byte, error) {
	start := time.Now()

	body, err := l.s.SendAuthed(method, token, params)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	l.log.Debug().
		Str("method", method).
		Strs("params", keys).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("api call")

	return body, err
}

func printJSON(v interface{}) error {
	j, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal output")
	}

	fmt.Println(string(j))

	return nil
}
