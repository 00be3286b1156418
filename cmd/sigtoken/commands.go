package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sigtoken/pkg/codec"
	"github.com/dmitrymomot/sigtoken/pkg/config"
	"github.com/dmitrymomot/sigtoken/pkg/logger"
	"github.com/dmitrymomot/sigtoken/pkg/pg"
	"github.com/dmitrymomot/sigtoken/pkg/secrets"
	"github.com/dmitrymomot/sigtoken/pkg/token"
)

var errNoMasterKey = errors.New("TOKEN_SECRET_MASTER_KEY is not set")

// app holds the state shared by subcommands.
type app struct {
	log     *slog.Logger
	backend backendConfig
	envFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "sigtoken",
		Short:        "Issue and verify signed tokens",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.envFile != "" {
				if err := config.LoadEnv(a.envFile); err != nil {
					return err
				}
			}

			var lc logger.Config
			if err := config.Load(&lc); err != nil {
				return err
			}
			log, err := logger.NewFromConfig(lc, logger.WithOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			a.log = log

			return config.Load(&a.backend)
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Load environment variables from this file first")

	root.AddCommand(
		a.newIssueCmd(),
		a.newVerifyCmd(),
		a.newCheckCmd(),
		a.newKeygenCmd(),
		a.newSealCmd(),
		a.newMigrateCmd(),
	)
	return root
}

func (a *app) service(cmd *cobra.Command, strict bool) (*token.Service[json.RawMessage], func(), error) {
	b, err := openBackend(cmd.Context(), a.backend, a.log)
	if err != nil {
		return nil, nil, err
	}

	opts := []token.Option{token.WithLogger(a.log)}
	if strict {
		opts = append(opts, token.WithStrictSchema())
	}
	svc, err := token.New[json.RawMessage](b.source, opts...)
	if err != nil {
		b.close()
		return nil, nil, err
	}
	return svc, b.close, nil
}

func (a *app) newIssueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "issue [payload-json]",
		Short: "Sign a JSON payload (read from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			if !json.Valid(payload) {
				return fmt.Errorf("payload is not valid JSON")
			}

			svc, closeFn, err := a.service(cmd, false)
			if err != nil {
				return err
			}
			defer closeFn()

			tok, err := svc.Issue(cmd.Context(), json.RawMessage(payload))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
}

func (a *app) newVerifyCmd() *cobra.Command {
	var (
		strict bool
		fields []string
	)
	cmd := &cobra.Command{
		Use:   "verify [token]",
		Short: "Verify a token and print its payload (read from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			tok := strings.TrimSpace(string(raw))

			var schema any
			if strict {
				if schema, err = fieldSchema(fields); err != nil {
					return err
				}
			}

			svc, closeFn, err := a.service(cmd, strict)
			if err != nil {
				return err
			}
			defer closeFn()

			if !strict {
				payload, err := svc.Verify(cmd.Context(), tok)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}

			if err := svc.VerifyInto(cmd.Context(), tok, schema); err != nil {
				return err
			}
			p, err := token.Split(tok)
			if err != nil {
				return err
			}
			text, err := codec.DecodeText(p.Payload)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject payloads that are not objects or carry keys not listed with --field")
	cmd.Flags().StringSliceVar(&fields, "field", nil, "Allowed payload key for --strict (repeatable or comma-separated)")
	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Ping the secret backend and confirm a secret can be read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := openBackend(cmd.Context(), a.backend, a.log)
			if err != nil {
				return err
			}
			defer b.close()

			if b.check != nil {
				if err := b.check(cmd.Context()); err != nil {
					return err
				}
			}
			secret, err := b.source.Provide(cmd.Context())
			if err != nil {
				return err
			}

			a.log.InfoContext(cmd.Context(), "secret backend ready",
				logger.Source(a.backend.Backend),
				logger.Size("secret_bytes", len(secret)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func (a *app) newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a base64 master key for TOKEN_SECRET_MASTER_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := secrets.GenerateKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(key))
			return nil
		},
	}
}

func (a *app) newSealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seal [secret]",
		Short: "Encrypt a signing secret with the master key for storage in a backend",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.backend.MasterKey == "" {
				return errNoMasterKey
			}
			key, err := decodeMasterKey(a.backend.MasterKey)
			if err != nil {
				return err
			}
			secret, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}

			sealed, err := secrets.EncryptString(key, a.backend.Label, string(secret))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sealed)
			return nil
		},
	}
}

func (a *app) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the token_secrets table in PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pc pg.Config
			if err := config.Load(&pc); err != nil {
				return err
			}
			pool, err := pg.Connect(cmd.Context(), pc)
			if err != nil {
				return err
			}
			defer pool.Close()

			return pg.Migrate(cmd.Context(), pool, pc, a.log)
		},
	}
}

// argOrStdin returns args[0], or stdin when no argument or "-" was given.
func argOrStdin(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(string(data), "\r\n")), nil
}
