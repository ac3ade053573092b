package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/pocketledger/internal/adapter/terminal"
	"github.com/iho/pocketledger/internal/infrastructure/config"
	"github.com/iho/pocketledger/internal/infrastructure/logger"
	"github.com/iho/pocketledger/internal/infrastructure/storage"
	"github.com/iho/pocketledger/internal/usecase"
)

var errDrift = errors.New("balance drift detected")

// app holds what the commands share. openStore is replaced in tests.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	style  string

	openStore func(ctx context.Context) (usecase.RecordStore, zerolog.Logger, func() error, error)
}

func main() {
	a := &app{
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		openStore: openConfiguredStore,
	}

	if err := newRootCmd(a).Execute(); err != nil {
		if !usecase.IsInvalidInput(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func openConfiguredStore(ctx context.Context) (usecase.RecordStore, zerolog.Logger, func() error, error) {
	if err := config.LoadDotenv(".env"); err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, log, nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}

	return store, log, store.Close, nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pocketledger",
		Short:         "Pocket ledger",
		Long:          `Track a balance, income and expense transactions and saved cards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.style, "style", terminal.StyleAuto,
		`Output style: "raw" for plain markdown, "auto", or a glamour style name`)

	rootCmd.AddCommand(
		a.viewCmd("show", "Show balance, transactions, cards and summary"),
		a.viewCmd("balance", "Show the balance", terminal.PartBalance),
		a.viewCmd("transactions", "List transactions", terminal.PartTransactions),
		a.viewCmd("cards", "List saved cards", terminal.PartCards),
		a.viewCmd("summary", "Show the expense summary", terminal.PartSummary),
		a.reconcileCmd(),
		a.txCmd(),
		a.cardCmd(),
	)

	return rootCmd
}

// run opens the store, builds a use case over screen and runs fn with it.
func (a *app) run(cmd *cobra.Command, screen *terminal.Screen, surfaces usecase.Surfaces, prompter usecase.Prompter, fn func(context.Context, *usecase.LedgerUseCase) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, log, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer func() {
			if err := closeStore(); err != nil {
				log.Warn().Err(err).Msg("failed to close store")
			}
		}()
	}

	uc := usecase.NewLedgerUseCase(usecase.LedgerConfig{
		Store:    store,
		Surfaces: surfaces,
		Alerter:  terminal.Writer{Out: a.errOut},
		Prompter: prompter,
		Logger:   log,
	})

	if err := fn(ctx, uc); err != nil {
		return err
	}

	if screen == nil {
		return nil
	}
	return screen.Print(a.out, a.style)
}

func (a *app) viewCmd(use, short string, parts ...terminal.Part) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := terminal.NewScreen()
			return a.run(cmd, screen, screen.Surfaces(parts...), nil, func(ctx context.Context, uc *usecase.LedgerUseCase) error {
				return uc.Load(ctx)
			})
		},
	}
}

func (a *app) reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Compare the balance with the transaction log",
		Long:  `Compare the running balance with the net of the transaction log. Exits non-zero on drift; the balance is never rewritten.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, nil, usecase.Surfaces{}, nil, func(ctx context.Context, uc *usecase.LedgerUseCase) error {
				result, err := uc.Reconcile(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintf(a.out, "Recorded:   $%s\n", result.Recorded.StringFixed(2))
				fmt.Fprintf(a.out, "Derived:    $%s\n", result.Derived.StringFixed(2))
				fmt.Fprintf(a.out, "Difference: $%s\n", result.Difference.StringFixed(2))

				if !result.Reconciled {
					return errDrift
				}
				fmt.Fprintln(a.out, "Balance reconciled")
				return nil
			})
		},
	}
}

func (a *app) txCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}

	var form terminal.Form
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := terminal.NewScreen()
			surfaces := screen.Surfaces(terminal.PartBalance, terminal.PartTransactions, terminal.PartSummary)
			return a.run(cmd, screen, surfaces, nil, func(ctx context.Context, uc *usecase.LedgerUseCase) error {
				return uc.AddTransaction(ctx, &form)
			})
		},
	}
	addCmd.Flags().StringVar(&form.Description, "description", "", "Transaction description")
	addCmd.Flags().StringVar(&form.Amount, "amount", "", "Positive amount")
	addCmd.Flags().StringVar(&form.Type, "type", "income", `"income" or "expense"`)

	txCmd.AddCommand(addCmd)
	return txCmd
}

func (a *app) cardCmd() *cobra.Command {
	cardCmd := &cobra.Command{
		Use:   "card",
		Short: "Card operations",
	}

	addCmd := &cobra.Command{
		Use:   "add [number]",
		Short: "Save a card number, prompting for it when not given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prompter usecase.Prompter = terminal.NewLinePrompter(a.in, a.errOut)
			if len(args) == 1 {
				prompter = terminal.Answer(args[0])
			}

			screen := terminal.NewScreen()
			return a.run(cmd, screen, screen.Surfaces(terminal.PartCards), prompter, func(ctx context.Context, uc *usecase.LedgerUseCase) error {
				return uc.AddCard(ctx)
			})
		},
	}

	cardCmd.AddCommand(addCmd)
	return cardCmd
}
