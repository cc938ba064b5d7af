// ogrender renders a card to a PNG file through the same pipeline as the
// server.
//
// Usage:
//
//	ogrender card --name alice.algo --network testnet -o alice.png
//	ogrender default -o default.png
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/youruser/nfdog/internal/app"
	"github.com/youruser/nfdog/internal/card"
	"github.com/youruser/nfdog/internal/config"
	"github.com/youruser/nfdog/internal/logging"
	"github.com/youruser/nfdog/internal/util"
)

var (
	outputFlag  string
	networkFlag string
	qrFlag      bool
	timeoutFlag time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ogrender",
		Short: "Render NFD social preview cards to PNG files",
	}
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "card.png", "Output PNG path")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 30*time.Second, "Overall render timeout")

	cardCmd := &cobra.Command{
		Use:   "card NAME",
		Short: "Render the card of an NFD name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.Context(), card.ParseRequest(args[0], networkFlag, fmt.Sprint(qrFlag)))
		},
	}
	cardCmd.Flags().StringVarP(&networkFlag, "network", "n", "mainnet", "NFD network (mainnet or testnet)")
	cardCmd.Flags().BoolVar(&qrFlag, "qr", false, "Add a QR code linking to the profile")

	defaultCmd := &cobra.Command{
		Use:   "default",
		Short: "Render the default card shown when no name is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.Context(), card.Request{})
		},
	}

	rootCmd.AddCommand(cardCmd, defaultCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func render(ctx context.Context, req card.Request) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	composer, err := app.NewComposer(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeoutFlag)
	defer cancel()
	res := composer.Compose(ctx, req)

	if err := util.EnsureParentDir(outputFlag); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outputFlag, res.PNG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputFlag, err)
	}
	fmt.Printf("wrote %s (%s, %dx%d)\n", outputFlag, res.Outcome, card.Width, card.Height)
	return nil
}
