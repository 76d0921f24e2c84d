package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodtrace/dailymood/internal/domain/emotion"
	"github.com/moodtrace/dailymood/internal/infra/config"
	"github.com/moodtrace/dailymood/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dailymood",
		Short: "Classify a day of emotion-valence readings",
	}

	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(strategiesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func classifyCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify one day's readings from a JSON file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			readings, err := readReadings(args)
			if err != nil {
				return fmt.Errorf("read readings: %w", err)
			}

			svc := emotion.NewService(cfg.EmotionDomain(), logger.New())
			res, err := svc.Classify(context.Background(), emotion.Request{
				Readings: readings,
				Strategy: emotion.Strategy(strategy),
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "override the configured strategy")
	return cmd
}

func strategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the supported classification strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range emotion.Strategies() {
				fmt.Println(s)
			}
			return nil
		},
	}
}

// readReadings decodes a JSON array of {"time": RFC3339, "valence": n}
// objects from the named file, or stdin when no file is given.
func readReadings(args []string) ([]emotion.Reading, error) {
	var src io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	var readings []emotion.Reading
	if err := json.NewDecoder(src).Decode(&readings); err != nil {
		return nil, err
	}
	return readings, nil
}
