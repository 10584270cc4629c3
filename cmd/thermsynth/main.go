package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Agrid-Dev/thermsynth/cmd/app"
	"github.com/Agrid-Dev/thermsynth/internal/ports"
	"github.com/Agrid-Dev/thermsynth/internal/scenario"
	"github.com/Agrid-Dev/thermsynth/internal/sink"
	"github.com/Agrid-Dev/thermsynth/internal/synth"
	"github.com/Agrid-Dev/thermsynth/internal/temps"
	"github.com/Agrid-Dev/thermsynth/internal/validate"
)

func main() {
	var appConfigPath string

	root := &cobra.Command{
		Use:           "thermsynth",
		Short:         "synthesize hourly household natural-gas usage tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&appConfigPath, "app-config", "", "path to app config (.yaml/.yml/.json)")

	root.AddCommand(newGenerateCmd(&appConfigPath), newValidateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "thermsynth:", err)
		os.Exit(1)
	}
}

func newGenerateCmd(appConfigPath *string) *cobra.Command {
	var tablePath string
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "run every scenario in a scenario table, one output file each",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(*appConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			logger := app.NewLogger(cfg.Log.Level)

			scenarios, err := scenario.LoadTable(tablePath)
			if err != nil {
				return err
			}

			sinks := []ports.RecordSink{sink.CSV{}}
			if cfg.Sink.MQTT.Enabled {
				m, err := sink.NewMQTT(sink.MQTTConfig{
					BrokerURL: cfg.Sink.MQTT.BrokerURL,
					ClientID:  cfg.Sink.MQTT.ClientID,
					BaseTopic: cfg.Sink.MQTT.BaseTopic,
					QoS:       cfg.Sink.MQTT.QoS,
					Retain:    cfg.Sink.MQTT.Retain,
					Username:  cfg.Sink.MQTT.Username,
					Password:  cfg.Sink.MQTT.Password,
				})
				if err != nil {
					return err
				}
				if err := m.Connect(); err != nil {
					return err
				}
				defer m.Close()
				sinks = append(sinks, m)
			}

			gen := synth.New(cfg.Seed, logger)
			for _, sc := range scenarios {
				series, err := temps.Load(sc.TempsCSV)
				if err != nil {
					return fmt.Errorf("scenario %s: %w", sc.ID, err)
				}

				records, err := gen.Generate(sc, series)
				if err != nil {
					return fmt.Errorf("scenario %s: %w", sc.ID, err)
				}
				for _, s := range sinks {
					if err := s.Write(sc, records); err != nil {
						return fmt.Errorf("scenario %s: %w", sc.ID, err)
					}
				}
				logger.Info("scenario complete",
					"scenario", sc.ID, "rows", len(records), "out", sc.OutCSV)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tablePath, "config", "scenarios.csv", "path to scenario table (.csv/.yaml/.yml)")
	cmd.Flags().Int64Var(&seed, "seed", synth.DefaultSeed, "global seed override")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <out.csv> [out.csv ...]",
		Short: "check generated output tables for format and ordering defects",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				rep, err := validate.Check(path)
				if err != nil {
					return err
				}

				fmt.Printf("%s\n", rep.Path)
				fmt.Printf("  rows: %d\n", rep.Rows)
				fmt.Printf("  avg daily total: %.3f therms/day\n", rep.MeanDailyTotal)
				fmt.Printf("  zero-usage hours: %.2f%%\n", rep.ZeroHourPct)
				for _, p := range rep.Problems {
					fmt.Printf("  problem: %s\n", p)
				}
				if !rep.OK() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed validation", failed)
			}
			return nil
		},
	}
}
