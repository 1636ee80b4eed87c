package cmd

import (
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dispatch-sim/dispatch-sim/sim/experiment"
)

var (
	// CLI flags for sweeps
	sweepConfigPath string // Optional YAML sweep definition
	sweepOutputPath string // Optional YAML results file
	sweepWorkers    int    // Concurrent simulations
)

// sweepCmd runs the policy × arrival-rate × server-count grid
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run every dispatch policy over a grid of arrival rates and server counts",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := sweepConfigFromFlags(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("%v", err)
		}

		au := aurora.NewAurora(!noColor)
		outcomes, err := experiment.Run(cfg, func(o experiment.Outcome) {
			printReport(os.Stdout, au, o.Result)
		})
		if err != nil {
			logrus.Fatalf("sweep failed: %v", err)
		}

		if sweepOutputPath != "" {
			if err := experiment.SaveResults(sweepOutputPath, outcomes); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Sweep results written to %s", sweepOutputPath)
		}
		logrus.Info("Sweep complete.")
	},
}

// sweepConfigFromFlags loads the sweep file if given, then applies flags the
// user set explicitly on top of it.
func sweepConfigFromFlags(cmd *cobra.Command) (*experiment.SweepConfig, error) {
	cfg := experiment.DefaultSweepConfig()
	if sweepConfigPath != "" {
		loaded, err := experiment.LoadSweepConfig(sweepConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("horizon") {
		cfg.Horizon = simulationHorizon
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = sweepWorkers
	}
	return cfg, nil
}

func init() {
	def := experiment.DefaultSweepConfig()

	sweepCmd.Flags().StringVar(&sweepConfigPath, "config", "", "YAML sweep definition (policies, arrival_rates, server_counts, ...)")
	sweepCmd.Flags().StringVar(&sweepOutputPath, "output", "", "Write per-run summaries to this YAML file")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", def.Workers, "Number of simulations to run concurrently")
	sweepCmd.Flags().Int64Var(&seed, "seed", def.Seed, "Seed shared by every run in the sweep")
	sweepCmd.Flags().Float64Var(&simulationHorizon, "horizon", def.Horizon, "Simulation horizon for every run")
}
