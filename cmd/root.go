package cmd

import (
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
	"github.com/dispatch-sim/dispatch-sim/sim/trace"
)

var (
	// CLI flags shared by run and sweep
	seed              int64   // Master seed for all random streams
	simulationHorizon float64 // Simulated time after which no event is processed
	logLevel          string  // Log verbosity level
	noColor           bool    // Disable ANSI colors in the report

	// CLI flags for a single run
	policyName    string  // Dispatch policy name
	serverCount   int     // Number of servers in the pool
	arrivalRate   float64 // Poisson arrival rate (requests per time unit)
	serviceMean   float64 // Mean of the normal service duration
	serviceStdDev float64 // Stddev of the normal service duration
	traceLevel    string  // Decision trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dispatch-sim",
	Short: "Discrete-event simulator for request dispatch policies",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single dispatch simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := runConfigFromFlags()
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("%v", err)
		}

		result, err := sim.Simulate(cfg)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		printReport(os.Stdout, aurora.NewAurora(!noColor), result)
		if result.Trace != nil {
			printTraceSummary(os.Stdout, aurora.NewAurora(!noColor), trace.Summarize(result.Trace))
		}

		logrus.Info("Simulation complete.")
	},
}

// runConfigFromFlags builds a sim.Config from the run command's flags.
func runConfigFromFlags() sim.Config {
	return sim.Config{
		Policy:        policyName,
		ServerCount:   serverCount,
		ArrivalRate:   arrivalRate,
		Horizon:       simulationHorizon,
		Seed:          seed,
		ServiceMean:   serviceMean,
		ServiceStdDev: serviceStdDev,
		TraceLevel:    trace.TraceLevel(traceLevel),
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	def := sim.DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	runCmd.Flags().Int64Var(&seed, "seed", def.Seed, "Seed for arrivals, service durations and random dispatch")
	runCmd.Flags().Float64Var(&simulationHorizon, "horizon", def.Horizon, "Total simulation horizon (simulated time units)")
	runCmd.Flags().StringVar(&policyName, "policy", def.Policy, "Dispatch policy ("+joinNames(sim.DispatchPolicyNames())+")")
	runCmd.Flags().IntVar(&serverCount, "servers", def.ServerCount, "Number of servers")
	runCmd.Flags().Float64Var(&arrivalRate, "rate", def.ArrivalRate, "Request arrivals per time unit")
	runCmd.Flags().Float64Var(&serviceMean, "service-mean", def.ServiceMean, "Mean service duration")
	runCmd.Flags().Float64Var(&serviceStdDev, "service-stddev", def.ServiceStdDev, "Stddev of service duration")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level (none, dispatches, events)")

	// Attach `run` and `sweep` as subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
