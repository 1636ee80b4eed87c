package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
	"github.com/dispatch-sim/dispatch-sim/sim/trace"
)

const reportRule = "--------------------------------------------------"

// printReport writes the console summary of one run.
func printReport(w io.Writer, au aurora.Aurora, res *sim.Result) {
	cfg := res.Config
	m := res.Metrics

	fmt.Fprintf(w, "%s %s, %s %v, %s %d\n",
		au.Cyan("Policy:"), au.Bold(cfg.Policy),
		au.Cyan("Arrival rate:"), cfg.ArrivalRate,
		au.Cyan("Servers:"), cfg.ServerCount)
	fmt.Fprintf(w, "%s %d (%d completed, %d in flight)\n",
		au.Bold("Total requests:"), res.TotalRequests, m.CompletedRequests, m.InFlight)
	fmt.Fprintf(w, "%s %s\n", au.Bold("Server busy utilizations:"), formatFloats(res.PerServerUtilization))
	fmt.Fprintf(w, "%s %s\n", au.Bold("Server service demand:"), formatFloats(m.ServiceDemand))
	fmt.Fprintf(w, "%s %s\n", au.Bold("Average response times:"), formatOptionals(res.PerServerMeanDuration))
	fmt.Fprintf(w, "%s %v\n", au.Bold("Requests per server:"), m.RequestCounts)
	fmt.Fprintf(w, "%s %s\n", au.Bold("Fairness (Jain):"), fairnessColor(au, m.Fairness))
	if d := m.Completed; d != nil {
		fmt.Fprintf(w, "%s mean=%.3f std=%.3f p50=%.3f p90=%.3f p99=%.3f max=%.3f\n",
			au.Bold("Response time:"), d.Mean, d.StdDev, d.P50, d.P90, d.P99, d.Max)
	}
	fmt.Fprintln(w, reportRule)
}

// printTraceSummary writes the decision-trace digest of a traced run.
func printTraceSummary(w io.Writer, au aurora.Aurora, s *trace.TraceSummary) {
	fmt.Fprintln(w, au.BgGreen(fmt.Sprintf("%-50s", "Decision trace")).Bold())
	fmt.Fprintf(w, "Dispatches: %d to %d servers\n", s.TotalDispatches, s.UniqueTargets)
	fmt.Fprintf(w, "Events recorded: %d\n", s.EventsProcessed)
	if s.EventsProcessed > 0 {
		fmt.Fprintf(w, "Load range: [%d, %d]\n", s.MinLoad, s.MaxLoad)
		if s.ClockMonotonic {
			fmt.Fprintf(w, "Clock: %s\n", au.Green("monotonic"))
		} else {
			fmt.Fprintf(w, "Clock: %s\n", au.Red("NOT monotonic"))
		}
	}
	fmt.Fprintln(w, reportRule)
}

func fairnessColor(au aurora.Aurora, f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	switch {
	case f >= 0.95:
		return au.Green(s).String()
	case f >= 0.8:
		return au.Brown(s).String()
	default:
		return au.Red(s).String()
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatOptionals(values []*float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = sim.FormatOptional(v, formatFloat)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
