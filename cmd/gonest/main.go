// Command gonest runs the strip-packing optimiser end to end: it reads an
// instance (optionally warm-started from a prior solution), drives the
// exploration/compression pipeline, and writes the final solution as JSON
// and, optionally, SVG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/gonest/pkg/config"
	"github.com/dshills/gonest/pkg/ioformat"
	"github.com/dshills/gonest/pkg/listener"
	"github.com/dshills/gonest/pkg/optimizer"
	"github.com/dshills/gonest/pkg/report"
	"github.com/dshills/gonest/pkg/terminator"
)

const version = "0.1.0"

// CLI flags, matching spec's §6 driver boundary: -i, -t OR (-e AND -c),
// -s, --symmetric, -x, plus the usual output/format/verbosity flags in
// the teacher's style.
var (
	inputPath  = flag.String("i", "", "Path to instance (or warm-start {instance,solution}) JSON (required)")
	outputPath = flag.String("o", "solution.json", "Path to write the final solution JSON")
	svgPath    = flag.String("svg", "", "Optional path to render the final solution as SVG")
	configPath = flag.String("config", "", "Optional YAML tuning config (overrides Default())")
	logPath    = flag.String("logfile", "", "Optional path to additionally log phase transitions to (dual-sink with stderr)")

	totalTime   = flag.Duration("t", 0, "Total time limit, split evenly between exploration and compression (conflicts with -e/-c)")
	explTime    = flag.Duration("e", 0, "Exploration phase time limit (must be paired with -c)")
	cmprTime    = flag.Duration("c", 0, "Compression phase time limit (must be paired with -e)")
	seedFlag    = flag.Uint64("s", 0, "Master RNG seed (0 = derive from the system clock)")
	symmetric   = flag.Bool("symmetric", false, "Enable mirror-symmetry mode across the strip's midline")
	autoTerm    = flag.Bool("x", false, "Set AutoTerminate in the run config (recorded only; the optimiser does not act on it)")
	jsonLines   = flag.Bool("json-lines", false, "Report progress as JSON lines on stdout instead of plain text")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging of phase transitions")
	versionFlag = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gonest version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the CLI flags into a Config, loads the instance, executes the
// driver, and writes its output. It returns an error for an input,
// configuration or no-feasible-initial-solution failure, for a log or
// output file that cannot be opened or written, and for a final solution
// that leaves items unplaced or crosses the strip boundary.
func run() error {
	if *inputPath == "" {
		printUsage()
		return fmt.Errorf("-i is required")
	}

	cfg, err := buildConfig()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	if *verbose {
		logger.Printf("loading input from %s", *inputPath)
	}
	inst, warmStart, err := ioformat.ReadInput(*inputPath)
	if err != nil {
		return err
	}
	if *verbose {
		logger.Printf("instance %q: stripWidth=%.3f items=%d total-pieces=%d",
			inst.Name, inst.StripWidth, len(inst.Items), inst.TotalItemCount())
		if warmStart != nil {
			logger.Printf("warm start supplied: height=%.3f placements=%d", warmStart.Height, len(warmStart.Placements))
		}
		logger.Printf("seed=%d symmetric=%v autoTerminate=%v", cfg.Seed, cfg.Symmetric, cfg.AutoTerminate)
	}

	var sinks listener.Multi
	if *jsonLines {
		sinks = append(sinks, listener.NewJSONLines(os.Stdout))
	} else {
		sinks = append(sinks, listener.NewConsole(os.Stdout))
	}

	term := terminator.New()
	installSignalHandler(term)

	drv := optimizer.New(cfg, sinks)

	start := time.Now()
	sol, err := drv.Run(inst, warmStart, term)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	m := report.Compute(inst, sol)
	fmt.Print(report.Summary(m))
	if *verbose {
		logger.Printf("completed in %v", elapsed)
	}

	if err := ioformat.WriteSolutionToFile(sol, *outputPath); err != nil {
		return err
	}
	if *verbose {
		logger.Printf("wrote solution to %s", *outputPath)
	}

	if *svgPath != "" {
		if err := ioformat.SaveSVGToFile(inst, sol, *svgPath, ioformat.DefaultSVGOptions()); err != nil {
			return err
		}
		if *verbose {
			logger.Printf("wrote SVG to %s", *svgPath)
		}
	}

	if !report.Complete(m) {
		return fmt.Errorf("solution incomplete: %d/%d placed, %d bin-edge hazard(s)",
			m.PlacedCount, m.TotalCount, m.BinEdgeHazards)
	}
	return nil
}

// buildConfig layers CLI flags on top of an optional YAML config file,
// enforcing §6's mutually-exclusive timing flags before the driver is
// ever invoked (a configuration error, per §7, rejected before Run).
func buildConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	usesTotal := *totalTime > 0
	usesSplit := *explTime > 0 || *cmprTime > 0
	if usesTotal && usesSplit {
		return nil, fmt.Errorf("-t conflicts with -e/-c: choose one timing mode")
	}
	if usesSplit && (*explTime <= 0 || *cmprTime <= 0) {
		return nil, fmt.Errorf("-e and -c must be supplied together")
	}

	switch {
	case usesTotal:
		cfg.Exploration.TimeLimit = *totalTime / 2
		cfg.Compression.TimeLimit = *totalTime / 2
	case usesSplit:
		cfg.Exploration.TimeLimit = *explTime
		cfg.Compression.TimeLimit = *cmprTime
	}

	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = config.GenerateSeed()
	}
	cfg.Symmetric = cfg.Symmetric || *symmetric
	cfg.AutoTerminate = cfg.AutoTerminate || *autoTerm

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the CLI's phase-transition logger. It always writes to
// stderr and, when logPath is non-empty, additionally to that file,
// preserving the dual-sink behavior the original's init_logger had
// without adopting a third-party logging dependency. The returned close
// function is always safe to call, even when no file was opened.
func newLogger(logPath string) (*log.Logger, func(), error) {
	if logPath == "" {
		return log.New(os.Stderr, "gonest: ", log.LstdFlags), func() {}, nil
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	w := io.MultiWriter(os.Stderr, f)
	return log.New(w, "gonest: ", log.LstdFlags), func() { f.Close() }, nil
}

// installSignalHandler arranges for SIGINT/SIGTERM to set the
// Terminator's out-of-band kill flag, the cooperative cancellation path
// documented in §5: the Separator notices on its next poll (every 32
// candidates, and before each item copy or compaction move) and returns
// the best solution found so far rather than dying mid-run.
func installSignalHandler(term *terminator.Terminator) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		term.Kill()
	}()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: gonest -i <instance.json> [options]")
	fmt.Fprintln(os.Stderr, "Run 'gonest -help' for detailed help")
}

func printHelp() {
	fmt.Printf("gonest version %s\n\n", version)
	fmt.Println("A two-dimensional strip-packing optimiser.")
	fmt.Println("\nUsage:")
	fmt.Println("  gonest -i <instance.json> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -i string")
	fmt.Println("        Path to instance (or warm-start {instance,solution}) JSON")
	fmt.Println("\nTiming (choose exactly one mode):")
	fmt.Println("  -t duration")
	fmt.Println("        Total time limit, split evenly between phases")
	fmt.Println("  -e duration -c duration")
	fmt.Println("        Exploration and compression time limits (must both be set)")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -o string          Output solution JSON path (default: solution.json)")
	fmt.Println("  -svg string        Render the final solution as SVG to this path")
	fmt.Println("  -config string     YAML tuning config overriding the built-in defaults")
	fmt.Println("  -logfile string    Additionally log phase transitions to this file (dual-sink with stderr)")
	fmt.Println("  -s uint            Master RNG seed (0 = derive from the system clock)")
	fmt.Println("  -symmetric         Enable mirror-symmetry mode across the strip's midline")
	fmt.Println("  -x                 Set AutoTerminate in the run config (recorded only; not acted on)")
	fmt.Println("  -json-lines        Report progress as JSON lines instead of plain text")
	fmt.Println("  -verbose           Enable verbose logging of phase transitions")
	fmt.Println("  -version           Print version and exit")
	fmt.Println("  -help              Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  gonest -i instance.json -t 60s -o out.json -svg out.svg")
	fmt.Println("  gonest -i instance.json -e 30s -c 30s -symmetric -s 12345")
	fmt.Println("  gonest -i warmstart.json -t 1ms -o out.json  # re-emit a warm start near-unchanged")
}
