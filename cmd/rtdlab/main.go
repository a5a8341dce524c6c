package main

import (
	"context"
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rtdlab/internal/config"
	"github.com/san-kum/rtdlab/internal/dataset"
	"github.com/san-kum/rtdlab/internal/export"
	"github.com/san-kum/rtdlab/internal/report"
	"github.com/san-kum/rtdlab/internal/rtd"
	"github.com/san-kum/rtdlab/internal/tui"
)

var (
	// Reactor and fluid parameters
	diameter         float64
	length           float64
	porosity         float64
	particleDiameter float64
	viscosity        float64
	density          float64
	// Pipeline behavior
	noClip bool
	// Config file and preset
	configFile string
	preset     string
	// Output selection
	runID   string
	outFile string
	// SVG size
	svgWidth  int
	svgHeight int
)

// main is the entry point for the rtdlab CLI; it registers commands and
// flags and executes the root command. It exits the process with status
// 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rtdlab",
		Short: "packed bed reactor RTD analyzer",
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [data.csv]",
		Short: "analyze tracer data and print the results table",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeData,
	}
	addParamFlags(analyzeCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [data.csv]",
		Short: "analyze tracer data and export the results table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	addParamFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	plotCmd := &cobra.Command{
		Use:   "plot [data.csv]",
		Short: "plot a run's E(t) curve in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	addParamFlags(plotCmd)
	plotCmd.Flags().StringVar(&runID, "run", "", "run identifier (default: first run)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [data.csv]",
		Short: "export a run's E(t) curve as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	addParamFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&runID, "run", "", "run identifier (default: first run)")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default RTD_Run_<id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 480, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list reactor parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%-12s D=%g m  L=%g m  ε=%g", name, cfg.Diameter, cfg.Length, cfg.Porosity)
				if cfg.Params().HasFluidProperties() {
					fmt.Printf("  Dp=%g m  μ=%g Pa·s  ρ=%g kg/m³", cfg.ParticleDiameter, cfg.Viscosity, cfg.Density)
				}
				fmt.Println()
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [data.csv]",
		Short: "browse analysis results interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runTUI,
	}
	addParamFlags(tuiCmd)

	rootCmd.AddCommand(analyzeCmd, exportCSVCmd, plotCmd, exportSVGCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "reactor diameter (m)")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "reactor length (m)")
	cmd.Flags().Float64Var(&porosity, "porosity", config.DefaultPorosity, "bed porosity")
	cmd.Flags().Float64Var(&particleDiameter, "particle-diameter", config.DefaultParticleDiameter, "particle diameter (m), 0 disables Reynolds")
	cmd.Flags().Float64Var(&viscosity, "viscosity", config.DefaultViscosity, "fluid viscosity (Pa·s), 0 disables Reynolds")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "fluid density (kg/m³), 0 disables Reynolds")
	cmd.Flags().BoolVar(&noClip, "no-clip", false, "keep negative concentration readings as-is")
	cmd.Flags().StringVar(&configFile, "config", "", "parameter file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
}

// loadConfig resolves the parameter set: defaults, then preset, then
// config file, with explicitly set CLI flags taking precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("diameter") {
		cfg.Diameter = diameter
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("porosity") {
		cfg.Porosity = porosity
	}
	if cmd.Flags().Changed("particle-diameter") {
		cfg.ParticleDiameter = particleDiameter
	}
	if cmd.Flags().Changed("viscosity") {
		cfg.Viscosity = viscosity
	}
	if cmd.Flags().Changed("density") {
		cfg.Density = density
	}
	if cmd.Flags().Changed("no-clip") {
		cfg.ClipNegative = !noClip
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// analyzeFile runs the full pipeline over a data file.
func analyzeFile(cmd *cobra.Command, path string) ([]rtd.Result, []error, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	traces, err := dataset.ParseCSV(f)
	if err != nil {
		return nil, nil, nil, err
	}

	results, errs := rtd.AnalyzeAll(context.Background(), traces, cfg.Params(), cfg.Options())
	return results, errs, cfg, nil
}

func analyzeData(cmd *cobra.Command, args []string) error {
	results, errs, cfg, err := analyzeFile(cmd, args[0])
	if err != nil {
		return err
	}

	table := report.Build(good(results, errs), cfg.Params().HasFluidProperties())
	if err := table.WriteText(os.Stdout); err != nil {
		return err
	}
	reportFailures(errs)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	results, errs, cfg, err := analyzeFile(cmd, args[0])
	if err != nil {
		return err
	}

	table := report.Build(good(results, errs), cfg.Params().HasFluidProperties())

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := table.WriteCSV(out); err != nil {
		return err
	}
	reportFailures(errs)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	curve, err := findCurve(cmd, args[0])
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(curve.E,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("E(t) for run %s, t ∈ [%.1f, %.1f] s, τ = %.2f s",
			curve.RunID, curve.Times[0], curve.Times[len(curve.Times)-1], curve.Tau)),
	)
	fmt.Println(graph)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	curve, err := findCurve(cmd, args[0])
	if err != nil {
		return err
	}

	svg := export.CurveSVG(curve, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("run %s has too few samples to plot", curve.RunID)
	}

	path := outFile
	if path == "" {
		path = fmt.Sprintf("RTD_Run_%s.svg", curve.RunID)
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	results, errs, _, err := analyzeFile(cmd, args[0])
	if err != nil {
		return err
	}
	return tui.Run(results, errs)
}

// findCurve analyzes the file and picks one run's curve, by --run id or
// defaulting to the first run.
func findCurve(cmd *cobra.Command, path string) (rtd.Curve, error) {
	results, errs, _, err := analyzeFile(cmd, path)
	if err != nil {
		return rtd.Curve{}, err
	}

	for i, r := range results {
		if runID != "" && r.RunID != runID {
			continue
		}
		if errs[i] != nil {
			return rtd.Curve{}, errs[i]
		}
		return r.Curve, nil
	}
	if runID != "" {
		return rtd.Curve{}, fmt.Errorf("no run %q in %s", runID, path)
	}
	return rtd.Curve{}, fmt.Errorf("no runs in %s", path)
}

// good filters out failed runs, preserving first-seen order.
func good(results []rtd.Result, errs []error) []rtd.Result {
	ok := make([]rtd.Result, 0, len(results))
	for i, r := range results {
		if errs[i] == nil {
			ok = append(ok, r)
		}
	}
	return ok
}

func reportFailures(errs []error) {
	for _, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipped %v\n", err)
		}
	}
}
