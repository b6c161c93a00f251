// Package main provides the CLI entrypoint for fittrack.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/fittrack/internal/config"
	"github.com/verte-zerg/fittrack/internal/model"
	"github.com/verte-zerg/fittrack/internal/packet"
	"github.com/verte-zerg/fittrack/internal/report"
	"github.com/verte-zerg/fittrack/internal/tui"
	"github.com/verte-zerg/fittrack/internal/workout"
)

const (
	formatMessage = "message"
	formatTable   = "table"

	defaultFormat = formatMessage
	defaultColor  = true
)

var (
	outputFormat string
	interactive  bool
	noColor      bool

	profileWeight float64
	profileHeight float64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	long := "fittrack converts raw fitness-sensor packets (a workout code plus numeric\n" +
		"counters) into workout summaries: duration, distance, mean speed, and\n" +
		"calories burned. Pass one packet as arguments or pipe packet lines to stdin."
	rootCmd := &cobra.Command{
		Use:           "fittrack [CODE VALUES...]",
		Short:         "Workout summary calculator for raw fitness-sensor packets",
		Long:          long,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().StringVar(&outputFormat, "format", defaultFormat, "output format: message or table")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse summaries in an interactive viewer")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output in the interactive viewer")
	rootCmd.Flags().Float64Var(&profileWeight, "weight", 0, "athlete weight in kg for short packets")
	rootCmd.Flags().Float64Var(&profileHeight, "height", 0, "athlete height in cm for short packets")

	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "format", &outputFormat, fileCfg.Output.Format)
	applyFloatConfig(cmd, "weight", &profileWeight, fileCfg.Profile.WeightKG)
	applyFloatConfig(cmd, "height", &profileHeight, fileCfg.Profile.HeightCM)

	useColor := defaultColor
	if fileCfg.Output.Color != nil {
		useColor = *fileCfg.Output.Color
	}
	if noColor {
		useColor = false
	}

	if err := validateOptions(); err != nil {
		return err
	}
	profile := model.Profile{WeightKG: profileWeight, HeightCM: profileHeight}

	var results []model.Result
	if len(args) > 0 {
		res, err := computeArgs(args, profile)
		if err != nil {
			return err
		}
		results = []model.Result{res}
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no packet given: pass CODE VALUES... or pipe packet lines to stdin (see 'fittrack types')")
		}
		results, err = computeStdin(cmd.InOrStdin(), profile)
		if err != nil {
			return err
		}
	}

	if interactive {
		program := tea.NewProgram(tui.NewModel(results, useColor), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run viewer: %w", err)
		}
		return nil
	}
	return render(cmd, results)
}

func computeArgs(args []string, profile model.Profile) (model.Result, error) {
	code, values, err := packet.ParseLine(strings.Join(args, " "))
	if err != nil {
		return model.Result{}, err
	}
	typ, reading, err := packet.Decode(code, values, profile)
	if err != nil {
		return model.Result{}, err
	}
	return workout.Compute(typ, reading)
}

func computeStdin(r io.Reader, profile model.Profile) ([]model.Result, error) {
	var results []model.Result
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, values, err := packet.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		typ, reading, err := packet.Decode(code, values, profile)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		res, err := workout.Compute(typ, reading)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		results = append(results, res)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no packets found on stdin")
	}
	return results, nil
}

func render(cmd *cobra.Command, results []model.Result) error {
	switch outputFormat {
	case formatTable:
		return report.RenderTable(cmd.OutOrStdout(), results)
	default:
		return report.RenderMessages(cmd.OutOrStdout(), results)
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported workout codes and their packet layouts",
		Args:  cobra.NoArgs,
		RunE:  runTypesCmd,
	}
}

func runTypesCmd(cmd *cobra.Command, _ []string) error {
	for _, code := range packet.Codes() {
		fields := packet.Fields(code)
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", code, strings.Join(fields, " ")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Compute the firmware sample packets",
		Args:  cobra.NoArgs,
		RunE:  runDemoCmd,
	}
}

func runDemoCmd(cmd *cobra.Command, _ []string) error {
	samples := []struct {
		code   string
		values []float64
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}},
		{"RUN", []float64{15000, 1, 75}},
		{"WLK", []float64{9000, 1, 75, 180}},
	}
	results := make([]model.Result, 0, len(samples))
	for _, sample := range samples {
		typ, reading, err := packet.Decode(sample.code, sample.values, model.Profile{})
		if err != nil {
			return err
		}
		res, err := workout.Compute(typ, reading)
		if err != nil {
			return err
		}
		results = append(results, res)
	}
	return report.RenderMessages(cmd.OutOrStdout(), results)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateOptions() error {
	if outputFormat != formatMessage && outputFormat != formatTable {
		return fmt.Errorf("--format must be %q or %q", formatMessage, formatTable)
	}
	if profileWeight < 0 {
		return fmt.Errorf("--weight must be >= 0")
	}
	if profileHeight < 0 {
		return fmt.Errorf("--height must be >= 0")
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fittrack configuration
# Uncomment a value to enable it. CLI flags override config values.

[profile]
# weight = 75.0           # Athlete weight in kg, fills short packets
# height = 180.0          # Athlete height in cm, fills short WLK packets

[output]
# format = %q       # Output format: message or table
# color = %t            # Colored interactive viewer
`,
		defaultFormat,
		defaultColor,
	)
}
