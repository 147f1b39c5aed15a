package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/mixtint/internal/colour"
	"github.com/jmylchreest/mixtint/internal/config"
	"github.com/jmylchreest/mixtint/internal/mix"
	"github.com/jmylchreest/mixtint/internal/report"
)

var (
	// Analyze command flags
	analyzeThreshold float64
	analyzeCutoff    float64
	analyzeWorkers   int
	analyzeFormat    string
	analyzeOutput    string
	analyzePreview   bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <palette-file>",
	Short: "Decompose target colours against the base colours",
	Long: `Analyze decomposes every target colour in the palette file against the
base colours, fitting non-negative mixing coefficients per target.

Each result reports the coefficient per base colour, the reconstruction
error in normalized colour space, and whether the fit lands within the
success threshold. Coefficients at or below the negligibility cutoff
render as empty cells.

Examples:
  # Analyze with defaults (threshold 0.05, cutoff 0.001)
  mixtint analyze palette.json

  # Use a looser threshold and show colour previews
  mixtint analyze --threshold 0.1 --preview palette.json

  # Export the result grid for a spreadsheet
  mixtint analyze --format csv --output results.csv palette.json

  # JSON output with the full coefficient vectors
  mixtint analyze --format json palette.json

  # Decompose many targets in parallel
  mixtint analyze --workers 8 palette.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	addSolverFlags(analyzeCmd.Flags())
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "table", "output format (table, csv, json)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output file (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzePreview, "preview", false, "show colour previews in table output")
}

// addSolverFlags registers the solver tuning flags on a flag set.
func addSolverFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&analyzeThreshold, "threshold", mix.DefaultThreshold, "maximum residual error for a successful fit")
	fs.Float64Var(&analyzeCutoff, "cutoff", mix.DefaultCutoff, "negligibility cutoff for coefficients")
	fs.IntVar(&analyzeWorkers, "workers", 1, "parallel workers across targets")
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := config.Load(globalConfigPath)
	if err != nil {
		return err
	}
	// Flags passed explicitly win over the config file.
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = analyzeThreshold
	}
	if cmd.Flags().Changed("cutoff") {
		cfg.Cutoff = analyzeCutoff
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = analyzeWorkers
	}
	if cmd.Flags().Changed("preview") {
		cfg.Preview = analyzePreview
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	session, err := loadPalette(args[0])
	if err != nil {
		return err
	}

	bases := session.Bases()
	targets := session.Targets()
	logger.Debug("palette loaded", "bases", len(bases), "targets", len(targets))

	if len(targets) == 0 {
		logger.Info("no target colours in palette, nothing to analyze")
		return nil
	}

	results, err := mix.AnalyzeAll(bases, targets, cfg.Options())
	if err != nil {
		if errors.Is(err, mix.ErrEmptyBasis) {
			return fmt.Errorf("palette has no base colours: sample or add at least one base before analyzing")
		}
		return err
	}
	logger.Debug("analysis complete", "results", len(results), "threshold", cfg.Threshold)

	rep := report.New(bases, results, cfg.Cutoff)
	output, err := formatReport(rep, cfg, analyzeOutput != "")
	if err != nil {
		return err
	}

	if analyzeOutput != "" {
		if err := os.WriteFile(analyzeOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("results written", "path", analyzeOutput)
	} else {
		fmt.Print(output)
	}

	for _, res := range results {
		logger.Debug("target decomposed",
			"target", res.TargetLabel,
			"hex", res.TargetHex,
			"residual", res.Residual,
			"success", res.Success,
			"contributions", len(res.Contributions),
		)
	}
	return nil
}

// formatReport renders the report in the requested format. Previews are
// dropped for file output and non-TTY stdout.
func formatReport(rep *report.Report, cfg config.Config, toFile bool) (string, error) {
	switch analyzeFormat {
	case "table":
		preview := cfg.Preview && !toFile && colour.SupportsANSIColours()
		return rep.RenderTable(preview), nil
	case "csv":
		var sb strings.Builder
		if err := rep.WriteCSV(&sb); err != nil {
			return "", err
		}
		return sb.String(), nil
	case "json":
		var sb strings.Builder
		if err := rep.WriteJSON(&sb); err != nil {
			return "", err
		}
		return sb.String(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, csv, json)", analyzeFormat)
	}
}
