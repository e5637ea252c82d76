// Command hpa runs the hybrid policy analyzer: it projects a fixed-payout
// policy against a hybrid invest-then-withdraw strategy and reports the
// comparison in one of several formats.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hpgo/policy-analyzer/internal/calculation"
	"github.com/hpgo/policy-analyzer/internal/config"
	"github.com/hpgo/policy-analyzer/internal/output"
)

var (
	inputFile    string
	outputFormat string
	toStdout     bool
	debugMode    bool
)

// stderrLogger routes engine diagnostics to stderr so stdout stays clean for
// piped report output.
type stderrLogger struct {
	l *log.Logger
}

func (s *stderrLogger) Debugf(format string, args ...interface{}) {
	if debugMode {
		s.l.Printf("DEBUG "+format, args...)
	}
}
func (s *stderrLogger) Infof(format string, args ...interface{})  { s.l.Printf("INFO "+format, args...) }
func (s *stderrLogger) Warnf(format string, args ...interface{})  { s.l.Printf("WARN "+format, args...) }
func (s *stderrLogger) Errorf(format string, args ...interface{}) { s.l.Printf("ERROR "+format, args...) }

var rootCmd = &cobra.Command{
	Use:   "hpa",
	Short: "Hybrid policy analyzer",
	Long: `hpa projects a policyholder's income month by month under two scenarios:
taking the fixed monthly benefit for the whole term, or investing the benefit
for an accumulation period and then drawing an escalating payout from the
corpus alongside the continuing benefit.`,
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the projection and write a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		params, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return fmt.Errorf("loading parameters: %w", err)
		}

		engine := calculation.NewProjectionEngine()
		if debugMode {
			engine.SetLogger(&stderrLogger{l: log.New(os.Stderr, "", log.LstdFlags)})
		}

		results, err := engine.RunComparison(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("running comparison: %w", err)
		}

		if toStdout {
			f := output.GetFormatterByName(outputFormat)
			if f == nil {
				return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, outputFormat)
			}
			data, err := f.Format(results)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}

		filename, err := output.GenerateReport(results, outputFormat)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", filename)
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example [filename]",
	Short: "Write an example parameter file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "policy_params.yaml"
		if len(args) > 0 {
			filename = args[0]
		}
		params := config.NewInputParser().CreateExampleParameters()
		if err := config.SaveParameters(params, filename); err != nil {
			return fmt.Errorf("writing example parameters: %w", err)
		}
		fmt.Printf("Example parameters written to %s\n", filename)
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available report formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Formats:")
		for _, name := range output.AvailableFormatterNames() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("Aliases:")
		for _, alias := range output.AvailableFormatAliases() {
			fmt.Printf("  %s -> %s\n", alias, output.NormalizeFormatName(alias))
		}
	},
}

func init() {
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "policy_params.yaml", "parameter file (YAML)")
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "report format (see 'hpa formats')")
	calculateCmd.Flags().BoolVar(&toStdout, "stdout", false, "print the report to stdout instead of a file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable engine debug logging on stderr")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(formatsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
