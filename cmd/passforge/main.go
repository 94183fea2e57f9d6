// Package main provides the CLI entrypoint for passforge.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/strength"
)

var (
	genLength           int
	genUppercase        bool
	genLowercase        bool
	genNumbers          bool
	genSymbols          bool
	genExcludeSimilar   bool
	genExcludeAmbiguous bool
	genCopy             bool
	genShowStrength     bool

	analyzeExtended bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "passforge",
		Short:         "Generate passwords and score their strength",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newAnalyzeCmd())

	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}

	cmd.Flags().IntVar(&genLength, "length", 16, "password length")
	cmd.Flags().BoolVar(&genUppercase, "uppercase", true, "include uppercase letters")
	cmd.Flags().BoolVar(&genLowercase, "lowercase", true, "include lowercase letters")
	cmd.Flags().BoolVar(&genNumbers, "numbers", true, "include numbers")
	cmd.Flags().BoolVar(&genSymbols, "symbols", true, "include symbols")
	cmd.Flags().BoolVar(&genExcludeSimilar, "exclude-similar", false, "exclude lookalike characters (0Oo1lI)")
	cmd.Flags().BoolVar(&genExcludeAmbiguous, "exclude-ambiguous", false, "exclude ambiguous symbols")
	cmd.Flags().BoolVar(&genCopy, "copy", false, "copy the password to the clipboard")
	cmd.Flags().BoolVar(&genShowStrength, "strength", false, "print a strength report for the generated password")

	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	opts := crypto.GeneratorOptions{
		Length:           genLength,
		Uppercase:        genUppercase,
		Lowercase:        genLowercase,
		Numbers:          genNumbers,
		Symbols:          genSymbols,
		ExcludeSimilar:   genExcludeSimilar,
		ExcludeAmbiguous: genExcludeAmbiguous,
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), password)

	if genCopy {
		if err := clipboard.WriteAll(password); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
	}

	if genShowStrength {
		printReport(cmd, strength.Analyze(password))
	}

	return nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <password>",
		Short: "Score a password's strength",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyzeCmd,
	}

	cmd.Flags().BoolVar(&analyzeExtended, "extended", false, "include pattern detection and recommendations")

	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	password := args[0]
	if password == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to analyze.")
		return nil
	}

	if !analyzeExtended {
		printReport(cmd, strength.Analyze(password))
		return nil
	}

	ext := strength.AnalyzeExtended(password)
	printReport(cmd, ext.Report)
	for _, rec := range ext.Recommendations {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", rec.Severity, rec.Message)
	}

	return nil
}

func printReport(cmd *cobra.Command, r strength.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Score:   %d/100 (%s)\n", r.Score, levelLabel(r.Level))
	fmt.Fprintf(out, "Entropy: %.1f bits\n", r.EntropyBits)

	var classes []string
	if r.HasUppercase {
		classes = append(classes, "uppercase")
	}
	if r.HasLowercase {
		classes = append(classes, "lowercase")
	}
	if r.HasNumbers {
		classes = append(classes, "numbers")
	}
	if r.HasSymbols {
		classes = append(classes, "symbols")
	}
	fmt.Fprintf(out, "Classes: %s\n", strings.Join(classes, ", "))

	for _, s := range r.Suggestions {
		fmt.Fprintf(out, "  - %s\n", s)
	}
}

func levelLabel(l strength.Level) string {
	switch l {
	case strength.LevelVeryWeak:
		return "Very Weak"
	case strength.LevelWeak:
		return "Weak"
	case strength.LevelFair:
		return "Fair"
	case strength.LevelGood:
		return "Good"
	case strength.LevelStrong:
		return "Strong"
	case strength.LevelExcellent:
		return "Excellent"
	default:
		return string(l)
	}
}
