package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-simplgen/pkg/assembler"
	"github.com/goliatone/go-simplgen/pkg/definition"
	"github.com/goliatone/go-simplgen/pkg/generator"
	"github.com/goliatone/go-simplgen/pkg/output"
	"github.com/goliatone/go-simplgen/pkg/prompt"
)

var (
	// Global flags
	verbose bool
	baseDir string

	// Generation flags
	flat        bool
	fromPath    string
	savePath    string
	templateDir string
	toStdout    bool
	plain       bool

	// Logger
	logger *zap.Logger
)

// rootCmd runs an interactive generation session.
var rootCmd = &cobra.Command{
	Use:   "simplgen",
	Short: "Generate Crestron SIMPL+ module skeletons",
	Long: `simplgen asks for module metadata and the module's inputs, outputs and
parameters, then writes a .usp skeleton to ./simplplus/<module>.usp.

Names are normalised as they are entered: digital names get _b, analog
names _n, string names _s (before the [size] bracket) and parameters are
prefixed with p_. Enter x to finish a section.

Examples:
  simplgen
  simplgen --flat
  simplgen --from room.yaml --stdout
  simplgen --save-definition room.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&baseDir, "dir", "C", "", "Base directory for output (default: current)")

	rootCmd.Flags().BoolVar(&flat, "flat", false, "Write <module>.usp directly into the base directory")
	rootCmd.Flags().StringVarP(&fromPath, "from", "f", "", "Generate from a YAML module definition instead of prompting")
	rootCmd.Flags().StringVar(&savePath, "save-definition", "", "Also save the session as a YAML module definition")
	rootCmd.Flags().StringVar(&templateDir, "template-dir", "", "Directory with a module.usp.tpl overriding the built-in template")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the module instead of writing it")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Use plain line prompts (for pipes and dumb terminals)")

	rootCmd.AddCommand(kindsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runGenerate executes one generation run.
func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if logger == nil {
		logger = zap.NewNop()
	}

	a, err := assembler.New(assembler.WithTemplateDir(templateDir))
	if err != nil {
		return err
	}

	layout := output.LayoutNested
	if flat {
		layout = output.LayoutFlat
	}

	var driver prompt.Driver
	if plain {
		driver = prompt.NewLine(cmd.InOrStdin(), cmd.OutOrStdout())
	} else {
		driver = prompt.NewSurvey()
	}

	gen, err := generator.New(
		generator.WithPromptDriver(driver),
		generator.WithAssembler(a),
		generator.WithLogger(logger),
		generator.WithBaseDir(baseDir),
		generator.WithLayout(layout),
	)
	if err != nil {
		return err
	}

	req := generator.Request{DryRun: toStdout}
	if fromPath != "" {
		def, err := definition.Load(fromPath)
		if err != nil {
			return err
		}
		req.Definition = &def
		logger.Debug("using module definition", zap.String("path", fromPath))
	}

	result, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}

	if savePath != "" {
		if err := result.Definition().Save(savePath); err != nil {
			return err
		}
		logger.Debug("definition saved", zap.String("path", savePath))
	}

	out := cmd.OutOrStdout()
	if toStdout {
		_, err := fmt.Fprint(out, result.Document)
		return err
	}
	_, err = fmt.Fprintf(out, "\n[SUCCESS] Module generated at: %s\n", result.Path)
	return err
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
