package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bft-labs/srcpack/internal/adapters/fs"
	"github.com/bft-labs/srcpack/internal/app"
	"github.com/bft-labs/srcpack/internal/cliconfig"
	"github.com/bft-labs/srcpack/internal/prompt"
	"github.com/bft-labs/srcpack/internal/report"
	"github.com/bft-labs/srcpack/internal/watch"
	"github.com/bft-labs/srcpack/pkg/log"
)

var longHelp = strings.TrimSpace(`
Concatenate the source files of a directory tree into numbered text files.

Every file whose name ends with one of the configured suffixes is read and
appended to output.txt, output_02.txt, ... under the output folder, each entry
preceded by a "=== name ===" marker. With --max-words the files are split so
that no output file holds more words than the limit; a single file larger than
the limit gets an output file of its own (or is skipped with --oversized=skip).
A limit of 0 keeps every non-empty file apart. Output files in the output
folder are never read back as input. With --watch every pass also removes the
output files a previous, larger pass left behind.

Settings come from flags, SRCPACK_* environment variables and a TOML or YAML
config file, in that order of precedence. Run without flags on a terminal to
be asked for them interactively.
`)

var exampleUsage = strings.TrimSpace(`
  srcpack --input ./site --max-words 4000
  srcpack -i ./app -e go,md --names relative --one-per-file
  srcpack --config $HOME/.srcpack/config.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
	reporter := report.NewTerminal(os.Stdout)

	root := &cobra.Command{
		Use:           "srcpack",
		Short:         "Concatenate source files into size-bounded text batches",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Config file first, then environment; both yield to explicit flags.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && (changed[cliconfig.FlagConfig] || cliconfig.FileExists(cfgFile)) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if !changed[cliconfig.FlagInteractive] {
				cfg.Interactive = cmd.Flags().NFlag() == 0 && isTerminal(os.Stdin) && isTerminal(os.Stdout)
			}
			if cfg.Interactive {
				if err := prompt.Ask(&cfg, changed, os.Stdin, os.Stdout); err != nil {
					return err
				}
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := log.ParseLevel(cfg.LogLevel)
			logger = log.NewZerologAdapter(os.Stderr, level)
			logger.Debug("configuration", log.Any("config", cfg))

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			runner := app.New(runConfig(cfg),
				app.WithLogger(logger),
				app.WithReporter(reporter),
			)
			pass := func(ctx context.Context) error {
				sum, err := runner.Run(ctx)
				if err != nil {
					return err
				}
				reporter.Done(sum.Batches, sum.Words)
				return nil
			}

			if err := pass(ctx); err != nil {
				return err
			}
			if !cfg.Watch {
				return nil
			}

			matcher := fs.NewDiscoverer(cfg.Extensions,
				fs.WithOutputDir(cfg.OutputDir),
				fs.WithExcludeNames(cfg.ExcludeDirs...),
			)
			w := watch.New(cfg.InputDir, matcher, pass, watch.WithLogger(logger))
			return w.Run(ctx)
		},
	}

	flags := root.Flags()
	flags.StringVar(&cfgPath, cliconfig.FlagConfig, "", "path to config file, TOML or YAML (default: $HOME/.srcpack/config.toml)")
	flags.StringVarP(&cfg.InputDir, cliconfig.FlagInput, "i", cfg.InputDir, "input folder to scan")
	flags.StringVarP(&cfg.OutputDir, cliconfig.FlagOutput, "o", cfg.OutputDir, "output folder (default: <input>/out, created if missing)")
	flags.IntVarP(&cfg.MaxWords, cliconfig.FlagMaxWords, "m", cfg.MaxWords, "maximum words per output file, -1 for unlimited")
	flags.BoolVar(&cfg.OnePerFile, cliconfig.FlagOnePerFile, cfg.OnePerFile, "write every input file to its own output file")
	flags.StringSliceVarP(&cfg.Extensions, cliconfig.FlagExt, "e", cfg.Extensions, "file name suffixes to collect")
	flags.StringSliceVar(&cfg.ExcludeDirs, cliconfig.FlagExcludeDir, cfg.ExcludeDirs, "directory names to skip while scanning")
	flags.StringVar((*string)(&cfg.Names), cliconfig.FlagNames, string(cfg.Names), "marker names: base or relative")
	flags.StringVar((*string)(&cfg.Oversized), cliconfig.FlagOversized, string(cfg.Oversized), "files larger than --max-words: isolate or skip")
	flags.BoolVar(&cfg.Watch, cliconfig.FlagWatch, cfg.Watch, "keep running and rebuild when matching files change")
	flags.BoolVar(&cfg.Interactive, cliconfig.FlagInteractive, cfg.Interactive, "ask for settings on the terminal")
	flags.StringVar(&cfg.LogLevel, cliconfig.FlagLogLevel, cfg.LogLevel, "log level: debug, info, warn, error")

	if err := root.Execute(); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(130)
		}
		reporter.Failed(err)
		logger.Debug("srcpack", log.Err(err))
		os.Exit(1)
	}
}

func runConfig(cfg cliconfig.Config) app.Config {
	return app.Config{
		InputDir:    cfg.InputDir,
		OutputDir:   cfg.OutputDir,
		Extensions:  cfg.Extensions,
		ExcludeDirs: cfg.ExcludeDirs,
		Names:       cfg.Names,
		MaxWords:    cfg.MaxWords,
		OnePerFile:  cfg.OnePerFile,
		Oversized:   cfg.Oversized,
		PruneStale:  cfg.Watch,
	}
}
