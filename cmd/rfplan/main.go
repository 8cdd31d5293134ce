package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/convlab/rfield/internal/cliconfig"
	"github.com/convlab/rfield/window"
)

const helpDescription = `
Compute exact input/output length correspondence for a chain of strided
transforms, and plan aligned training windows over it.

Highlights:
  - Backward, forward, and reconciled passes over kernel/stride/dilation stages.
  - Window placement with one clustering knob: pack windows or spread them.
  - Per-window raw-input spans and an in-register loss mask, as text or JSON.
  - Describe the chain in a TOML file, RFPLAN_* env vars, or flags.
`

var exampleUsage = strings.TrimSpace(`
  rfplan --stages 3:1,3:2 --input-len 4000 --windows 4 --span 8
  rfplan --config model.toml --json
  rfplan --config model.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath, stagesFlag, selectFlag string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "rfplan",
		Short:   "Plan aligned training windows over a chain of strided transforms",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if changed["stages"] {
				stages, err := cliconfig.ParseStages(stagesFlag)
				if err != nil {
					return err
				}
				cfg.Stages = stages
			}
			if changed["select"] {
				sel, err := cliconfig.ParseSelect(selectFlag)
				if err != nil {
					return err
				}
				cfg.Select = sel
			}

			// Determine config path: explicit flag, else the default location
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Layering: defaults < config file < RFPLAN_* env < explicit flags
			base := cfg
			apply := func() (cliconfig.Config, error) {
				out := base
				if cfgFile != "" && cliconfig.FileExists(cfgFile) {
					fc, err := cliconfig.LoadFileConfig(cfgFile)
					if err != nil {
						return out, fmt.Errorf("load config: %w", err)
					}
					cliconfig.ApplyFileConfig(&out, fc, changed)
				}
				if err := cliconfig.ApplyEnvConfig(&out, changed); err != nil {
					return out, err
				}
				if err := out.Validate(); err != nil {
					return out, err
				}
				return out, nil
			}

			resolved, err := apply()
			if err != nil {
				return err
			}
			if !resolved.Quiet {
				log.Info().Int("stages", len(resolved.Stages)).
					Int("input_len", resolved.InputLen).
					Int("windows", resolved.Windows).
					Msg("configuration")
			}
			if err := runPlan(resolved, cmd.OutOrStdout()); err != nil {
				return err
			}

			if !resolved.Watch {
				return nil
			}
			if cfgFile == "" || !cliconfig.FileExists(cfgFile) {
				return fmt.Errorf("--watch requires a config file")
			}
			return watchLoop(cmd.Context(), cfgFile, apply, cmd.OutOrStdout(), log)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.rfplan/config.toml)")
	root.Flags().StringVar(&stagesFlag, "stages", "", "chain stages as kernel:stride[:dilation] triples, comma-separated")
	root.Flags().IntVar(&cfg.InputLen, "input-len", cfg.InputLen, "available raw input length")
	root.Flags().IntVar(&cfg.Windows, "windows", cfg.Windows, "number of training windows per batch")
	root.Flags().IntVar(&cfg.Span, "span", cfg.Span, "final-output positions per window")
	root.Flags().IntVar(&cfg.WindowStride, "window-stride", cfg.WindowStride, "stride between window starts (0 = span, consecutive)")
	root.Flags().StringVar(&selectFlag, "select", "", "in-window offsets marked in-register, comma-separated (default all)")
	root.Flags().BoolVar(&cfg.JSON, "json", cfg.JSON, "emit the plan as JSON")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-plan whenever the config file changes")
	root.Flags().BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress diagnostic logging")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("rfplan")
		os.Exit(1)
	}
}

// watchLoop re-resolves the configuration and reprints the plan whenever
// the config file changes, until the context is cancelled. Planning errors
// are logged, not fatal: the file is often mid-edit.
func watchLoop(ctx context.Context, cfgFile string, apply func() (cliconfig.Config, error), out io.Writer, log zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops a
	// watch placed on the file itself.
	dir := filepath.Dir(cfgFile)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Info().Str("file", cfgFile).Msg("watching for config changes")

	const debounceDelay = 100 * time.Millisecond
	var debounce *time.Timer
	replan := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(cfgFile) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case replan <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		case <-replan:
			cfg, err := apply()
			if err != nil {
				log.Warn().Err(err).Msg("config not usable, keeping last plan")
				continue
			}
			if err := runPlan(cfg, out); err != nil {
				log.Warn().Err(err).Msg("plan failed")
			}
		}
	}
}

// planReport is the JSON shape of a batch plan.
type planReport struct {
	InputLen  int          `json:"input_len"`
	OutputLen int          `json:"output_len"`
	Surplus   int          `json:"surplus"`
	Windows   []windowSpan `json:"windows"`
	Selected  []int        `json:"selected"`
}

type windowSpan struct {
	OutputBegin int `json:"output_begin"`
	OutputEnd   int `json:"output_end"`
	InputBegin  int `json:"input_begin"`
	InputEnd    int `json:"input_end"`
}

// runPlan builds the chain, plans the batch, and renders it to out.
func runPlan(cfg cliconfig.Config, out io.Writer) error {
	c, err := cfg.BuildChain()
	if err != nil {
		return fmt.Errorf("build chain: %w", err)
	}
	sel, err := window.NewSelector(c)
	if err != nil {
		return err
	}
	plan, err := sel.Plan(cfg.InputLen, cfg.WindowOptions())
	if err != nil {
		return fmt.Errorf("plan windows: %w", err)
	}

	if cfg.JSON {
		report := planReport{
			InputLen:  plan.InputLen,
			OutputLen: plan.OutputLen,
			Surplus:   plan.Surplus,
			Windows:   make([]windowSpan, len(plan.Windows)),
			Selected:  plan.Selected(),
		}
		for i, w := range plan.Windows {
			report.Windows[i] = windowSpan{
				OutputBegin: w.Outputs.Begin,
				OutputEnd:   w.Outputs.End,
				InputBegin:  w.Input.Begin,
				InputEnd:    w.Input.End,
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(out, "consumed %d of %d raw inputs (%d surplus) -> %d outputs\n",
		plan.InputLen, cfg.InputLen, plan.Surplus, plan.OutputLen)
	for i, w := range plan.Windows {
		fmt.Fprintf(out, "window %d: outputs [%d,%d)  input [%d,%d)\n",
			i, w.Outputs.Begin, w.Outputs.End, w.Input.Begin, w.Input.End)
	}
	fmt.Fprintf(out, "in-register: %v\n", plan.Selected())
	return nil
}
