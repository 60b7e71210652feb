// Package cmd holds the vlist command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"vlist/internal/config"
	"vlist/internal/eventbus"
	"vlist/internal/logging"
	"vlist/internal/source"
	"vlist/internal/ui"
)

var version = "dev"

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vlist [file]",
		Short: "Browse a list through a fixed-size scrolling window",
		Long: `vlist shows a list of items through a window of a fixed number of rows.
Items are read one per non-empty line from file. Without a file a list of
generated items is shown.`,
		Example: `
# Browse generated items in a window of 5 rows
vlist -n 100 -w 5

# Browse a file, keep the focused line centred and reload on change
vlist --policy centered --watch notes.txt
  `,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runList,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().IntP("window", "w", 0, "Window size in rows, 0 fits the terminal")
	rootCmd.Flags().StringP("policy", "p", "", "Scroll policy: edge or centered")
	rootCmd.Flags().String("resize-pref", "", "End of the window that moves first on resize: end or start")
	rootCmd.Flags().IntP("count", "n", source.DefaultGeneratedCount, "Number of generated items when no file is given")
	rootCmd.Flags().Bool("watch", false, "Reload the file when it changes")
	rootCmd.Flags().Bool("no-scrollbar", false, "Hide the scroll indicator")
	rootCmd.Flags().Bool("no-vi", false, "Disable j/k/gg/G")
	rootCmd.Flags().String("log-file", "", "Log file")
	rootCmd.Flags().Bool("debug", false, "Log at debug level")

	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// applyFlags overrides file settings with the flags given on the command line
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("window") {
		n, _ := flags.GetInt("window")
		if n < 0 {
			return fmt.Errorf("--window must not be negative, got %d", n)
		}
		cfg.Window.Size = n
	}
	if flags.Changed("policy") {
		cfg.Window.Policy, _ = flags.GetString("policy")
	}
	if flags.Changed("resize-pref") {
		cfg.Window.ResizePreference, _ = flags.GetString("resize-pref")
	}
	if noBar, _ := flags.GetBool("no-scrollbar"); noBar {
		cfg.Window.Scrollbar = false
	}
	if noVi, _ := flags.GetBool("no-vi"); noVi {
		cfg.Keys.Vi = false
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	return cfg.Validate()
}

// newSource picks the file or generated source for args
func newSource(cmd *cobra.Command, args []string, bus eventbus.EventBus) (source.SourceService, bool, error) {
	watch, _ := cmd.Flags().GetBool("watch")
	if len(args) == 1 {
		return source.NewFileSource(bus, args[0]), watch, nil
	}
	if watch {
		return nil, false, errors.New("--watch needs a file")
	}
	count, _ := cmd.Flags().GetInt("count")
	if count < 0 {
		return nil, false, fmt.Errorf("--count must not be negative, got %d", count)
	}
	return source.NewGeneratedSource(bus, count), false, nil
}

func runList(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	fileCfg, err := config.NewConfigService(configPath).Load()
	if err != nil {
		return err
	}
	cfg := *fileCfg
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	_, closer, err := logging.Setup(cfg.Log, debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	src, watch, err := newSource(cmd, args, bus)
	if err != nil {
		return err
	}
	defer src.Stop()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	if cfg.Autosave {
		subscribeAutosave(bus, configSvc, fileCfg)
	}
	bus.Subscribe(eventbus.EventItemActivated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemActivatedEvent); ok {
			log.Info("item activated", "index", event.Index, "id", event.Item.ID, "text", event.Item.Text)
		}
	})

	model := ui.NewModel(bus, &cfg, ui.WithSource(src.Info()))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	forwardEvents(bus, p)

	go startSource(ctx, src, watch)

	log.Info("starting", "source", src.Info().Name, "window", cfg.Window.Size, "policy", cfg.Window.Policy)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("program failed", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("exited")
	return nil
}

// forwardEvents sends the domain events the UI cares about into the program
func forwardEvents(bus eventbus.EventBus, p *tea.Program) {
	for _, t := range []eventbus.EventType{
		eventbus.EventItemsLoaded,
		eventbus.EventError,
		eventbus.EventWatchStarted,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}
}

// subscribeAutosave writes policy changes back to the config file. Only the
// file's own values are saved, never the flag overrides.
func subscribeAutosave(bus eventbus.EventBus, svc config.ConfigService, fileCfg *config.Config) {
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		fileCfg.Window.Policy = event.Policy
		if err := svc.Save(fileCfg); err != nil {
			log.Error("failed to save config", "path", svc.Path(), "err", err)
			bus.Publish(eventbus.ErrorEvent{Message: "cannot save config", Err: err})
			return
		}
		log.Info("config saved", "path", svc.Path())
	})
}

func startSource(ctx context.Context, src source.SourceService, watch bool) {
	if err := src.Load(ctx); err != nil {
		log.Error("failed to load items", "source", src.Info().Name, "err", err)
		return
	}
	if !watch {
		return
	}
	if err := src.Watch(ctx); err != nil {
		log.Error("failed to watch", "source", src.Info().Name, "err", err)
	}
}
