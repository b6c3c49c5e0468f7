package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/berth/internal/app"
	"github.com/zjrosen/berth/internal/config"
	"github.com/zjrosen/berth/internal/log"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".berth/config.yaml"

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	cfgErr  error
)

var rootCmd = &cobra.Command{
	Use:   "berth",
	Short: "A terminal guide to port operations",
	Long: `A terminal user interface for browsing port-operations learning modules
and searching a glossary of port and shipping terms.

Press tab to switch between the module browser and the glossary.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/berth/config.yaml)")
	rootCmd.PersistentFlags().String("content-dir", "",
		"directory with catalog.yaml, glossary.yaml and modules/ replacing the built-in content")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to debug.log (also enabled by BERTH_DEBUG)")
	rootCmd.Flags().Bool("no-watch", false,
		"do not reload the glossary file when it changes")
	rootCmd.Flags().String("start", "",
		"key of the module selected at startup")
}

func initConfig() {
	v := viper.New()
	_ = v.BindPFlag("content_dir", rootCmd.PersistentFlags().Lookup("content-dir"))
	_ = v.BindPFlag("start_module", rootCmd.Flags().Lookup("start"))

	cfg = config.Defaults()
	cfgErr = nil

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .berth/config.yaml (current directory)
		// 2. ~/.config/berth/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else {
			v.AddConfigPath(userConfigDir())
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cfgErr = fmt.Errorf("reading config: %w", err)
			return
		}
		// No config file found anywhere - create the user default
		defaultPath := filepath.Join(userConfigDir(), "config.yaml")
		if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
			v.SetConfigFile(defaultPath)
			_ = v.ReadInConfig()
		}
		// If write fails, just continue with defaults (no config file)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		cfgErr = fmt.Errorf("decoding config: %w", err)
		return
	}
	log.Debug(log.CatConfig, "Loaded config", "path", v.ConfigFileUsed())
}

func userConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "berth")
}

// initLogging enables the debug log when --debug or BERTH_DEBUG is set.
// Returns a cleanup function that closes the log file.
func initLogging(cmd *cobra.Command) func() {
	debug, _ := cmd.Flags().GetBool("debug")
	if !debug && os.Getenv("BERTH_DEBUG") == "" {
		return func() {}
	}
	cleanup, err := log.InitWithTeaLog("debug.log", "berth")
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "debug log disabled: %v\n", err)
		return func() {}
	}
	return cleanup
}

// loadedConfig returns the validated config for a command run.
func loadedConfig() (config.Config, error) {
	if cfgErr != nil {
		return config.Config{}, cfgErr
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	cleanup := initLogging(cmd)
	defer cleanup()

	sessionID := uuid.NewString()
	log.SetSession(sessionID)

	runCfg, err := loadedConfig()
	if err != nil {
		return err
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		runCfg.Glossary.Watch = false
	}
	if err := config.ValidateTracingForTUI(runCfg.Tracing); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := newTracingProvider(runCfg.Tracing, sessionID, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer shutdownTracing(provider)

	opts, err := buildOptions(&runCfg, provider.Tracer())
	if err != nil {
		return err
	}

	zone.NewGlobal()
	model := app.New(opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
