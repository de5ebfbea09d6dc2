package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/joescharf/gedref/internal/chart"
	"github.com/joescharf/gedref/internal/gedcom"
	"github.com/joescharf/gedref/internal/i18n"
	"github.com/joescharf/gedref/internal/output"
	"github.com/joescharf/gedref/internal/store"
)

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui        *output.UI
	dataStore store.Store
	bundle    *i18n.Bundle

	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "gedref",
	Short: "GEDCOM reference data, tree statistics and charts",
	Long: `gedref provides the reference data behind a genealogy web site:
translated GEDCOM tag labels, fact pick-lists, _UID generation,
locale territories, and statistics charts for imported trees.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would happen without making changes")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/gedref/config.yaml)")
	rootCmd.PersistentFlags().StringP("lang", "l", "", "Language for labels (default from config, then en)")
	_ = viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("lang"))
}

func initConfig() {
	// If --config is explicitly set, use that file
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := configDirFunc()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot find home directory: %v\n", err)
			os.Exit(1)
		}
		viper.AddConfigPath(dir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("GEDREF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Read config file if it exists (optional)
	_ = viper.ReadInConfig()
}

// setDefaults registers every config key's default value.
func setDefaults() {
	dir, _ := configDirFunc()
	theme := chart.DefaultTheme()

	viper.SetDefault("state_dir", dir)
	viper.SetDefault("db_path", filepath.Join(dir, "gedref.db"))
	viper.SetDefault("language", i18n.BaseLocale)
	viper.SetDefault("port", 8080)
	viper.SetDefault("chart.no_values_color", theme.NoValuesColor)
	viper.SetDefault("chart.high_values_color", theme.HighValuesColor)
	viper.SetDefault("chart.small_chart_x", theme.SmallChartX)
	viper.SetDefault("chart.small_chart_y", theme.SmallChartY)
}

func initDeps() {
	ui = output.New()
	ui.Verbose = verbose
	ui.DryRun = dryRun

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Initialize store lazily, only when commands actually need it.
	// This allows tag/uid/locale commands to run without a db.
}

// getStore returns the shared store, initializing it on first call.
func getStore() (store.Store, error) {
	if dataStore != nil {
		return dataStore, nil
	}

	dbPath := viper.GetString("db_path")
	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := s.Migrate(context.Background()); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	dataStore = s
	return dataStore, nil
}

// getBundle returns the shared translation catalogs.
func getBundle() (*i18n.Bundle, error) {
	if bundle != nil {
		return bundle, nil
	}
	b, err := i18n.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	bundle = b
	return bundle, nil
}

// getTranslator returns a translator for the configured language.
func getTranslator() (*i18n.Translator, error) {
	b, err := getBundle()
	if err != nil {
		return nil, err
	}
	lang := viper.GetString("language")
	if lang == "" {
		lang = i18n.BaseLocale
	}
	tag, ok := b.Parse(lang)
	if !ok {
		return nil, fmt.Errorf("invalid language: %q", lang)
	}
	if tag == language.Und {
		tag = b.Match()
	}
	ui.VerboseLog("Using language %s", tag)
	return b.Translator(tag), nil
}

// getRegistry returns the tag registry for the configured language.
func getRegistry() (*gedcom.Registry, error) {
	tr, err := getTranslator()
	if err != nil {
		return nil, err
	}
	return gedcom.NewRegistry(tr), nil
}

// chartTheme builds the chart theme from config.
func chartTheme() chart.Theme {
	return chart.Theme{
		NoValuesColor:   viper.GetString("chart.no_values_color"),
		HighValuesColor: viper.GetString("chart.high_values_color"),
		SmallChartX:     viper.GetInt("chart.small_chart_x"),
		SmallChartY:     viper.GetInt("chart.small_chart_y"),
	}
}
