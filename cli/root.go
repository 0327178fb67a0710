// Package cli implements the eatwise command line client on top of the
// catalog and daily-log stores.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sorin-PSP/EatWise-sub000/client"
	"github.com/Sorin-PSP/EatWise-sub000/localcache"
	"github.com/Sorin-PSP/EatWise-sub000/store"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// Config is the CLI configuration, merged from flags, environment and the
// config file.
type Config struct {
	ServerURL string `mapstructure:"server_url"`
	CacheDir  string `mapstructure:"cache_dir"`
	Offline   bool   `mapstructure:"offline"`
	Verbose   bool   `mapstructure:"verbose"`
}

// App wires the client tier together for one command invocation.
type App struct {
	Config Config
	Log    *zap.Logger
	Cache  *localcache.Cache
	Client *client.Client
	Foods  *store.Catalog
	Days   *store.DayLog
	Water  *store.WaterLog
	Sync   *store.SyncTrigger
}

var rootCmd = &cobra.Command{
	Use:   "eatwise",
	Short: "Track foods, meals and nutrition goals",
	Long: `eatwise is the command line client for the EatWise nutrition tracker.
It keeps a local copy of your food catalog and daily log, works offline,
and syncs with the EatWise service when you are signed in.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.eatwise.yaml)")
	rootCmd.PersistentFlags().String("server-url", "http://localhost:8080", "EatWise service URL")
	rootCmd.PersistentFlags().String("cache-dir", "", "local cache directory (default is $HOME/.eatwise)")
	rootCmd.PersistentFlags().Bool("offline", false, "never contact the service")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")

	viper.BindPFlag("server_url", rootCmd.PersistentFlags().Lookup("server-url"))
	viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
	viper.BindPFlag("offline", rootCmd.PersistentFlags().Lookup("offline"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".eatwise")
	}

	viper.SetEnvPrefix("EATWISE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = false
	}); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.CacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.CacheDir = filepath.Join(home, ".eatwise")
	}
	return cfg, nil
}

// newApp builds the store stack and restores any cached session.
func newApp(cmd *cobra.Command) (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var logger *zap.Logger
	if cfg.Verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger = zap.NewNop()
	}
	if err != nil {
		return nil, err
	}

	cache, err := localcache.New(cfg.CacheDir, logger)
	if err != nil {
		return nil, err
	}

	c := client.New(cfg.ServerURL, logger)
	c.SetOffline(cfg.Offline)

	app := &App{
		Config: cfg,
		Log:    logger,
		Cache:  cache,
		Client: c,
		Foods:  store.NewCatalog(c, cache, logger),
		Days:   store.NewDayLog(c, cache, logger),
		Water:  store.NewWaterLog(c, cache, logger),
	}
	app.Sync = store.NewSyncTrigger(c, app.Days, logger)

	// restore a stored session token, quietly dropping it when invalid or
	// the service is unreachable
	var saved client.Session
	if !cfg.Offline && cache.Get(localcache.KeySession, &saved) && saved.Token != "" {
		if _, err := c.RestoreSession(cmd.Context(), saved.Token); err != nil {
			if client.IsNetworkUnavailable(err) {
				logger.Warn("service unreachable, continuing offline")
				c.SetOffline(true)
			} else {
				logger.Warn("stored session rejected, signing out", zap.Error(err))
				_ = cache.Delete(localcache.KeySession)
			}
		}
	}

	return app, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
