package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// DefaultThreshold is used whenever a configured similarity threshold is
// missing or out of range.
const DefaultThreshold = 0.8

// AppConfig holds the application-level configuration
type AppConfig struct {
	Threshold        float64 `mapstructure:"threshold"`
	TopN             int     `mapstructure:"top_n"`
	OutputPath       string  `mapstructure:"output_path"`
	ParallelismRatio int     `mapstructure:"parallelism_ratio"`
	LogLevel         string  `mapstructure:"log_level"`
}

var Config *AppConfig

func LoadConfig(path string) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AutomaticEnv()

	viper.SetDefault("threshold", DefaultThreshold)
	viper.SetDefault("top_n", 10)
	viper.SetDefault("output_path", "similar_papers.txt")
	viper.SetDefault("parallelism_ratio", 2)
	viper.SetDefault("log_level", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("⚠️ Could not read config file, using defaults: %v", err)
	}

	var appConfig AppConfig
	if err := viper.Unmarshal(&appConfig); err != nil {
		log.Fatalf("❌ Unable to decode config into struct: %v", err)
	}

	// A broken threshold from the file or env falls back to the default;
	// the CLI flag is validated strictly in CompareConfig.Validate instead.
	if appConfig.Threshold < 0 || appConfig.Threshold > 1 {
		log.Printf("⚠️ Configured threshold %.2f outside [0,1], using default %.2f", appConfig.Threshold, DefaultThreshold)
		appConfig.Threshold = DefaultThreshold
	}
	if appConfig.TopN <= 0 {
		appConfig.TopN = 10
	}

	Config = &appConfig
}

// CompareConfig is the validated, immutable input of one comparison run.
// It is assembled at the CLI boundary and passed into the core untouched.
type CompareConfig struct {
	FolderA          string
	FolderB          string
	Threshold        float64
	Recursive        bool
	OutputPath       string
	TopN             int
	ParallelismRatio int
	SaveReport       bool
}

// Validate checks the configuration before any scanning starts. A failed
// validation means the run never begins.
func (c *CompareConfig) Validate() error {
	if err := checkDir("folder A", c.FolderA); err != nil {
		return err
	}
	if err := checkDir("folder B", c.FolderB); err != nil {
		return err
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("similarity threshold must be between 0 and 1, got %v", c.Threshold)
	}
	if c.SaveReport && c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty when saving the report")
	}
	return nil
}

func checkDir(name, path string) error {
	if path == "" {
		return fmt.Errorf("%s path must not be empty", name)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s is not a valid directory: %w", name, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %s", name, path)
	}
	return nil
}
