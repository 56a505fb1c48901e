package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Config holds the dataset pipeline configuration.
// Note: everything here is a startup constant - once the corpus is
// loaded the pipeline never consults the environment again.
type Config struct {
	// Event encoding
	NumNotes         int // distinct note numbers (MIDI pitch space)
	TimeQuantization int // distinct time-shift buckets

	// Progress labeling
	CategoryLevel int // progress categories (beginning/middle/end = 3)

	// Sampling
	SeqLen          int     // training window length in events
	BatchSize       int     // samples per training batch
	ValidationSplit float64 // fraction of compositions held out
	TransposeRange  int     // max semitones of pitch augmentation

	// Ingestion
	DataDir     string   // root directory containing one subdir per style
	Styles      []string // ordered style names; index = style tag
	LoadWorkers int      // parallel file parsers
}

func Load() *Config {
	return &Config{
		NumNotes:         getEnvInt("NUM_NOTES", 128),
		TimeQuantization: getEnvInt("TIME_QUANTIZATION", 32),
		CategoryLevel:    getEnvInt("CATEGORY_LEVEL", 3),
		SeqLen:           getEnvInt("SEQ_LEN", 256),
		BatchSize:        getEnvInt("BATCH_SIZE", 16),
		ValidationSplit:  getEnvFloat("VALIDATION_SPLIT", 0.05),
		TransposeRange:   getEnvInt("TRANSPOSE_RANGE", 4),
		DataDir:          getEnv("DATA_DIR", "data"),
		Styles:           getEnvList("STYLES", "baroque,classical,romantic,modern"),
		LoadWorkers:      getEnvInt("LOAD_WORKERS", runtime.NumCPU()),
	}
}

// Validate rejects configurations that would otherwise only fail later,
// deep in the sampling hot path.
func (c *Config) Validate() error {
	if c.NumNotes <= 0 {
		return fmt.Errorf("NUM_NOTES must be positive, got %d", c.NumNotes)
	}
	if c.TimeQuantization <= 0 {
		return fmt.Errorf("TIME_QUANTIZATION must be positive, got %d", c.TimeQuantization)
	}
	if c.CategoryLevel < 1 {
		return fmt.Errorf("CATEGORY_LEVEL must be at least 1, got %d", c.CategoryLevel)
	}
	if c.SeqLen < 1 {
		return fmt.Errorf("SEQ_LEN must be at least 1, got %d", c.SeqLen)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("BATCH_SIZE must be at least 1, got %d", c.BatchSize)
	}
	if c.ValidationSplit <= 0 || c.ValidationSplit >= 1 {
		return fmt.Errorf("VALIDATION_SPLIT must be in (0, 1), got %g", c.ValidationSplit)
	}
	if c.TransposeRange < 0 {
		return fmt.Errorf("TRANSPOSE_RANGE must not be negative, got %d", c.TransposeRange)
	}
	if len(c.Styles) == 0 {
		return fmt.Errorf("STYLES must name at least one style")
	}
	if c.LoadWorkers < 1 {
		return fmt.Errorf("LOAD_WORKERS must be at least 1, got %d", c.LoadWorkers)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvList(key, defaultValue string) []string {
	value := getEnv(key, defaultValue)
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
