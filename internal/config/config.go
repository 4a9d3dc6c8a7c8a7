package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	apperrors "github.com/tokyo-toilet-data/internal/pkg/errors"
	"github.com/tokyo-toilet-data/internal/pkg/validator"
)

type Config struct {
	Log         LogConfig
	Transform   TransformConfig
	Pin         PinConfig
	Wards       WardsConfig
	Regions     RegionsConfig
	Lightweight LightweightConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type TransformConfig struct {
	Input  string `validate:"required"`
	Output string `validate:"required"`
	// EnglishHeaders selects the normalized English column names over
	// the original Japanese ones. The pin formatter consumes the
	// Japanese-header output, so that is the default.
	EnglishHeaders bool
	// MissingValue is substituted for source columns absent from the
	// input file.
	MissingValue string
}

type PinConfig struct {
	Input  string `validate:"required"`
	Output string `validate:"required"`
	Color  string `validate:"required"`
}

type WardsConfig struct {
	PublicInput      string `validate:"required"`
	StationInput     string `validate:"required"`
	PublicOutputDir  string `validate:"required"`
	StationOutputDir string `validate:"required"`
}

type RegionsConfig struct {
	PublicInput   string `validate:"required"`
	StationInput  string `validate:"required"`
	OutputDir     string `validate:"required"`
	IntegratedDir string `validate:"required"`
}

type LightweightConfig struct {
	PublicInput     string  `validate:"required"`
	StationInput    string  `validate:"required"`
	OutputDir       string  `validate:"required"`
	MaxPublicItems  int     `validate:"gt=0"`
	MaxStationItems int     `validate:"gt=0"`
	DedupTolerance  float64 `validate:"gt=0"`
}

// Load reads configuration from an optional .env file plus the
// environment. Defaults reproduce the historical fixed paths and
// constants of the batch scripts.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// The .env file is optional; the defaults and environment
		// fully determine a run without one.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Transform: TransformConfig{
			Input:          v.GetString("TRANSFORM_INPUT"),
			Output:         v.GetString("TRANSFORM_OUTPUT"),
			EnglishHeaders: v.GetBool("TRANSFORM_ENGLISH_HEADERS"),
			MissingValue:   v.GetString("TRANSFORM_MISSING_VALUE"),
		},
		Pin: PinConfig{
			Input:  v.GetString("PIN_INPUT"),
			Output: v.GetString("PIN_OUTPUT"),
			Color:  v.GetString("PIN_COLOR"),
		},
		Wards: WardsConfig{
			PublicInput:      v.GetString("WARDS_PUBLIC_INPUT"),
			StationInput:     v.GetString("WARDS_STATION_INPUT"),
			PublicOutputDir:  v.GetString("WARDS_PUBLIC_OUTPUT_DIR"),
			StationOutputDir: v.GetString("WARDS_STATION_OUTPUT_DIR"),
		},
		Regions: RegionsConfig{
			PublicInput:   v.GetString("REGIONS_PUBLIC_INPUT"),
			StationInput:  v.GetString("REGIONS_STATION_INPUT"),
			OutputDir:     v.GetString("REGIONS_OUTPUT_DIR"),
			IntegratedDir: v.GetString("REGIONS_INTEGRATED_DIR"),
		},
		Lightweight: LightweightConfig{
			PublicInput:     v.GetString("LIGHTWEIGHT_PUBLIC_INPUT"),
			StationInput:    v.GetString("LIGHTWEIGHT_STATION_INPUT"),
			OutputDir:       v.GetString("LIGHTWEIGHT_OUTPUT_DIR"),
			MaxPublicItems:  v.GetInt("LIGHTWEIGHT_MAX_PUBLIC_ITEMS"),
			MaxStationItems: v.GetInt("LIGHTWEIGHT_MAX_STATION_ITEMS"),
			DedupTolerance:  v.GetFloat64("LIGHTWEIGHT_DEDUP_TOLERANCE"),
		},
	}

	if err := validator.Validate(cfg); err != nil {
		appErr := apperrors.New(apperrors.CodeInvalidConfig, "invalid configuration")
		appErr.Err = err
		return nil, appErr
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("TRANSFORM_INPUT", "3_koukyoshisetsu_barieer_free_wc - シート1.csv")
	v.SetDefault("TRANSFORM_OUTPUT", "barieer_free_wc_ver3_transformed.csv")
	v.SetDefault("TRANSFORM_ENGLISH_HEADERS", false)
	v.SetDefault("TRANSFORM_MISSING_VALUE", "")

	v.SetDefault("PIN_INPUT", "barieer_free_wc_ver3_transformed.csv")
	v.SetDefault("PIN_OUTPUT", "barrier_free_toilets_pin_format.csv")
	v.SetDefault("PIN_COLOR", "#00cc00")

	v.SetDefault("WARDS_PUBLIC_INPUT", "data/barrier_free_toilets.csv")
	v.SetDefault("WARDS_STATION_INPUT", "data/station_barrier_free_toilets.csv")
	v.SetDefault("WARDS_PUBLIC_OUTPUT_DIR", "data/wards")
	v.SetDefault("WARDS_STATION_OUTPUT_DIR", "data/station_wards")

	v.SetDefault("REGIONS_PUBLIC_INPUT", "data/barrier_free_toilets.csv")
	v.SetDefault("REGIONS_STATION_INPUT", "data/station_barrier_free_toilets.csv")
	v.SetDefault("REGIONS_OUTPUT_DIR", "data")
	v.SetDefault("REGIONS_INTEGRATED_DIR", "data/lightweight")

	v.SetDefault("LIGHTWEIGHT_PUBLIC_INPUT", "data/barrier_free_toilets.csv")
	v.SetDefault("LIGHTWEIGHT_STATION_INPUT", "data/station_barrier_free_toilets.csv")
	v.SetDefault("LIGHTWEIGHT_OUTPUT_DIR", "data/lightweight")
	v.SetDefault("LIGHTWEIGHT_MAX_PUBLIC_ITEMS", 1000)
	v.SetDefault("LIGHTWEIGHT_MAX_STATION_ITEMS", 500)
	v.SetDefault("LIGHTWEIGHT_DEDUP_TOLERANCE", 0.0001)
}
