package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyUploadsDir = "schedule.uploads_dir"
	KeyHolidaysDB = "schedule.holidays_db"
)

type Config struct {
	Schedule ScheduleConfig `mapstructure:"schedule" validate:"required"`
}

type ScheduleConfig struct {
	// UploadsDir is where admins drop the schedule spreadsheets.
	UploadsDir string `mapstructure:"uploads_dir" validate:"required"`
	// HolidaysDB is the sqlite holiday calendar used by the hours split.
	HolidaysDB string `mapstructure:"holidays_db" validate:"required"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# stpsched configuration
schedule:
  uploads_dir: "uploads"
  holidays_db: "holidays.db"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyUploadsDir, "uploads")
	v.SetDefault(KeyHolidaysDB, "holidays.db")
}
