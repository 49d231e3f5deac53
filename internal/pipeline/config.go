package pipeline

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	OpSelect    = "select"
	OpWhere     = "where"
	OpTake      = "take"
	OpTakeWhile = "take_while"
	OpSkip      = "skip"
)

// Step is one adapter of a chain. Fn names a registered transform (select) or
// predicate (where, take_while); Arg parameterises it. N is the count of take and skip.
type Step struct {
	Op  string `mapstructure:"op" yaml:"op" validate:"required,oneof=select where take take_while skip"`
	Fn  string `mapstructure:"fn" yaml:"fn" validate:"required_if=Op select,required_if=Op where,required_if=Op take_while"`
	Arg int    `mapstructure:"arg" yaml:"arg"`
	N   int    `mapstructure:"n" yaml:"n" validate:"gte=0"`
}

// RangeConfig describes an arithmetic source used when no explicit values are given.
// A zero Step disables it.
type RangeConfig struct {
	Start int `mapstructure:"start"`
	Stop  int `mapstructure:"stop"`
	Step  int `mapstructure:"step"`
}

type Config struct {
	Source    []int       `mapstructure:"source"`
	Range     RangeConfig `mapstructure:"range"`
	Steps     []Step      `mapstructure:"steps" validate:"dive"`
	Output    string      `mapstructure:"output" validate:"oneof=list table json"`
	Verbosity string      `mapstructure:"verbosity" validate:"oneof=debug info warn error"`
}

var (
	ErrConflictingSources = errors.New("source values and range are mutually exclusive")

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// LoadConfig decodes v into a Config and validates it.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{Output: "list", Verbosity: "info"}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if len(c.Source) > 0 && c.Range.Step != 0 {
		return ErrConflictingSources
	}
	return nil
}

// ParseSteps decodes a YAML list of steps, as accepted by the --steps flag.
func ParseSteps(doc string) ([]Step, error) {
	var steps []Step
	if err := yaml.Unmarshal([]byte(doc), &steps); err != nil {
		return nil, errors.Wrap(err, "parse steps")
	}
	return steps, nil
}
