package glide

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance.
var validate = validator.New()

// Config describes a carousel over named effects and image paths, as loaded
// from a file.
//
// Example YAML:
//
//	effects: [cube, pageCurl, swirl]
//	images: [photos/1.jpg, photos/2.jpg, photos/3.jpg]
//	width: 390
//	height: 844
//	settle_duration: 250ms
//	snap_factor: 0.2
//	easing: quad-in-out
type Config struct {
	Effects        []string `yaml:"effects" json:"effects" validate:"dive,required"`
	Images         []string `yaml:"images" json:"images" validate:"dive,required"`
	Width          int      `yaml:"width" json:"width"`
	Height         int      `yaml:"height" json:"height"`
	SettleDuration Duration `yaml:"settle_duration" json:"settle_duration" validate:"gte=0"`
	SnapFactor     *float64 `yaml:"snap_factor" json:"snap_factor" validate:"omitempty,gte=0"`
	Easing         string   `yaml:"easing" json:"easing" validate:"omitempty,oneof=linear quad-in-out cubic-out"`
}

// Validate checks the config. Empty sequences report ErrEmptySequence,
// non-positive dimensions ErrInvalidResolution and any other problem
// ErrInvalidConfig.
func (c Config) Validate() error {
	if err := checkSequences(c.Effects, c.Images); err != nil {
		return err
	}
	if err := c.Resolution().Validate(); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Resolution returns the configured render resolution.
func (c Config) Resolution() Resolution {
	return Resolution{Width: c.Width, Height: c.Height}
}

// Options converts the tunables in c into carousel options.
// Zero values leave the carousel defaults in place.
func (c Config) Options() []Option {
	var opts []Option
	if c.SettleDuration > 0 {
		opts = append(opts, WithSettleDuration(time.Duration(c.SettleDuration)))
	}
	if c.SnapFactor != nil {
		opts = append(opts, WithSnapFactor(*c.SnapFactor))
	}
	if c.Easing != "" {
		if e, err := EasingByName(c.Easing); err == nil {
			opts = append(opts, WithEasing(e))
		}
	}
	return opts
}

// LoadConfig decodes and validates a config. A nil codec selects AutoCodec.
func LoadConfig(data []byte, codec Codec) (Config, error) {
	if codec == nil {
		codec = AutoCodec{}
	}
	var cfg Config
	if err := codec.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a carousel over the effect names and image paths in
// cfg. Options given here override those derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Carousel[string, string], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	all := append(cfg.Options(), opts...)
	return New(cfg.Effects, cfg.Images, cfg.Resolution(), all...)
}

// Duration is a time.Duration that decodes from strings such as "250ms".
// JSON numbers are read as milliseconds.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

// UnmarshalJSON parses a duration string or a number of milliseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.parse(s)
	}
	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("duration must be a string or milliseconds: %w", err)
	}
	*d = Duration(ms * float64(time.Millisecond))
	return nil
}

func (d *Duration) parse(s string) error {
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// String formats the duration like time.Duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}
