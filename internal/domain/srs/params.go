package srs

import "github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"

// Params defines all configurable parameters for the SRS algorithm
type Params struct {
	// MinEaseFactor is the floor for the ease factor.
	MinEaseFactor float64

	// AgainPenalty is subtracted from the ease factor on "again".
	AgainPenalty float64

	// EasyBonus is added to the ease factor on "easy" and to the
	// multiplier used for the "easy" interval.
	EasyBonus float64

	// ResetInterval is the interval in days after "again".
	ResetInterval int

	// MaxInterval caps every computed interval in days.
	MaxInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero values keep the default.
type ParamsConfig struct {
	MinEaseFactor float64 `mapstructure:"min_ease_factor" validate:"omitempty,gte=1"`
	AgainPenalty  float64 `mapstructure:"again_penalty" validate:"omitempty,gt=0"`
	EasyBonus     float64 `mapstructure:"easy_bonus" validate:"omitempty,gt=0"`
	ResetInterval int     `mapstructure:"reset_interval" validate:"omitempty,gte=1"`
	MaxInterval   int     `mapstructure:"max_interval" validate:"omitempty,gte=1,lte=36500"`
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: domain.MinEaseFactor,
		AgainPenalty:  0.20,
		EasyBonus:     0.15,
		ResetInterval: 1,
		MaxInterval:   domain.MaxInterval,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.AgainPenalty > 0 {
		params.AgainPenalty = config.AgainPenalty
	}
	if config.EasyBonus > 0 {
		params.EasyBonus = config.EasyBonus
	}
	if config.ResetInterval > 0 {
		params.ResetInterval = config.ResetInterval
	}
	if config.MaxInterval > 0 && config.MaxInterval <= domain.MaxInterval {
		params.MaxInterval = config.MaxInterval
	}
	if params.ResetInterval > params.MaxInterval {
		params.ResetInterval = params.MaxInterval
	}

	return params
}
