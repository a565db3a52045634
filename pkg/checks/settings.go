package checks

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Settings are publisher-side defaults read from the environment.
type Settings struct {
	// SkipPublishing short-circuits FindPublisher to the NullPublisher.
	SkipPublishing bool `env:"CHECKS_SKIP_PUBLISH,default=false"`

	// DefaultDetailsURL is applied to builders without an explicit
	// details URL.
	DefaultDetailsURL string `env:"CHECKS_DEFAULT_DETAILS_URL"`

	// Verbose logs publisher selection at info level.
	Verbose bool `env:"CHECKS_VERBOSE_LOG,default=false"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings(ctx context.Context) (Settings, error) {
	var s Settings
	if err := envconfig.Process(ctx, &s); err != nil {
		return Settings{}, fmt.Errorf("processing checks environment: %w", err)
	}
	return s, nil
}

// ApplyDefaults fills the builder's unset optional fields from the
// settings.
func (s Settings) ApplyDefaults(b *DetailsBuilder) error {
	if b.detailsURL == "" && s.DefaultDetailsURL != "" {
		return b.WithDetailsURL(s.DefaultDetailsURL)
	}
	return nil
}
