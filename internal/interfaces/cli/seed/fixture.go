package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture describes demo data applied in order: wallets, then recharges,
// then subscriptions.
type Fixture struct {
	Wallets       []WalletSeed       `yaml:"wallets"`
	Subscriptions []SubscriptionSeed `yaml:"subscriptions"`
}

type WalletSeed struct {
	UserID   int64 `yaml:"user_id"`
	Recharge int64 `yaml:"recharge"`
}

type SubscriptionSeed struct {
	UserID int64  `yaml:"user_id"`
	Tier   string `yaml:"tier"`
	Days   int64  `yaml:"days"`
}

// LoadFixture reads and validates a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	if len(f.Wallets) == 0 && len(f.Subscriptions) == 0 {
		return fmt.Errorf("seed file is empty")
	}
	for i, w := range f.Wallets {
		if w.UserID <= 0 {
			return fmt.Errorf("wallets[%d]: user_id must be positive", i)
		}
		if w.Recharge < 0 {
			return fmt.Errorf("wallets[%d]: recharge must not be negative", i)
		}
	}
	for i, s := range f.Subscriptions {
		if s.UserID <= 0 {
			return fmt.Errorf("subscriptions[%d]: user_id must be positive", i)
		}
		if s.Tier == "" {
			return fmt.Errorf("subscriptions[%d]: tier is required", i)
		}
	}
	return nil
}
