package btree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// MinOrder is the smallest order a tree may be configured with.
	MinOrder = 3
	// DefaultOrder is the order used when a configuration does not set one.
	DefaultOrder = 32
)

// Config configures a B-tree.
type Config struct {
	// Order is the maximum number of children of a node. Nodes hold at most
	// Order-1 keys. Order must be at least 3.
	Order int `yaml:"order"`
}

// DefaultConfig returns a configuration with DefaultOrder.
func DefaultConfig() Config {
	return Config{Order: DefaultOrder}
}

func (cfg Config) validate() error {
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order must be at least %d, is %d", ErrInvalidConfig, MinOrder, cfg.Order)
	}
	return nil
}

// maxKeys is the upper occupancy bound of every node.
func (cfg Config) maxKeys() int {
	return cfg.Order - 1
}

// floorOrder is ⌈order/2⌉.
func (cfg Config) floorOrder() int {
	return cfg.Order/2 + cfg.Order%2
}

// minKeys is the lower occupancy bound of every non-root node.
func (cfg Config) minKeys() int {
	return cfg.floorOrder() - 1
}

// LoadConfig reads a YAML configuration from r.
//
// An empty document or a document without an `order` key yields DefaultOrder.
// Unknown keys and invalid orders are rejected with ErrInvalidConfig.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	tracer().Infof("btree config: order = %d", cfg.Order)
	return cfg, nil
}

// LoadConfigFile reads a YAML configuration file. If path is empty or the
// file does not exist, it returns DefaultConfig and no error.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			tracer().Errorf("btree config: failed to close %q: %v", path, closeErr)
		}
	}()
	return LoadConfig(f)
}
