package config

import (
	"fmt"

	"github.com/oddbits/bitkit/shared"
)

const (
	DefaultMaxBufferBits = shared.MaxBufferBits

	DefaultDumpGroupBytes = 4
	DefaultDumpRowBytes   = 8
	DefaultDumpLabelWidth = 3
)

// Config carries the module's tunables: the allocation ceiling applied
// when sizing buffers from external input, and the hex dump layout.
type Config struct {
	MaxBufferBits  uint `mapstructure:"max-buffer-bits"`
	DumpGroupBytes int  `mapstructure:"dump-group-bytes"`
	DumpRowBytes   int  `mapstructure:"dump-row-bytes"`
	DumpLabelWidth int  `mapstructure:"dump-label-width"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxBufferBits:  DefaultMaxBufferBits,
		DumpGroupBytes: DefaultDumpGroupBytes,
		DumpRowBytes:   DefaultDumpRowBytes,
		DumpLabelWidth: DefaultDumpLabelWidth,
	}
}

func (cfg *Config) Validate() error {
	if cfg.MaxBufferBits == 0 || cfg.MaxBufferBits > shared.MaxBufferBits {
		return fmt.Errorf("`max-buffer-bits` must be in range 1-%d, found: %d",
			uint(shared.MaxBufferBits), cfg.MaxBufferBits)
	}
	if cfg.DumpGroupBytes < 1 {
		return fmt.Errorf("`dump-group-bytes` must be positive, found: %d", cfg.DumpGroupBytes)
	}
	if cfg.DumpRowBytes < cfg.DumpGroupBytes || cfg.DumpRowBytes%cfg.DumpGroupBytes != 0 {
		return fmt.Errorf("`dump-row-bytes` must be a multiple of `dump-group-bytes` (%d), found: %d",
			cfg.DumpGroupBytes, cfg.DumpRowBytes)
	}
	if cfg.DumpLabelWidth < 1 {
		return fmt.Errorf("`dump-label-width` must be positive, found: %d", cfg.DumpLabelWidth)
	}
	return nil
}
