// Package config loads the inspector daemon configuration from TOML.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Inspector is the wireservd runtime configuration.
type Inspector struct {
	Name           string   `toml:"name"`
	Addr           string   `toml:"addr"`
	CorsOrigins    []string `toml:"cors_origins"`
	Debug          bool     `toml:"debug"`
	MaxGraphNodes  int      `toml:"max_graph_nodes"`
	MaxPacketBytes int      `toml:"max_packet_bytes"`
}

func DefaultInspector() Inspector {
	return Inspector{
		Name:           "wireservd",
		Addr:           ":9400",
		MaxGraphNodes:  4096,
		MaxPacketBytes: 2 * 1024 * 1024,
	}
}

// LoadInspector reads path, applying defaults for keys the file omits.
func LoadInspector(path string) (Inspector, error) {
	cfg := DefaultInspector()

	var raw Inspector
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Inspector{}, fmt.Errorf("load inspector config: %w", err)
	}

	if meta.IsDefined("name") && strings.TrimSpace(raw.Name) != "" {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("addr") && strings.TrimSpace(raw.Addr) != "" {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}
	if meta.IsDefined("max_graph_nodes") {
		cfg.MaxGraphNodes = raw.MaxGraphNodes
	}
	if meta.IsDefined("max_packet_bytes") {
		cfg.MaxPacketBytes = raw.MaxPacketBytes
	}

	if err := Validate(cfg); err != nil {
		return Inspector{}, err
	}
	return cfg, nil
}

func Validate(cfg Inspector) error {
	if cfg.MaxGraphNodes <= 0 {
		return fmt.Errorf("config: max_graph_nodes must be positive, got %d", cfg.MaxGraphNodes)
	}
	if cfg.MaxPacketBytes <= 0 {
		return fmt.Errorf("config: max_packet_bytes must be positive, got %d", cfg.MaxPacketBytes)
	}
	return nil
}
