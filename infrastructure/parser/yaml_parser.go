// Package parser provides configuration parsers for the bridge.
package parser

import (
	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/ports"
	"gopkg.in/yaml.v3"
)

// YamlConfigParser implements ports.ConfigParser for YAML.
type YamlConfigParser struct{}

// NewYamlConfigParser creates a new YamlConfigParser.
func NewYamlConfigParser() ports.ConfigParser {
	return &YamlConfigParser{}
}

// Parse unmarshals YAML bytes into a BridgeConfig struct.
func (p *YamlConfigParser) Parse(data []byte) (*entities.BridgeConfig, error) {
	cfg := entities.DefaultBridgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}
