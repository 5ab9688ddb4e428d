package ports

import "github.com/gibberlink-dev/gibberlink-bridge/domain/entities"

// ConfigParser decodes raw configuration bytes into a BridgeConfig.
type ConfigParser interface {
	Parse(data []byte) (*entities.BridgeConfig, error)
}
