/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ConfigManager centralizes configuration lookups. Priority order, highest
// first: CLI flags (applied by the caller after Load), environment
// variables, .env file, built-in defaults.
type ConfigManager struct {
	mu     sync.RWMutex
	values map[string]string
	logger *zap.Logger
}

// New creates a ConfigManager bound to logger.
func New(logger *zap.Logger) *ConfigManager {
	return &ConfigManager{values: make(map[string]string), logger: logger}
}

// Load populates defaults, then the .env file, then the real environment,
// each layer overriding the last.
func (cm *ConfigManager) Load() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.loadDefaults()
	cm.loadEnvFile()
	cm.loadEnvVars()
}

func (cm *ConfigManager) loadDefaults() {
	cm.values["AWS_KEY_PATH"] = ""
	cm.values["AWS_KEYNAME"] = ""
	cm.values["DIGITALOCEAN_ACCESS_TOKEN"] = ""
	cm.values["DIGITALOCEAN_KEY_PATH"] = ""
	cm.values["AZURE_SUBSCRIPTION_ID"] = ""
	cm.values["AZURE_PUB_KEY_PATH"] = ""
	cm.values["AZURE_PRIV_KEY_PATH"] = ""
	cm.values["GCP_KEY_PATH"] = ""
	cm.values["GCP_PROJECT_ID"] = ""
}

func (cm *ConfigManager) loadEnvFile() {
	envMap, err := godotenv.Read()
	if err != nil {
		cm.logger.Debug("no .env file found", zap.Error(err))
		return
	}
	for k, v := range envMap {
		cm.values[k] = v
	}
}

func (cm *ConfigManager) loadEnvVars() {
	for _, e := range os.Environ() {
		if k, v, ok := strings.Cut(e, "="); ok {
			cm.values[k] = v
		}
	}
}

// Get returns a configuration value, or "" if unset.
func (cm *ConfigManager) Get(key string) string {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.values[key]
}
