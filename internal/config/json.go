package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		DefaultAlgorithm string `json:"default_algorithm"`
		LogLevel         string `json:"log_level"`
		LogDir           string `json:"log_dir"`
	} `json:"app,omitempty"`

	Storage struct {
		VaultDir string `json:"vault_dir"`
	} `json:"storage,omitempty"`

	Workers struct {
		TickInterval Duration `json:"tick_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultAlgorithm: jsonCfg.App.DefaultAlgorithm,
			LogLevel:         jsonCfg.App.LogLevel,
			LogDir:           jsonCfg.App.LogDir,
		},
		Storage: Storage{
			VaultDir: jsonCfg.Storage.VaultDir,
		},
		Workers: Workers{
			TickInterval: time.Duration(jsonCfg.Workers.TickInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
