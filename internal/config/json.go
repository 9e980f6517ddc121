package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

type StructuredJSONConfig struct {
	Storage struct {
		Path       string `json:"path"`
		Size       Size   `json:"size"`
		Unit       string `json:"unit"`
		JournalDSN string `json:"journal_dsn"`
	} `json:"storage,omitempty"`

	Network struct {
		Address     string   `json:"address"`
		Port        int      `json:"port"`
		STUNServers []string `json:"stun_servers"`
	} `json:"network,omitempty"`

	Payment struct {
		Address string `json:"address"`
	} `json:"payment,omitempty"`

	Telemetry struct {
		Enabled         *bool    `json:"enabled"`
		Endpoint        string   `json:"endpoint"`
		SpeedTestURL    string   `json:"speed_test_url"`
		Interval        Duration `json:"interval"`
		FreshnessWindow Duration `json:"freshness_window"`
		CachePath       string   `json:"cache_path"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"telemetry,omitempty"`

	// the key password is never read from a file
	Key struct {
		File string `json:"file"`
	} `json:"key,omitempty"`
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
		Storage: Storage{
			Path:       jsonCfg.Storage.Path,
			Size:       string(jsonCfg.Storage.Size),
			Unit:       jsonCfg.Storage.Unit,
			JournalDSN: jsonCfg.Storage.JournalDSN,
		},
		Network: Network{
			Address:     jsonCfg.Network.Address,
			Port:        jsonCfg.Network.Port,
			STUNServers: jsonCfg.Network.STUNServers,
		},
		Payment: Payment{
			Address: jsonCfg.Payment.Address,
		},
		Telemetry: Telemetry{
			Enabled:         jsonCfg.Telemetry.Enabled,
			Endpoint:        jsonCfg.Telemetry.Endpoint,
			SpeedTestURL:    jsonCfg.Telemetry.SpeedTestURL,
			Interval:        time.Duration(jsonCfg.Telemetry.Interval),
			FreshnessWindow: time.Duration(jsonCfg.Telemetry.FreshnessWindow),
			CachePath:       jsonCfg.Telemetry.CachePath,
			RequestTimeout:  time.Duration(jsonCfg.Telemetry.RequestTimeout),
		},
		Key: Key{
			File: jsonCfg.Key.File,
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

// Size accepts the storage capacity either as a JSON number (2, 1.5) or as
// a string ("2").
type Size string

func (s *Size) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*s = ""
	case float64:
		*s = Size(strconv.FormatFloat(value, 'f', -1, 64))
	case string:
		*s = Size(value)
	default:
		return fmt.Errorf("storage size must be a number or a string, got %s", b)
	}
	return nil
}
