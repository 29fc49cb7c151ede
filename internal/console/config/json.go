package config

import (
	"encoding/json"
	"os"
	"time"

	"traveldesk/internal/flagx"
	"traveldesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the timeout either as a string
// like "10s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	StoreEndpointAddr string         `json:"store_endpoint_addr"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	StateFile         string         `json:"state_file"`
	SessionSecret     string         `json:"session_secret"`
}

// parseJson overlays Config with values loaded from a JSON file located
// via the -c/-config flags. Empty JSON fields leave the current value in
// place, so the intended usage stays defaults -> parseJson -> parseFlags
// with later stages overriding earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreEndpointAddr != "" {
		cfg.StoreEndpointAddr = jc.StoreEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StateFile != "" {
		cfg.StateFile = jc.StateFile
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
}
