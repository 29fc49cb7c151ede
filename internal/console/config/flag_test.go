package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("all flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", "http://other:4000", "-t", "20", "-s", "/tmp/st"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "http://other:4000", cfg.StoreEndpointAddr)
		assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "/tmp/st", cfg.StateFile)
	})

	t.Run("no flags keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "http://127.0.0.1:3000", cfg.StoreEndpointAddr)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})
}
