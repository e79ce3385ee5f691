package types

import (
	"testing"

	"github.com/jinzhu/configor"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	config := &Config{}
	err := configor.Load(config, "../hostwatch-agent.yaml.sample")
	assert.NoError(err)
	assert.Equal(config.PidFile, "/tmp/hostwatch-agent.pid")
	assert.Equal(config.HostName, "")

	assert.Equal(config.Metrics.Step, int64(10))
	assert.Equal(config.Metrics.Transfers, []string{"127.0.0.1:8125"})
	assert.Equal(config.API.Addr, "127.0.0.1:12310")
}
