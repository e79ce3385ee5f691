package types

import (
	"os"

	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	yaml "gopkg.in/yaml.v2"
)

// MetricsConfig controls the statsd transfer of sampled gauges.
// Step is in seconds; 0 disables the transfer.
type MetricsConfig struct {
	Step      int64    `yaml:"step" default:"10"`
	Transfers []string `yaml:"transfers"`
}

// APIConfig contains api config
type APIConfig struct {
	Addr string `yaml:"addr"`
}

// Config contains all configs
type Config struct {
	PidFile  string `yaml:"pid" required:"true" default:"/tmp/hostwatch-agent.pid"`
	HostName string `yaml:"-"`

	Metrics MetricsConfig `yaml:"metrics"`
	API     APIConfig     `yaml:"api"`
}

// Prepare 从cli覆写并做准备
func (config *Config) Prepare(c *cli.Context) {
	if c.String("hostname") != "" {
		config.HostName = c.String("hostname")
	} else {
		hostname, err := os.Hostname()
		if err != nil {
			log.Fatal(err)
		}
		config.HostName = hostname
	}

	if c.String("pidfile") != "" {
		config.PidFile = c.String("pidfile")
	}
	if c.Int64("metrics-step") > 0 {
		config.Metrics.Step = c.Int64("metrics-step")
	}
	if len(c.StringSlice("metrics-transfers")) > 0 {
		config.Metrics.Transfers = c.StringSlice("metrics-transfers")
	}
	if c.String("api-addr") != "" {
		config.API.Addr = c.String("api-addr")
	}

	// validate
	if config.PidFile == "" {
		log.Fatal("need to set pidfile")
	}
	if config.Metrics.Step == 0 {
		config.Metrics.Step = 10
	}
}

// Print 打印生效的配置
func (config *Config) Print() {
	bs, err := yaml.Marshal(config)
	if err != nil {
		log.Errorf("[config] marshal config failed %v", err)
		return
	}
	log.Infof("[config] config loaded:\n%s", string(bs))
}
