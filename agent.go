package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hostwatch/agent/api"
	"github.com/hostwatch/agent/metric"
	"github.com/hostwatch/agent/sampler"
	"github.com/hostwatch/agent/sysinfo"
	"github.com/hostwatch/agent/types"
	"github.com/hostwatch/agent/utils"
	"github.com/hostwatch/agent/version"

	"github.com/coreos/go-systemd/daemon"
	"github.com/jinzhu/configor"
	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"
)

func setupLogLevel(l string) error {
	level, err := log.ParseLevel(l)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
	return nil
}

func initConfig(c *cli.Context) *types.Config {
	config := &types.Config{}

	if err := configor.Load(config, c.String("config")); err != nil {
		log.Fatalf("[main] load config failed %v", err)
	}

	config.Prepare(c)
	config.Print()
	return config
}

func serve(c *cli.Context) error {
	if err := setupLogLevel(c.String("log-level")); err != nil {
		log.Fatal(err)
	}

	config := initConfig(c)
	utils.WritePid(config.PidFile)
	defer os.Remove(config.PidFile)

	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	s := sampler.New(config, sysinfo.NewHostReader())
	s.SetReporter(metric.NewClient(config))

	api.Serve(config.API.Addr, s)

	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Debugf("[agent] sd_notify failed %v", err)
	}

	if err := s.Run(ctx); err != nil {
		log.Errorf("[agent] sampler err: %v, exiting", err)
		return err
	}
	log.Info("[agent] agent caught system signal, exiting")
	return nil
}

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Print(version.String())
	}

	app := &cli.App{
		Name:    version.NAME,
		Usage:   "Run hostwatch agent",
		Version: version.VERSION,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "/etc/hostwatch/agent.yaml",
				Usage:   "config file path for agent, in yaml",
				EnvVars: []string{"HOSTWATCH_CONFIG_PATH"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "INFO",
				Usage:   "set log level",
				EnvVars: []string{"HOSTWATCH_LOG_LEVEL"},
			},
			&cli.Int64Flag{
				Name:    "metrics-step",
				Value:   0,
				Usage:   "interval for metrics to send",
				EnvVars: []string{"HOSTWATCH_METRICS_STEP"},
			},
			&cli.StringSliceFlag{
				Name:    "metrics-transfers",
				Value:   &cli.StringSlice{},
				Usage:   "metrics destinations",
				EnvVars: []string{"HOSTWATCH_METRICS_TRANSFERS"},
			},
			&cli.StringFlag{
				Name:    "api-addr",
				Value:   "",
				Usage:   "agent api serving address",
				EnvVars: []string{"HOSTWATCH_API_ADDR"},
			},
			&cli.StringFlag{
				Name:    "pidfile",
				Value:   "",
				Usage:   "pidfile to save",
				EnvVars: []string{"HOSTWATCH_PIDFILE"},
			},
			&cli.StringFlag{
				Name:    "hostname",
				Value:   "",
				Usage:   "change hostname",
				EnvVars: []string{"HOSTWATCH_HOSTNAME"},
			},
		},
		Action: serve,
	}
	if err := app.Run(os.Args); err != nil {
		log.Errorf("Error running agent: %v", err)
	}
}
