package metric

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hostwatch/agent/types"
	"github.com/hostwatch/agent/utils"

	statsdlib "github.com/CMGS/statsd"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Client combine statsd and prometheus
type Client struct {
	sync.Mutex

	statsd   string
	prefix   string
	step     time.Duration
	lastSent time.Time
	data     map[string]float64

	cpuUsage      prometheus.Gauge
	memUsedBytes  prometheus.Gauge
	memFreeBytes  prometheus.Gauge
	diskUsedRatio prometheus.Gauge
	downBytesRate *prometheus.GaugeVec
	upBytesRate   *prometheus.GaugeVec
	visibleProcs  prometheus.Gauge
	urgentProcs   prometheus.Gauge
}

// NewClient new a metrics client
func NewClient(config *types.Config) *Client {
	labels := map[string]string{"hostname": config.HostName}

	cpuUsage := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "host_cpu_usage",
		Help:        "host cpu usage percent.",
		ConstLabels: labels,
	})
	memUsedBytes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "host_mem_used_bytes",
		Help:        "host memory used.",
		ConstLabels: labels,
	})
	memFreeBytes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "host_mem_free_bytes",
		Help:        "host memory free.",
		ConstLabels: labels,
	})
	diskUsedRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "host_disk_used_percent",
		Help:        "root filesystem used percent.",
		ConstLabels: labels,
	})
	downBytesRate := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:        "host_net_down_bytes_per_sec",
		Help:        "download rate.",
		ConstLabels: labels,
	}, []string{"nic"})
	upBytesRate := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:        "host_net_up_bytes_per_sec",
		Help:        "upload rate.",
		ConstLabels: labels,
	}, []string{"nic"})
	visibleProcs := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "host_visible_processes",
		Help:        "processes above the visibility thresholds.",
		ConstLabels: labels,
	})
	urgentProcs := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "host_urgent_processes",
		Help:        "processes with an active advisory.",
		ConstLabels: labels,
	})

	prometheus.MustRegister(
		cpuUsage, memUsedBytes, memFreeBytes, diskUsedRatio,
		downBytesRate, upBytesRate, visibleProcs, urgentProcs,
	)

	statsd := ""
	if len(config.Metrics.Transfers) > 0 {
		backends := utils.NewHashBackends(config.Metrics.Transfers)
		statsd = backends.Get(config.HostName, 0)
	}

	return &Client{
		statsd: statsd,
		prefix: fmt.Sprintf("hostwatch.%s", config.HostName),
		step:   time.Duration(config.Metrics.Step) * time.Second,
		data:   map[string]float64{},

		cpuUsage:      cpuUsage,
		memUsedBytes:  memUsedBytes,
		memFreeBytes:  memFreeBytes,
		diskUsedRatio: diskUsedRatio,
		downBytesRate: downBytesRate,
		upBytesRate:   upBytesRate,
		visibleProcs:  visibleProcs,
		urgentProcs:   urgentProcs,
	}
}

// Report pushes one snapshot into the gauges and forwards to statsd at
// most once per configured step.
func (c *Client) Report(snap *types.Snapshot) {
	c.Lock()
	defer c.Unlock()

	c.gauge("cpu_usage", snap.CPU.Percent, c.cpuUsage)
	c.gauge("mem_used_bytes", float64(snap.Memory.UsedBytes), c.memUsedBytes)
	c.gauge("mem_free_bytes", float64(snap.Memory.FreeBytes), c.memFreeBytes)
	c.gauge("disk_used_percent", snap.Disk.UsedPercent, c.diskUsedRatio)
	c.gauge("visible_processes", float64(len(snap.CPU.TopProcesses)), c.visibleProcs)
	c.gauge("urgent_processes", float64(len(snap.Urgent)), c.urgentProcs)

	if nic := snap.Network.Current.Interface; nic != "" {
		down := snap.Network.Current.DownBytesPerSec
		up := snap.Network.Current.UpBytesPerSec
		c.data[nic+".down.bytes"] = down
		c.data[nic+".up.bytes"] = up
		c.downBytesRate.WithLabelValues(nic).Set(down)
		c.upBytesRate.WithLabelValues(nic).Set(up)
	}

	if time.Since(c.lastSent) >= c.step {
		c.lastSent = time.Now()
		if err := utils.BackoffRetry(context.TODO(), 3, c.send); err != nil {
			log.Errorf("[metrics] send to statsd failed: %v", err)
		}
	}
}

func (c *Client) gauge(key string, value float64, g prometheus.Gauge) {
	c.data[key] = value
	g.Set(value)
}

// send flushes the accumulated gauges to statsd
func (c *Client) send() error {
	if c.statsd == "" {
		return nil
	}
	remote, err := statsdlib.New(c.statsd)
	if err != nil {
		return err
	}
	defer remote.Close()
	defer remote.Flush()
	for k, v := range c.data {
		key := fmt.Sprintf("%s.%s", c.prefix, k)
		remote.Gauge(key, v)
		delete(c.data, k)
	}
	return nil
}
