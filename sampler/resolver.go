package sampler

import (
	"net"
	"strings"

	"github.com/hostwatch/agent/common"
	"github.com/hostwatch/agent/sysinfo"

	log "github.com/sirupsen/logrus"
)

// resolveInterface picks the interface the host actually routes through.
// The default-route local address is matched against interface networks;
// when that fails the healthiest-looking interface wins.
func resolveInterface(reader sysinfo.Reader) (string, error) {
	ifaces, err := reader.Interfaces()
	if err != nil {
		return "", err
	}

	if ip, err := reader.OutboundIP(); err == nil {
		if name := matchByAddr(ifaces, ip); name != "" {
			return name, nil
		}
	} else {
		log.Debugf("[sampler] outbound probe failed %v", err)
	}

	return fallbackInterface(ifaces)
}

func matchByAddr(ifaces []sysinfo.InterfaceInfo, ip string) string {
	addr := net.ParseIP(ip)
	if addr == nil {
		return ""
	}
	for _, iface := range ifaces {
		for _, cidr := range iface.Addrs {
			_, ipnet, err := net.ParseCIDR(cidr)
			if err != nil {
				continue
			}
			if ipnet.Contains(addr) {
				return iface.Name
			}
		}
	}
	return ""
}

// fallbackInterface prefers en0, then any en-prefixed interface, then
// whatever is up and running.
func fallbackInterface(ifaces []sysinfo.InterfaceInfo) (string, error) {
	candidates := []sysinfo.InterfaceInfo{}
	for _, iface := range ifaces {
		if iface.Up && iface.Running {
			candidates = append(candidates, iface)
		}
	}
	if len(candidates) == 0 {
		return "", common.ErrNoInterface
	}

	for _, iface := range candidates {
		if iface.Name == "en0" {
			return iface.Name, nil
		}
	}
	for _, iface := range candidates {
		if strings.HasPrefix(iface.Name, "en") {
			return iface.Name, nil
		}
	}
	return candidates[0].Name, nil
}
