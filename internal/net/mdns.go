package net

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
	"github.com/pkg/errors"
)

const serviceType = "_inkboard._tcp"

// advertise announces the mirror on the local network.
func advertise(name string, port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, errors.Wrap(err, "could not get hostname")
	}

	info := []string{"InkBoard", "path=" + wsPath}
	service, err := mdns.NewMDNSService(
		host+"-"+name,
		serviceType,
		"",
		"",
		port,
		nil,
		info,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mDNS service")
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start mDNS server")
	}
	return server, nil
}

// Discover lists the websocket URLs of mirrors found within timeout.
func Discover(timeout time.Duration) ([]string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan []string)
	go func() {
		var found []string
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found = append(found, fmt.Sprintf("ws://%s:%d%s", e.AddrV4, e.Port, wsPath))
		}
		done <- found
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	found := <-done
	if err != nil {
		return found, errors.Wrap(err, "mDNS query failed")
	}
	return found, nil
}
