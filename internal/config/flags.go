package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-storage-path data directory to measure
//	-storage-size shared capacity (e.g. "2", "1.5")
//	-storage-unit capacity unit: MB, GB or TB
//	-journal-dsn optional sqlite file for the tick journal
//	-a public node address in format [host]:[port]
//	-payment-address payout address
//	-telemetry enable the report loop
//	-telemetry-endpoint collection service base URL
//	-speed-test-url speed-test service base URL
//	-interval pause between ticks (e.g. "5m")
//	-cache-path bandwidth cache file
//	-request-timeout timeout of outbound calls (e.g. "30s")
//	-key-file encrypted key file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("node-reporter", flag.ContinueOnError)

	var nodeAddress NetAddress
	var storagePath, storageSize, storageUnit, journalDSN string
	var paymentAddress string
	var telemetryEnabled bool
	var endpoint, speedTestURL, cachePath string
	var interval, requestTimeout time.Duration
	var keyFile string
	var jsonConfigPath string

	fs.StringVar(&storagePath, "storage-path", "", "Data directory to measure")
	fs.StringVar(&storageSize, "storage-size", "", "Shared capacity, e.g. 2 or 1.5")
	fs.StringVar(&storageUnit, "storage-unit", "", "Capacity unit: MB, GB or TB")
	fs.StringVar(&journalDSN, "journal-dsn", "", "Tick journal sqlite file")
	fs.Var(&nodeAddress, "a", "Public node address host:port")
	fs.StringVar(&paymentAddress, "payment-address", "", "Payment address")
	fs.BoolVar(&telemetryEnabled, "telemetry", false, "Enable periodic telemetry reports")
	fs.StringVar(&endpoint, "telemetry-endpoint", "", "Collection service base URL")
	fs.StringVar(&speedTestURL, "speed-test-url", "", "Speed-test service base URL")
	fs.DurationVar(&interval, "interval", 0, "Pause between reports (e.g., 5m)")
	fs.StringVar(&cachePath, "cache-path", "", "Bandwidth cache file")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&keyFile, "key-file", "", "Encrypted key file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// only an explicitly passed -telemetry takes part in the merge
	var enabled *bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "telemetry" {
			enabled = &telemetryEnabled
		}
	})

	return &StructuredConfig{
		Storage: Storage{
			Path:       storagePath,
			Size:       storageSize,
			Unit:       storageUnit,
			JournalDSN: journalDSN,
		},
		Network: Network{
			Address: nodeAddress.Host,
			Port:    nodeAddress.Port,
		},
		Payment: Payment{
			Address: paymentAddress,
		},
		Telemetry: Telemetry{
			Enabled:        enabled,
			Endpoint:       endpoint,
			SpeedTestURL:   speedTestURL,
			Interval:       interval,
			CachePath:      cachePath,
			RequestTimeout: requestTimeout,
		},
		Key: Key{
			File: keyFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be a DNS name or an IP literal; IPv6 literals must be
// bracketed.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	if host == "" {
		return errors.New("host must not be empty")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
