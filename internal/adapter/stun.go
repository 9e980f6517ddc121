package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/pion/stun/v3"
)

const defaultSTUNTimeout = 5 * time.Second

type stunResolver struct {
	servers []string
	timeout time.Duration

	logger *logger.Logger
}

// NewSTUNResolver returns an [AddressResolver] that sends a binding request
// to each server in order and returns the first mapped IP.
func NewSTUNResolver(servers []string, timeout time.Duration, logger *logger.Logger) AddressResolver {
	if timeout <= 0 {
		timeout = defaultSTUNTimeout
	}
	return &stunResolver{servers: servers, timeout: timeout, logger: logger}
}

// Resolve implements [AddressResolver].
func (r *stunResolver) Resolve(ctx context.Context) (string, error) {
	if len(r.servers) == 0 {
		return "", fmt.Errorf("%w: no STUN servers configured", ErrNoPublicAddress)
	}

	var errs []error
	for _, server := range r.servers {
		addr, err := probeServer(ctx, server, r.timeout)
		if err != nil {
			r.logger.Debug().Err(err).Str("server", server).Msg("STUN probe failed")
			errs = append(errs, fmt.Errorf("%s: %w", server, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		return addr.IP.String(), nil
	}

	return "", fmt.Errorf("%w: %w", ErrNoPublicAddress, errors.Join(errs...))
}

func probeServer(ctx context.Context, server string, timeout time.Duration) (stun.XORMappedAddress, error) {
	uriStr := strings.TrimSpace(server)
	if uriStr == "" {
		return stun.XORMappedAddress{}, errors.New("empty STUN server")
	}
	if !strings.HasPrefix(uriStr, "stun:") {
		uriStr = "stun:" + uriStr
	}

	uri, err := stun.ParseURI(uriStr)
	if err != nil {
		return stun.XORMappedAddress{}, err
	}

	client, err := stun.DialURI(uri, &stun.DialConfig{})
	if err != nil {
		return stun.XORMappedAddress{}, err
	}
	defer client.Close()

	msg := stun.MustBuild(stun.TransactionID, stun.BindingRequest)
	result := make(chan stun.XORMappedAddress, 1)
	fail := make(chan error, 2)

	go func() {
		var addr stun.XORMappedAddress
		err := client.Do(msg, func(res stun.Event) {
			if res.Error != nil {
				fail <- res.Error
				return
			}
			if err := addr.GetFrom(res.Message); err != nil {
				fail <- err
				return
			}
			result <- addr
		})
		if err != nil {
			fail <- err
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case addr := <-result:
		return addr, nil
	case err := <-fail:
		return stun.XORMappedAddress{}, err
	case <-ctx.Done():
		return stun.XORMappedAddress{}, ctx.Err()
	}
}
