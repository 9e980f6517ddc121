// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of the node-reporter
// daemon.
//
// Three abstractions decouple the service layer from the network:
// [ReportAdapter] delivers a telemetry report to the collection service,
// [SpeedTestAdapter] measures upload and download throughput, and
// [AddressResolver] discovers the node's public address. HTTP
// implementations are built on resty; address discovery uses STUN.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401). Every delivery failure also
// wraps [ErrDelivery].
package adapter

import (
	"context"
	"crypto/ed25519"

	"github.com/MKhiriev/node-reporter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ReportAdapter delivers telemetry reports. Implementations are responsible
// for serialisation, request signing, and mapping transport-level errors to
// the sentinel values defined in this package.
type ReportAdapter interface {
	// Send delivers report once. It does not retry; the caller decides
	// what a failed delivery means. Returns an error wrapping [ErrDelivery]
	// on any failure.
	Send(ctx context.Context, report models.TelemetryReport) error
}

// SpeedTestAdapter measures the node's network throughput.
type SpeedTestAdapter interface {
	// Measure runs one download and one upload test and returns both
	// rates in bytes per second.
	Measure(ctx context.Context) (models.Throughput, error)
}

// AddressResolver discovers the public address of the node.
type AddressResolver interface {
	// Resolve returns the public IP as seen by a remote server.
	Resolve(ctx context.Context) (string, error)
}

// Signer is the node identity used to sign outgoing reports.
// crypto.Identity implements it.
type Signer interface {
	NodeID() string
	PrivateKey() ed25519.PrivateKey
}
