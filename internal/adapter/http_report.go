// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/internal/utils"
	"github.com/MKhiriev/node-reporter/models"
)

const (
	// HeaderRequestID carries the tick trace id of a report request.
	HeaderRequestID = "X-Request-ID"

	reportsPath    = "/reports"
	reportTokenTTL = 5 * time.Minute
)

type httpReportAdapter struct {
	client *utils.HTTPClient
	signer Signer
	ids    *utils.UUIDGenerator
	now    func() time.Time

	logger *logger.Logger
}

// NewHTTPReportAdapter constructs the HTTP implementation of [ReportAdapter]
// posting to {telemetryCfg.Endpoint}/reports. Every request carries an
// EdDSA bearer token signed by signer and bound to the request body.
//
// Returns an error if the endpoint is empty or cannot be parsed.
func NewHTTPReportAdapter(telemetryCfg config.Telemetry, signer Signer, logger *logger.Logger) (ReportAdapter, error) {
	client, err := utils.NewHTTPClient(telemetryCfg.Endpoint, telemetryCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid telemetry endpoint: %w", err)
	}

	return &httpReportAdapter{
		client: client,
		signer: signer,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}, nil
}

// Send implements [ReportAdapter]. The request id is the trace id found in
// ctx, or a fresh UUID when there is none.
func (h *httpReportAdapter) Send(ctx context.Context, report models.TelemetryReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("%w: encode report: %w", ErrDelivery, err)
	}

	token, err := utils.GenerateReportToken(h.signer.NodeID(), h.signer.PrivateKey(), utils.BodyDigest(body), h.now(), reportTokenTTL)
	if err != nil {
		return fmt.Errorf("%w: sign report: %w", ErrDelivery, err)
	}

	requestID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token).
		SetHeader(HeaderRequestID, requestID).
		SetBody(body).
		Post(reportsPath)
	if err != nil {
		return fmt.Errorf("%w: report request: %w", ErrDelivery, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("report accepted by collector")
	return nil
}
