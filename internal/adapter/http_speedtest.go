package adapter

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/internal/utils"
	"github.com/MKhiriev/node-reporter/models"
	"github.com/docker/go-units"
)

// DefaultSpeedTestPayload is the number of bytes moved in each direction.
const DefaultSpeedTestPayload = 8 * units.MiB

type httpSpeedTestAdapter struct {
	client       *utils.HTTPClient
	payloadBytes int64
	random       io.Reader
	now          func() time.Time

	logger *logger.Logger
}

// NewHTTPSpeedTestAdapter constructs the HTTP implementation of
// [SpeedTestAdapter] against telemetryCfg.SpeedTestURL:
//
//	GET  {url}/download?bytes=N   response body is read and discarded
//	POST {url}/upload             request body is N random bytes
func NewHTTPSpeedTestAdapter(telemetryCfg config.Telemetry, logger *logger.Logger) (SpeedTestAdapter, error) {
	client, err := utils.NewHTTPClient(telemetryCfg.SpeedTestURL, telemetryCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid speed test url: %w", err)
	}

	return &httpSpeedTestAdapter{
		client:       client,
		payloadBytes: DefaultSpeedTestPayload,
		random:       rand.Reader,
		now:          time.Now,
		logger:       logger,
	}, nil
}

// Measure implements [SpeedTestAdapter]. Download runs first.
func (s *httpSpeedTestAdapter) Measure(ctx context.Context) (models.Throughput, error) {
	download, err := s.measureDownload(ctx)
	if err != nil {
		return models.Throughput{}, fmt.Errorf("download test: %w", err)
	}

	upload, err := s.measureUpload(ctx)
	if err != nil {
		return models.Throughput{}, fmt.Errorf("upload test: %w", err)
	}

	s.logger.Debug().
		Str("download", units.HumanSize(download)+"/s").
		Str("upload", units.HumanSize(upload)+"/s").
		Msg("speed test finished")

	return models.Throughput{Upload: upload, Download: download}, nil
}

func (s *httpSpeedTestAdapter) measureDownload(ctx context.Context) (float64, error) {
	start := s.now()

	resp, err := s.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetQueryParam("bytes", strconv.FormatInt(s.payloadBytes, 10)).
		Get("/download")
	if err != nil {
		return 0, err
	}

	raw := resp.RawBody()
	defer raw.Close()

	if err = mapStatus(resp.StatusCode(), ""); err != nil {
		return 0, err
	}

	n, err := io.Copy(io.Discard, raw)
	if err != nil {
		return 0, fmt.Errorf("read download body: %w", err)
	}
	if n == 0 {
		return 0, ErrEmptyTransfer
	}

	return bytesPerSecond(n, s.now().Sub(start)), nil
}

func (s *httpSpeedTestAdapter) measureUpload(ctx context.Context) (float64, error) {
	payload := make([]byte, s.payloadBytes)
	if _, err := io.ReadFull(s.random, payload); err != nil {
		return 0, fmt.Errorf("generate upload payload: %w", err)
	}
	if len(payload) == 0 {
		return 0, ErrEmptyTransfer
	}

	start := s.now()

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(payload).
		Post("/upload")
	if err != nil {
		return 0, err
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return bytesPerSecond(int64(len(payload)), s.now().Sub(start)), nil
}

func bytesPerSecond(n int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		elapsed = time.Millisecond
	}
	return float64(n) / elapsed.Seconds()
}
