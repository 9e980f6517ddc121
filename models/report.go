// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TelemetryReport is the payload delivered to the collection endpoint on
// every successful tick. It is built once and never mutated or re-sent.
type TelemetryReport struct {
	Storage        StorageReport   `json:"storage"`
	Bandwidth      BandwidthReport `json:"bandwidth"`
	Contact        ContactInfo     `json:"contact"`
	PaymentAddress string          `json:"payment"`
}

// StorageReport carries free and used bytes of the shared capacity.
type StorageReport struct {
	Free int64 `json:"free"`
	Used int64 `json:"used"`
}

// BandwidthReport carries upload and download rates in bytes per second.
type BandwidthReport struct {
	Upload   float64 `json:"upload"`
	Download float64 `json:"download"`
}

// ContactInfo tells the collector how the node can be reached.
type ContactInfo struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
	NodeID  string `json:"nodeID"`
}

// NewTelemetryReport combines a usage snapshot and a bandwidth sample into a
// report for the given contact and payment address.
func NewTelemetryReport(usage StorageUsageSnapshot, sample BandwidthSample, contact ContactInfo, paymentAddress string) TelemetryReport {
	return TelemetryReport{
		Storage: StorageReport{
			Free: usage.FreeBytes(),
			Used: usage.UsedBytes,
		},
		Bandwidth: BandwidthReport{
			Upload:   sample.Upload,
			Download: sample.Download,
		},
		Contact:        contact,
		PaymentAddress: paymentAddress,
	}
}
