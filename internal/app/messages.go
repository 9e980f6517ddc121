// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Log messages written by the daemon runtime. Operators grep for these, so
// the wording is kept stable.
const (
	// MsgIdentityUnlocked is logged once the key file has been decrypted
	// and the node identity restored.
	MsgIdentityUnlocked = "node identity unlocked"

	// MsgAddressResolved is logged when the contact address was discovered
	// via STUN.
	MsgAddressResolved = "public address resolved"

	// MsgAddressUnresolved is logged when no address is configured and
	// discovery failed. Reports are still sent with an empty address.
	MsgAddressUnresolved = "public address unresolved, reporting empty address"

	// MsgJournalSummary is logged at start with the outcomes of the most
	// recent journaled ticks.
	MsgJournalSummary = "previous telemetry ticks"

	// MsgTelemetryDisabled is logged when the report loop is switched off.
	MsgTelemetryDisabled = "telemetry disabled, holding identity until shutdown"

	// MsgShutdown is logged once the workers have stopped. Key material is
	// wiped right after.
	MsgShutdown = "reporter stopped"
)
