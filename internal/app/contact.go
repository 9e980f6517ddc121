package app

import (
	"context"

	"github.com/MKhiriev/node-reporter/internal/adapter"
	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/models"
)

// resolveContact builds the contact info published in reports. A configured
// address wins; otherwise resolver is asked once. A failed lookup leaves the
// address empty.
func resolveContact(ctx context.Context, networkCfg config.Network, nodeID string, resolver adapter.AddressResolver, log *logger.Logger) models.ContactInfo {
	contact := models.ContactInfo{
		Address: networkCfg.Address,
		Port:    networkCfg.Port,
		NodeID:  nodeID,
	}
	if contact.Address != "" || resolver == nil {
		return contact
	}

	address, err := resolver.Resolve(ctx)
	if err != nil {
		log.Warn().Err(err).Msg(MsgAddressUnresolved)
		return contact
	}

	log.Info().Str("address", address).Msg(MsgAddressResolved)
	contact.Address = address
	return contact
}
