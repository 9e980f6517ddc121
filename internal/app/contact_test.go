package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/node-reporter/internal/adapter"
	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/internal/mock"
	"github.com/MKhiriev/node-reporter/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResolveContact(t *testing.T) {
	tests := []struct {
		name    string
		network config.Network
		setup   func(r *mock.MockAddressResolver)
		want    models.ContactInfo
	}{
		{
			name:    "configured address skips lookup",
			network: config.Network{Address: "node.example.org", Port: 28967},
			setup: func(r *mock.MockAddressResolver) {
				r.EXPECT().Resolve(gomock.Any()).Times(0)
			},
			want: models.ContactInfo{Address: "node.example.org", Port: 28967, NodeID: "id"},
		},
		{
			name:    "lookup fills empty address",
			network: config.Network{Port: 7777},
			setup: func(r *mock.MockAddressResolver) {
				r.EXPECT().Resolve(gomock.Any()).Return("198.51.100.4", nil)
			},
			want: models.ContactInfo{Address: "198.51.100.4", Port: 7777, NodeID: "id"},
		},
		{
			name:    "failed lookup leaves address empty",
			network: config.Network{Port: 7777},
			setup: func(r *mock.MockAddressResolver) {
				r.EXPECT().Resolve(gomock.Any()).Return("", fmt.Errorf("%w: timeout", adapter.ErrNoPublicAddress))
			},
			want: models.ContactInfo{Port: 7777, NodeID: "id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := mock.NewMockAddressResolver(ctrl)
			tt.setup(resolver)

			got := resolveContact(context.Background(), tt.network, "id", resolver, logger.Nop())
			assert.Equal(t, tt.want, got)
		})
	}
}
