package proc

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddressPort(t *testing.T) {
	tests := []struct {
		token string
		addr  string
		port  uint16
	}{
		{"0100007F:1F90", "1.0.0.127", 8080},
		{"0800A8C0:CFE6", "8.0.168.192", 53222},
		{"00000000:0016", "0.0.0.0", 22},
		{"00000000000000000000000000000000:0050", "::", 80},
		{"00000000000000000000000001000000:1F90", "::100:0", 8080},
		{"FE800000000000000000000000000001:FFFF", "fe80::1", 65535},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			addr, port, err := ParseAddressPort(tt.token)
			require.NoError(t, err)
			assert.Equal(t, netip.MustParseAddr(tt.addr), addr)
			assert.Equal(t, tt.port, port)
		})
	}
}

func TestParseAddressPortIPv4OctetsInOrder(t *testing.T) {
	addr, _, err := ParseAddressPort("C0A80001:0001")
	require.NoError(t, err)
	assert.True(t, addr.Is4())
	assert.Equal(t, [4]byte{0xC0, 0xA8, 0x00, 0x01}, addr.As4())
}

func TestParseAddressPortErrors(t *testing.T) {
	tests := []struct {
		token string
		want  error
	}{
		{"0100007F", ErrMalformedToken},
		{":1F90", ErrMalformedToken},
		{"0100007F:", ErrMalformedToken},
		{"ZZ00007F:1F90", ErrMalformedToken},
		{"0100:1F90", ErrUnsupportedAddressLength},
		{"0100007F00:1F90", ErrUnsupportedAddressLength},
		{"000000000000000000000000000000:1F90", ErrUnsupportedAddressLength},
		{"0100007F:XYZ", ErrMalformedPort},
		{"0100007F:10000", ErrMalformedPort},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, _, err := ParseAddressPort(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
