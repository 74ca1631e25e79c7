package proc

import (
	"encoding/hex"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseAddressPort decodes a local_address token such as "0100007F:1F90".
//
// The hex address bytes are taken in the order they appear: "0100007F" is
// 1.0.0.127, not 127.0.0.1. Eight hex characters yield an IPv4 address and
// thirty-two yield an IPv6 address.
func ParseAddressPort(token string) (netip.Addr, uint16, error) {
	hexAddr, hexPort, ok := strings.Cut(token, ":")
	if !ok || hexAddr == "" || hexPort == "" {
		return netip.Addr{}, 0, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}

	var addr netip.Addr
	switch len(hexAddr) {
	case 2 * 4:
		var b [4]byte
		if _, err := hex.Decode(b[:], []byte(hexAddr)); err != nil {
			return netip.Addr{}, 0, fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, err)
		}
		addr = netip.AddrFrom4(b)
	case 2 * 16:
		var b [16]byte
		if _, err := hex.Decode(b[:], []byte(hexAddr)); err != nil {
			return netip.Addr{}, 0, fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, err)
		}
		addr = netip.AddrFrom16(b)
	default:
		return netip.Addr{}, 0, fmt.Errorf("%w: %d hex characters in %q", ErrUnsupportedAddressLength, len(hexAddr), token)
	}

	port, err := strconv.ParseUint(hexPort, 16, 16)
	if err != nil {
		return netip.Addr{}, 0, fmt.Errorf("%w: %q: %v", ErrMalformedPort, hexPort, err)
	}

	return addr, uint16(port), nil
}
