package eval

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/kemasdimas/ffs/internal/ffserr"
	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

func init() {
	DefaultRegistry.Register("ip", builtinIP)
	DefaultRegistry.Register("cidr", builtinCIDR)
}

// parseIPv4 parses a strict dotted-quad IPv4 address using
// net/netip's own decimal parser, then packs the four octets into a
// single big-endian uint32.
func parseIPv4(s string) (uint32, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return 0, fmt.Errorf("not a dotted-quad IPv4 address: %q", s)
	}
	b := addr.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func builtinIP(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 1)
	if err != nil {
		return nil, err
	}
	s, ok := vals[0].(types.StrValue)
	if !ok {
		return nil, ffserr.Type(ev.Formula, "ip: expected Str, got %s", vals[0].Kind())
	}
	addr, err := parseIPv4(s.Val)
	if err != nil {
		return nil, ffserr.Domain(ev.Formula, "invalid IPv4 address %q", s.Val)
	}
	return types.NewInt(int64(addr)), nil
}

// builtinCIDR accepts "A.B.C.D" (default /32) or "A.B.C.D/w" and
// returns the inclusive [network, broadcast] Range under that prefix
// width. The mask arithmetic is plain bit shifting rather than
// netip.Prefix.Masked, since the result needs to live as a signed
// 64-bit network/broadcast pair, not another netip.Addr.
func builtinCIDR(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 1)
	if err != nil {
		return nil, err
	}
	s, ok := vals[0].(types.StrValue)
	if !ok {
		return nil, ffserr.Type(ev.Formula, "cidr: expected Str, got %s", vals[0].Kind())
	}

	addrPart := s.Val
	width := 32
	if idx := strings.IndexByte(s.Val, '/'); idx >= 0 {
		addrPart = s.Val[:idx]
		w, err := strconv.Atoi(s.Val[idx+1:])
		if err != nil || w < 0 || w > 32 {
			return nil, ffserr.Domain(ev.Formula, "invalid CIDR prefix width in %q", s.Val)
		}
		width = w
	}

	base, err := parseIPv4(addrPart)
	if err != nil {
		return nil, ffserr.Domain(ev.Formula, "invalid IPv4 address in %q", s.Val)
	}

	var mask uint32
	if width > 0 {
		mask = ^uint32(0) << uint(32-width)
	}
	network := base & mask
	broadcast := network | ^mask
	return types.NewRange(int64(network), int64(broadcast)), nil
}
