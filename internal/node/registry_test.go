package node

import (
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artnet-monitor/internal/artnet"
)

func sampleReply(addr [4]byte) *artnet.PollReply {
	r := artnet.NewPollReply()
	r.Address = netip.AddrFrom4(addr)
	copy(r.ShortName[:], "dimmer")
	copy(r.LongName[:], "4-channel dimmer pack")
	copy(r.NodeReport[:], "#0001 [0005] OK")
	r.NumPorts = [2]byte{0x00, 0x04}
	r.Version = [2]byte{0x01, 0x00}
	r.Mac = [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	r.BindIndex = 1
	return r
}

func udpSource(ip string) net.Addr {
	return &net.UDPAddr{IP: net.ParseIP(ip), Port: artnet.DefaultPort}
}

func TestRegistry_ObserveRegistersNode(t *testing.T) {
	reg := NewRegistry()

	n := reg.Observe(sampleReply([4]byte{10, 0, 1, 42}), udpSource("10.0.1.42"))
	require.NotNil(t, n)

	assert.Equal(t, netip.AddrFrom4([4]byte{10, 0, 1, 42}), n.Address)
	assert.Equal(t, uint16(artnet.DefaultPort), n.Port)
	assert.Equal(t, "dimmer", n.ShortName)
	assert.Equal(t, "4-channel dimmer pack", n.LongName)
	assert.Equal(t, "#0001 [0005] OK", n.Report)
	assert.Equal(t, 4, n.PortCount)
	assert.Equal(t, [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, n.Mac)
	assert.Equal(t, uint64(1), n.ReplyCount)
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_ObserveRefreshesExistingNode(t *testing.T) {
	reg := NewRegistry()
	reply := sampleReply([4]byte{10, 0, 1, 42})

	reg.Observe(reply, udpSource("10.0.1.42"))

	copy(reply.ShortName[:], "renamed\x00")
	n := reg.Observe(reply, udpSource("10.0.1.42"))

	assert.Equal(t, "renamed", n.ShortName)
	assert.Equal(t, uint64(2), n.ReplyCount)
	assert.Equal(t, 1, reg.Count(), "same address never creates a second node")
}

func TestRegistry_ObserveFallsBackToSourceAddress(t *testing.T) {
	reg := NewRegistry()

	// A reply with a zero address field is keyed by where it came from.
	n := reg.Observe(sampleReply([4]byte{0, 0, 0, 0}), udpSource("192.168.1.7"))

	assert.Equal(t, netip.AddrFrom4([4]byte{192, 168, 1, 7}), n.Address)
}

func TestRegistry_GetAllSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Observe(sampleReply([4]byte{10, 0, 1, 200}), udpSource("10.0.1.200"))
	reg.Observe(sampleReply([4]byte{10, 0, 1, 3}), udpSource("10.0.1.3"))
	reg.Observe(sampleReply([4]byte{10, 0, 1, 80}), udpSource("10.0.1.80"))

	all := reg.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, netip.AddrFrom4([4]byte{10, 0, 1, 3}), all[0].Address)
	assert.Equal(t, netip.AddrFrom4([4]byte{10, 0, 1, 80}), all[1].Address)
	assert.Equal(t, netip.AddrFrom4([4]byte{10, 0, 1, 200}), all[2].Address)
}

func TestRegistry_Get(t *testing.T) {
	reg := NewRegistry()
	addr := netip.AddrFrom4([4]byte{10, 0, 1, 42})

	assert.Nil(t, reg.Get(addr))

	reg.Observe(sampleReply([4]byte{10, 0, 1, 42}), udpSource("10.0.1.42"))
	require.NotNil(t, reg.Get(addr))
	assert.Equal(t, addr, reg.Get(addr).Address)
}

func TestRegistry_PruneStale(t *testing.T) {
	reg := NewRegistry()
	stale := reg.Observe(sampleReply([4]byte{10, 0, 1, 1}), udpSource("10.0.1.1"))
	reg.Observe(sampleReply([4]byte{10, 0, 1, 2}), udpSource("10.0.1.2"))

	stale.LastSeen = time.Now().Add(-time.Hour)

	pruned := reg.PruneStale(time.Minute)
	assert.Equal(t, 1, pruned)
	assert.Equal(t, 1, reg.Count())
	assert.Nil(t, reg.Get(netip.AddrFrom4([4]byte{10, 0, 1, 1})))
}
