// Package node tracks the Art-Net devices discovered on the network
// through ArtPollReply packets.
package node

import (
	"net"
	"net/netip"
	"sort"
	"sync"
	"time"

	"artnet-monitor/internal/artnet"
)

// Node is one Art-Net device, as last described by its ArtPollReply
type Node struct {
	Address    netip.Addr
	Port       uint16
	ShortName  string
	LongName   string
	Report     string
	Style      byte
	Mac        [6]byte
	PortCount  int
	Firmware   [2]byte
	BindIndex  byte
	LastSeen   time.Time
	ReplyCount uint64
}

// Registry tracks every node seen on the network, keyed by address
type Registry struct {
	nodes map[netip.Addr]*Node
	mu    sync.RWMutex
}

// NewRegistry creates a new node registry
func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[netip.Addr]*Node),
	}
}

// Observe registers or refreshes a node from an ArtPollReply. The
// reply's own address field is authoritative; the UDP source address
// is the fallback when a node reports no usable address.
func (r *Registry) Observe(reply *artnet.PollReply, source net.Addr) *Node {
	addr := reply.Address
	if !addr.Is4() || addr == netip.AddrFrom4([4]byte{}) {
		if udp, ok := source.(*net.UDPAddr); ok {
			if a, ok := netip.AddrFromSlice(udp.IP.To4()); ok {
				addr = a
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n, exists := r.nodes[addr]
	if !exists {
		n = &Node{Address: addr}
		r.nodes[addr] = n
	}

	n.Port = reply.Port
	n.ShortName = reply.ShortNameString()
	n.LongName = reply.LongNameString()
	n.Report = reply.NodeReportString()
	n.Style = reply.Style
	n.Mac = reply.Mac
	n.PortCount = reply.PortCount()
	n.Firmware = reply.Version
	n.BindIndex = reply.BindIndex
	n.LastSeen = time.Now()
	n.ReplyCount++

	return n
}

// Get returns the node with the given address, or nil if unknown
func (r *Registry) Get(addr netip.Addr) *Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nodes[addr]
}

// GetAll returns copies of all known nodes sorted by address
func (r *Registry) GetAll() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Node, 0, len(r.nodes))
	for _, n := range r.nodes {
		result = append(result, *n)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Address.Less(result[j].Address)
	})

	return result
}

// Count returns the number of known nodes
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// PruneStale removes all nodes that haven't replied within the timeout
func (r *Registry) PruneStale(timeout time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for addr, n := range r.nodes {
		if time.Since(n.LastSeen) > timeout {
			delete(r.nodes, addr)
			pruned++
		}
	}
	return pruned
}
