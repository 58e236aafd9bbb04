package artnet

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"golang.org/x/net/ipv4"
)

// Received pairs a decoded command with its sender and arrival time.
type Received struct {
	Command Command
	Source  net.Addr
	At      time.Time
}

// Receiver listens for Art-Net packets on UDP port 6454. Art-Net uses
// directed broadcast and unicast rather than multicast, so the
// receiver binds all interfaces and filters nothing; malformed
// datagrams are dropped silently.
type Receiver struct {
	packets chan *Received
	conn    *ipv4.PacketConn
	rawConn net.PacketConn
	mu      sync.RWMutex
	started bool
}

// NewReceiver creates a new Art-Net receiver.
func NewReceiver() *Receiver {
	return &Receiver{
		packets: make(chan *Received, 1000),
	}
}

// Packets returns the channel of received commands.
func (r *Receiver) Packets() <-chan *Received {
	return r.packets
}

// Start begins listening for Art-Net packets.
func (r *Receiver) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return fmt.Errorf("receiver already started")
	}
	r.started = true
	r.mu.Unlock()

	// Listen on UDP port 6454 on all interfaces
	conn, err := net.ListenPacket("udp4", fmt.Sprintf(":%d", DefaultPort))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", DefaultPort, err)
	}
	r.rawConn = conn

	// Wrap in an ipv4 PacketConn so we can see the destination of
	// each datagram (unicast vs. broadcast)
	r.conn = ipv4.NewPacketConn(conn)
	if err := r.conn.SetControlMessage(ipv4.FlagDst, true); err != nil {
		// Non-fatal on some platforms
		fmt.Printf("Warning: could not set control message: %v\n", err)
	}

	// Start packet reading goroutine
	go r.readPackets(ctx)

	return nil
}

// Send encodes a command and transmits it from the receiver's bound
// socket, so replies come back to port 6454.
func (r *Receiver) Send(cmd Command, addr net.Addr) error {
	r.mu.RLock()
	conn := r.conn
	r.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("receiver not started")
	}

	buf, err := Marshal(cmd)
	if err != nil {
		return err
	}
	if _, err := conn.WriteTo(buf, nil, addr); err != nil {
		return fmt.Errorf("failed to send %s to %v: %w", cmd.Opcode(), addr, err)
	}
	return nil
}

// Broadcast sends a command to the limited broadcast address on the
// Art-Net port. Used for discovery polls.
func (r *Receiver) Broadcast(cmd Command) error {
	return r.Send(cmd, &net.UDPAddr{IP: net.IPv4bcast, Port: DefaultPort})
}

// readPackets continuously reads packets from the UDP socket
func (r *Receiver) readPackets(ctx context.Context) {
	buf := make([]byte, 1500) // Max UDP packet size

	for {
		select {
		case <-ctx.Done():
			r.Stop()
			return
		default:
		}

		n, _, src, err := r.conn.ReadFrom(buf)
		if err != nil {
			// Check if context is cancelled
			select {
			case <-ctx.Done():
				return
			default:
				// Only log if not shutting down
				continue
			}
		}

		// Decode the packet
		cmd, err := Unmarshal(buf[:n])
		if err != nil {
			// Silently drop invalid packets
			continue
		}

		rcv := &Received{Command: cmd, Source: src, At: time.Now()}

		// Try to send packet, drop if channel is full
		select {
		case r.packets <- rcv:
		default:
			// Channel full, drop packet
		}
	}
}

// Stop stops the receiver.
func (r *Receiver) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rawConn != nil {
		r.rawConn.Close()
		r.rawConn = nil
	}
	r.started = false
}
