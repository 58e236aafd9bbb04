package stats

import (
	"sync"
	"time"

	"artnet-monitor/internal/artnet"
)

// Constants for loss tracking
const (
	// lossWindowDuration is the time window for recent loss calculation
	lossWindowDuration = time.Minute
	// senderRestartThreshold is the sequence gap above which we assume the sender restarted
	senderRestartThreshold = 200
)

// PacketEvent records a packet reception event for sliding window tracking
type PacketEvent struct {
	Timestamp time.Time
	Received  uint64 // packets received in this event
	Lost      uint64 // packets lost detected in this event
}

// Sender represents a unique ArtDmx sender, keyed by network address
type Sender struct {
	Addr         string
	LastSequence uint8
	LastSeen     time.Time
	PacketCount  uint64
	LostPackets  uint64
}

// UniverseStats tracks statistics for a single universe
type UniverseStats struct {
	Universe        artnet.PortAddress
	Senders         map[string]*Sender
	PacketCount     uint64
	LostPackets     uint64
	LastPacket      time.Time
	packetsInWindow []time.Time   // For rate calculation
	lossWindow      []PacketEvent // For sliding window loss calculation
	mu              sync.RWMutex
}

// Tracker tracks packet statistics for all universes
type Tracker struct {
	universes  map[artnet.PortAddress]*UniverseStats
	rateWindow time.Duration
	mu         sync.RWMutex
}

// NewTracker creates a new stats tracker
func NewTracker() *Tracker {
	return &Tracker{
		universes:  make(map[artnet.PortAddress]*UniverseStats),
		rateWindow: time.Second, // Calculate rate over 1 second window
	}
}

// nextSequence returns the sequence value that should follow last.
// ArtDmx sequences run 0x01-0xFF and wrap back to 0x01; zero never
// appears in a sequenced stream.
func nextSequence(last uint8) uint8 {
	if last == 0xFF {
		return 0x01
	}
	return last + 1
}

// sequenceGap returns how many packets were missed between the
// expected and the observed sequence value within the 1-255 cycle.
func sequenceGap(expected, got uint8) int {
	if got >= expected {
		return int(got) - int(expected)
	}
	// Wrapped around; the cycle is 255 values long (1-255)
	return 255 - int(expected) + int(got)
}

// RecordPacket records an ArtDmx packet for statistics tracking.
// A zero sequence means the sender has sequencing disabled, so no
// loss is derived from it.
func (t *Tracker) RecordPacket(universe artnet.PortAddress, senderAddr string, sequence uint8) {
	t.mu.Lock()
	stats, exists := t.universes[universe]
	if !exists {
		stats = &UniverseStats{
			Universe: universe,
			Senders:  make(map[string]*Sender),
		}
		t.universes[universe] = stats
	}
	t.mu.Unlock()

	stats.mu.Lock()
	defer stats.mu.Unlock()

	now := time.Now()
	stats.PacketCount++
	stats.LastPacket = now

	// Add to rate window
	stats.packetsInWindow = append(stats.packetsInWindow, now)

	// Clean old packets from window
	cutoff := now.Add(-t.rateWindow)
	newWindow := stats.packetsInWindow[:0]
	for _, pt := range stats.packetsInWindow {
		if pt.After(cutoff) {
			newWindow = append(newWindow, pt)
		}
	}
	stats.packetsInWindow = newWindow

	// Track sender
	sender, senderExists := stats.Senders[senderAddr]
	if !senderExists {
		sender = &Sender{
			Addr: senderAddr,
		}
		stats.Senders[senderAddr] = sender
	}

	// Check for packet loss (sequence gap)
	var lostThisPacket uint64
	if senderExists && sender.PacketCount > 0 && sequence != 0 && sender.LastSequence != 0 {
		expectedSeq := nextSequence(sender.LastSequence)
		if sequence != expectedSeq {
			lost := sequenceGap(expectedSeq, sequence)
			// If gap is too large, assume the sender restarted rather
			// than massive loss
			if lost < senderRestartThreshold {
				lostThisPacket = uint64(lost)
				sender.LostPackets += lostThisPacket
				stats.LostPackets += lostThisPacket
			}
		}
	}

	// Record event for sliding window loss tracking
	stats.lossWindow = append(stats.lossWindow, PacketEvent{
		Timestamp: now,
		Received:  1,
		Lost:      lostThisPacket,
	})

	// Clean old events from loss window
	lossCutoff := now.Add(-lossWindowDuration)
	newLossWindow := stats.lossWindow[:0]
	for _, evt := range stats.lossWindow {
		if evt.Timestamp.After(lossCutoff) {
			newLossWindow = append(newLossWindow, evt)
		}
	}
	stats.lossWindow = newLossWindow

	sender.LastSequence = sequence
	sender.LastSeen = now
	sender.PacketCount++
}

// GetUniverseStats returns stats for a specific universe
func (t *Tracker) GetUniverseStats(universe artnet.PortAddress) *UniverseStats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.universes[universe]
}

// GetPacketRate returns packets per second for a universe
func (t *Tracker) GetPacketRate(universe artnet.PortAddress) float64 {
	t.mu.RLock()
	stats := t.universes[universe]
	t.mu.RUnlock()

	if stats == nil {
		return 0
	}

	stats.mu.RLock()
	defer stats.mu.RUnlock()

	// Clean old packets and count
	now := time.Now()
	cutoff := now.Add(-t.rateWindow)
	count := 0
	for _, pt := range stats.packetsInWindow {
		if pt.After(cutoff) {
			count++
		}
	}

	return float64(count) / t.rateWindow.Seconds()
}

// GetLossPercentage returns cumulative packet loss percentage for a universe
func (t *Tracker) GetLossPercentage(universe artnet.PortAddress) float64 {
	t.mu.RLock()
	stats := t.universes[universe]
	t.mu.RUnlock()

	if stats == nil {
		return 0
	}

	stats.mu.RLock()
	defer stats.mu.RUnlock()

	totalExpected := stats.PacketCount + stats.LostPackets
	if totalExpected == 0 {
		return 0
	}

	return float64(stats.LostPackets) / float64(totalExpected) * 100
}

// GetRecentLossPercentage returns packet loss percentage for the last minute
func (t *Tracker) GetRecentLossPercentage(universe artnet.PortAddress) float64 {
	t.mu.RLock()
	stats := t.universes[universe]
	t.mu.RUnlock()

	if stats == nil {
		return 0
	}

	stats.mu.RLock()
	defer stats.mu.RUnlock()

	// Sum up received and lost from the sliding window
	now := time.Now()
	cutoff := now.Add(-lossWindowDuration)

	var totalReceived, totalLost uint64
	for _, evt := range stats.lossWindow {
		if evt.Timestamp.After(cutoff) {
			totalReceived += evt.Received
			totalLost += evt.Lost
		}
	}

	totalExpected := totalReceived + totalLost
	if totalExpected == 0 {
		return 0
	}

	return float64(totalLost) / float64(totalExpected) * 100
}

// GetSenderLossPercentage returns packet loss percentage for a specific sender
func (t *Tracker) GetSenderLossPercentage(universe artnet.PortAddress, senderAddr string) float64 {
	t.mu.RLock()
	stats := t.universes[universe]
	t.mu.RUnlock()

	if stats == nil {
		return 0
	}

	stats.mu.RLock()
	defer stats.mu.RUnlock()

	sender, exists := stats.Senders[senderAddr]
	if !exists {
		return 0
	}

	totalExpected := sender.PacketCount + sender.LostPackets
	if totalExpected == 0 {
		return 0
	}

	return float64(sender.LostPackets) / float64(totalExpected) * 100
}

// ResetUniverseStats clears all statistics for a specific universe
func (t *Tracker) ResetUniverseStats(universe artnet.PortAddress) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if stats, exists := t.universes[universe]; exists {
		stats.mu.Lock()
		stats.PacketCount = 0
		stats.LostPackets = 0
		stats.packetsInWindow = nil
		stats.lossWindow = nil
		for _, sender := range stats.Senders {
			sender.PacketCount = 0
			sender.LostPackets = 0
		}
		stats.mu.Unlock()
	}
}

// ResetAllStats clears all tracked data
func (t *Tracker) ResetAllStats() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.universes = make(map[artnet.PortAddress]*UniverseStats)
}

// GetSenders returns all senders for a universe
func (t *Tracker) GetSenders(universe artnet.PortAddress) []Sender {
	t.mu.RLock()
	stats := t.universes[universe]
	t.mu.RUnlock()

	if stats == nil {
		return nil
	}

	stats.mu.RLock()
	defer stats.mu.RUnlock()

	senders := make([]Sender, 0, len(stats.Senders))
	for _, s := range stats.Senders {
		senders = append(senders, *s)
	}
	return senders
}

// GetAllUniverses returns all tracked universe port addresses
func (t *Tracker) GetAllUniverses() []artnet.PortAddress {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]artnet.PortAddress, 0, len(t.universes))
	for id := range t.universes {
		ids = append(ids, id)
	}
	return ids
}
