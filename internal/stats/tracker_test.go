package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sender = "10.0.1.5:6454"

func TestNextSequence(t *testing.T) {
	assert.Equal(t, uint8(2), nextSequence(1))
	assert.Equal(t, uint8(0xFF), nextSequence(0xFE))
	assert.Equal(t, uint8(1), nextSequence(0xFF), "sequence wraps to 1, skipping 0")
}

func TestSequenceGap(t *testing.T) {
	assert.Equal(t, 0, sequenceGap(5, 5))
	assert.Equal(t, 2, sequenceGap(5, 7))
	assert.Equal(t, 1, sequenceGap(0xFF, 1), "gap across the wrap counts the missing 0xFF")
}

func TestTracker_NoLossOnConsecutiveSequences(t *testing.T) {
	tr := NewTracker()
	for seq := uint8(1); seq <= 10; seq++ {
		tr.RecordPacket(1, sender, seq)
	}

	stats := tr.GetUniverseStats(1)
	require.NotNil(t, stats)
	assert.Equal(t, uint64(10), stats.PacketCount)
	assert.Equal(t, uint64(0), stats.LostPackets)
	assert.Equal(t, float64(0), tr.GetLossPercentage(1))
}

func TestTracker_DetectsSequenceGap(t *testing.T) {
	tr := NewTracker()
	tr.RecordPacket(1, sender, 1)
	tr.RecordPacket(1, sender, 2)
	tr.RecordPacket(1, sender, 5) // 3 and 4 missing

	stats := tr.GetUniverseStats(1)
	require.NotNil(t, stats)
	assert.Equal(t, uint64(2), stats.LostPackets)
	assert.InDelta(t, 40.0, tr.GetLossPercentage(1), 0.01, "2 lost of 5 expected")
}

func TestTracker_WrapIsGapless(t *testing.T) {
	tr := NewTracker()
	tr.RecordPacket(1, sender, 0xFE)
	tr.RecordPacket(1, sender, 0xFF)
	tr.RecordPacket(1, sender, 0x01) // wrap, not loss

	stats := tr.GetUniverseStats(1)
	require.NotNil(t, stats)
	assert.Equal(t, uint64(0), stats.LostPackets)
}

func TestTracker_ZeroSequenceDisablesLossTracking(t *testing.T) {
	tr := NewTracker()
	// A sender with sequencing disabled always sends 0.
	for i := 0; i < 5; i++ {
		tr.RecordPacket(1, sender, 0)
	}
	// Even a jump into sequenced values after zeros derives no loss.
	tr.RecordPacket(1, sender, 42)

	stats := tr.GetUniverseStats(1)
	require.NotNil(t, stats)
	assert.Equal(t, uint64(6), stats.PacketCount)
	assert.Equal(t, uint64(0), stats.LostPackets)
}

func TestTracker_LargeGapMeansRestart(t *testing.T) {
	tr := NewTracker()
	tr.RecordPacket(1, sender, 250)
	tr.RecordPacket(1, sender, 1)   // 251-255 missing, ordinary loss
	tr.RecordPacket(1, sender, 250) // gap of 248, treated as a restart

	stats := tr.GetUniverseStats(1)
	require.NotNil(t, stats)
	assert.Equal(t, uint64(5), stats.LostPackets, "only the small gap counts as loss")
}

func TestTracker_PerSenderTracking(t *testing.T) {
	tr := NewTracker()
	other := "10.0.1.6:6454"

	tr.RecordPacket(1, sender, 1)
	tr.RecordPacket(1, sender, 2)
	tr.RecordPacket(1, other, 1)
	tr.RecordPacket(1, other, 4) // 2 lost from this sender only

	assert.Equal(t, float64(0), tr.GetSenderLossPercentage(1, sender))
	assert.InDelta(t, 50.0, tr.GetSenderLossPercentage(1, other), 0.01)

	senders := tr.GetSenders(1)
	assert.Len(t, senders, 2)
}

func TestTracker_SeparateUniverses(t *testing.T) {
	tr := NewTracker()
	tr.RecordPacket(1, sender, 1)
	tr.RecordPacket(2, sender, 1)
	tr.RecordPacket(2, sender, 2)

	assert.Equal(t, uint64(1), tr.GetUniverseStats(1).PacketCount)
	assert.Equal(t, uint64(2), tr.GetUniverseStats(2).PacketCount)
	assert.Len(t, tr.GetAllUniverses(), 2)
}

func TestTracker_ResetUniverseStats(t *testing.T) {
	tr := NewTracker()
	tr.RecordPacket(1, sender, 1)
	tr.RecordPacket(1, sender, 3)

	tr.ResetUniverseStats(1)

	stats := tr.GetUniverseStats(1)
	require.NotNil(t, stats)
	assert.Equal(t, uint64(0), stats.PacketCount)
	assert.Equal(t, uint64(0), stats.LostPackets)
	assert.Equal(t, float64(0), tr.GetRecentLossPercentage(1))
}

func TestTracker_ResetAllStats(t *testing.T) {
	tr := NewTracker()
	tr.RecordPacket(1, sender, 1)
	tr.RecordPacket(2, sender, 1)

	tr.ResetAllStats()

	assert.Nil(t, tr.GetUniverseStats(1))
	assert.Empty(t, tr.GetAllUniverses())
}

func TestTracker_UnknownUniverseQueries(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, float64(0), tr.GetPacketRate(99))
	assert.Equal(t, float64(0), tr.GetLossPercentage(99))
	assert.Equal(t, float64(0), tr.GetRecentLossPercentage(99))
	assert.Equal(t, float64(0), tr.GetSenderLossPercentage(99, sender))
	assert.Nil(t, tr.GetSenders(99))
}
