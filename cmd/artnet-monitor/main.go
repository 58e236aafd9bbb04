package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artnet-monitor/internal/artnet"
	"artnet-monitor/internal/node"
	"artnet-monitor/internal/stats"
	"artnet-monitor/internal/tui"
	"artnet-monitor/internal/universe"

	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval is how often the monitor re-broadcasts ArtPoll so the
// node list stays current.
const pollInterval = 10 * time.Second

func main() {
	// Create components
	universeManager := universe.NewManager()
	nodeRegistry := node.NewRegistry()
	statsTracker := stats.NewTracker()
	receiver := artnet.NewReceiver()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle system signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Start the receiver
	if err := receiver.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting receiver: %v\n", err)
		os.Exit(1)
	}

	// Discover nodes: broadcast ArtPoll now and periodically
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			if err := receiver.Broadcast(artnet.NewPoll()); err != nil {
				// Broadcast may be unavailable on some networks
				_ = err
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	// Process incoming packets
	go func() {
		for rcv := range receiver.Packets() {
			switch cmd := rcv.Command.(type) {
			case *artnet.Output:
				// Update universe state
				u := universeManager.GetOrCreate(cmd.PortAddress)
				u.Update(cmd.Data, rcv.Source.String(), cmd.Physical, cmd.Sequence)

				// Update stats
				statsTracker.RecordPacket(cmd.PortAddress, rcv.Source.String(), cmd.Sequence)

			case *artnet.PollReply:
				nodeRegistry.Observe(cmd, rcv.Source)
			}
		}
	}()

	// Create and run TUI
	model := tui.NewModel(universeManager, nodeRegistry, statsTracker)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
