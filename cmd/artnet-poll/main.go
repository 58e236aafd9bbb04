// artnet-poll broadcasts an ArtPoll and prints every ArtPollReply
// heard until the timeout elapses or the program is interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artnet-monitor/internal/artnet"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Second, "how long to wait for replies (0 waits forever)")
	diagnostics := flag.Bool("diag", false, "request diagnostic messages from nodes")
	flag.Parse()

	receiver := artnet.NewReceiver()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if *timeout > 0 {
		var tcancel context.CancelFunc
		ctx, tcancel = context.WithTimeout(ctx, *timeout)
		defer tcancel()
	}

	if err := receiver.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting receiver: %v\n", err)
		os.Exit(1)
	}

	poll := artnet.NewPoll()
	if *diagnostics {
		poll.TalkToMe |= artnet.TalkToMeDiagnostics
	}
	if err := receiver.Broadcast(poll); err != nil {
		fmt.Fprintf(os.Stderr, "Error broadcasting poll: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Polling for Art-Net nodes...")

	seen := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			fmt.Printf("Done, %d node(s) found.\n", len(seen))
			return
		case rcv := <-receiver.Packets():
			reply, ok := rcv.Command.(*artnet.PollReply)
			if !ok {
				// Our own broadcast poll also arrives here
				continue
			}
			key := reply.Address.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			fmt.Printf("%s:%d  %-17s  %s  (ports: %d, report: %s)\n",
				reply.Address, reply.Port,
				reply.ShortNameString(), reply.LongNameString(),
				reply.PortCount(), reply.NodeReportString())
		}
	}
}
