// artnet-trigger broadcasts an ArtTrigger macro/cue event.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"artnet-monitor/internal/artnet"
)

func main() {
	target := flag.String("target", "255.255.255.255", "node IP address (default: broadcast)")
	keyFlag := flag.Int("key", int(artnet.TriggerKeyShow), "trigger key (0=ascii 1=macro 2=soft 3=show)")
	subKey := flag.Int("subkey", 1, "trigger sub-key (0-255)")
	flag.Parse()

	if *keyFlag < 0 || *keyFlag > 255 {
		fmt.Fprintf(os.Stderr, "Key %d out of range 0-255\n", *keyFlag)
		os.Exit(1)
	}
	if *subKey < 0 || *subKey > 255 {
		fmt.Fprintf(os.Stderr, "Sub-key %d out of range 0-255\n", *subKey)
		os.Exit(1)
	}

	trigger := artnet.NewTrigger()
	trigger.Key = artnet.TriggerKey(*keyFlag)
	trigger.SubKey = byte(*subKey)

	buf, err := artnet.Marshal(trigger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding packet: %v\n", err)
		os.Exit(1)
	}

	addr := &net.UDPAddr{IP: net.ParseIP(*target), Port: artnet.DefaultPort}
	if addr.IP == nil {
		fmt.Fprintf(os.Stderr, "Invalid target address %q\n", *target)
		os.Exit(1)
	}

	conn, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening socket: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	if _, err := conn.WriteTo(buf, addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sent trigger %v sub-key %d to %v\n", trigger.Key, trigger.SubKey, addr)
}
