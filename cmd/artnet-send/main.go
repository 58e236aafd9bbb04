// artnet-send transmits a single ArtDmx packet to a node, optionally
// followed by an ArtSync.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"artnet-monitor/internal/artnet"
)

func main() {
	target := flag.String("target", "255.255.255.255", "node IP address (default: broadcast)")
	universeFlag := flag.Int("universe", 1, "destination port address (0-32767)")
	channels := flag.String("channels", "255", "comma-separated channel values, e.g. 255,0,128")
	sequence := flag.Int("sequence", 0, "sequence number (0 disables sequencing)")
	sync := flag.Bool("sync", false, "follow up with an ArtSync packet")
	flag.Parse()

	portAddress, err := artnet.NewPortAddress(*universeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid universe: %v\n", err)
		os.Exit(1)
	}

	data, err := parseChannels(*channels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid channels: %v\n", err)
		os.Exit(1)
	}

	output := artnet.NewOutput(data)
	output.PortAddress = portAddress
	output.Sequence = byte(*sequence)

	buf, err := artnet.Marshal(output)
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
	fmt.Printf("Sent %d channel(s) to universe %d at %v\n", data.Len(), portAddress, addr)

	if *sync {
		buf, err := artnet.Marshal(artnet.NewSync())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding sync: %v\n", err)
			os.Exit(1)
		}
		if _, err := conn.WriteTo(buf, addr); err != nil {
			fmt.Fprintf(os.Stderr, "Error sending sync: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Sent ArtSync")
	}
}

func parseChannels(s string) (artnet.DMXData, error) {
	parts := strings.Split(s, ",")
	data := make(artnet.DMXData, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", p)
		}
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("channel value %d out of range 0-255", v)
		}
		data = append(data, byte(v))
	}
	return data, nil
}
