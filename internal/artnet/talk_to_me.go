package artnet

// TalkToMe is the ArtPoll behaviour byte: an independent bit-set
// telling nodes how to report back.
type TalkToMe uint8

const (
	// TalkToMeEmitChanges makes nodes send ArtPollReply on their own
	// state changes instead of only when polled.
	TalkToMeEmitChanges TalkToMe = 1 << 1

	// TalkToMeDiagnostics enables diagnostic messages.
	TalkToMeDiagnostics TalkToMe = 1 << 2

	// TalkToMeUnicastDiag requests unicast instead of broadcast
	// diagnostics. No effect unless TalkToMeDiagnostics is set.
	TalkToMeUnicastDiag TalkToMe = 1 << 3

	// TalkToMeVLC enables VLC transmission.
	TalkToMeVLC TalkToMe = 1 << 4
)

// talkToMeKnown masks the bits this package understands.
const talkToMeKnown = TalkToMeEmitChanges | TalkToMeDiagnostics | TalkToMeUnicastDiag | TalkToMeVLC

// TalkToMeFromByte builds a TalkToMe from a wire byte, silently
// dropping any bits outside the known set.
func TalkToMeFromByte(b byte) TalkToMe {
	return TalkToMe(b) & talkToMeKnown
}

// Has reports whether every bit of flag is set.
func (t TalkToMe) Has(flag TalkToMe) bool {
	return t&flag == flag
}
