package artnet

import "fmt"

// Opcode identifies which packet kind follows the shared header. The
// value is carried little-endian in bytes 8-9 of every packet.
type Opcode uint16

// All opcodes documented by the Art-Net 4 protocol. Only a handful
// carry a body codec in this package; the rest decode to Placeholder.
const (
	OpPoll              Opcode = 0x2000
	OpPollReply         Opcode = 0x2100
	OpDiagData          Opcode = 0x2300
	OpCommand           Opcode = 0x2400
	OpOutput            Opcode = 0x5000
	OpNzs               Opcode = 0x5100
	OpSync              Opcode = 0x5200
	OpAddress           Opcode = 0x6000
	OpInput             Opcode = 0x7000
	OpTodRequest        Opcode = 0x8000
	OpTodData           Opcode = 0x8100
	OpTodControl        Opcode = 0x8200
	OpRdm               Opcode = 0x8300
	OpRdmSub            Opcode = 0x8400
	OpMedia             Opcode = 0x9000
	OpMediaPatch        Opcode = 0x9100
	OpMediaControl      Opcode = 0x9200
	OpMediaControlReply Opcode = 0x9300
	OpTimecode          Opcode = 0x9700
	OpTimeSync          Opcode = 0x9800
	OpTrigger           Opcode = 0x9900
	OpDirectory         Opcode = 0x9A00
	OpDirectoryReply    Opcode = 0x9B00
	OpVideoSetup        Opcode = 0xA010
	OpVideoPalette      Opcode = 0xA020
	OpVideoData         Opcode = 0xA040
	OpMacMaster         Opcode = 0xF000
	OpMacSlave          Opcode = 0xF100
	OpFirmwareMaster    Opcode = 0xF200
	OpFirmwareReply     Opcode = 0xF300
	OpFileTnMaster      Opcode = 0xF400
	OpFileFnMaster      Opcode = 0xF500
	OpFileFnReply       Opcode = 0xF600
	OpIPProg            Opcode = 0xF800
	OpIPProgReply       Opcode = 0xF900
)

type opcodeEntry struct {
	name string
	// decode parses the packet body. nil for opcodes that round-trip
	// as inert Placeholder commands with empty bodies.
	decode func(*cursor) (Command, error)
}

// opcodeTable is the fixed bidirectional mapping between opcodes and
// command variants. Codes absent from the table are a decode error,
// never a variant.
var opcodeTable = map[Opcode]opcodeEntry{
	OpPoll:              {"Poll", decodePoll},
	OpPollReply:         {"PollReply", decodePollReply},
	OpDiagData:          {"DiagData", nil},
	OpCommand:           {"Command", nil},
	OpOutput:            {"Output", decodeOutput},
	OpNzs:               {"Nzs", nil},
	OpSync:              {"Sync", decodeSync},
	OpAddress:           {"Address", nil},
	OpInput:             {"Input", nil},
	OpTodRequest:        {"TodRequest", nil},
	OpTodData:           {"TodData", nil},
	OpTodControl:        {"TodControl", nil},
	OpRdm:               {"Rdm", nil},
	OpRdmSub:            {"RdmSub", nil},
	OpMedia:             {"Media", nil},
	OpMediaPatch:        {"MediaPatch", nil},
	OpMediaControl:      {"MediaControl", nil},
	OpMediaControlReply: {"MediaControlReply", nil},
	OpTimecode:          {"Timecode", decodeTimecode},
	OpTimeSync:          {"TimeSync", nil},
	OpTrigger:           {"Trigger", decodeTrigger},
	OpDirectory:         {"Directory", nil},
	OpDirectoryReply:    {"DirectoryReply", nil},
	OpVideoSetup:        {"VideoSetup", nil},
	OpVideoPalette:      {"VideoPalette", nil},
	OpVideoData:         {"VideoData", nil},
	OpMacMaster:         {"MacMaster", nil},
	OpMacSlave:          {"MacSlave", nil},
	OpFirmwareMaster:    {"FirmwareMaster", nil},
	OpFirmwareReply:     {"FirmwareReply", nil},
	OpFileTnMaster:      {"FileTnMaster", nil},
	OpFileFnMaster:      {"FileFnMaster", nil},
	OpFileFnReply:       {"FileFnReply", nil},
	OpIPProg:            {"IpProg", nil},
	OpIPProgReply:       {"IpProgReply", nil},
}

func (op Opcode) String() string {
	if e, ok := opcodeTable[op]; ok {
		return e.name
	}
	return fmt.Sprintf("Opcode(0x%04X)", uint16(op))
}
