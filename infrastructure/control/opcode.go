package control

// Opcode is the control-channel packet type, carried in bits 3-7 of the
// header byte. Values follow the standard OpenVPN opcode assignment.
type Opcode byte

const (
	HardResetClientV1 Opcode = iota + 1
	HardResetServerV1
	SoftResetV1
	ControlV1
	AckV1
	DataV1
	HardResetClientV2
	HardResetServerV2
	DataV2
	HardResetClientV3
	ControlWkcV1
)

// Valid reports whether o is a recognized opcode.
func (o Opcode) Valid() bool {
	return o >= HardResetClientV1 && o <= ControlWkcV1
}

func (o Opcode) String() string {
	switch o {
	case HardResetClientV1:
		return "HARD_RESET_CLIENT_V1"
	case HardResetServerV1:
		return "HARD_RESET_SERVER_V1"
	case SoftResetV1:
		return "SOFT_RESET_V1"
	case ControlV1:
		return "CONTROL_V1"
	case AckV1:
		return "ACK_V1"
	case DataV1:
		return "DATA_V1"
	case HardResetClientV2:
		return "HARD_RESET_CLIENT_V2"
	case HardResetServerV2:
		return "HARD_RESET_SERVER_V2"
	case DataV2:
		return "DATA_V2"
	case HardResetClientV3:
		return "HARD_RESET_CLIENT_V3"
	case ControlWkcV1:
		return "CONTROL_WKC_V1"
	default:
		return "UNKNOWN"
	}
}
