package rct

import "fmt"

// ObjectInfo describes one OID: the quantity's numeric id, its dotted-path
// name, the payload types of requests and responses, and presentation
// metadata. Entries are static data, shared read-only via a Registry.
type ObjectInfo struct {
	ObjectID    uint32
	Name        string
	Group       Group
	Description string
	Unit        string

	RequestDataType  DataType
	ResponseDataType DataType

	// EnumMap labels the values of an ENUM object. Nil for other types.
	EnumMap map[uint8]string

	// SimData is the value the simulator answers reads with. Optional.
	SimData interface{}
}

func (o *ObjectInfo) String() string {
	return fmt.Sprintf("0x%08X %s (%s)", o.ObjectID, o.Name, o.ResponseDataType)
}

// EnumLabel resolves an enum value to its label, falling back to the
// numeric form for unmapped values.
func (o *ObjectInfo) EnumLabel(v uint8) string {
	if label, ok := o.EnumMap[v]; ok {
		return label
	}
	return fmt.Sprintf("%d", v)
}

// Group tags the subsystem an OID belongs to, following the first component
// of the dotted name.
type Group uint8

const (
	GroupOthers Group = iota
	GroupAccConv
	GroupAdc
	GroupBatMng
	GroupBattery
	GroupCanBus
	GroupCsMap
	GroupCsNeg
	GroupDcConv
	GroupDisplay
	GroupEnergy
	GroupFault
	GroupFlash
	GroupGSync
	GroupGrid
	GroupIso
	GroupLogger
	GroupModbus
	GroupNet
	GroupNvStore
	GroupPRec
	GroupPowerMng
	GroupPrimSm
	GroupRb485
	GroupTemperature
	GroupWifi
)

func (g Group) String() string {
	switch g {
	case GroupAccConv:
		return "acc_conv"
	case GroupAdc:
		return "adc"
	case GroupBatMng:
		return "bat_mng_struct"
	case GroupBattery:
		return "battery"
	case GroupCanBus:
		return "can_bus"
	case GroupCsMap:
		return "cs_map"
	case GroupCsNeg:
		return "cs_neg"
	case GroupDcConv:
		return "dc_conv"
	case GroupDisplay:
		return "display_struct"
	case GroupEnergy:
		return "energy"
	case GroupFault:
		return "fault"
	case GroupFlash:
		return "flash_rtc"
	case GroupGSync:
		return "g_sync"
	case GroupGrid:
		return "grid_mon"
	case GroupIso:
		return "iso_struct"
	case GroupLogger:
		return "logger"
	case GroupModbus:
		return "modbus"
	case GroupNet:
		return "net"
	case GroupNvStore:
		return "nv_store"
	case GroupPRec:
		return "p_rec"
	case GroupPowerMng:
		return "power_mng"
	case GroupPrimSm:
		return "prim_sm"
	case GroupRb485:
		return "rb485"
	case GroupTemperature:
		return "temperature"
	case GroupWifi:
		return "wifi"
	default:
		return "others"
	}
}
