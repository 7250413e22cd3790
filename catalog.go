package rct

import "sync"

/*
Built-in subset of the device OID catalog.

The full inventory runs to roughly 700 objects and is firmware data, not
protocol; embedders with a complete table construct their own Registry from
it. This subset covers the objects the CLI, the simulator and most
monitoring setups touch: state of charge, power flows, identity strings and
the logger's time series heads.
*/
var builtinObjects = []*ObjectInfo{
	{
		ObjectID: 0x959930BF, Name: "battery.soc", Group: GroupBattery,
		Description: "Battery state of charge", Unit: "0..1",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		SimData: float32(0.87),
	},
	{
		ObjectID: 0xA7FA5C5D, Name: "battery.voltage", Group: GroupBattery,
		Description: "Battery terminal voltage", Unit: "V",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		SimData: float32(51.3),
	},
	{
		ObjectID: 0x902AFAFB, Name: "battery.temperature", Group: GroupBattery,
		Description: "Battery temperature", Unit: "°C",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		SimData: float32(24.5),
	},
	{
		ObjectID: 0x70A2AF4F, Name: "battery.bat_status", Group: GroupBattery,
		Description:     "Battery status word",
		RequestDataType: DataTypeInt32, ResponseDataType: DataTypeInt32,
	},
	{
		ObjectID: 0x6DB1FDDB, Name: "battery.cycles", Group: GroupBattery,
		Description:     "Charge/discharge cycle count",
		RequestDataType: DataTypeUint32, ResponseDataType: DataTypeUint32,
	},
	{
		ObjectID: 0x400F015B, Name: "g_sync.p_acc_lp", Group: GroupGSync,
		Description: "Battery power (positive while charging)", Unit: "W",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		SimData: float32(-1250.0),
	},
	{
		ObjectID: 0x91617C58, Name: "g_sync.p_ac_grid_sum_lp", Group: GroupGSync,
		Description: "Total grid power (positive while drawing)", Unit: "W",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		SimData: float32(80.0),
	},
	{
		ObjectID: 0x1AC87AA0, Name: "g_sync.p_ac_load_sum_lp", Group: GroupGSync,
		Description: "Household load", Unit: "W",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		SimData: float32(640.0),
	},
	{
		ObjectID: 0xDB11855B, Name: "dc_conv.dc_conv_struct[0].p_dc_lp", Group: GroupDcConv,
		Description: "Solar generator A power", Unit: "W",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		SimData: float32(1810.0),
	},
	{
		ObjectID: 0x0CB5D21B, Name: "dc_conv.dc_conv_struct[1].p_dc_lp", Group: GroupDcConv,
		Description: "Solar generator B power", Unit: "W",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
		SimData: float32(1760.0),
	},
	{
		ObjectID: 0xB55BA2CE, Name: "dc_conv.dc_conv_struct[0].u_sg_lp", Group: GroupDcConv,
		Description: "Solar generator A voltage", Unit: "V",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
	},
	{
		ObjectID: 0xB0041187, Name: "dc_conv.dc_conv_struct[1].u_sg_lp", Group: GroupDcConv,
		Description: "Solar generator B voltage", Unit: "V",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
	},
	{
		ObjectID: 0xDB2D69AE, Name: "power_mng.soc_target", Group: GroupPowerMng,
		Description: "Target state of charge", Unit: "0..1",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
	},
	{
		ObjectID: 0x97997C93, Name: "power_mng.soc_min", Group: GroupPowerMng,
		Description: "Lower state of charge bound", Unit: "0..1",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
	},
	{
		ObjectID: 0xF168B748, Name: "power_mng.soc_strategy", Group: GroupPowerMng,
		Description:     "State of charge target selection",
		RequestDataType: DataTypeEnum, ResponseDataType: DataTypeEnum,
		EnumMap: map[uint8]string{
			0: "SOC_TARGET",
			1: "CONSTANT",
			2: "EXTERNAL",
			3: "MIDDLE_VOLTAGE",
			4: "SCHEDULE",
		},
		SimData: uint8(0),
	},
	{
		ObjectID: 0x59358EBE, Name: "power_mng.battery_power_extern", Group: GroupPowerMng,
		Description: "External battery power request", Unit: "W",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
	},
	{
		ObjectID: 0xEBC62737, Name: "android_description", Group: GroupOthers,
		Description:     "Device name shown in the vendor app",
		RequestDataType: DataTypeString, ResponseDataType: DataTypeString,
		SimData: "RCT Simulator",
	},
	{
		ObjectID: 0x7924ABD9, Name: "inverter_sn", Group: GroupOthers,
		Description:     "Inverter serial number",
		RequestDataType: DataTypeString, ResponseDataType: DataTypeString,
		SimData: "SIM0000001",
	},
	{
		ObjectID: 0x5E9ABDB6, Name: "svnversion", Group: GroupOthers,
		Description:     "Firmware revision",
		RequestDataType: DataTypeString, ResponseDataType: DataTypeString,
		SimData: "4735",
	},
	{
		ObjectID: 0x3903A5E9, Name: "net.n_descendents", Group: GroupNet,
		Description:     "Devices attached below this one",
		RequestDataType: DataTypeUint8, ResponseDataType: DataTypeUint8,
		SimData: uint8(0),
	},
	{
		ObjectID: 0xC0CC81B6, Name: "energy.e_ac_total", Group: GroupEnergy,
		Description: "Total produced energy", Unit: "Wh",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
	},
	{
		ObjectID: 0x68BC034D, Name: "energy.e_ac_day", Group: GroupEnergy,
		Description: "Energy produced today", Unit: "Wh",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
	},
	{
		ObjectID: 0x37F9D5CA, Name: "fault.flt[0]", Group: GroupFault,
		Description:     "Fault bits 0..31",
		RequestDataType: DataTypeUint32, ResponseDataType: DataTypeUint32,
	},
	{
		ObjectID: 0x234B4736, Name: "fault.flt[1]", Group: GroupFault,
		Description:     "Fault bits 32..63",
		RequestDataType: DataTypeUint32, ResponseDataType: DataTypeUint32,
	},
	{
		ObjectID: 0x3B7FCD47, Name: "fault.flt[2]", Group: GroupFault,
		Description:     "Fault bits 64..95",
		RequestDataType: DataTypeUint32, ResponseDataType: DataTypeUint32,
	},
	{
		ObjectID: 0x48BD87DD, Name: "fault.flt[3]", Group: GroupFault,
		Description:     "Fault bits 96..127",
		RequestDataType: DataTypeUint32, ResponseDataType: DataTypeUint32,
	},
	{
		ObjectID: 0x2F0A6B15, Name: "logger.minutes_ubat_log_ts", Group: GroupLogger,
		Description: "Battery voltage history", Unit: "V",
		RequestDataType: DataTypeTimeSeries, ResponseDataType: DataTypeTimeSeries,
	},
	{
		ObjectID: 0xCBD5BC50, Name: "logger.minutes_soc_log_ts", Group: GroupLogger,
		Description: "State of charge history", Unit: "0..1",
		RequestDataType: DataTypeTimeSeries, ResponseDataType: DataTypeTimeSeries,
	},
	{
		ObjectID: 0x6F3876BC, Name: "logger.minutes_eb_log_ts", Group: GroupLogger,
		Description: "Battery energy history", Unit: "Wh",
		RequestDataType: DataTypeTimeSeries, ResponseDataType: DataTypeTimeSeries,
	},
	{
		ObjectID: 0x4C12C4C7, Name: "logger.event_log_ts", Group: GroupLogger,
		Description:     "Device event log",
		RequestDataType: DataTypeEventTable, ResponseDataType: DataTypeEventTable,
	},
	{
		ObjectID: 0x8FC89B10, Name: "grid_mon[0].u_min.time", Group: GroupGrid,
		Description: "Grid undervoltage trip time L1", Unit: "s",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
	},
	{
		ObjectID: 0x4E271C65, Name: "temperature.sink_temp_power_reduction", Group: GroupTemperature,
		Description: "Heat sink derating threshold", Unit: "°C",
		RequestDataType: DataTypeFloat, ResponseDataType: DataTypeFloat,
	},
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry built from the built-in catalog
// subset. The registry is built once and shared; it is read-only.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry(builtinObjects...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
