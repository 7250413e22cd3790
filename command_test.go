package rct

import "testing"

func TestCommandValid(t *testing.T) {
	type args struct {
		c Command
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"read", args{CommandRead}, true},
		{"write", args{CommandWrite}, true},
		{"long write", args{CommandLongWrite}, true},
		{"response", args{CommandResponse}, true},
		{"long response", args{CommandLongResponse}, true},
		{"read periodically", args{CommandReadPeriodically}, true},
		{"plant read", args{CommandPlantRead}, true},
		{"plant long response", args{CommandPlantLongResponse}, true},
		{"none", args{CommandNone}, false},
		{"extension", args{CommandExtension}, false},
		{"unused base code", args{0x04}, false},
		{"arbitrary", args{0xFF}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.c.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandClassification(t *testing.T) {
	tests := []struct {
		name     string
		c        Command
		read     bool
		write    bool
		response bool
		long     bool
		plant    bool
	}{
		{"READ", CommandRead, true, false, false, false, false},
		{"WRITE", CommandWrite, false, true, false, false, false},
		{"LONG_WRITE", CommandLongWrite, false, true, false, true, false},
		{"RESPONSE", CommandResponse, false, false, true, false, false},
		{"LONG_RESPONSE", CommandLongResponse, false, false, true, true, false},
		{"READ_PERIODICALLY", CommandReadPeriodically, true, false, false, false, false},
		{"PLANT_READ", CommandPlantRead, true, false, false, false, true},
		{"PLANT_WRITE", CommandPlantWrite, false, true, false, false, true},
		{"PLANT_LONG_WRITE", CommandPlantLongWrite, false, true, false, true, true},
		{"PLANT_RESPONSE", CommandPlantResponse, false, false, true, false, true},
		{"PLANT_LONG_RESPONSE", CommandPlantLongResponse, false, false, true, true, true},
		{"PLANT_READ_PERIODICALLY", CommandPlantReadPeriodically, true, false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsRead(); got != tt.read {
				t.Errorf("IsRead() = %v, want %v", got, tt.read)
			}
			if got := tt.c.IsWrite(); got != tt.write {
				t.Errorf("IsWrite() = %v, want %v", got, tt.write)
			}
			if got := tt.c.IsResponse(); got != tt.response {
				t.Errorf("IsResponse() = %v, want %v", got, tt.response)
			}
			if got := tt.c.IsLong(); got != tt.long {
				t.Errorf("IsLong() = %v, want %v", got, tt.long)
			}
			if got := tt.c.IsPlant(); got != tt.plant {
				t.Errorf("IsPlant() = %v, want %v", got, tt.plant)
			}
			if got := tt.c.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestCommandByteValues(t *testing.T) {
	// The wire values are fixed by the device firmware.
	pairs := []struct {
		c    Command
		want byte
	}{
		{CommandRead, 0x01},
		{CommandWrite, 0x02},
		{CommandLongWrite, 0x03},
		{CommandResponse, 0x05},
		{CommandLongResponse, 0x06},
		{CommandReadPeriodically, 0x08},
		{CommandExtension, 0x3C},
		{CommandPlantRead, 0x41},
		{CommandPlantWrite, 0x42},
		{CommandPlantLongWrite, 0x43},
		{CommandPlantResponse, 0x45},
		{CommandPlantLongResponse, 0x46},
		{CommandPlantReadPeriodically, 0x48},
	}
	for _, p := range pairs {
		if byte(p.c) != p.want {
			t.Errorf("%s = 0x%02X, want 0x%02X", p.c, byte(p.c), p.want)
		}
	}
}
