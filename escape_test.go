package rct

import (
	"bytes"
	"testing"
)

func TestEscape(t *testing.T) {
	type args struct {
		src []byte
	}
	tests := []struct {
		name string
		args args
		want []byte
	}{
		{
			"no collisions",
			args{[]byte{0x01, 0x04, 0x95}},
			[]byte{0x01, 0x04, 0x95},
		},
		{
			"start token",
			args{[]byte{0x2B}},
			[]byte{0x2D, 0x2B},
		},
		{
			"escape token",
			args{[]byte{0x2D}},
			[]byte{0x2D, 0x2D},
		},
		{
			"mixed",
			args{[]byte{0x61, 0x2B, 0x62, 0x2D, 0x63}},
			[]byte{0x61, 0x2D, 0x2B, 0x62, 0x2D, 0x2D, 0x63},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escape(nil, tt.args.src); !bytes.Equal(got, tt.want) {
				t.Errorf("escape() = [% X], want [% X]", got, tt.want)
			}
		})
	}
}

// Every byte value must survive a trip through the escape encoder and the
// receiver's inline unescaping.
func TestEscapeRoundTripAllBytes(t *testing.T) {
	payload := make([]byte, 256)
	for i := range payload {
		payload[i] = byte(i)
	}
	out, err := SendFrame(CommandLongWrite, 0x12345678, payload)
	if err != nil {
		t.Fatal(err)
	}

	rf := NewReceiveFrame()
	n, err := rf.Consume(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(out) {
		t.Errorf("consumed %d of %d bytes", n, len(out))
	}
	if !rf.Complete() {
		t.Fatal("frame not complete")
	}
	if !bytes.Equal(rf.Data(), payload) {
		t.Errorf("payload not recovered:\n got [% X]\nwant [% X]", rf.Data(), payload)
	}
}
