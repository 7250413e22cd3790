package rct

/*
ReceiveFrame incrementally parses one frame out of a byte stream.

The parser tolerates arbitrary fragmentation: Consume may be called with any
number of bytes, any number of times, and returns how many raw bytes it
ingested. Garbage before the start token is discarded silently; escape bytes
are decoded on the fly and are invisible to length accounting and to the
checksum.

  AWAIT_START -> AWAIT_COMMAND -> AWAIT_LENGTH -> [AWAIT_ADDRESS] ->
  AWAIT_OID -> [AWAIT_PAYLOAD] -> AWAIT_CRC -> COMPLETE

A ReceiveFrame handles exactly one frame. It becomes terminal on completion
or on the first error (InvalidCommandError, CRCMismatchError,
FrameLengthExceededError); after that, Consume ingests nothing and the
caller resynchronizes with a fresh instance, advancing its buffer by the
consumed count carried in the error.

Accessors are valid as soon as the corresponding field has been decoded and
return zero values before that. Data returns a view into the internal
buffer; callers copy if they keep it beyond the receiver's lifetime.

A ReceiveFrame is not safe for concurrent use; drive one instance per
connection.
*/
type ReceiveFrame struct {
	state      receiveState
	permissive bool
	escaped    bool

	command  Command
	length   int // declared length field value
	expected int // payload bytes still implied by the length field

	lenBuf  []byte
	addrBuf []byte
	oidBuf  []byte
	crcBuf  []byte
	payload []byte
	crcOK   bool

	address uint32
	id      uint32

	// logical bytes from command through payload, checksum input
	frameBuf []byte

	consumed int
	err      error
}

type receiveState int

const (
	stateAwaitStart receiveState = iota
	stateAwaitCommand
	stateAwaitLength
	stateAwaitAddress
	stateAwaitOID
	stateAwaitPayload
	stateAwaitCRC
	stateComplete
	stateFailed
)

func NewReceiveFrame() *ReceiveFrame {
	return &ReceiveFrame{}
}

// SetPermissive controls whether a checksum mismatch still completes the
// frame. In permissive mode the frame's fields stay accessible for
// debugging and CRCOK reports the mismatch.
func (f *ReceiveFrame) SetPermissive(permissive bool) *ReceiveFrame {
	f.permissive = permissive
	return f
}

// Consume ingests bytes from data until the frame completes, an error
// occurs, or data is exhausted. It returns the number of raw bytes taken
// from data, counting discarded garbage and escape bytes. A terminal
// receiver consumes nothing.
//
// A short return with a nil error means the frame completed mid-buffer;
// the remainder belongs to the next frame.
func (f *ReceiveFrame) Consume(data []byte) (int, error) {
	if f.state == stateComplete || f.state == stateFailed {
		return 0, f.err
	}
	n := 0
	for _, b := range data {
		n++
		f.consumed++
		if err := f.feed(b); err != nil {
			f.state = stateFailed
			f.err = err
			return n, err
		}
		if f.state == stateComplete {
			break
		}
	}
	return n, nil
}

// feed processes one raw byte.
func (f *ReceiveFrame) feed(b byte) error {
	if f.state == stateAwaitStart {
		// Devices prefix some frames with a stray NUL; anything before the
		// start token is discarded without error.
		if b == StartToken {
			f.state = stateAwaitCommand
		}
		return nil
	}
	if !f.escaped && b == EscapeToken {
		f.escaped = true
		return nil
	}
	f.escaped = false
	return f.feedLogical(b)
}

// feedLogical processes one logical (unescaped) byte.
func (f *ReceiveFrame) feedLogical(b byte) error {
	switch f.state {
	case stateAwaitCommand:
		cmd := Command(b)
		if !cmd.Valid() {
			return &InvalidCommandError{Command: b, Consumed: f.consumed}
		}
		f.command = cmd
		f.frameBuf = append(f.frameBuf, b)
		f.state = stateAwaitLength

	case stateAwaitLength:
		f.frameBuf = append(f.frameBuf, b)
		f.lenBuf = append(f.lenBuf, b)
		want := 1
		if f.command.IsLong() {
			want = 2
		}
		if len(f.lenBuf) < want {
			return nil
		}
		if want == 2 {
			f.length = int(parseBigEndianUint16(f.lenBuf))
		} else {
			f.length = int(f.lenBuf[0])
		}
		f.expected = f.length - 4
		if f.command.IsPlant() {
			f.expected -= 4
		}
		if f.expected < 0 {
			return &FrameLengthExceededError{Declared: f.length, Consumed: f.consumed}
		}
		if f.command.IsPlant() {
			f.state = stateAwaitAddress
		} else {
			f.state = stateAwaitOID
		}

	case stateAwaitAddress:
		f.frameBuf = append(f.frameBuf, b)
		f.addrBuf = append(f.addrBuf, b)
		if len(f.addrBuf) < 4 {
			return nil
		}
		f.address = parseBigEndianUint32(f.addrBuf)
		f.state = stateAwaitOID

	case stateAwaitOID:
		f.frameBuf = append(f.frameBuf, b)
		f.oidBuf = append(f.oidBuf, b)
		if len(f.oidBuf) < 4 {
			return nil
		}
		f.id = parseBigEndianUint32(f.oidBuf)
		if f.expected == 0 {
			f.state = stateAwaitCRC
		} else {
			f.state = stateAwaitPayload
		}

	case stateAwaitPayload:
		f.frameBuf = append(f.frameBuf, b)
		f.payload = append(f.payload, b)
		if len(f.payload) > f.expected {
			return &FrameLengthExceededError{Declared: f.length, Consumed: f.consumed}
		}
		if len(f.payload) == f.expected {
			f.state = stateAwaitCRC
		}

	case stateAwaitCRC:
		f.crcBuf = append(f.crcBuf, b)
		if len(f.crcBuf) < 2 {
			return nil
		}
		computed := CRC16(f.frameBuf)
		received := parseBigEndianUint16(f.crcBuf)
		f.crcOK = computed == received
		if !f.crcOK && !f.permissive {
			return &CRCMismatchError{Expected: computed, Actual: received, Consumed: f.consumed}
		}
		f.state = stateComplete
		_lg.Debugf("received frame: %s (%d bytes)", (&Frame{
			Command: f.command, ID: f.id, Address: f.address, Data: f.payload,
		}).String(), f.consumed)
	}
	return nil
}

// Complete reports whether a whole frame has been received.
func (f *ReceiveFrame) Complete() bool {
	return f.state == stateComplete
}

// CRCOK reports whether the received checksum matched. Only meaningful once
// the frame is complete; without permissive mode a mismatch surfaces as an
// error instead.
func (f *ReceiveFrame) CRCOK() bool {
	return f.crcOK
}

// Command returns the frame command, or CommandNone before it was decoded.
func (f *ReceiveFrame) Command() Command {
	return f.command
}

// ID returns the object id, or 0 before it was decoded.
func (f *ReceiveFrame) ID() uint32 {
	return f.id
}

// Address returns the plant address, or 0 for non-plant frames and before
// it was decoded.
func (f *ReceiveFrame) Address() uint32 {
	return f.address
}

// Data returns the payload received so far as a view into the internal
// buffer.
func (f *ReceiveFrame) Data() []byte {
	return f.payload
}

// Consumed returns the total number of raw bytes ingested over the
// receiver's lifetime, escapes and pre-start garbage included.
func (f *ReceiveFrame) Consumed() int {
	return f.consumed
}

// Frame returns the completed frame, or nil if the receiver is not
// complete.
func (f *ReceiveFrame) Frame() *Frame {
	if f.state != stateComplete {
		return nil
	}
	return &Frame{Command: f.command, ID: f.id, Address: f.address, Data: f.payload}
}
