package rct

import "fmt"

// Frame is one complete logical message: the command, the object id it
// refers to, the plant address (zero unless the command is a plant variant)
// and the raw payload bytes. Payload interpretation is up to the caller,
// usually via DecodeValue with the type from the registry.
type Frame struct {
	Command Command
	ID      uint32
	Address uint32
	Data    []byte
}

func (f *Frame) String() string {
	if f.Command.IsPlant() {
		return fmt.Sprintf("%s@%08X id=0x%08X data=[% X]", f.Command, f.Address, f.ID, f.Data)
	}
	return fmt.Sprintf("%s id=0x%08X data=[% X]", f.Command, f.ID, f.Data)
}
