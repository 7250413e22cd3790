package rct

import (
	"net"

	"github.com/sirupsen/logrus"
)

// Simulator answers the protocol the way a device does, backed by a
// registry: reads return the entry's SimData (or a zero value of the
// response type), writes are acknowledged by echoing the payload. It exists
// for development and for tests that need a live endpoint.
type Simulator struct {
	address  string
	registry *Registry
	listener net.Listener

	lg *logrus.Logger
}

func NewSimulator(address string, registry *Registry) *Simulator {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Simulator{
		address:  address,
		registry: registry,
		lg:       _lg,
	}
}

// Listen binds the listener without accepting yet. Serve calls it when
// needed; callers that listen on an ephemeral port use it to learn the
// bound address before serving.
func (s *Simulator) Listen() error {
	if s.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	s.listener = listener
	s.lg.Infof("simulator listening on %s with %d objects", listener.Addr(), s.registry.Len())
	return nil
}

// Serve answers connections until the listener is closed.
func (s *Simulator) Serve() error {
	if err := s.Listen(); err != nil {
		return err
	}
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		go s.serve(conn)
	}
}

// Addr returns the bound listener address, for tests that listen on :0.
func (s *Simulator) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Simulator) Close() error {
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

func (s *Simulator) serve(conn net.Conn) {
	defer conn.Close()
	s.lg.Debugf("serve connection from %s", conn.RemoteAddr())

	rf := NewReceiveFrame()
	buf := make([]byte, 1024)
	var pending []byte
	for {
		for len(pending) > 0 {
			n, err := rf.Consume(pending)
			pending = pending[n:]
			if err != nil {
				s.lg.Debugf("dropping request from %s: %v", conn.RemoteAddr(), err)
				rf = NewReceiveFrame()
				continue
			}
			if !rf.Complete() {
				continue
			}
			if err := s.answer(conn, rf.Frame()); err != nil {
				s.lg.Errorf("answer %s: %v", conn.RemoteAddr(), err)
				return
			}
			rf = NewReceiveFrame()
		}
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		pending = append(pending, buf[:n]...)
	}
}

func (s *Simulator) answer(conn net.Conn, req *Frame) error {
	var payload []byte
	switch {
	case req.Command.IsRead():
		entry, err := s.registry.ByID(req.ID)
		if err != nil {
			s.lg.Debugf("read of unknown object 0x%08X", req.ID)
			return nil // devices stay silent on unknown ids
		}
		payload, err = s.simValue(entry)
		if err != nil {
			return err
		}
	case req.Command.IsWrite():
		payload = req.Data
	default:
		return nil
	}

	command := CommandResponse
	if 4+len(payload) > 0xFF {
		command = CommandLongResponse
	}
	var out []byte
	var err error
	if req.Command.IsPlant() {
		out, err = SendPlantFrame(command|commandPlantBit, req.ID, req.Address, payload)
	} else {
		out, err = SendFrame(command, req.ID, payload)
	}
	if err != nil {
		return err
	}
	_, err = conn.Write(out)
	return err
}

func (s *Simulator) simValue(entry *ObjectInfo) ([]byte, error) {
	if entry.SimData != nil {
		return EncodeValue(entry.ResponseDataType, entry.SimData)
	}
	switch entry.ResponseDataType {
	case DataTypeBool:
		return EncodeValue(DataTypeBool, false)
	case DataTypeString:
		return EncodeValue(DataTypeString, "")
	case DataTypeFloat:
		return EncodeValue(DataTypeFloat, float32(0))
	case DataTypeTimeSeries, DataTypeEventTable:
		// Just the echoed request timestamp, an empty table.
		return EncodeValue(entry.ResponseDataType, uint32(0))
	case DataTypeUnknown:
		return nil, nil
	default:
		return EncodeValue(entry.ResponseDataType, 0)
	}
}
