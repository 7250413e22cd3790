package rct

import (
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"
)

// Client talks to one device over TCP. It owns the connection and a single
// in-flight frame at a time; the protocol has no session layer, a request
// is answered (if at all) by a response frame carrying the same OID.
//
// A Client is not safe for concurrent use.
type Client struct {
	opt  *ClientOption
	conn net.Conn
	rbuf []byte // raw bytes read but not yet consumed by a receiver

	lg *logrus.Logger
}

func NewClient(opt *ClientOption) *Client {
	return &Client{
		opt: opt,
		lg:  _lg,
	}
}

func (c *Client) Connect() error {
	conn, err := net.DialTimeout("tcp", c.opt.server, c.opt.connectTimeout)
	if err != nil {
		return err
	}
	c.lg.Debugf("connected with %s", conn.RemoteAddr())
	c.conn = conn
	return nil
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// Query sends one frame and waits for the response carrying the same OID.
// Frames for other OIDs arriving in between (periodic reads set up by the
// vendor app keep streaming) are logged and skipped. The whole exchange is
// retried per the option's retry budget.
func (c *Client) Query(command Command, id uint32, payload []byte) (*Frame, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("not connected")
	}
	out, err := SendFrame(command, id, payload)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.opt.retries; attempt++ {
		if attempt > 0 {
			c.lg.Debugf("retry %d for 0x%08X: %v", attempt, id, lastErr)
		}
		if _, err := c.conn.Write(out); err != nil {
			return nil, err
		}
		frame, err := c.waitForResponse(id, time.Now().Add(c.opt.readTimeout))
		if err == nil {
			return frame, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no response for 0x%08X: %w", id, lastErr)
}

func (c *Client) waitForResponse(id uint32, deadline time.Time) (*Frame, error) {
	for {
		frame, err := c.readFrame(deadline)
		if err != nil {
			return nil, err
		}
		if frame.Command.IsResponse() && frame.ID == id {
			return frame, nil
		}
		c.lg.Debugf("skipping unrelated frame: %s", frame)
	}
}

// readFrame drives one ReceiveFrame over the connection. Terminal receive
// errors (bad command byte, checksum failure) discard the consumed bytes
// and resynchronize on a fresh receiver; the stream position is preserved
// because Consume reports exactly how far it got.
func (c *Client) readFrame(deadline time.Time) (*Frame, error) {
	rf := NewReceiveFrame()
	buf := make([]byte, 1024)
	for {
		for len(c.rbuf) > 0 {
			n, err := rf.Consume(c.rbuf)
			c.rbuf = c.rbuf[n:]
			if err != nil {
				c.lg.Warnf("dropping frame: %v", err)
				rf = NewReceiveFrame()
				continue
			}
			if rf.Complete() {
				return rf.Frame(), nil
			}
		}
		if err := c.conn.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
		n, err := c.conn.Read(buf)
		if err != nil {
			return nil, err
		}
		c.rbuf = append(c.rbuf, buf[:n]...)
	}
}

// ReadValue reads one object by name and decodes the payload with the
// registry's response type.
func (c *Client) ReadValue(name string) (interface{}, error) {
	entry, err := c.opt.registry.ByName(name)
	if err != nil {
		return nil, err
	}
	return c.readObject(entry)
}

// ReadValueByID is ReadValue for callers that already hold the OID.
func (c *Client) ReadValueByID(id uint32) (interface{}, error) {
	entry, err := c.opt.registry.ByID(id)
	if err != nil {
		return nil, err
	}
	return c.readObject(entry)
}

func (c *Client) readObject(entry *ObjectInfo) (interface{}, error) {
	var payload []byte
	// Table reads are triggered by writing the newest timestamp of
	// interest; plain reads carry no payload.
	switch entry.RequestDataType {
	case DataTypeTimeSeries, DataTypeEventTable:
		ts, err := EncodeValue(entry.RequestDataType, uint32(time.Now().Unix()))
		if err != nil {
			return nil, err
		}
		payload = ts
	}

	command := CommandRead
	if payload != nil {
		command = CommandWrite
	}
	frame, err := c.Query(command, entry.ObjectID, payload)
	if err != nil {
		return nil, err
	}
	return DecodeValue(entry.ResponseDataType, frame.Data)
}

// WriteValue encodes the value with the registry's request type and sends
// it, picking LONG_WRITE when the payload does not fit a short frame. The
// device acknowledges by echoing; the echoed value is decoded and
// returned. No bounds checking is applied beyond the wire encoding.
func (c *Client) WriteValue(name string, value interface{}) (interface{}, error) {
	entry, err := c.opt.registry.ByName(name)
	if err != nil {
		return nil, err
	}
	payload, err := EncodeValue(entry.RequestDataType, value)
	if err != nil {
		return nil, err
	}
	command := CommandWrite
	if 4+len(payload) > 0xFF {
		command = CommandLongWrite
	}
	frame, err := c.Query(command, entry.ObjectID, payload)
	if err != nil {
		return nil, err
	}
	return DecodeValue(entry.ResponseDataType, frame.Data)
}
