// Copyright 2026 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ldap implements a minimal LDAP transport over TCP. The package owns
// the connection lifecycle and message-identifier sequencing; the wire format
// itself is implemented by [codello.dev/ldap/ber].
//
// A [Conn] writes one complete protocol message per [Conn.Send] and assigns
// every outgoing message a fresh, monotonically increasing message
// identifier. [Conn.Receive] treats the connection as a plain byte stream:
// partial reads are buffered until one complete message is available and
// bytes beyond a message boundary are retained for the next call. The package
// performs no request/response correlation, authentication or operation
// semantics.
package ldap

import (
	"errors"
	"net"
	"sync"

	"codello.dev/ldap/ber"
)

// readChunkSize is the number of bytes requested from the connection per read
// while waiting for a complete message.
const readChunkSize = 512

// Conn is an LDAP connection. A Conn may be used by one sender and one
// receiver concurrently; Send and Receive are each serialized independently.
type Conn struct {
	conn net.Conn

	wmu   sync.Mutex
	msgID int64 // last assigned message identifier, guarded by wmu

	rmu sync.Mutex
	buf []byte // unconsumed bytes read off the connection, guarded by rmu
}

// Dial connects to an LDAP server at addr using the given network (usually
// "tcp") and returns a [Conn] ready for use.
func Dial(network, addr string) (*Conn, error) {
	c, err := net.Dial(network, addr)
	if err != nil {
		return nil, err
	}
	return NewConn(c), nil
}

// NewConn returns a [Conn] using c as its transport. Ownership of c passes to
// the returned Conn.
func NewConn(c net.Conn) *Conn {
	return &Conn{conn: c}
}

// Send encodes op as a protocol message and writes it to the connection in a
// single write. Each call assigns the next message identifier in sequence;
// the identifier used is returned so callers can correlate a later response.
func (c *Conn) Send(op ber.Tag) (int64, error) {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	c.msgID++
	id := c.msgID
	if _, err := c.conn.Write(ber.Encode(op, id)); err != nil {
		return 0, err
	}
	return id, nil
}

// Receive reads the next protocol message from the connection. Reads are
// buffered: a message split across several reads is reassembled and bytes
// following a message boundary are kept for the next call. Receive returns
// any decode error from the ber package as-is and any connection error
// unchanged.
func (c *Conn) Receive() (ber.Message, error) {
	c.rmu.Lock()
	defer c.rmu.Unlock()

	for {
		if len(c.buf) > 0 {
			msg, n, err := ber.DecodeMessage(c.buf)
			if err == nil {
				c.buf = append(c.buf[:0], c.buf[n:]...)
				return msg, nil
			}
			if !errors.Is(err, ber.ErrTruncated) {
				return ber.Message{}, err
			}
		}

		var chunk [readChunkSize]byte
		n, err := c.conn.Read(chunk[:])
		c.buf = append(c.buf, chunk[:n]...)
		if err != nil && n == 0 {
			return ber.Message{}, err
		}
	}
}

// Close closes the underlying connection. Any blocked Receive will return
// with an error.
func (c *Conn) Close() error {
	return c.conn.Close()
}
