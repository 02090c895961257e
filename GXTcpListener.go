package gxcomm

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/Gurux/gxcommon-go"
)

// acceptBackoff is the wait after a failed accept.
const acceptBackoff = 50 * time.Millisecond

// GXTcpListener accepts TCP connections. From each connection it reads one
// unit of data, delivers it as a reply and closes the connection.
type GXTcpListener struct {
	listener
	readTimeout atomic.Int64
}

// NewGXTcpListener creates a TCP listener.
func NewGXTcpListener() *GXTcpListener {
	l := &GXTcpListener{}
	l.protocol = NetworkTypeTCP
	l.readTimeout.Store(int64(defaultTimeout * time.Millisecond))
	l.init(l)
	return l
}

// GetTimeout returns the read timeout of an accepted connection in milliseconds.
func (l *GXTcpListener) GetTimeout() uint32 {
	return uint32(time.Duration(l.readTimeout.Load()) / time.Millisecond)
}

// SetTimeout sets the read timeout of an accepted connection in milliseconds.
func (l *GXTcpListener) SetTimeout(value uint32) error {
	l.readTimeout.Store(int64(time.Duration(value) * time.Millisecond))
	return nil
}

// Start binds the port on all IPv4 interfaces and starts the accept loop.
// Calling Start while listening does nothing.
func (l *GXTcpListener) Start(port int) bool {
	l.lmu.Lock()
	defer l.lmu.Unlock()
	if l.listening.Load() {
		return true
	}
	lc := l.listenConfig()
	ln, err := lc.Listen(context.Background(), l.protocol.network(), ":"+strconv.Itoa(port))
	if err != nil {
		return l.failed(port, err)
	}
	l.started(ln, ln.Addr())
	go l.accept(ln)
	return true
}

func (l *GXTcpListener) accept(ln net.Listener) {
	for {
		c, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || !l.IsListening() {
				return
			}
			l.trace(gxcommon.TraceTypesError, l.sprintf("msg.connection_failed", err))
			l.errorf(err)
			time.Sleep(acceptBackoff)
			continue
		}
		l.trace(gxcommon.TraceTypesInfo, l.sprintf("msg.accepted", c.RemoteAddr().String()))
		go l.handle(c)
	}
}

// handle reads the first byte and everything available with it.
func (l *GXTcpListener) handle(c net.Conn) {
	defer c.Close()
	reply := replyFrom(c.RemoteAddr())
	_ = c.SetReadDeadline(time.Now().Add(time.Duration(l.readTimeout.Load())))
	buf := make([]byte, maxReplySize)
	n, err := c.Read(buf)
	if n == 0 {
		var ne net.Error
		if err != nil && !errors.Is(err, io.EOF) && !(errors.As(err, &ne) && ne.Timeout()) {
			l.trace(gxcommon.TraceTypesError, l.sprintf("msg.connection_failed", err))
		}
		return
	}
	data := bytes.Clone(buf[:n])
	l.bytesReceived.Add(uint64(n))
	reply.setReply(data)
	l.received(data)
	l.receivef(reply)
}
