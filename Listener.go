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
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/text/language"
)

// Listener binds a local port and delivers inbound data as replies.
type Listener interface {
	// Start binds the port and starts the accept loop. Port 0 selects a free port.
	// It returns the listening state.
	Start(port int) bool
	// Stop closes the socket. It returns the listening state.
	Stop() bool
	// IsListening returns true while the listener is running.
	IsListening() bool
	// Addr returns the bound address or nil when not listening.
	Addr() net.Addr
	SetOnReceived(value ReceivedHandler)
	SetOnError(value ErrorHandler)
	SetOnTrace(value TraceHandler)
	SetOnLog(value LogHandler)
	GetTrace() gxcommon.TraceLevel
	SetTrace(traceLevel gxcommon.TraceLevel) error
	Localize(language language.Tag)
	GetBytesReceived() uint64
}

// NewListener creates a listener for the given protocol.
func NewListener(protocol NetworkType) (Listener, error) {
	switch protocol {
	case NetworkTypeTCP:
		return NewGXTcpListener(), nil
	case NetworkTypeUDP:
		return NewGXUdpListener(), nil
	}
	return nil, fmt.Errorf("%w: %d", gxcommon.ErrUnknownEnum, int(protocol))
}

// listener holds the state shared by the TCP and UDP listeners.
type listener struct {
	events
	protocol NetworkType

	lmu          sync.Mutex
	listening    atomic.Bool
	socket       io.Closer
	addr         atomic.Pointer[net.Addr]
	reuseAddress bool
}

func (l *listener) String() string {
	if a := l.Addr(); a != nil {
		return l.protocol.String() + " " + a.String()
	}
	return l.protocol.String()
}

// IsListening returns true while the listener is running.
func (l *listener) IsListening() bool {
	return l.listening.Load()
}

// Addr returns the bound address or nil when not listening.
func (l *listener) Addr() net.Addr {
	if a := l.addr.Load(); a != nil {
		return *a
	}
	return nil
}

// Port returns the bound port or zero when not listening.
func (l *listener) Port() int {
	switch a := l.Addr().(type) {
	case *net.TCPAddr:
		return a.Port
	case *net.UDPAddr:
		return a.Port
	}
	return 0
}

// GetReuseAddress returns true if SO_REUSEADDR is set on the socket.
func (l *listener) GetReuseAddress() bool {
	l.lmu.Lock()
	defer l.lmu.Unlock()
	return l.reuseAddress
}

// SetReuseAddress defines if SO_REUSEADDR is set on the socket.
// It takes effect on the next Start.
func (l *listener) SetReuseAddress(value bool) {
	l.lmu.Lock()
	l.reuseAddress = value
	l.lmu.Unlock()
}

// listenConfig must be called with lmu held.
func (l *listener) listenConfig() net.ListenConfig {
	var lc net.ListenConfig
	if l.reuseAddress {
		lc.Control = reuseAddressControl
	}
	return lc
}

// started must be called with lmu held.
func (l *listener) started(socket io.Closer, addr net.Addr) {
	l.socket = socket
	l.addr.Store(&addr)
	l.listening.Store(true)
	l.trace(gxcommon.TraceTypesInfo, l.sprintf("msg.listening", l.protocol.String(), addr.String()))
}

// failed reports a bind failure.
func (l *listener) failed(port int, err error) bool {
	l.trace(gxcommon.TraceTypesError, l.sprintf("msg.listen_failed", l.protocol.String(), port, err))
	l.errorf(err)
	return false
}

// Stop closes the socket. The accept loop ends when the socket is closed.
// Errors are reported through the OnError handler.
func (l *listener) Stop() bool {
	l.lmu.Lock()
	defer l.lmu.Unlock()
	if !l.listening.Load() {
		return false
	}
	l.listening.Store(false)
	if err := l.socket.Close(); err != nil {
		l.errorf(err)
	}
	l.trace(gxcommon.TraceTypesInfo, l.sprintf("msg.listener_stopped", l.protocol.String(), l.Addr().String()))
	l.socket = nil
	l.addr.Store(nil)
	return false
}
