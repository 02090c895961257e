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
	"net"
	"strconv"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/net/ipv4"
)

// GXUdpListener receives UDP datagrams. Each datagram is delivered as one reply.
type GXUdpListener struct {
	listener
}

// NewGXUdpListener creates a UDP listener.
func NewGXUdpListener() *GXUdpListener {
	l := &GXUdpListener{}
	l.protocol = NetworkTypeUDP
	l.init(l)
	return l
}

// Start binds the port on all IPv4 interfaces and starts the receive loop.
// Calling Start while listening does nothing.
func (l *GXUdpListener) Start(port int) bool {
	l.lmu.Lock()
	defer l.lmu.Unlock()
	if l.listening.Load() {
		return true
	}
	lc := l.listenConfig()
	c, err := lc.ListenPacket(context.Background(), l.protocol.network(), ":"+strconv.Itoa(port))
	if err != nil {
		return l.failed(port, err)
	}
	p := ipv4.NewPacketConn(c)
	// Interface index and destination address are not available on every platform.
	if err := p.SetControlMessage(ipv4.FlagInterface|ipv4.FlagDst, true); err != nil {
		l.trace(gxcommon.TraceTypesInfo, l.sprintf("msg.no_control_messages", err))
	}
	l.started(p, c.LocalAddr())
	go l.receive(p)
	return true
}

func (l *GXUdpListener) receive(p *ipv4.PacketConn) {
	buf := make([]byte, maxReplySize)
	for {
		n, cm, src, err := p.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) || !l.IsListening() {
				return
			}
			l.trace(gxcommon.TraceTypesError, l.sprintf("msg.connection_failed", err))
			l.errorf(err)
			continue
		}
		reply := replyFrom(src)
		if cm != nil {
			reply.InterfaceIndex = cm.IfIndex
			if cm.Dst != nil {
				reply.LocalIP = cm.Dst.String()
			}
		}
		data := bytes.Clone(buf[:n])
		l.bytesReceived.Add(uint64(n))
		reply.setReply(data)
		l.received(data)
		l.receivef(reply)
	}
}
