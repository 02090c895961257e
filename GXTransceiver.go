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
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Gurux/gxcommon-go"
)

// maxReplySize is the largest single read of a reply.
const maxReplySize = 65535

// GXTransceiver sends one request over TCP or UDP and optionally waits for
// a single reply. Every call opens and closes its own socket.
//
// Set the exported fields before the transceiver is shared between
// goroutines. Use SetSettings to change them while sends are running.
type GXTransceiver struct {
	events
	// IP is the address of the receiver.
	IP string
	// PortTcp is the TCP port of the receiver.
	PortTcp int
	// PortUdp is the UDP port of the receiver.
	PortUdp int

	// cmu guards the address fields and hostIP.
	cmu    sync.RWMutex
	hostIP string
}

// target is the address of one send.
type target struct {
	ip      string
	portTcp int
	portUdp int
	hostIP  string
}

// localIP returns the local interface address or nil.
func (t target) localIP() net.IP {
	if !isIPv4(t.hostIP) {
		return nil
	}
	return net.ParseIP(t.hostIP).To4()
}

func (t target) validate() error {
	if strings.TrimSpace(t.ip) == "" {
		return fmt.Errorf("%w: empty IP", ErrInvalidAddress)
	}
	return nil
}

// NewGXTransceiver creates a transceiver for the given receiver address and ports.
func NewGXTransceiver(ip string, portTcp int, portUdp int) *GXTransceiver {
	g := &GXTransceiver{IP: ip, PortTcp: portTcp, PortUdp: portUdp}
	g.init(g)
	return g
}

func (g *GXTransceiver) target() target {
	g.cmu.RLock()
	defer g.cmu.RUnlock()
	return target{ip: g.IP, portTcp: g.PortTcp, portUdp: g.PortUdp, hostIP: g.hostIP}
}

// String implements fmt.Stringer.
func (g *GXTransceiver) String() string {
	t := g.target()
	return fmt.Sprintf("%s TCP:%d UDP:%d", t.ip, t.portTcp, t.portUdp)
}

// GetHostIP returns the local interface address used for outbound sockets.
func (g *GXTransceiver) GetHostIP() string {
	g.cmu.RLock()
	defer g.cmu.RUnlock()
	return g.hostIP
}

// SetHostIP sets the local interface address used for outbound sockets.
// If value is not a valid IPv4 address the operating system selects the interface.
func (g *GXTransceiver) SetHostIP(value string) {
	g.cmu.Lock()
	g.hostIP = value
	g.cmu.Unlock()
}

// IsUsingSpecificInterface returns true if outbound sockets are bound to HostIP.
func (g *GXTransceiver) IsUsingSpecificInterface() bool {
	return isIPv4(g.GetHostIP())
}

// Validate checks the receiver address.
func (g *GXTransceiver) Validate() error {
	return g.target().validate()
}

func validPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidAddress, port)
	}
	return nil
}

// GetSettings returns the configuration as an XML fragment.
func (g *GXTransceiver) GetSettings() string {
	t := g.target()
	var b strings.Builder
	if t.ip != "" {
		fmt.Fprintf(&b, "<IP>%s</IP>\n", xmlEscape(t.ip))
	}
	if t.portTcp != 0 {
		fmt.Fprintf(&b, "<PortTcp>%d</PortTcp>\n", t.portTcp)
	}
	if t.portUdp != 0 {
		fmt.Fprintf(&b, "<PortUdp>%d</PortUdp>\n", t.portUdp)
	}
	if t.hostIP != "" {
		fmt.Fprintf(&b, "<HostIP>%s</HostIP>\n", xmlEscape(t.hostIP))
	}
	return b.String()
}

// SetSettings reads the configuration from an XML fragment.
// It is safe to call while sends are running.
func (g *GXTransceiver) SetSettings(value string) error {
	g.cmu.Lock()
	defer g.cmu.Unlock()
	return parseSettings(value, func(name, v string) {
		switch name {
		case "IP":
			g.IP = v
		case "PortTcp":
			if n, err := strconv.Atoi(v); err == nil {
				g.PortTcp = n
			}
		case "PortUdp":
			if n, err := strconv.Atoi(v); err == nil {
				g.PortUdp = n
			}
		case "HostIP":
			g.hostIP = v
		}
	})
}

// Send sends the data using the given protocol.
func (g *GXTransceiver) Send(protocol NetworkType, data any, args *GXSendParameters) *GXReply {
	if protocol == NetworkTypeUDP {
		return g.SendUDP(data, args)
	}
	return g.SendTCP(data, args)
}

// SendTCPAsync runs SendTCP on its own goroutine. The reply is delivered on the returned channel.
func (g *GXTransceiver) SendTCPAsync(data any, args *GXSendParameters) <-chan *GXReply {
	ch := make(chan *GXReply, 1)
	go func() {
		ch <- g.SendTCP(data, args)
	}()
	return ch
}

// SendUDPAsync runs SendUDP on its own goroutine. The reply is delivered on the returned channel.
func (g *GXTransceiver) SendUDPAsync(data any, args *GXSendParameters) <-chan *GXReply {
	ch := make(chan *GXReply, 1)
	go func() {
		ch <- g.SendUDP(data, args)
	}()
	return ch
}

// SendTCP opens a new TCP connection, writes the data and, if asked, waits for
// the first reply. Network faults are reported in the returned reply and
// never as a panic or error.
//
// If args is nil NewSendParameters is used.
func (g *GXTransceiver) SendTCP(data any, args *GXSendParameters) *GXReply {
	if args == nil {
		args = NewSendParameters()
	}
	t := g.target()
	reply := newReply(t.ip, t.portTcp)
	tmp, err := toPayload(data)
	if err == nil {
		err = t.validate()
	}
	if err == nil {
		err = validPort(t.portTcp)
	}
	if err != nil {
		reply.fail(err)
		return reply
	}
	d := net.Dialer{Timeout: timeoutOrDefault(args.ConnectTimeout)}
	if ip := t.localIP(); ip != nil {
		d.LocalAddr = &net.TCPAddr{IP: ip}
	}
	g.trace(gxcommon.TraceTypesInfo, g.sprintf("msg.connecting_to", NetworkTypeTCP.String(), t.ip, t.portTcp, timeoutOrDefault(args.ConnectTimeout).Milliseconds()))
	c, err := d.Dial(NetworkTypeTCP.network(), net.JoinHostPort(t.ip, strconv.Itoa(t.portTcp)))
	if err != nil {
		// Status stays ConnectionTimeout.
		reply.Error = err.Error()
		g.trace(gxcommon.TraceTypesError, g.sprintf("msg.connect_failed", t.ip, t.portTcp, err))
		return reply
	}
	defer c.Close()
	if args.SendTimeout > 0 {
		_ = c.SetWriteDeadline(time.Now().Add(milliseconds(args.SendTimeout)))
	}
	if _, err = c.Write(tmp); err != nil {
		reply.fail(err)
		g.trace(gxcommon.TraceTypesError, g.sprintf("msg.connection_failed", err))
		return reply
	}
	reply.Status = CommunicationStatusSent
	g.bytesSent.Add(uint64(len(tmp)))
	g.sent(tmp)
	if args.OnSent != nil {
		args.OnSent(true)
	}
	if args.WaitForReply {
		reply.Status = CommunicationStatusReadTimeout
		g.readReply(c, reply, args.ReadTimeout)
	}
	return reply
}

// readReply waits for the first byte and reads everything that is available
// with it as one reply.
func (g *GXTransceiver) readReply(c net.Conn, reply *GXReply, timeout int) {
	readTimeout := timeoutOrDefault(timeout)
	_ = c.SetReadDeadline(time.Now().Add(readTimeout))
	buf := make([]byte, maxReplySize)
	n, err := c.Read(buf)
	if n > 0 {
		data := bytes.Clone(buf[:n])
		g.bytesReceived.Add(uint64(n))
		reply.setReply(data)
		g.received(data)
		return
	}
	var ne net.Error
	if err != nil && errors.As(err, &ne) && ne.Timeout() {
		g.trace(gxcommon.TraceTypesInfo, g.sprintf("msg.read_timeout", reply.SenderIP, reply.SenderPort, readTimeout.Milliseconds()))
	} else if err != nil {
		g.trace(gxcommon.TraceTypesError, g.sprintf("msg.connection_failed", err))
	}
}

// SendUDP sends the data as one datagram and, if asked, waits for a single
// datagram in reply. The first of reply and read timeout decides the status.
//
// If args is nil NewSendParameters is used.
func (g *GXTransceiver) SendUDP(data any, args *GXSendParameters) *GXReply {
	if args == nil {
		args = NewSendParameters()
	}
	t := g.target()
	reply := newReply(t.ip, t.portUdp)
	tmp, err := toPayload(data)
	if err == nil {
		err = t.validate()
	}
	if err == nil {
		err = validPort(t.portUdp)
	}
	if err != nil {
		reply.fail(err)
		return reply
	}
	raddr, err := net.ResolveUDPAddr(NetworkTypeUDP.network(), net.JoinHostPort(t.ip, strconv.Itoa(t.portUdp)))
	if err != nil {
		reply.fail(err)
		return reply
	}
	c, err := net.ListenUDP(NetworkTypeUDP.network(), &net.UDPAddr{IP: t.localIP()})
	if err != nil {
		reply.fail(err)
		g.trace(gxcommon.TraceTypesError, g.sprintf("msg.connection_failed", err))
		return reply
	}
	defer c.Close()
	if args.SendTimeout > 0 {
		_ = c.SetWriteDeadline(time.Now().Add(milliseconds(args.SendTimeout)))
	}
	if _, err = c.WriteToUDP(tmp, raddr); err != nil {
		reply.fail(err)
		g.trace(gxcommon.TraceTypesError, g.sprintf("msg.connection_failed", err))
		return reply
	}
	reply.Status = CommunicationStatusSent
	g.bytesSent.Add(uint64(len(tmp)))
	g.sent(tmp)
	if args.OnSent != nil {
		args.OnSent(true)
	}
	if !args.WaitForReply {
		return reply
	}
	//It will be changed if data is received.
	reply.Status = CommunicationStatusReadTimeout
	readTimeout := timeoutOrDefault(args.ReadTimeout)
	_ = c.SetReadDeadline(time.Now().Add(readTimeout))
	buf := make([]byte, maxReplySize)
	n, src, err := c.ReadFromUDP(buf)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			g.trace(gxcommon.TraceTypesInfo, g.sprintf("msg.read_timeout", t.ip, t.portUdp, readTimeout.Milliseconds()))
		} else {
			g.trace(gxcommon.TraceTypesError, g.sprintf("msg.connection_failed", err))
		}
		return reply
	}
	rx := bytes.Clone(buf[:n])
	g.bytesReceived.Add(uint64(n))
	reply.SenderIP = src.IP.String()
	reply.SenderPort = src.Port
	reply.setReply(rx)
	g.received(rx)
	return reply
}
