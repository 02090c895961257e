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
	"net"
	"strconv"
)

// GXReply is the result of any outbound or inbound network operation.
//
// RawBytes is set only when Status is CommunicationStatusReplyReceived.
// Error is set when Status is CommunicationStatusFailed, or when a fault
// happened before the status could be decided (for example a refused connect,
// which leaves Status at CommunicationStatusConnectionTimeout).
type GXReply struct {
	// Status is the outcome of the operation.
	Status CommunicationStatus
	// Error describes the fault, if any.
	Error string
	// SenderIP is the address of the peer.
	SenderIP string
	// SenderPort is the port of the peer.
	SenderPort int
	// RawBytes holds the received data.
	RawBytes []byte
	// InterfaceIndex is the index of the local interface the datagram arrived on.
	// Zero when unknown.
	InterfaceIndex int
	// LocalIP is the local destination address of the datagram. Empty when unknown.
	LocalIP string
}

func newReply(ip string, port int) *GXReply {
	return &GXReply{Status: CommunicationStatusConnectionTimeout, SenderIP: ip, SenderPort: port}
}

// replyFrom returns a reply tagged with the address of the peer.
func replyFrom(addr net.Addr) *GXReply {
	switch a := addr.(type) {
	case *net.TCPAddr:
		return newReply(a.IP.String(), a.Port)
	case *net.UDPAddr:
		return newReply(a.IP.String(), a.Port)
	}
	r := newReply("", 0)
	if addr != nil {
		if host, port, err := net.SplitHostPort(addr.String()); err == nil {
			r.SenderIP = host
			r.SenderPort, _ = strconv.Atoi(port)
		}
	}
	return r
}

func (r *GXReply) setReply(data []byte) {
	r.RawBytes = data
	r.Status = CommunicationStatusReplyReceived
}

func (r *GXReply) fail(err error) {
	r.Status = CommunicationStatusFailed
	r.Error = err.Error()
}

// Sender returns the peer address in host:port form.
func (r *GXReply) Sender() string {
	return net.JoinHostPort(r.SenderIP, strconv.Itoa(r.SenderPort))
}

// String implements fmt.Stringer.
func (r *GXReply) String() string {
	if r.Error != "" {
		return fmt.Sprintf("%s %s: %s", r.Status, r.Sender(), r.Error)
	}
	return fmt.Sprintf("%s %s: % X", r.Status, r.Sender(), r.RawBytes)
}
