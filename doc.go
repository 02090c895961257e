// Package gxcomm provides the TCP/UDP transport used to talk to simple line
// and frame oriented network devices: request/reply exchanges, a self-healing
// persistent TCP client and inbound TCP/UDP listeners. Every outcome is
// reported as a GXReply or through event handlers.
//
// Features
//
//   - Transceiver: one socket per call, optional single reply wait, bounded
//     connect, send and read timeouts (see GXTransceiver, GXSendParameters).
//   - Persistent client: long lived TCP connection with automatic reconnect,
//     background receive loop and queued sends (see GXPersistentClient).
//   - Listeners: TCP (one reply per accepted connection) and UDP (one reply per
//     datagram), see NewListener.
//   - Framing: optional EOP (End Of Packet) marker on the persistent client.
//   - Tracing: configurable trace level for sent/received/error/info.
//   - Events: Received, Error, Trace, Log and MediaState callbacks.
//   - Localized trace messages (see Localize).
//
// # Transceiver
//
//	t := gxcomm.NewGXTransceiver("192.168.10.146", 59794, 50447)
//	t.SetHostIP("192.168.10.227") // Optional local interface.
//	t.SetOnLog(func(s string) { fmt.Println(s) })
//
//	reply := t.SendTCP([]byte{0xAA, 0x03}, nil)
//	if reply.Status == gxcomm.CommunicationStatusReplyReceived {
//	    // handle reply.RawBytes
//	}
//
//	args := gxcomm.NewSendParameters()
//	args.ReadTimeout = 500
//	reply = t.SendUDP([]byte{0xAA, 0x03}, args)
//
// Network faults never panic or return an error. A refused TCP connection
// leaves Status at CommunicationStatusConnectionTimeout with Error set, and a
// missing reply leaves it at CommunicationStatusReadTimeout.
//
// # Persistent client
//
//	c := gxcomm.NewGXPersistentClient("192.168.10.146", 4059)
//	c.SetAutoRetry(true)
//	c.SetOnReceived(func(sender any, r *gxcomm.GXReply) {
//	    // handle r.RawBytes
//	})
//	c.Connect()
//	defer c.Close()
//	c.Send([]byte("PING\r\n"))
//
// Only a connection lost without Disconnect is reconnected. At most one retry
// loop and one receive loop run per client.
//
// # Listeners
//
//	l, _ := gxcomm.NewListener(gxcomm.NetworkTypeUDP)
//	l.SetOnReceived(func(sender any, r *gxcomm.GXReply) {})
//	if !l.Start(50447) {
//	    // bind failed, see OnError
//	}
//	defer l.Stop()
//
// # Notes
//
// The zero values of the media types are not ready for use; always construct
// them with the New functions. Event handlers are called from background
// goroutines. Long-running work in event handlers should be offloaded to a
// separate goroutine to avoid blocking I/O paths.
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
