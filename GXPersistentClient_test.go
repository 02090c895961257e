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
	"io"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Gurux/gxcommon-go"
)

// states counts media state events.
type states struct {
	mu     sync.Mutex
	counts map[gxcommon.MediaState]int
}

func (s *states) handler(sender any, e gxcommon.MediaStateEventArgs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts == nil {
		s.counts = map[gxcommon.MediaState]int{}
	}
	s.counts[e.State()]++
}

func (s *states) count(state gxcommon.MediaState) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[state]
}

func newClient(t *testing.T, port int) *GXPersistentClient {
	t.Helper()
	c := NewGXPersistentClient("127.0.0.1", port)
	if err := c.SetRetryInterval(50); err != nil {
		t.Fatalf("SetRetryInterval: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestConnect(t *testing.T) {
	srv := newTCPServer(t)
	c := newClient(t, srv.port())
	var st states
	c.SetOnMediaStateChange(st.handler)
	if c.State() != ConnectionStateDisconnected {
		t.Fatalf("State = %s", c.State())
	}
	if !c.Connect() {
		t.Fatalf("Connect failed")
	}
	srv.accept(t)
	if !c.IsConnected() || c.State() != ConnectionStateConnected {
		t.Fatalf("State = %s, want Connected", c.State())
	}
	if !c.Connect() {
		t.Fatalf("second Connect returned false")
	}
	if n := st.count(gxcommon.MediaStateOpen); n != 1 {
		t.Errorf("Open notifications = %d, want 1", n)
	}
	select {
	case <-srv.conns:
		t.Errorf("second connection opened")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestConnectInvalidAddress(t *testing.T) {
	c := NewGXPersistentClient("not-an-ip", 4059)
	defer c.Close()
	var failure error
	c.SetOnError(func(sender any, err error) { failure = err })
	c.SetAutoRetry(true)
	if c.Connect() {
		t.Fatalf("Connect succeeded")
	}
	if !errors.Is(failure, ErrInvalidAddress) {
		t.Errorf("error = %v, want ErrInvalidAddress", failure)
	}
	if c.IsRetrying() {
		t.Errorf("retrying an invalid address")
	}
}

func TestSendAndReceive(t *testing.T) {
	srv := newTCPServer(t)
	c := newClient(t, srv.port())
	r := newReplies()
	c.SetOnReceived(r.handler)
	var sink logSink
	c.SetOnLog(sink.log)
	if c.Send(command) {
		t.Fatalf("Send succeeded before Connect")
	}
	if !c.Connect() {
		t.Fatalf("Connect failed")
	}
	go echo(srv.accept(t))
	if !c.Send(command) {
		t.Fatalf("Send failed")
	}
	reply := r.next(t)
	if reply.Status != CommunicationStatusReplyReceived || !bytes.Equal(reply.RawBytes, command) {
		t.Fatalf("reply = %v", reply)
	}
	if reply.SenderIP != "127.0.0.1" || reply.SenderPort != srv.port() {
		t.Errorf("sender = %s", reply.Sender())
	}
	if !waitFor(time.Second, func() bool { return len(sink.get()) == 2 }) {
		t.Errorf("log = %q", sink.get())
	}
	if c.GetBytesSent() != uint64(len(command)) || c.GetBytesReceived() != uint64(len(command)) {
		t.Errorf("counters = %d/%d", c.GetBytesSent(), c.GetBytesReceived())
	}
	if c.Send(nil) {
		t.Errorf("Send(nil) succeeded")
	}
}

func TestConcurrentSendsDoNotInterleave(t *testing.T) {
	srv := newTCPServer(t)
	c := newClient(t, srv.port())
	if !c.Connect() {
		t.Fatalf("Connect failed")
	}
	conn := srv.accept(t)
	const senders, chunk = 8, 16
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if !c.Send(bytes.Repeat([]byte{byte('a' + i)}, chunk)) {
				t.Errorf("Send %d failed", i)
			}
		}(i)
	}
	wg.Wait()
	buf := make([]byte, senders*chunk)
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	if _, err := io.ReadFull(conn, buf); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	for pos := 0; pos < len(buf); pos += chunk {
		block := buf[pos : pos+chunk]
		if !bytes.Equal(block, bytes.Repeat(block[:1], chunk)) {
			t.Fatalf("interleaved write at %d: %q", pos, block)
		}
	}
}

func TestEopFraming(t *testing.T) {
	srv := newTCPServer(t)
	c := newClient(t, srv.port())
	if err := c.SetEop("\n"); err != nil {
		t.Fatalf("SetEop: %v", err)
	}
	if !c.IsUsingEop() {
		t.Fatalf("IsUsingEop = false")
	}
	r := newReplies()
	c.SetOnReceived(r.handler)
	if !c.Connect() {
		t.Fatalf("Connect failed")
	}
	conn := srv.accept(t)
	if _, err := conn.Write([]byte("ab")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if _, err := conn.Write([]byte("c\nde\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	for _, want := range []string{"abc\n", "de\n"} {
		if got := string(r.next(t).RawBytes); got != want {
			t.Errorf("frame = %q, want %q", got, want)
		}
	}
	c.RemoveEop()
	if c.IsUsingEop() {
		t.Errorf("IsUsingEop = true after RemoveEop")
	}
}

func TestPeerCloseReconnects(t *testing.T) {
	srv := newTCPServer(t)
	c := newClient(t, srv.port())
	c.SetAutoRetry(true)
	var st states
	c.SetOnMediaStateChange(st.handler)
	if !c.Connect() {
		t.Fatalf("Connect failed")
	}
	first := srv.accept(t)
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !waitFor(time.Second, func() bool { return st.count(gxcommon.MediaStateClosed) >= 1 }) {
		t.Fatalf("peer close was not detected")
	}
	srv.accept(t)
	if !waitFor(2*time.Second, c.IsConnected) {
		t.Fatalf("client did not reconnect")
	}
	if !waitFor(time.Second, func() bool { return !c.IsRetrying() }) {
		t.Errorf("retry loop still running")
	}
	if n := st.count(gxcommon.MediaStateOpen); n != 2 {
		t.Errorf("Open notifications = %d, want 2", n)
	}
}

func TestPeerCloseWithoutAutoRetry(t *testing.T) {
	srv := newTCPServer(t)
	c := newClient(t, srv.port())
	if !c.Connect() {
		t.Fatalf("Connect failed")
	}
	if err := srv.accept(t).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !waitFor(time.Second, func() bool { return !c.IsConnected() }) {
		t.Fatalf("peer close was not detected")
	}
	if c.IsRetrying() {
		t.Errorf("IsRetrying = true without auto retry")
	}
	select {
	case <-srv.conns:
		t.Errorf("client reconnected without auto retry")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestConnectRetriesUntilServerIsUp(t *testing.T) {
	port := freePort(t)
	c := newClient(t, port)
	c.SetAutoRetry(true)
	if c.Connect() {
		t.Fatalf("Connect succeeded without server")
	}
	if !c.IsRetrying() {
		t.Fatalf("IsRetrying = false")
	}
	// Repeated connects do not start another retry loop.
	c.Connect()
	ln, err := net.Listen("tcp4", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()
	accepted := make(chan net.Conn, 4)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			accepted <- conn
		}
	}()
	if !waitFor(3*time.Second, c.IsConnected) {
		t.Fatalf("client did not connect")
	}
	select {
	case conn := <-accepted:
		defer conn.Close()
	case <-time.After(time.Second):
		t.Fatalf("no connection accepted")
	}
	time.Sleep(200 * time.Millisecond)
	if n := len(accepted); n != 0 {
		t.Errorf("%d extra connections", n)
	}
}

func TestDisconnectIsNotRetried(t *testing.T) {
	srv := newTCPServer(t)
	c := newClient(t, srv.port())
	c.SetAutoRetry(true)
	var st states
	c.SetOnMediaStateChange(st.handler)
	if !c.Connect() {
		t.Fatalf("Connect failed")
	}
	srv.accept(t)
	if c.Disconnect() {
		t.Fatalf("Disconnect returned true")
	}
	if n := st.count(gxcommon.MediaStateClosing); n != 1 {
		t.Errorf("Closing notifications = %d, want 1", n)
	}
	if c.Disconnect() {
		t.Fatalf("second Disconnect returned true")
	}
	if n := st.count(gxcommon.MediaStateClosing); n != 1 {
		t.Errorf("Closing notifications = %d after second Disconnect, want 1", n)
	}
	if n := st.count(gxcommon.MediaStateClosed); n != 2 {
		t.Errorf("Closed notifications = %d, want 2", n)
	}
	select {
	case <-srv.conns:
		t.Errorf("client reconnected after Disconnect")
	case <-time.After(200 * time.Millisecond):
	}
	if c.Send(command) {
		t.Errorf("Send succeeded after Disconnect")
	}
	// Connection object can be reused.
	if !c.Connect() {
		t.Fatalf("reconnect failed")
	}
	srv.accept(t)
}

func TestDisconnectWithoutConnection(t *testing.T) {
	c := newClient(t, freePort(t))
	var st states
	c.SetOnMediaStateChange(st.handler)
	if c.Disconnect() {
		t.Fatalf("Disconnect returned true")
	}
	if n := st.count(gxcommon.MediaStateClosed); n != 1 {
		t.Errorf("Closed notifications = %d, want 1", n)
	}
	if c.State() != ConnectionStateDisconnected {
		t.Errorf("State = %s", c.State())
	}
}

func TestGetEopReturnsCopy(t *testing.T) {
	c := newClient(t, 4059)
	if err := c.SetEop("\n"); err != nil {
		t.Fatalf("SetEop: %v", err)
	}
	eop := c.GetEop()
	eop[0] = 'x'
	if got := c.GetEop(); string(got) != "\n" {
		t.Errorf("GetEop = %q after changing the returned slice", got)
	}
}

func TestSetSettingsWhileRetrying(t *testing.T) {
	c := newClient(t, freePort(t))
	c.SetAutoRetry(true)
	if err := c.SetRetryInterval(5); err != nil {
		t.Fatalf("SetRetryInterval: %v", err)
	}
	if c.Connect() {
		t.Fatalf("Connect succeeded without server")
	}
	unused := strconv.Itoa(freePort(t))
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = c.SetSettings("<IP>127.0.0.1</IP><Port>" + unused + "</Port>")
				_ = c.String()
				_ = c.GetSettings()
			}
		}()
	}
	wg.Wait()
	srv := newTCPServer(t)
	if err := c.SetSettings("<Port>" + strconv.Itoa(srv.port()) + "</Port>"); err != nil {
		t.Fatalf("SetSettings: %v", err)
	}
	srv.accept(t)
	if !waitFor(2*time.Second, c.IsConnected) {
		t.Fatalf("client did not connect to the new address")
	}
}

func TestClose(t *testing.T) {
	srv := newTCPServer(t)
	c := NewGXPersistentClient("127.0.0.1", srv.port())
	if !c.Connect() {
		t.Fatalf("Connect failed")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	var failure error
	c.SetOnError(func(sender any, err error) { failure = err })
	if c.Connect() {
		t.Fatalf("Connect succeeded after Close")
	}
	if !errors.Is(failure, ErrMediaClosed) {
		t.Errorf("error = %v, want ErrMediaClosed", failure)
	}
}

func TestPersistentClientSettings(t *testing.T) {
	c := NewGXPersistentClient("192.168.10.146", 4059)
	defer c.Close()
	c.SetAutoRetry(true)
	_ = c.SetEop([]byte{0x0D, 0x0A})
	_ = c.SetConnectTimeout(500)
	_ = c.SetRetryInterval(2000)
	other := NewGXPersistentClient("", 0)
	defer other.Close()
	if err := other.SetSettings(c.GetSettings()); err != nil {
		t.Fatalf("SetSettings: %v", err)
	}
	if other.GetSettings() != c.GetSettings() {
		t.Errorf("settings = %q, want %q", other.GetSettings(), c.GetSettings())
	}
	if err := other.SetSettings("<Eop>zz</Eop>"); err == nil {
		t.Errorf("invalid Eop accepted")
	}
	if err := other.SetRetryInterval(0); err == nil {
		t.Errorf("zero retry interval accepted")
	}
}
