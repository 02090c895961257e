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
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gurux/gxcommon-go"
)

const (
	// Default connect wait. Failures are handed to the retry loop quickly.
	defaultConnectTimeout = 200 * time.Millisecond
	defaultRetryInterval  = time.Second
	// Reader wakes up this often to check if the session is stopped.
	pollInterval = time.Second
	// sendQueueSize is the amount of pending writes per connection.
	sendQueueSize = 64
	// maxPendingFrame is the amount of buffered bytes without end of packet
	// after which the buffer is delivered as it is.
	maxPendingFrame = 64 * 1024
)

// session is one established TCP connection and its reader and writer.
type session struct {
	conn  net.Conn
	queue chan []byte
	stop  chan struct{}
	once  sync.Once
}

func newSession(c net.Conn) *session {
	return &session{conn: c, queue: make(chan []byte, sendQueueSize), stop: make(chan struct{})}
}

func (s *session) close() error {
	var err error
	s.once.Do(func() {
		close(s.stop)
		// Make sure reader goroutine is not blocked on read.
		_ = s.conn.SetReadDeadline(time.Now())
		err = s.conn.Close()
	})
	return err
}

// GXPersistentClient is a long lived TCP client. Data received from the server
// is delivered through the OnReceived handler. When the connection is lost
// without Disconnect being called, and auto retry is enabled, the client
// reconnects in the background until it succeeds.
type GXPersistentClient struct {
	events
	// ServerIP and Port are the address of the server. Set them before the
	// client is shared between goroutines. Use SetSettings to change them
	// while the client is in use.
	ServerIP string
	Port     int

	connectTimeout atomic.Int64
	sendTimeout    atomic.Int64
	retryInterval  atomic.Int64
	autoRetry      atomic.Bool

	state    atomic.Int32
	retrying atomic.Bool
	// halted is set by Disconnect and Close so that retries stop.
	halted atomic.Bool

	smu     sync.RWMutex
	cur     *session
	eop     []byte
	onState MediaStateHandler

	wg        sync.WaitGroup
	done      chan struct{}
	closeOnce sync.Once
}

// NewGXPersistentClient creates a persistent TCP client for the given server.
func NewGXPersistentClient(serverIP string, port int) *GXPersistentClient {
	g := &GXPersistentClient{ServerIP: serverIP, Port: port, done: make(chan struct{})}
	g.connectTimeout.Store(int64(defaultConnectTimeout))
	g.sendTimeout.Store(int64(defaultTimeout * time.Millisecond))
	g.retryInterval.Store(int64(defaultRetryInterval))
	g.init(g)
	return g
}

// String implements fmt.Stringer.
func (g *GXPersistentClient) String() string {
	ip, port := g.server()
	return fmt.Sprintf("%s:%d", ip, port)
}

// server returns the server address.
func (g *GXPersistentClient) server() (string, int) {
	g.smu.RLock()
	defer g.smu.RUnlock()
	return g.ServerIP, g.Port
}

// Validate checks the server address.
func (g *GXPersistentClient) Validate() error {
	return validServer(g.server())
}

func validServer(ip string, port int) error {
	if !isIPv4(ip) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, ip)
	}
	return validPort(port)
}

// IsConnected returns true when the connection is established.
func (g *GXPersistentClient) IsConnected() bool {
	return g.State() == ConnectionStateConnected
}

// IsRetrying returns true while the retry loop is running.
func (g *GXPersistentClient) IsRetrying() bool {
	return g.retrying.Load()
}

// State returns the connection state.
func (g *GXPersistentClient) State() ConnectionState {
	return ConnectionState(g.state.Load())
}

// GetAutoRetry returns true if a lost connection is reconnected automatically.
func (g *GXPersistentClient) GetAutoRetry() bool {
	return g.autoRetry.Load()
}

// SetAutoRetry defines if a lost connection is reconnected automatically.
func (g *GXPersistentClient) SetAutoRetry(value bool) {
	g.autoRetry.Store(value)
}

// GetConnectTimeout returns the connect timeout in milliseconds.
func (g *GXPersistentClient) GetConnectTimeout() uint32 {
	return uint32(time.Duration(g.connectTimeout.Load()) / time.Millisecond)
}

// SetConnectTimeout sets the connect timeout in milliseconds.
func (g *GXPersistentClient) SetConnectTimeout(value uint32) error {
	g.connectTimeout.Store(int64(time.Duration(value) * time.Millisecond))
	return nil
}

// GetTimeout returns the write timeout in milliseconds.
func (g *GXPersistentClient) GetTimeout() uint32 {
	return uint32(time.Duration(g.sendTimeout.Load()) / time.Millisecond)
}

// SetTimeout sets the write timeout in milliseconds.
func (g *GXPersistentClient) SetTimeout(value uint32) error {
	g.sendTimeout.Store(int64(time.Duration(value) * time.Millisecond))
	return nil
}

// GetRetryInterval returns the wait between reconnect attempts in milliseconds.
func (g *GXPersistentClient) GetRetryInterval() uint32 {
	return uint32(time.Duration(g.retryInterval.Load()) / time.Millisecond)
}

// SetRetryInterval sets the wait between reconnect attempts in milliseconds.
func (g *GXPersistentClient) SetRetryInterval(value uint32) error {
	if value == 0 {
		return fmt.Errorf("retry interval must be greater than zero")
	}
	g.retryInterval.Store(int64(time.Duration(value) * time.Millisecond))
	return nil
}

// SetEop sets the end of packet marker. It can be a byte, a string or a byte slice.
// Received bytes are buffered until the marker is seen and each frame,
// marker included, is delivered as one reply.
func (g *GXPersistentClient) SetEop(eop any) error {
	var tmp []byte
	if eop != nil {
		var err error
		if tmp, err = toPayload(eop); err != nil {
			return err
		}
		tmp = bytes.Clone(tmp)
	}
	g.smu.Lock()
	g.eop = tmp
	g.smu.Unlock()
	return nil
}

// GetEop returns a copy of the end of packet marker or nil.
func (g *GXPersistentClient) GetEop() []byte {
	return bytes.Clone(g.marker())
}

// marker returns the end of packet marker. The slice is never modified.
func (g *GXPersistentClient) marker() []byte {
	g.smu.RLock()
	defer g.smu.RUnlock()
	return g.eop
}

// RemoveEop removes the end of packet marker. Each read is delivered as it is.
func (g *GXPersistentClient) RemoveEop() {
	g.smu.Lock()
	g.eop = nil
	g.smu.Unlock()
}

// IsUsingEop returns true if the end of packet marker is set.
func (g *GXPersistentClient) IsUsingEop() bool {
	return len(g.marker()) != 0
}

// SetOnMediaStateChange sets the handler that is called when the connection state changes.
func (g *GXPersistentClient) SetOnMediaStateChange(value MediaStateHandler) {
	g.smu.Lock()
	g.onState = value
	g.smu.Unlock()
}

func (g *GXPersistentClient) statef(state gxcommon.MediaState) {
	g.smu.RLock()
	cb := g.onState
	g.smu.RUnlock()
	if cb != nil {
		cb(g, *gxcommon.NewMediaStateEventArgs(state))
	}
}

// GetSettings returns the configuration as an XML fragment.
func (g *GXPersistentClient) GetSettings() string {
	var b strings.Builder
	ip, port := g.server()
	if ip != "" {
		fmt.Fprintf(&b, "<IP>%s</IP>\n", xmlEscape(ip))
	}
	if port != 0 {
		fmt.Fprintf(&b, "<Port>%d</Port>\n", port)
	}
	if g.GetAutoRetry() {
		b.WriteString("<AutoRetry>1</AutoRetry>\n")
	}
	if eop := g.marker(); len(eop) != 0 {
		fmt.Fprintf(&b, "<Eop>%s</Eop>\n", hex.EncodeToString(eop))
	}
	if v := g.GetConnectTimeout(); v != uint32(defaultConnectTimeout/time.Millisecond) {
		fmt.Fprintf(&b, "<ConnectTimeout>%d</ConnectTimeout>\n", v)
	}
	if v := g.GetRetryInterval(); v != uint32(defaultRetryInterval/time.Millisecond) {
		fmt.Fprintf(&b, "<RetryInterval>%d</RetryInterval>\n", v)
	}
	return b.String()
}

// SetSettings reads the configuration from an XML fragment.
// A new address is used on the next connect.
func (g *GXPersistentClient) SetSettings(value string) error {
	var ret error
	err := parseSettings(value, func(name, v string) {
		switch name {
		case "IP":
			g.smu.Lock()
			g.ServerIP = v
			g.smu.Unlock()
		case "Port":
			if n, err := strconv.Atoi(v); err == nil {
				g.smu.Lock()
				g.Port = n
				g.smu.Unlock()
			}
		case "AutoRetry":
			g.SetAutoRetry(v == "1")
		case "Eop":
			tmp, err := hex.DecodeString(v)
			if err != nil {
				ret = fmt.Errorf("invalid Eop %q: %w", v, err)
				return
			}
			_ = g.SetEop(tmp)
		case "ConnectTimeout":
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				_ = g.SetConnectTimeout(uint32(n))
			}
		case "RetryInterval":
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				_ = g.SetRetryInterval(uint32(n))
			}
		}
	})
	if err != nil {
		return err
	}
	return ret
}

// Connect opens the connection to the server. It returns immediately if the
// client is already connected. If the connection fails and auto retry is
// enabled, reconnecting continues in the background.
func (g *GXPersistentClient) Connect() bool {
	if g.isClosed() {
		g.errorf(ErrMediaClosed)
		return false
	}
	g.halted.Store(false)
	return g.connect()
}

func (g *GXPersistentClient) connect() bool {
	ip, port := g.server()
	if !g.state.CompareAndSwap(int32(ConnectionStateDisconnected), int32(ConnectionStateConnecting)) {
		return g.IsConnected()
	}
	if err := validServer(ip, port); err != nil {
		g.state.Store(int32(ConnectionStateDisconnected))
		g.errorf(err)
		return false
	}
	timeout := time.Duration(g.connectTimeout.Load())
	g.statef(gxcommon.MediaStateOpening)
	g.trace(gxcommon.TraceTypesInfo, g.sprintf("msg.connecting_to", NetworkTypeTCP.String(), ip, port, timeout.Milliseconds()))
	c, err := net.DialTimeout(NetworkTypeTCP.network(), net.JoinHostPort(ip, strconv.Itoa(port)), timeout)
	if err != nil {
		g.state.Store(int32(ConnectionStateDisconnected))
		g.trace(gxcommon.TraceTypesError, g.sprintf("msg.connect_failed", ip, port, err))
		g.errorf(err)
		g.statef(gxcommon.MediaStateClosed)
		g.retry()
		return false
	}
	s := newSession(c)
	g.smu.Lock()
	if g.halted.Load() || g.isClosed() {
		// Disconnect was called while connecting.
		g.state.Store(int32(ConnectionStateDisconnected))
		g.smu.Unlock()
		_ = s.close()
		g.statef(gxcommon.MediaStateClosed)
		return false
	}
	g.cur = s
	g.state.Store(int32(ConnectionStateConnected))
	g.wg.Add(2)
	g.smu.Unlock()
	go g.reader(s)
	go g.writer(s)
	g.trace(gxcommon.TraceTypesInfo, g.sprintf("msg.connected_to", ip, port))
	g.statef(gxcommon.MediaStateOpen)
	return true
}

// retry starts the retry loop unless it is already running.
func (g *GXPersistentClient) retry() {
	ip, port := g.server()
	if !g.autoRetry.Load() || g.halted.Load() {
		return
	}
	g.smu.Lock()
	if g.isClosed() || !g.retrying.CompareAndSwap(false, true) {
		g.smu.Unlock()
		return
	}
	g.wg.Add(1)
	g.smu.Unlock()
	g.trace(gxcommon.TraceTypesInfo, g.sprintf("msg.retrying", ip, port, g.GetRetryInterval()))
	go g.retryLoop()
}

// isClosed returns true after Close.
func (g *GXPersistentClient) isClosed() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

func (g *GXPersistentClient) retryLoop() {
	defer g.wg.Done()
	for {
		t := time.NewTimer(time.Duration(g.retryInterval.Load()))
		select {
		case <-g.done:
			t.Stop()
			g.retrying.Store(false)
			return
		case <-t.C:
		}
		if g.halted.Load() || !g.autoRetry.Load() {
			g.retrying.Store(false)
			return
		}
		if g.connect() {
			break
		}
	}
	g.retrying.Store(false)
	// A loss between the connect and the flag reset had its retry ignored.
	if g.State() == ConnectionStateDisconnected {
		g.retry()
	}
}

// detach removes s from the client if it is the active session.
func (g *GXPersistentClient) detach(s *session) bool {
	g.smu.Lock()
	defer g.smu.Unlock()
	if s == nil || g.cur != s {
		return false
	}
	g.cur = nil
	g.state.Store(int32(ConnectionStateDisconnected))
	return true
}

// lost handles a connection that was closed without Disconnect.
func (g *GXPersistentClient) lost(s *session, err error) {
	ip, port := g.server()
	if !g.detach(s) {
		return
	}
	_ = s.close()
	if errors.Is(err, io.EOF) {
		g.trace(gxcommon.TraceTypesInfo, g.sprintf("msg.connection_lost", ip, port))
	} else {
		g.trace(gxcommon.TraceTypesError, g.sprintf("msg.connection_failed", err))
		g.errorf(err)
	}
	g.statef(gxcommon.MediaStateClosed)
	g.retry()
}

// Disconnect closes the connection. Disconnect is not retried.
// The Closed notification is raised also when there was no connection.
// It returns the connected state, which is always false.
func (g *GXPersistentClient) Disconnect() bool {
	ip, port := g.server()
	g.halted.Store(true)
	g.smu.RLock()
	s := g.cur
	g.smu.RUnlock()
	if g.detach(s) {
		g.trace(gxcommon.TraceTypesInfo, g.sprintf("msg.closing_connection", ip, port))
		g.statef(gxcommon.MediaStateClosing)
		if err := s.close(); err != nil {
			g.errorf(err)
		}
		g.trace(gxcommon.TraceTypesInfo, g.sprintf("msg.connection_closed", ip, port))
	}
	g.statef(gxcommon.MediaStateClosed)
	return g.IsConnected()
}

// Close disconnects, stops the retry loop and waits until all background
// goroutines have ended. The client cannot be connected again.
// Close must not be called from an event handler.
func (g *GXPersistentClient) Close() error {
	g.closeOnce.Do(func() {
		// Goroutines are added only under smu while done is open.
		g.smu.Lock()
		close(g.done)
		g.smu.Unlock()
	})
	g.Disconnect()
	g.wg.Wait()
	return nil
}

// Send queues the data for writing and returns immediately. It returns false
// if the client is not connected or the send queue is full. Replies are
// delivered through the OnReceived handler.
func (g *GXPersistentClient) Send(data any) bool {
	ip, port := g.server()
	tmp, err := toPayload(data)
	if err != nil {
		g.errorf(err)
		return false
	}
	g.smu.RLock()
	s := g.cur
	g.smu.RUnlock()
	if s == nil || !g.IsConnected() {
		return false
	}
	select {
	case <-s.stop:
		return false
	default:
	}
	select {
	case s.queue <- bytes.Clone(tmp):
		return true
	default:
		g.trace(gxcommon.TraceTypesError, g.sprintf("msg.queue_full", ip, port))
		g.errorf(ErrQueueFull)
		return false
	}
}

// writer is the only goroutine that writes to the connection.
func (g *GXPersistentClient) writer(s *session) {
	defer g.wg.Done()
	for {
		select {
		case <-s.stop:
			return
		case data := <-s.queue:
			if timeout := time.Duration(g.sendTimeout.Load()); timeout > 0 {
				_ = s.conn.SetWriteDeadline(time.Now().Add(timeout))
			}
			if _, err := s.conn.Write(data); err != nil {
				g.lost(s, err)
				return
			}
			g.bytesSent.Add(uint64(len(data)))
			g.sent(data)
		}
	}
}

func (g *GXPersistentClient) reader(s *session) {
	defer g.wg.Done()
	//Ethernet maximum frame size is 1518 bytes.
	buf := make([]byte, 1518)
	var pending []byte
	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(pollInterval))
		n, err := s.conn.Read(buf)
		if n > 0 {
			g.bytesReceived.Add(uint64(n))
			pending = g.handleData(pending, buf[:n])
		}
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				select {
				case <-s.stop:
					return
				default:
					continue
				}
			}
			select {
			case <-s.stop:
				return
			default:
			}
			// Remote end closed the connection or the socket failed.
			g.lost(s, err)
			return
		}
		select {
		case <-s.stop:
			return
		default:
		}
	}
}

// handleData delivers the received bytes. Without end of packet marker every
// read is one reply. With the marker the bytes are buffered until the marker
// is found and the remainder is returned.
func (g *GXPersistentClient) handleData(pending []byte, data []byte) []byte {
	eop := g.marker()
	if len(eop) == 0 {
		g.deliver(bytes.Clone(data))
		return nil
	}
	pending = append(pending, data...)
	for {
		pos := bytes.Index(pending, eop)
		if pos == -1 {
			break
		}
		end := pos + len(eop)
		g.deliver(bytes.Clone(pending[:end]))
		pending = pending[end:]
	}
	if len(pending) > maxPendingFrame {
		g.deliver(bytes.Clone(pending))
		return nil
	}
	if len(pending) == 0 {
		return nil
	}
	return pending
}

func (g *GXPersistentClient) deliver(data []byte) {
	ip, port := g.server()
	reply := newReply(ip, port)
	reply.setReply(data)
	g.received(data)
	g.receivef(reply)
}
