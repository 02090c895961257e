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
	"sync"
	"sync/atomic"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReceivedHandler is called when a reply or inbound data is received.
type ReceivedHandler func(sender any, reply *GXReply)

// ErrorHandler is called when a socket operation fails outside the reply status.
type ErrorHandler func(sender any, err error)

// TraceHandler is called when the media is sending or receiving data,
// or when the state of the media changes.
type TraceHandler func(sender any, e gxcommon.TraceEventArgs)

// MediaStateHandler is called when the connected state of a persistent client flips.
type MediaStateHandler func(sender any, e gxcommon.MediaStateEventArgs)

// LogHandler receives pre-formatted "Tx: " and "Rx: " hex dumps.
type LogHandler func(message string)

// events holds the callbacks, tracing settings and byte counters shared by all media.
type events struct {
	// owner is passed as the sender to the callbacks.
	owner any

	mu sync.RWMutex
	// The trace level specifies which types of trace messages are emitted.
	traceLevel gxcommon.TraceLevel

	onReceive ReceivedHandler
	onErr     ErrorHandler
	onTrace   TraceHandler
	onLog     LogHandler

	bytesSent     atomic.Uint64
	bytesReceived atomic.Uint64

	// Printer for localized messages.
	p *message.Printer
}

func (e *events) init(owner any) {
	e.owner = owner
	e.Localize(language.AmericanEnglish)
}

// Localize messages for the specified language.
// No errors is returned if language is not supported.
func (e *events) Localize(language language.Tag) {
	e.mu.Lock()
	e.p = message.NewPrinter(language)
	e.mu.Unlock()
}

func (e *events) sprintf(key string, a ...any) string {
	e.mu.RLock()
	p := e.p
	e.mu.RUnlock()
	return p.Sprintf(key, a...)
}

// GetTrace returns the trace level.
func (e *events) GetTrace() gxcommon.TraceLevel {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.traceLevel
}

// SetTrace sets the trace level.
func (e *events) SetTrace(traceLevel gxcommon.TraceLevel) error {
	e.mu.Lock()
	e.traceLevel = traceLevel
	e.mu.Unlock()
	return nil
}

// SetOnReceived sets the handler that is called for each received reply.
func (e *events) SetOnReceived(value ReceivedHandler) {
	e.mu.Lock()
	e.onReceive = value
	e.mu.Unlock()
}

// SetOnError sets the handler that is called when a socket operation fails.
func (e *events) SetOnError(value ErrorHandler) {
	e.mu.Lock()
	e.onErr = value
	e.mu.Unlock()
}

// SetOnTrace sets the trace handler.
func (e *events) SetOnTrace(value TraceHandler) {
	e.mu.Lock()
	e.onTrace = value
	e.mu.Unlock()
}

// SetOnLog sets the log sink. Nil disables logging.
func (e *events) SetOnLog(value LogHandler) {
	e.mu.Lock()
	e.onLog = value
	e.mu.Unlock()
}

// GetBytesSent returns the amount of bytes sent.
func (e *events) GetBytesSent() uint64 {
	return e.bytesSent.Load()
}

// GetBytesReceived returns the amount of bytes received.
func (e *events) GetBytesReceived() uint64 {
	return e.bytesReceived.Load()
}

// ResetByteCounters resets the sent and received byte counters.
func (e *events) ResetByteCounters() {
	e.bytesSent.Store(0)
	e.bytesReceived.Store(0)
}

func (e *events) receivef(reply *GXReply) {
	e.mu.RLock()
	cb := e.onReceive
	e.mu.RUnlock()
	if cb != nil {
		cb(e.owner, reply)
	}
}

func (e *events) errorf(err error) {
	e.mu.RLock()
	cb := e.onErr
	e.mu.RUnlock()
	if cb != nil {
		cb(e.owner, err)
	}
}

func (e *events) tracef(traceType gxcommon.TraceTypes, fmtStr string, a ...any) {
	e.trace(traceType, fmt.Sprintf(fmtStr, a...))
}

func (e *events) trace(traceType gxcommon.TraceTypes, message string) {
	e.mu.RLock()
	trace := !(int(e.traceLevel) < int(traceType))
	cb := e.onTrace
	e.mu.RUnlock()
	if cb != nil && trace {
		p := gxcommon.NewTraceEventArgs(traceType, message, "")
		cb(e.owner, *p)
	}
}

// sent logs and traces transmitted bytes.
func (e *events) sent(data []byte) {
	e.dump(gxcommon.TraceTypesSent, "Tx: ", data)
}

// received logs and traces received bytes.
func (e *events) received(data []byte) {
	e.dump(gxcommon.TraceTypesReceived, "Rx: ", data)
}

func (e *events) dump(traceType gxcommon.TraceTypes, prefix string, data []byte) {
	e.mu.RLock()
	log := e.onLog
	e.mu.RUnlock()
	str, err := gxcommon.ToString(data)
	if err != nil {
		str = fmt.Sprintf("% X", data)
	}
	if log != nil {
		log(prefix + str)
	}
	e.trace(traceType, prefix+str)
}
