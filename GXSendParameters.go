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

import "time"

// GXSendParameters holds the options of one Transceiver call.
// Timeouts are in milliseconds.
type GXSendParameters struct {
	// WaitForReply defines if a single reply is waited after sending.
	WaitForReply bool
	// SendTimeout is the write timeout.
	SendTimeout int
	// ReadTimeout is the time to wait for the first byte of the reply.
	ReadTimeout int
	// ConnectTimeout is the time to wait for the TCP connection. Ignored by UDP.
	ConnectTimeout int
	// OnSent is called after the data is written.
	OnSent func(sent bool)
}

// NewSendParameters returns parameters that wait for a reply with 1000 ms timeouts.
func NewSendParameters() *GXSendParameters {
	return &GXSendParameters{
		WaitForReply:   true,
		SendTimeout:    defaultTimeout,
		ReadTimeout:    defaultTimeout,
		ConnectTimeout: defaultTimeout,
	}
}

const defaultTimeout = 1000

func milliseconds(value int) time.Duration {
	return time.Duration(value) * time.Millisecond
}

// timeoutOrDefault returns the timeout, or defaultTimeout if value is not positive.
func timeoutOrDefault(value int) time.Duration {
	if value <= 0 {
		value = defaultTimeout
	}
	return milliseconds(value)
}
