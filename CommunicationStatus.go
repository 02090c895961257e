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
	"strings"

	"github.com/Gurux/gxcommon-go"
)

// CommunicationStatus is the outcome of one send, receive or accept.
type CommunicationStatus int

const (
	// CommunicationStatusFailed defines that the operation failed. See GXReply.Error.
	CommunicationStatusFailed CommunicationStatus = iota
	// CommunicationStatusConnectionTimeout defines that the connection was not established.
	// Only valid for TCP.
	CommunicationStatusConnectionTimeout
	// CommunicationStatusReadTimeout defines that nothing was received within the read timeout.
	CommunicationStatusReadTimeout
	// CommunicationStatusSent defines that data was sent and no reply was waited.
	CommunicationStatusSent
	// CommunicationStatusReplyReceived defines that data was sent and a reply received.
	CommunicationStatusReplyReceived
)

// CommunicationStatusParse converts the given string into a CommunicationStatus value.
//
// It returns the corresponding CommunicationStatus constant if the string matches
// a known status name, or an error if the input is invalid.
func CommunicationStatusParse(value string) (CommunicationStatus, error) {
	var ret CommunicationStatus
	var err error
	switch strings.ToUpper(value) {
	case "FAILED":
		ret = CommunicationStatusFailed
	case "CONNECTIONTIMEOUT":
		ret = CommunicationStatusConnectionTimeout
	case "READTIMEOUT":
		ret = CommunicationStatusReadTimeout
	case "SENT":
		ret = CommunicationStatusSent
	case "REPLYRECEIVED":
		ret = CommunicationStatusReplyReceived
	default:
		err = fmt.Errorf("%w: %q", gxcommon.ErrUnknownEnum, value)
	}
	return ret, err
}

// String returns the canonical name of the communication status.
// It satisfies fmt.Stringer.
func (g CommunicationStatus) String() string {
	var ret string
	switch g {
	case CommunicationStatusFailed:
		ret = "Failed"
	case CommunicationStatusConnectionTimeout:
		ret = "ConnectionTimeout"
	case CommunicationStatusReadTimeout:
		ret = "ReadTimeout"
	case CommunicationStatusSent:
		ret = "Sent"
	case CommunicationStatusReplyReceived:
		ret = "ReplyReceived"
	}
	return ret
}
