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
	"errors"
	"testing"

	"github.com/Gurux/gxcommon-go"
)

func TestCommunicationStatusParse(t *testing.T) {
	for _, s := range []CommunicationStatus{
		CommunicationStatusFailed,
		CommunicationStatusConnectionTimeout,
		CommunicationStatusReadTimeout,
		CommunicationStatusSent,
		CommunicationStatusReplyReceived,
	} {
		got, err := CommunicationStatusParse(s.String())
		if err != nil || got != s {
			t.Errorf("CommunicationStatusParse(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := CommunicationStatusParse("readtimeout"); err != nil {
		t.Errorf("parse is case sensitive: %v", err)
	}
	if _, err := CommunicationStatusParse("Lost"); !errors.Is(err, gxcommon.ErrUnknownEnum) {
		t.Errorf("err = %v, want ErrUnknownEnum", err)
	}
}

func TestNetworkTypeParse(t *testing.T) {
	if v, err := NetworkTypeParse("tcp"); err != nil || v != NetworkTypeTCP {
		t.Errorf("NetworkTypeParse(tcp) = %v, %v", v, err)
	}
	if v, err := NetworkTypeParse("UDP"); err != nil || v != NetworkTypeUDP {
		t.Errorf("NetworkTypeParse(UDP) = %v, %v", v, err)
	}
	if _, err := NetworkTypeParse("sctp"); !errors.Is(err, gxcommon.ErrUnknownEnum) {
		t.Errorf("err = %v, want ErrUnknownEnum", err)
	}
}

func TestReplyDefaults(t *testing.T) {
	r := newReply("127.0.0.1", 4059)
	if r.Status != CommunicationStatusConnectionTimeout {
		t.Errorf("Status = %s, want ConnectionTimeout", r.Status)
	}
	if r.Error != "" || r.RawBytes != nil {
		t.Errorf("reply = %v", r)
	}
	if r.Sender() != "127.0.0.1:4059" {
		t.Errorf("Sender = %s", r.Sender())
	}
}
