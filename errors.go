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
	"encoding/binary"
	"errors"

	"github.com/Gurux/gxcommon-go"
)

var (
	// ErrEmptyPayload is returned when there is nothing to send.
	ErrEmptyPayload = errors.New("bytes empty")
	// ErrInvalidAddress is returned when the target IP or port is not valid.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrQueueFull is returned when the send queue of a persistent connection is full.
	ErrQueueFull = errors.New("send queue full")
	// ErrMediaClosed is returned when a closed persistent client is used.
	ErrMediaClosed = errors.New("media closed")
)

// toPayload converts the data to bytes. Nil or empty data is an error.
func toPayload(data any) ([]byte, error) {
	if data == nil {
		return nil, ErrEmptyPayload
	}
	var tmp []byte
	if b, ok := data.([]byte); ok {
		tmp = b
	} else {
		var err error
		tmp, err = gxcommon.ToBytes(data, binary.BigEndian)
		if err != nil {
			return nil, err
		}
	}
	if len(tmp) == 0 {
		return nil, ErrEmptyPayload
	}
	return tmp, nil
}
