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

// ConnectionState is the state of a persistent TCP connection.
type ConnectionState int32

const (
	// ConnectionStateDisconnected defines that there is no connection.
	ConnectionStateDisconnected ConnectionState = iota
	// ConnectionStateConnecting defines that a connect is in progress.
	ConnectionStateConnecting
	// ConnectionStateConnected defines that the connection is established.
	ConnectionStateConnected
)

// String returns the canonical name of the connection state.
// It satisfies fmt.Stringer.
func (g ConnectionState) String() string {
	var ret string
	switch g {
	case ConnectionStateDisconnected:
		ret = "Disconnected"
	case ConnectionStateConnecting:
		ret = "Connecting"
	case ConnectionStateConnected:
		ret = "Connected"
	}
	return ret
}
