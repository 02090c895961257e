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
	"strings"
	"testing"

	"github.com/Gurux/gxcommon-go"
	"github.com/rs/zerolog"
)

func TestZerologHandlers(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	tr := NewGXTransceiver("127.0.0.1", 4059, 0)

	ZerologError(logger)(tr, errors.New("boom"))
	if s := buf.String(); !strings.Contains(s, `"level":"error"`) || !strings.Contains(s, "boom") || !strings.Contains(s, "127.0.0.1") {
		t.Errorf("error entry = %s", s)
	}
	buf.Reset()

	ZerologLog(logger)("Tx: 01 02")
	if s := buf.String(); !strings.Contains(s, `"level":"debug"`) || !strings.Contains(s, "Tx: 01 02") {
		t.Errorf("log entry = %s", s)
	}
	buf.Reset()

	ZerologState(logger)(tr, *gxcommon.NewMediaStateEventArgs(gxcommon.MediaStateOpen))
	if s := buf.String(); !strings.Contains(s, `"level":"info"`) || !strings.Contains(s, `"state"`) {
		t.Errorf("state entry = %s", s)
	}
}
