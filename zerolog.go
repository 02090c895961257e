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

	"github.com/Gurux/gxcommon-go"
	"github.com/rs/zerolog"
)

// ZerologLog returns a log sink that writes the hex dumps to logger at debug level.
func ZerologLog(logger zerolog.Logger) LogHandler {
	return func(message string) {
		logger.Debug().Msg(message)
	}
}

// ZerologError returns an error handler that writes errors to logger.
func ZerologError(logger zerolog.Logger) ErrorHandler {
	return func(sender any, err error) {
		logger.Error().Err(err).Str("media", fmt.Sprint(sender)).Msg("Communication error")
	}
}

// ZerologTrace returns a trace handler that writes trace events to logger.
func ZerologTrace(logger zerolog.Logger) TraceHandler {
	return func(sender any, e gxcommon.TraceEventArgs) {
		logger.Trace().Str("media", fmt.Sprint(sender)).Msg(e.String())
	}
}

// ZerologState returns a media state handler that writes state changes to logger.
func ZerologState(logger zerolog.Logger) MediaStateHandler {
	return func(sender any, e gxcommon.MediaStateEventArgs) {
		logger.Info().Str("media", fmt.Sprint(sender)).Str("state", e.State().String()).Msg("Media state changed")
	}
}
