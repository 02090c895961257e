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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:errcheck
func init() {
	// --- English (default) ---
	message.SetString(language.AmericanEnglish, "msg.connecting_to", "%s connecting to %s:%d timeout %d ms")
	message.SetString(language.AmericanEnglish, "msg.connected_to", "Connected to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connect_failed", "connect to %s:%d failed: %v")
	message.SetString(language.AmericanEnglish, "msg.connection_failed", "Connection failed: %v")
	message.SetString(language.AmericanEnglish, "msg.closing_connection", "Closing connection to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connection_closed", "Connection closed to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connection_lost", "Connection to %s:%d closed by the remote end")
	message.SetString(language.AmericanEnglish, "msg.retrying", "Reconnecting to %s:%d every %d ms")
	message.SetString(language.AmericanEnglish, "msg.queue_full", "Send queue to %s:%d is full")
	message.SetString(language.AmericanEnglish, "msg.read_timeout", "No reply from %s:%d within %d ms")
	message.SetString(language.AmericanEnglish, "msg.listening", "%s listening on %s")
	message.SetString(language.AmericanEnglish, "msg.listen_failed", "%s listen on port %d failed: %v")
	message.SetString(language.AmericanEnglish, "msg.listener_stopped", "%s listener on %s stopped")
	message.SetString(language.AmericanEnglish, "msg.accepted", "Connection accepted from %s")
	message.SetString(language.AmericanEnglish, "msg.no_control_messages", "Control messages are not available: %v")

	// --- German (de) ---
	message.SetString(language.German, "msg.connecting_to", "%s verbindet sich mit %s:%d timeout %d ms")
	message.SetString(language.German, "msg.connected_to", "Verbunden mit %s:%d")
	message.SetString(language.German, "msg.connect_failed", "Verbindung zu %s:%d fehlgeschlagen: %v")
	message.SetString(language.German, "msg.connection_failed", "Verbindung fehlgeschlagen: %v")
	message.SetString(language.German, "msg.closing_connection", "Verbindung zu %s:%d wird geschlossen")
	message.SetString(language.German, "msg.connection_closed", "Verbindung zu %s:%d wurde geschlossen")
	message.SetString(language.German, "msg.connection_lost", "Verbindung zu %s:%d wurde von der Gegenstelle geschlossen")
	message.SetString(language.German, "msg.retrying", "Neuer Verbindungsversuch zu %s:%d alle %d ms")
	message.SetString(language.German, "msg.queue_full", "Sendewarteschlange zu %s:%d ist voll")
	message.SetString(language.German, "msg.read_timeout", "Keine Antwort von %s:%d innerhalb von %d ms")
	message.SetString(language.German, "msg.listening", "%s wartet auf %s")
	message.SetString(language.German, "msg.listen_failed", "%s Port %d konnte nicht geöffnet werden: %v")
	message.SetString(language.German, "msg.listener_stopped", "%s Empfänger auf %s gestoppt")
	message.SetString(language.German, "msg.accepted", "Verbindung von %s angenommen")
	message.SetString(language.German, "msg.no_control_messages", "Steuernachrichten sind nicht verfügbar: %v")

	// --- Finnish (fi) ---
	message.SetString(language.Finnish, "msg.connecting_to", "%s yhdistetään kohteeseen %s:%d timeout %d ms")
	message.SetString(language.Finnish, "msg.connected_to", "Yhdistetty kohteeseen %s:%d")
	message.SetString(language.Finnish, "msg.connect_failed", "Yhteyden muodostus kohteeseen %s:%d epäonnistui: %v")
	message.SetString(language.Finnish, "msg.connection_failed", "Yhteyden muodostus epäonnistui: %v")
	message.SetString(language.Finnish, "msg.closing_connection", "Suljetaan yhteys kohteeseen %s:%d")
	message.SetString(language.Finnish, "msg.connection_closed", "Yhteys suljettu kohteeseen %s:%d")
	message.SetString(language.Finnish, "msg.connection_lost", "Vastapää sulki yhteyden %s:%d")
	message.SetString(language.Finnish, "msg.retrying", "Yhdistetään uudelleen kohteeseen %s:%d %d ms välein")
	message.SetString(language.Finnish, "msg.queue_full", "Lähetysjono kohteeseen %s:%d on täynnä")
	message.SetString(language.Finnish, "msg.read_timeout", "Ei vastausta kohteesta %s:%d %d ms aikana")
	message.SetString(language.Finnish, "msg.listening", "%s kuuntelee osoitetta %s")
	message.SetString(language.Finnish, "msg.listen_failed", "%s portin %d kuuntelu epäonnistui: %v")
	message.SetString(language.Finnish, "msg.listener_stopped", "%s kuuntelu osoitteessa %s lopetettu")
	message.SetString(language.Finnish, "msg.accepted", "Yhteys hyväksytty osoitteesta %s")
	message.SetString(language.Finnish, "msg.no_control_messages", "Ohjausviestit eivät ole käytettävissä: %v")

	// --- Swedish (sv) ---
	message.SetString(language.Swedish, "msg.connecting_to", "%s ansluter till %s:%d timeout %d ms")
	message.SetString(language.Swedish, "msg.connected_to", "Ansluten till %s:%d")
	message.SetString(language.Swedish, "msg.connect_failed", "Anslutning till %s:%d misslyckades: %v")
	message.SetString(language.Swedish, "msg.connection_failed", "Anslutningen misslyckades: %v")
	message.SetString(language.Swedish, "msg.closing_connection", "Stänger anslutning till %s:%d")
	message.SetString(language.Swedish, "msg.connection_closed", "Anslutning stängd till %s:%d")
	message.SetString(language.Swedish, "msg.connection_lost", "Anslutningen till %s:%d stängdes av motparten")
	message.SetString(language.Swedish, "msg.retrying", "Återansluter till %s:%d var %d ms")
	message.SetString(language.Swedish, "msg.queue_full", "Sändkön till %s:%d är full")
	message.SetString(language.Swedish, "msg.read_timeout", "Inget svar från %s:%d inom %d ms")
	message.SetString(language.Swedish, "msg.listening", "%s lyssnar på %s")
	message.SetString(language.Swedish, "msg.listen_failed", "%s kunde inte lyssna på port %d: %v")
	message.SetString(language.Swedish, "msg.listener_stopped", "%s lyssnare på %s stoppad")
	message.SetString(language.Swedish, "msg.accepted", "Anslutning accepterad från %s")
	message.SetString(language.Swedish, "msg.no_control_messages", "Kontrollmeddelanden är inte tillgängliga: %v")

	// --- Spanish (es) ---
	message.SetString(language.Spanish, "msg.connecting_to", "%s conectando a %s:%d timeout %d ms")
	message.SetString(language.Spanish, "msg.connected_to", "Conectado a %s:%d")
	message.SetString(language.Spanish, "msg.connect_failed", "Error al conectar con %s:%d: %v")
	message.SetString(language.Spanish, "msg.connection_failed", "Error de conexión: %v")
	message.SetString(language.Spanish, "msg.closing_connection", "Cerrando conexión con %s:%d")
	message.SetString(language.Spanish, "msg.connection_closed", "Conexión cerrada con %s:%d")
	message.SetString(language.Spanish, "msg.connection_lost", "El extremo remoto cerró la conexión con %s:%d")
	message.SetString(language.Spanish, "msg.retrying", "Reconectando a %s:%d cada %d ms")
	message.SetString(language.Spanish, "msg.queue_full", "La cola de envío a %s:%d está llena")
	message.SetString(language.Spanish, "msg.read_timeout", "Sin respuesta de %s:%d en %d ms")
	message.SetString(language.Spanish, "msg.listening", "%s escuchando en %s")
	message.SetString(language.Spanish, "msg.listen_failed", "%s no pudo escuchar en el puerto %d: %v")
	message.SetString(language.Spanish, "msg.listener_stopped", "%s escucha en %s detenida")
	message.SetString(language.Spanish, "msg.accepted", "Conexión aceptada desde %s")
	message.SetString(language.Spanish, "msg.no_control_messages", "Los mensajes de control no están disponibles: %v")

	// --- Estonian (et) ---
	message.SetString(language.Estonian, "msg.connecting_to", "%s ühendatakse sihtkohta %s:%d timeout %d ms")
	message.SetString(language.Estonian, "msg.connected_to", "Ühendatud sihtkohta %s:%d")
	message.SetString(language.Estonian, "msg.connect_failed", "Ühendamine sihtkohta %s:%d ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.connection_failed", "Ühendus ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.closing_connection", "Suletakse ühendus sihtkohta %s:%d")
	message.SetString(language.Estonian, "msg.connection_closed", "Ühendus suleti sihtkohta %s:%d")
	message.SetString(language.Estonian, "msg.connection_lost", "Vastaspool sulges ühenduse %s:%d")
	message.SetString(language.Estonian, "msg.retrying", "Ühendatakse uuesti sihtkohta %s:%d iga %d ms järel")
	message.SetString(language.Estonian, "msg.queue_full", "Saatmisjärjekord sihtkohta %s:%d on täis")
	message.SetString(language.Estonian, "msg.read_timeout", "Vastust sihtkohast %s:%d ei tulnud %d ms jooksul")
	message.SetString(language.Estonian, "msg.listening", "%s kuulab aadressil %s")
	message.SetString(language.Estonian, "msg.listen_failed", "%s pordi %d kuulamine ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.listener_stopped", "%s kuulaja aadressil %s peatati")
	message.SetString(language.Estonian, "msg.accepted", "Ühendus vastu võetud aadressilt %s")
	message.SetString(language.Estonian, "msg.no_control_messages", "Juhtsõnumid ei ole saadaval: %v")
}
