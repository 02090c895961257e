package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/Gurux/gxcomm-go"
	"github.com/Gurux/gxcommon-go"
	"github.com/jedib0t/go-pretty/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	profilePath string
	host        string
	trace       string
	lang        string
	port        int
	message     string
	noReply     bool

	profile *Profile
	logger  zerolog.Logger
)

// media is implemented by every transport of gxcomm.
type media interface {
	SetOnError(value gxcomm.ErrorHandler)
	SetOnTrace(value gxcomm.TraceHandler)
	SetOnLog(value gxcomm.LogHandler)
	SetTrace(traceLevel gxcommon.TraceLevel) error
	Localize(language language.Tag)
}

func CurrentLanguage() language.Tag {
	langEnv := os.Getenv("LANG")
	if langEnv == "" {
		return language.AmericanEnglish
	}
	langEnv = strings.Split(langEnv, ".")[0]
	tag, err := language.Parse(langEnv)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

var rootCmd = &cobra.Command{
	Use:           "gxcomm",
	Short:         "Send and receive data over TCP and UDP",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := profilePath
		if path == "" {
			path = DefaultProfilePath()
		}
		var err error
		profile, err = LoadProfile(path)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if host != "" {
			profile.Host = host
		}
		if trace != "" {
			profile.Trace = trace
		}
		if lang != "" {
			profile.Language = lang
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
		if profile.Trace != "" {
			logger = logger.Level(zerolog.TraceLevel)
		} else {
			logger = logger.Level(zerolog.InfoLevel)
		}
		return nil
	},
}

// setup connects the handlers of m to the logger.
func setup(m media) error {
	m.SetOnError(gxcomm.ZerologError(logger))
	m.SetOnTrace(gxcomm.ZerologTrace(logger))
	m.SetOnLog(gxcomm.ZerologLog(logger))
	tag := CurrentLanguage()
	if profile.Language != "" {
		var err error
		if tag, err = language.Parse(profile.Language); err != nil {
			return fmt.Errorf("error parsing language: %w", err)
		}
	}
	m.Localize(tag)
	if profile.Trace != "" {
		tl, err := gxcommon.TraceLevelParse(profile.Trace)
		if err != nil {
			return err
		}
		if err := m.SetTrace(tl); err != nil {
			return err
		}
	}
	return nil
}

func protocolArg(args []string) (gxcomm.NetworkType, error) {
	return gxcomm.NetworkTypeParse(args[0])
}

// renderReplies formats replies into a table.
func renderReplies(replies ...*gxcomm.GXReply) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Status", "Sender", "Data", "Error"})
	for _, r := range replies {
		data := ""
		if r.RawBytes != nil {
			data = fmt.Sprintf("% X", r.RawBytes)
		}
		t.AppendRow(table.Row{r.Status.String(), r.Sender(), data, r.Error})
	}
	return t.Render()
}

// interrupted returns a channel that is closed on Ctrl+C.
func interrupted() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch
}

var sendCmd = &cobra.Command{
	Use:   "send tcp|udp",
	Short: "Send one message and wait for the reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		protocol, err := protocolArg(args)
		if err != nil {
			return err
		}
		if message == "" {
			return fmt.Errorf("message is required")
		}
		tr := gxcomm.NewGXTransceiver(profile.Host, profile.PortTcp, profile.PortUdp)
		if port != 0 {
			tr.PortTcp, tr.PortUdp = port, port
		}
		tr.SetHostIP(profile.HostIP)
		if err := setup(tr); err != nil {
			return err
		}
		p := gxcomm.NewSendParameters()
		p.WaitForReply = !noReply
		p.ConnectTimeout = profile.ConnectTimeout
		p.ReadTimeout = profile.ReadTimeout
		reply := tr.Send(protocol, message, p)
		fmt.Println(renderReplies(reply))
		return nil
	},
}

var listenCmd = &cobra.Command{
	Use:   "listen tcp|udp",
	Short: "Print every message received on the port",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		protocol, err := protocolArg(args)
		if err != nil {
			return err
		}
		l, err := gxcomm.NewListener(protocol)
		if err != nil {
			return err
		}
		if err := setup(l); err != nil {
			return err
		}
		l.SetOnReceived(func(sender any, reply *gxcomm.GXReply) {
			fmt.Println(renderReplies(reply))
		})
		if port == 0 {
			port = profile.PortTcp
			if protocol == gxcomm.NetworkTypeUDP {
				port = profile.PortUdp
			}
		}
		if !l.Start(port) {
			return fmt.Errorf("failed to listen port %d", port)
		}
		logger.Info().Str("address", l.Addr().String()).Msg("Listening. Press Ctrl+C to stop.")
		<-interrupted()
		l.Stop()
		return nil
	},
}

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Keep a TCP connection open and send each line read from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if port == 0 {
			port = profile.PortTcp
		}
		c := gxcomm.NewGXPersistentClient(profile.Host, port)
		if err := setup(c); err != nil {
			return err
		}
		c.SetAutoRetry(profile.AutoRetry)
		if profile.RetryInterval > 0 {
			if err := c.SetRetryInterval(uint32(profile.RetryInterval)); err != nil {
				return err
			}
		}
		if profile.Eop != "" {
			if err := c.SetEop(profile.Eop); err != nil {
				return err
			}
		}
		c.SetOnMediaStateChange(gxcomm.ZerologState(logger))
		c.SetOnReceived(func(sender any, reply *gxcomm.GXReply) {
			fmt.Println(renderReplies(reply))
		})
		//Close the connection.
		defer func() {
			if err := c.Close(); err != nil {
				logger.Error().Err(err).Msg("close failed")
			}
		}()
		if !c.Connect() && !c.IsRetrying() {
			return fmt.Errorf("failed to connect %s", c)
		}
		lines := make(chan string)
		go func() {
			defer close(lines)
			s := bufio.NewScanner(os.Stdin)
			for s.Scan() {
				lines <- s.Text()
			}
		}()
		stop := interrupted()
		for {
			select {
			case <-stop:
				return nil
			case line, ok := <-lines:
				if !ok {
					// Wait for the last replies.
					time.Sleep(time.Duration(profile.ReadTimeout) * time.Millisecond)
					return nil
				}
				if !c.Send(line + profile.Eop) {
					logger.Warn().Str("state", c.State().String()).Msg("message not sent")
				}
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Profile file (default ~/.gxcomm/profile.yaml)")
	rootCmd.PersistentFlags().StringVarP(&host, "host", "H", "", "Host name")
	rootCmd.PersistentFlags().StringVarP(&trace, "trace", "t", "", "Trace level.")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Used language.")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "Port")
	sendCmd.Flags().StringVarP(&message, "message", "m", "", "Send message")
	sendCmd.Flags().BoolVar(&noReply, "no-reply", false, "Do not wait for the reply")
	rootCmd.AddCommand(sendCmd, listenCmd, connectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
