package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"layeh.com/radius"

	"github.com/vitalvas/govsa"
	"github.com/vitalvas/govsa/pkg/dictionary"
	"github.com/vitalvas/govsa/pkg/log"
	"github.com/vitalvas/govsa/pkg/packet"
)

type runOptions struct {
	mode    string
	file    string
	code    string
	dictDir string
	server  string
	secret  string
	timeout time.Duration
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server := flag.String("server", cfg.Server, "RADIUS server address (host or host:port)")
	secret := flag.String("secret", cfg.Secret, "shared secret for send mode")
	mode := flag.String("mode", "hex", "what to do with the packet: hex or send")
	file := flag.String("file", "", "YAML request file (attributes read from stdin when omitted)")
	code := flag.String("code", "Access-Request", "packet code for stdin input")
	dictDir := flag.String("dictionary-dir", cfg.DictionaryDir, "directory with extra dictionary files")
	timeout := flag.Duration("timeout", cfg.Timeout, "send timeout")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Builds RADIUS packets from a YAML request file or stdin attribute\n")
		fmt.Fprintf(os.Stderr, "lines and prints them as hex or sends them to a server.\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nStdin lines take the form:\n")
		fmt.Fprintf(os.Stderr, "  Attribute-Name = value\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  echo 'MS-MPPE-Encryption-Policy = Encryption-Required' | %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -file accept.yaml -mode send -server 127.0.0.1 -secret s3cret\n", os.Args[0])
	}

	flag.Parse()

	logger := log.New(*logLevel)

	opts := runOptions{
		mode:    *mode,
		file:    *file,
		code:    *code,
		dictDir: *dictDir,
		server:  *server,
		secret:  *secret,
		timeout: *timeout,
	}

	if err := run(context.Background(), logger, opts); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger log.Logger, opts runOptions) error {
	builder, err := newBuilder(ctx, logger, opts.dictDir)
	if err != nil {
		return err
	}

	var req *request
	if opts.file != "" {
		req, err = loadRequestFile(opts.file)
	} else {
		req, err = readRequestLines(os.Stdin, opts.code)
	}
	if err != nil {
		return err
	}

	if id := req.ensureSessionID(); id != "" {
		logger.WithField("session_id", id).Debugf("generated Acct-Session-Id")
	}

	pkt, err := req.buildPacket(builder)
	if err != nil {
		return err
	}

	switch opts.mode {
	case "hex":
		return dump(pkt)
	case "send":
		return send(ctx, logger, pkt, opts)
	default:
		return fmt.Errorf("unknown mode %q (hex or send)", opts.mode)
	}
}

// newBuilder assembles the attribute builder from the compiled-in tables,
// with any extra dictionary files merged over them.
func newBuilder(ctx context.Context, logger log.Logger, dictDir string) (*govsa.Builder, error) {
	builder, err := govsa.NewDefault()
	if err != nil {
		return nil, err
	}

	if dictDir == "" {
		return builder, nil
	}

	source := &dictionary.FileSource{Dir: dictDir}
	extra, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionaries from %s: %w", dictDir, err)
	}

	if err := builder.Dictionary().Merge(extra); err != nil {
		return nil, fmt.Errorf("failed to merge dictionaries from %s: %w", dictDir, err)
	}

	logger.WithField("dir", dictDir).Debugf("merged extra dictionaries")
	return builder, nil
}

// dump prints the encoded packet with a per-attribute breakdown. The
// authenticator shows as zeroes: transports compute authenticators, not
// this tool.
func dump(pkt *packet.Packet) error {
	data, err := pkt.Encode()
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", pkt)
	for _, attr := range pkt.Attributes {
		fmt.Printf("  %s\n", attr)
	}
	fmt.Printf("\n%s", hex.Dump(data))

	return nil
}

// send hands the built attributes to layeh.com/radius, which owns
// identifiers, authenticators and retransmission.
func send(ctx context.Context, logger log.Logger, pkt *packet.Packet, opts runOptions) error {
	if opts.server == "" {
		return fmt.Errorf("send mode needs a server address (-server or VSATOOL_SERVER)")
	}

	addr := opts.server
	if !strings.Contains(addr, ":") {
		addr = fmt.Sprintf("%s:%d", addr, defaultPort(pkt.Code))
	}

	req := radius.New(radius.Code(pkt.Code), []byte(opts.secret))
	for _, attr := range pkt.Attributes {
		req.Add(radius.Type(attr.Type), radius.Attribute(attr.Value))
	}

	logger.WithFields(log.Fields{
		"server":     addr,
		"code":       pkt.Code.String(),
		"attributes": len(pkt.Attributes),
	}).Infof("sending request")

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	resp, err := radius.Exchange(ctx, req, addr)
	if err != nil {
		return fmt.Errorf("exchange with %s failed: %w", addr, err)
	}

	fmt.Printf("Received %s\n", packet.Code(resp.Code))
	for _, avp := range resp.Attributes {
		fmt.Printf("  Type=%d Value=0x%x\n", avp.Type, []byte(avp.Attribute))
	}

	if !positive(pkt.Code, resp.Code) {
		return fmt.Errorf("server answered %s", packet.Code(resp.Code))
	}

	return nil
}

// positive reports whether resp answers the request affirmatively.
func positive(req packet.Code, resp radius.Code) bool {
	switch req {
	case packet.CodeAccessRequest:
		return resp == radius.CodeAccessAccept || resp == radius.CodeAccessChallenge
	case packet.CodeAccountingRequest:
		return resp == radius.CodeAccountingResponse
	case packet.CodeDisconnectRequest:
		return resp == radius.CodeDisconnectACK
	case packet.CodeCoARequest:
		return resp == radius.CodeCoAACK
	default:
		return true
	}
}

// defaultPort picks the conventional UDP port for the packet's protocol
// family: 1812 for authentication, 1813 for accounting and 3799 for
// dynamic authorization.
func defaultPort(code packet.Code) int {
	switch code {
	case packet.CodeAccountingRequest:
		return 1813
	case packet.CodeDisconnectRequest, packet.CodeCoARequest:
		return 3799
	default:
		return 1812
	}
}
