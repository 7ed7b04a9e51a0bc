package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/govsa"
	"github.com/vitalvas/govsa/pkg/packet"
)

// requestAttribute is one attribute of a request document. A tag may be
// given as the separate field or inline in the name ("Tunnel-Type:1").
type requestAttribute struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
	Tag   *uint8 `yaml:"tag,omitempty"`
}

// builderName merges the optional tag field into the "Name:tag" form the
// attribute builder understands.
func (ra requestAttribute) builderName() string {
	if ra.Tag != nil {
		return fmt.Sprintf("%s:%d", ra.Name, *ra.Tag)
	}
	return ra.Name
}

// request is the YAML description of one RADIUS packet. The identifier is
// used for hex output only: send mode leaves identifiers to the transport.
type request struct {
	Code       string             `yaml:"code"`
	Identifier uint8              `yaml:"identifier,omitempty"`
	Attributes []requestAttribute `yaml:"attributes"`
}

// loadRequestFile reads a YAML request document.
func loadRequestFile(path string) (*request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var req request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request file %s: %w", path, err)
	}

	if req.Code == "" {
		return nil, fmt.Errorf("request file %s has no packet code", path)
	}

	return &req, nil
}

// readRequestLines reads attributes from r, one per line in the form
// "Attribute-Name = value". Blank lines and # comments are skipped. Decimal
// values become integers, everything else stays a string.
func readRequestLines(r io.Reader, code string) (*request, error) {
	req := &request{Code: code}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid attribute line: %q (expected 'Name = value')", line)
		}

		name := strings.TrimSpace(parts[0])
		valueStr := strings.TrimSpace(parts[1])

		var value any
		if num, err := strconv.ParseUint(valueStr, 10, 32); err == nil {
			value = uint32(num)
		} else {
			value = valueStr
		}

		req.Attributes = append(req.Attributes, requestAttribute{Name: name, Value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if len(req.Attributes) == 0 {
		return nil, fmt.Errorf("no attributes provided")
	}

	return req, nil
}

// ensureSessionID gives accounting requests an Acct-Session-Id when the
// document does not carry one, since accounting servers key on it. It
// returns the generated value, or an empty string when nothing was added.
func (r *request) ensureSessionID() string {
	if code, ok := packet.CodeFromName(r.Code); !ok || code != packet.CodeAccountingRequest {
		return ""
	}

	for _, attr := range r.Attributes {
		if attr.Name == "Acct-Session-Id" {
			return ""
		}
	}

	id := uuid.NewString()
	r.Attributes = append(r.Attributes, requestAttribute{Name: "Acct-Session-Id", Value: id})
	return id
}

// buildPacket encodes the request into a RADIUS packet. The authenticator
// stays zeroed: computing it belongs to the transport.
func (r *request) buildPacket(builder *govsa.Builder) (*packet.Packet, error) {
	code, ok := packet.CodeFromName(r.Code)
	if !ok {
		return nil, fmt.Errorf("unknown packet code %q", r.Code)
	}

	pkt := packet.New(code, r.Identifier)
	for _, ra := range r.Attributes {
		attr, err := builder.Attribute(ra.builderName(), ra.Value)
		if err != nil {
			return nil, err
		}
		pkt.Add(attr)
	}

	return pkt, nil
}
