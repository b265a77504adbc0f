package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-community-client/internal/adapter"
	"gopkg.in/yaml.v3"
)

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// printPayload writes raw as indented JSON. Empty payloads print nothing.
func printPayload(w io.Writer, raw json.RawMessage) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	buf.WriteByte('\n')

	_, err := buf.WriteTo(w)
	return err
}

func printResponse(w io.Writer, resp *adapter.Response, err error) error {
	if err != nil {
		return err
	}
	return printPayload(w, resp.Data)
}

// parseBody decodes a JSON document given on the command line. Numbers keep
// their literal form.
func parseBody(arg string) (any, error) {
	dec := json.NewDecoder(bytes.NewBufferString(arg))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON body: trailing data")
	}

	return body, nil
}
