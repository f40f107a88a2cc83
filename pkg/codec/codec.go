// Package codec negotiates request and response encodings. JSON is the
// default; CBOR is offered as the binary alternative.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/munnerz/goautoneg"
)

// Media types understood by the API.
const (
	MediaJSON = "application/json"
	MediaCBOR = "application/cbor"
)

// maxBody bounds every decoded request body.
const maxBody = 1 << 20

// ErrUnsupportedMediaType is returned by Decode for an unknown Content-Type.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// ErrTrailingData is returned by Decode when the body holds more than one value.
var ErrTrailingData = errors.New("trailing data after request body")

// Decode reads r's body into v according to its Content-Type. A missing
// Content-Type is treated as JSON. The body must hold exactly one value.
func Decode(r *http.Request, v any) error {
	body := io.LimitReader(r.Body, maxBody)
	switch mediaType(r.Header.Get("Content-Type")) {
	case "", MediaJSON:
		dec := json.NewDecoder(body)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode json: %w", ErrTrailingData)
		}
	case MediaCBOR:
		b, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		// Unmarshal rejects extraneous bytes after the first item.
		if err := cbor.Unmarshal(b, v); err != nil {
			return fmt.Errorf("decode cbor: %w", err)
		}
	default:
		return ErrUnsupportedMediaType
	}
	return nil
}

var offers = []string{MediaJSON, MediaCBOR}

// Negotiate picks the response media type from an Accept header, highest
// q-value first. Types listed with q=0 are never chosen. JSON is returned when
// nothing acceptable is offered.
func Negotiate(accept string) string {
	refused := make(map[string]bool)
	clauses := goautoneg.ParseAccept(accept)
	for _, c := range clauses {
		if c.Q <= 0 {
			refused[c.Type+"/"+c.SubType] = true
		}
	}
	for _, c := range clauses {
		if c.Q <= 0 {
			continue
		}
		for _, offer := range offers {
			if refused[offer] {
				continue
			}
			typ, sub, _ := strings.Cut(offer, "/")
			if (c.Type == typ || c.Type == "*") && (c.SubType == sub || c.SubType == "*") {
				return offer
			}
		}
	}
	return MediaJSON
}

// Encode writes v with the given status in the media type the request accepts.
func Encode(w http.ResponseWriter, r *http.Request, status int, v any) error {
	mt := Negotiate(r.Header.Get("Accept"))
	var (
		b   []byte
		err error
	)
	if mt == MediaCBOR {
		b, err = cbor.Marshal(v)
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	w.Header().Set("Content-Type", mt)
	w.WriteHeader(status)
	_, err = w.Write(b)
	return err
}

func mediaType(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return header
	}
	return mt
}
