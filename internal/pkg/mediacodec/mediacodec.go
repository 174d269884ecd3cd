// Package mediacodec converts binary blobs stored in the database into
// inline data URIs for API responses.
package mediacodec

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// fallbackMIME is used when the content type cannot be determined.
// The original API always reported image/png, so unrecognizable
// payloads keep that behavior.
const fallbackMIME = "image/png"

// Encode returns a base64 data URI for the given blob, or nil when the
// blob is empty or absent. The MIME type is sniffed from the content.
func Encode(data []byte) *string {
	if len(data) == 0 {
		return nil
	}

	mime := mimetype.Detect(data).String()
	// mimetype never returns an empty string, but its fallback
	// application/octet-stream is replaced for compatibility.
	if mime == "application/octet-stream" {
		mime = fallbackMIME
	}

	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))

	uri := b.String()
	return &uri
}

// Decode extracts the raw bytes from a base64 data URI or a bare base64
// string. Used on PATCH paths where binary fields arrive as strings.
func Decode(value string) ([]byte, error) {
	if idx := strings.Index(value, ";base64,"); idx >= 0 {
		value = value[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(value)
}
