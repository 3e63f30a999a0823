package domain

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/errors"
)

// MediaKind is the coarse classification of an inline media payload.
type MediaKind string

const (
	KindImage   MediaKind = "image"
	KindVideo   MediaKind = "video"
	KindAudio   MediaKind = "audio"
	KindUnknown MediaKind = "unknown"
)

// sniffLen bounds how much of the payload is decoded for detection.
// mimetype only reads the first bytes of a file; decoding the full
// blob would be wasted work on multi-megabyte recordings.
const sniffLen = 4096

// DetectMediaKind classifies a data-URL payload by sniffing the decoded
// bytes. The content type declared in the URL header is deliberately
// ignored: clients can write anything there.
func DetectMediaKind(dataURL string) (MediaKind, error) {
	payload, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return KindUnknown, fmt.Errorf("%w: not a data URL", errors.ErrUnsupportedMedia)
	}

	_, encoded, ok := strings.Cut(payload, ",")
	if !ok {
		return KindUnknown, fmt.Errorf("%w: missing payload", errors.ErrUnsupportedMedia)
	}

	if len(encoded) > sniffLen {
		encoded = encoded[:sniffLen]
		// Keep the prefix decodable: base64 works in blocks of 4 chars.
		encoded = encoded[:len(encoded)-len(encoded)%4]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return KindUnknown, fmt.Errorf("%w: %v", errors.ErrUnsupportedMedia, err)
	}

	detected := mimetype.Detect(raw)
	switch {
	case strings.HasPrefix(detected.String(), "image/"):
		return KindImage, nil
	case strings.HasPrefix(detected.String(), "video/"):
		return KindVideo, nil
	case strings.HasPrefix(detected.String(), "audio/"):
		return KindAudio, nil
	case detected.Is("application/ogg"):
		// Ogg voice notes whose first page carries no codec marker sniff
		// as the bare container type rather than audio/ogg.
		return KindAudio, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %s", errors.ErrUnsupportedMedia, detected.String())
	}
}
