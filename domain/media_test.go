package domain

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/errors"
)

func dataURL(declared string, raw []byte) string {
	return "data:" + declared + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

func TestDetectMediaKind_SniffsRealContent(t *testing.T) {
	req := require.New(t)

	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	mp3Magic := []byte("ID3\x03\x00\x00\x00\x00\x00\x00")

	// An Ogg page header followed by the vorbis packet marker at the
	// offset the sniffer inspects.
	oggVorbis := append([]byte("OggS\x00\x02"), make([]byte, 22)...)
	oggVorbis = append(oggVorbis, []byte("\x01vorbis")...)

	tests := []struct {
		name     string
		payload  string
		expected MediaKind
	}{
		{
			name:     "PNG image",
			payload:  dataURL("image/png", pngMagic),
			expected: KindImage,
		},
		{
			name: "Declared type is ignored",
			// The header lies; the bytes are a PNG.
			payload:  dataURL("audio/mpeg", pngMagic),
			expected: KindImage,
		},
		{
			name:     "Ogg vorbis audio",
			payload:  dataURL("audio/ogg", oggVorbis),
			expected: KindAudio,
		},
		{
			name: "Bare Ogg container",
			// No codec marker: sniffs as application/ogg, still audio
			payload:  dataURL("audio/ogg", oggVorbis[:28]),
			expected: KindAudio,
		},
		{
			name:     "MP3 audio",
			payload:  dataURL("audio/mpeg", mp3Magic),
			expected: KindAudio,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := DetectMediaKind(tt.payload)
			require.NoError(t, err)
			require.Equal(t, tt.expected, kind)
		})
	}

	// Text bytes are not media, whatever the header claims
	_, err := DetectMediaKind(dataURL("image/png", []byte("hello world")))
	req.ErrorIs(err, errors.ErrUnsupportedMedia)
}

func TestDetectMediaKind_MalformedPayloads(t *testing.T) {
	req := require.New(t)

	// Not a data URL at all
	_, err := DetectMediaKind("https://example.com/cat.png")
	req.ErrorIs(err, errors.ErrUnsupportedMedia)

	// Missing the payload separator
	_, err = DetectMediaKind("data:image/png;base64")
	req.ErrorIs(err, errors.ErrUnsupportedMedia)

	// Payload is not base64
	_, err = DetectMediaKind("data:image/png;base64,???")
	req.ErrorIs(err, errors.ErrUnsupportedMedia)
}

func TestDetectMediaKind_TruncatesLargePayloads(t *testing.T) {
	req := require.New(t)

	// A multi-megabyte recording: only the head is decoded, and the
	// truncated prefix must stay valid base64.
	blob := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
		[]byte(strings.Repeat("x", 2<<20))...)

	kind, err := DetectMediaKind(dataURL("image/png", blob))
	req.NoError(err)
	req.Equal(KindImage, kind)
}
