package encode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBase64RoundTrip(t *testing.T) {
	original := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	encoded := EncodeBase64String(original)
	decoded, err := DecodeBase64String(encoded)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestBase64UsesPaddedStdAlphabet(t *testing.T) {
	require.Equal(t, "aGk=", EncodeBase64String([]byte("hi")))
	require.Equal(t, "+/8=", EncodeBase64String([]byte{0xfb, 0xff}))
}

func TestDecodeBase64StringRejectsMalformed(t *testing.T) {
	for _, value := range []string{"%%%", "aGk", "aGk=a"} {
		_, err := DecodeBase64String(value)
		require.Error(t, err, value)
	}
}

func TestStripDataURL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "raw", value: "aGk=", want: "aGk="},
		{name: "surrounding whitespace", value: "  aGk=\n", want: "aGk="},
		{name: "data url", value: "data:image/jpeg;base64,aGk=", want: "aGk="},
		{name: "data url without comma", value: "data:image/jpeg", want: "data:image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StripDataURL(tt.value))
		})
	}
}
