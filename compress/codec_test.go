package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mgjson/format"
)

// sampleDocument imitates a serialized mgjson fragment: repetitive
// fixed-width strings that every codec should shrink.
func sampleDocument() []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"version":"MGJSON2.0.0","dataDynamicSamples":[`)
	for i := 0; i < 200; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"time":"1970-01-01T00:00:01.000Z","value":"+001.000000000000000"}`)
	}
	buf.WriteString(`]}`)

	return buf.Bytes()
}

func TestCreateCodec(t *testing.T) {
	t.Run("AllTypes", func(t *testing.T) {
		for _, ct := range []format.CompressionType{
			format.CompressionNone,
			format.CompressionZstd,
			format.CompressionS2,
			format.CompressionLZ4,
		} {
			codec, err := CreateCodec(ct)
			require.NoError(t, err, "compression type %s", ct)
			require.NotNil(t, codec)
		}
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := CreateCodec(format.CompressionType(0xFF))
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid compression type")
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	data := sampleDocument()

	cases := []struct {
		name  string
		ctype format.CompressionType
	}{
		{"None", format.CompressionNone},
		{"Zstd", format.CompressionZstd},
		{"S2", format.CompressionS2},
		{"LZ4", format.CompressionLZ4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			codec, err := CreateCodec(tc.ctype)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			if tc.ctype != format.CompressionNone {
				require.Less(t, len(compressed), len(data))
			}

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, decompressed)
	}
}

func TestCodec_CorruptedInput(t *testing.T) {
	corrupted := []byte("definitely not compressed data")

	t.Run("Zstd", func(t *testing.T) {
		codec := NewZstdCodec()
		_, err := codec.Decompress(corrupted)
		require.Error(t, err)
	})

	t.Run("S2", func(t *testing.T) {
		codec := NewS2Codec()
		_, err := codec.Decompress(corrupted)
		require.Error(t, err)
	})
}
