package ioutils

import (
	"bytes"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"io"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func NewCompressWriter(writer io.Writer, encoding string) (io.WriteCloser, error) {
	switch encoding {
	case EncodingIdentity:
		return nopWriteCloser{writer}, nil
	case EncodingGzip:
		return gzip.NewWriterLevel(writer, gzip.DefaultCompression)
	case EncodingDeflate:
		// the http deflate coding is the zlib format, not a raw deflate stream
		return zlib.NewWriterLevel(writer, zlib.DefaultCompression)
	case EncodingBrotli:
		return brotli.NewWriterLevel(writer, brotli.DefaultCompression), nil
	case EncodingZstd:
		return zstd.NewWriter(writer, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithZeroFrames(true))
	default:
		return nil, UnsupportedEncodingError
	}
}

func CompressBytes(data []byte, encoding string) ([]byte, error) {
	if encoding == EncodingIdentity {
		return data, nil
	}

	var buf bytes.Buffer
	writer, err := NewCompressWriter(&buf, encoding)
	if err != nil {
		return nil, err
	}
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return nil, err
	}
	// finalizing the compression stream
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
