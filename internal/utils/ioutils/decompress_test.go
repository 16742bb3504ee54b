package ioutils

import (
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"io"
)

func newDecompressReader(reader io.ReadCloser, encoding string) (io.ReadCloser, error) {
	switch encoding {
	case EncodingIdentity:
		return reader, nil
	case EncodingGzip:
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case EncodingDeflate:
		return zlib.NewReader(reader)
	case EncodingBrotli:
		return io.NopCloser(brotli.NewReader(reader)), nil
	case EncodingZstd:
		zr, err := zstd.NewReader(reader)
		if err != nil {
			return nil, err
		}
		return &zstdReadCloser{Decoder: zr}, nil
	default:
		return nil, UnsupportedEncodingError
	}
}

type zstdReadCloser struct {
	*zstd.Decoder
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

var _ io.ReadCloser = &zstdReadCloser{}
