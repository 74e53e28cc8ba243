package audio

import (
	"fmt"
	"io"

	"github.com/gopxl/beep"
)

// EncodeS16LE 将缓冲区编码为 16 位有符号小端立体声 PCM（ebiten 音频格式）
func EncodeS16LE(buf *beep.Buffer) []byte {
	format := Format(buf.Format().SampleRate)
	frameSize := format.Width()

	out := make([]byte, buf.Len()*frameSize)
	streamer := buf.Streamer(0, buf.Len())

	samples := make([][2]float64, 512)
	offset := 0
	for {
		n, ok := streamer.Stream(samples)
		for i := 0; i < n; i++ {
			offset += format.EncodeSigned(out[offset:], samples[i])
		}
		if !ok || n == 0 {
			break
		}
	}
	return out[:offset]
}

// PCMStream 内存中的 PCM 数据，实现 io.ReadSeeker
// 可直接传给 ebiten 的 audio.NewPlayer
type PCMStream struct {
	data       []byte
	sampleRate int64
	offset     int64
}

// NewPCMStream 包装已编码的 16 位立体声 PCM 数据
func NewPCMStream(data []byte, sampleRate int) *PCMStream {
	return &PCMStream{data: data, sampleRate: int64(sampleRate)}
}

// Read 实现 io.Reader
func (s *PCMStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek 实现 io.Seeker
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length 返回数据总字节数
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate 返回采样率
func (s *PCMStream) SampleRate() int64 {
	return s.sampleRate
}

// Bytes 返回底层数据
func (s *PCMStream) Bytes() []byte {
	return s.data
}
