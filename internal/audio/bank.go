package audio

import (
	"log"

	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/gopxl/beep"
)

// Bank 按提示音ID保存合成好的缓冲区
type Bank struct {
	rate    beep.SampleRate
	buffers map[types.Cue]*beep.Buffer
}

// NewBank 合成配置中的所有提示音
// 配置中缺少的已知提示音会记录警告，播放时静音
func NewBank(cfg *config.CueConfig) *Bank {
	b := &Bank{
		rate:    beep.SampleRate(cfg.SampleRate),
		buffers: make(map[types.Cue]*beep.Buffer, len(cfg.Cues)),
	}
	for id, spec := range cfg.Cues {
		b.buffers[types.Cue(id)] = Render(spec, cfg.MasterVolume, b.rate)
	}
	for _, cue := range types.AllCues() {
		if _, ok := b.buffers[cue]; !ok {
			log.Printf("[Audio] Warning: cue %s not configured, it will be silent", cue)
		}
	}
	return b
}

// SampleRate 返回合成采样率
func (b *Bank) SampleRate() beep.SampleRate {
	return b.rate
}

// Buffer 返回提示音缓冲区
func (b *Bank) Buffer(cue types.Cue) (*beep.Buffer, bool) {
	buf, ok := b.buffers[cue]
	return buf, ok
}

// Streamer 返回一个从头播放的新流，未知提示音返回 nil
func (b *Bank) Streamer(cue types.Cue) beep.StreamSeeker {
	buf, ok := b.buffers[cue]
	if !ok {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// PCM 返回提示音的 16 位 PCM 数据
func (b *Bank) PCM(cue types.Cue) ([]byte, bool) {
	buf, ok := b.buffers[cue]
	if !ok {
		return nil, false
	}
	return EncodeS16LE(buf), true
}
