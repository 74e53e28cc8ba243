package main

import (
	"time"

	cueaudio "github.com/decker502/nutrition/internal/audio"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/gopxl/beep/speaker"
)

// speakerPlayer 通过 beep/speaker 播放合成好的提示音
// speaker 在自己的 goroutine 中混音，Play 不会阻塞主循环
type speakerPlayer struct {
	bank *cueaudio.Bank
}

func newSpeakerPlayer(bank *cueaudio.Bank) (*speakerPlayer, error) {
	rate := bank.SampleRate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return &speakerPlayer{bank: bank}, nil
}

func (p *speakerPlayer) Play(cue types.Cue) {
	if s := p.bank.Streamer(cue); s != nil {
		speaker.Play(s)
	}
}
