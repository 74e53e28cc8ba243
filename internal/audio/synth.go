// Package audio 合成提示音
//
// 应用不携带任何音频资源文件：每个提示音由 data/cues.yaml 中的音符序列
// 在启动时合成为 beep.Buffer，桌面端再编码为 16 位 PCM 交给 ebiten 播放，
// 终端端直接通过 beep/speaker 播放。
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/decker502/nutrition/pkg/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ParseWave 将配置中的波形名称转换为 WaveType，未知名称返回正弦波
func ParseWave(name string) WaveType {
	switch name {
	case config.WaveSquare:
		return WaveSquare
	case config.WaveSaw:
		return WaveSaw
	case config.WaveNoise:
		return WaveNoise
	default:
		return WaveSine
	}
}

// oscillator 生成固定时长的原始波形
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator 创建振荡器
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope 为 s 加上起音和释音
// attack + release 超过 duration 时没有持续段
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性音量转换为 effects.Volume 的对数音量
// vol <= 0 时静音（math.Log2(0) 为 -Inf）
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Format 合成使用的格式：立体声 16 位
func Format(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// Render 把一个提示音的音符序列合成到缓冲区
//
// 参数：
//
//	spec   - 音符序列和提示音音量
//	master - 主音量（0~1），与 spec.Volume 相乘
//	rate   - 采样率
func Render(spec config.CueSpec, master float64, rate beep.SampleRate) *beep.Buffer {
	notes := make([]beep.Streamer, 0, len(spec.Notes))
	for _, n := range spec.Notes {
		d := millis(n.DurationMs)
		osc := NewOscillator(n.Freq, d, ParseWave(n.Wave), rate)
		notes = append(notes, NewEnvelope(osc, d, millis(n.AttackMs), millis(n.ReleaseMs), rate))
	}

	buf := beep.NewBuffer(Format(rate))
	buf.Append(newVolume(beep.Seq(notes...), spec.Volume*master))
	return buf
}

// Duration 返回音符序列的总时长
func Duration(spec config.CueSpec) time.Duration {
	var total time.Duration
	for _, n := range spec.Notes {
		total += millis(n.DurationMs)
	}
	return total
}
