package game

import (
	"log"

	cueaudio "github.com/decker502/nutrition/internal/audio"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理所有提示音的播放（实现 types.CuePlayer）
//   - 静音与音量控制
//   - 缓存每个提示音的播放器
//
// 提示音在启动时由 internal/audio 合成为 PCM，不依赖音频文件。
type AudioManager struct {
	context *audio.Context
	bank    *cueaudio.Bank
	players map[types.Cue]*audio.Player
	volume  float64
	muted   bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（采样率必须与 bank 一致；为 nil 时所有提示音静音）
//   - bank: 合成好的提示音
func NewAudioManager(ctx *audio.Context, bank *cueaudio.Bank) *AudioManager {
	return &AudioManager{
		context: ctx,
		bank:    bank,
		players: make(map[types.Cue]*audio.Player),
		volume:  1.0,
	}
}

// Play 实现 types.CuePlayer
func (am *AudioManager) Play(cue types.Cue) {
	am.PlaySound(cue)
}

// PlaySound 播放提示音
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(cue types.Cue) bool {
	if am.muted || am.volume <= 0 {
		return false
	}

	player := am.getPlayer(cue)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", cue, err)
	}
	player.Play()
	return true
}

// SetMuted 静音开关
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	if muted {
		for _, p := range am.players {
			p.Pause()
		}
	}
	log.Printf("[AudioManager] Muted: %v", muted)
}

// Muted 是否静音
func (am *AudioManager) Muted() bool {
	return am.muted
}

// SetVolume 设置音量 (0.0 ~ 1.0)
func (am *AudioManager) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	am.volume = volume
	for _, p := range am.players {
		p.SetVolume(volume)
	}
}

// Volume 当前音量
func (am *AudioManager) Volume() float64 {
	return am.volume
}

// getPlayer 获取或创建提示音播放器
func (am *AudioManager) getPlayer(cue types.Cue) *audio.Player {
	if player, exists := am.players[cue]; exists {
		return player
	}
	if am.context == nil || am.bank == nil {
		return nil
	}

	pcm, ok := am.bank.PCM(cue)
	if !ok {
		log.Printf("[AudioManager] Warning: Cue not found: %s", cue)
		return nil
	}

	stream := cueaudio.NewPCMStream(pcm, int(am.bank.SampleRate()))
	player, err := am.context.NewPlayer(stream)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create player for %s: %v", cue, err)
		return nil
	}
	am.players[cue] = player
	return player
}

// PreloadCues 预加载提示音，避免首次播放时的延迟
func (am *AudioManager) PreloadCues(cues []types.Cue) {
	loaded := 0
	for _, cue := range cues {
		if am.getPlayer(cue) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d cues", loaded, len(cues))
}
