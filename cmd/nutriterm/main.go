// nutriterm 在终端里运行"接住健康食物"小游戏
//
// 用法：
//
//	go run ./cmd/nutriterm [-root .] [-seed 42] [-log nutriterm.log] [-mute]
//
// 操作：点击场地或按空格/回车开始，←/→ 或 A/D 移动篮子，Esc/Q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	cueaudio "github.com/decker502/nutrition/internal/audio"
	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/embedded"
	"github.com/decker502/nutrition/pkg/minigame"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// tickInterval 主循环的刷新间隔（约 60 FPS）
const tickInterval = 16 * time.Millisecond

var (
	root    = flag.String("root", ".", "项目根目录（包含 data/）")
	seed    = flag.Int64("seed", 0, "随机种子（0 = 按当前时间）")
	logPath = flag.String("log", "", "日志文件路径（为空时不记录日志）")
	mute    = flag.Bool("mute", false, "关闭提示音")
)

func main() {
	flag.Parse()

	// 日志不能写到终端画面上
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "打开日志文件失败: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*root))

	cfg, err := config.LoadMinigameConfig(config.MinigameConfigPath)
	if err != nil {
		log.Printf("[Nutriterm] Warning: %v, using defaults", err)
		cfg = config.DefaultMinigameConfig()
	}
	sprites := loadSpriteStyles()

	var cues types.CuePlayer = types.NopCuePlayer{}
	if !*mute {
		cues = newSpeakerCues()
	}

	var opts []minigame.Option
	if *seed != 0 {
		opts = append(opts, minigame.WithRand(rand.New(rand.NewSource(*seed))))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	g := newTerminalGame(cfg, cues, sprites, opts...)
	run(screen, g)
}

// newSpeakerCues 合成提示音并初始化扬声器，失败时静音
func newSpeakerCues() types.CuePlayer {
	cueCfg, err := config.LoadCueConfig(config.CueConfigPath)
	if err != nil {
		log.Printf("[Nutriterm] Warning: %v, sound disabled", err)
		return types.NopCuePlayer{}
	}
	player, err := newSpeakerPlayer(cueaudio.NewBank(cueCfg))
	if err != nil {
		log.Printf("[Nutriterm] Warning: speaker init failed: %v, sound disabled", err)
		return types.NopCuePlayer{}
	}
	return player
}

// run 主循环
//
// 读取事件的 goroutine 只负责把 tcell 事件放进通道，
// 引擎状态只在这个 select 循环里修改。
func run(screen tcell.Screen, g *terminalGame) {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen.Fini() 之后返回 nil
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			w, h := screen.Size()
			fw, fh := g.fieldSize()
			if !g.handleEvent(ev, time.Now(), layoutField(w, h, fw, fh)) {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
		case now := <-ticker.C:
			g.update(now.Sub(last).Seconds(), now)
			last = now
			draw(screen, g)
		}
	}
}
