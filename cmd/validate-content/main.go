// validate-content 校验 data/ 目录下的全部 YAML 数据
//
// 用法：
//
//	go run ./cmd/validate-content [-root .]
//
// 检查内容、小游戏参数、提示音和精灵配置能否加载，
// 以及内容和小游戏引用的精灵ID都在 resources.yaml 中定义。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/content"
	"github.com/decker502/nutrition/pkg/embedded"
	"github.com/decker502/nutrition/pkg/game"
	"github.com/decker502/nutrition/pkg/minigame"
)

var root = flag.String("root", ".", "项目根目录（包含 data/）")

func main() {
	flag.Parse()
	embedded.Init(os.DirFS(*root))

	failed := 0
	check := func(name string, err error) {
		if err != nil {
			fmt.Printf("❌ %s: %v\n", name, err)
			failed++
			return
		}
		fmt.Printf("✅ %s\n", name)
	}

	registry, err := content.Load(embedded.ReadFile)
	check("content", err)
	minigameConfig, err := config.LoadMinigameConfig(config.MinigameConfigPath)
	check(config.MinigameConfigPath, err)
	_, err = config.LoadCueConfig(config.CueConfigPath)
	check(config.CueConfigPath, err)

	var resources *game.ResourceConfig
	data, err := embedded.ReadFile(game.ResourceConfigPath)
	if err == nil {
		resources, err = game.ParseResourceConfig(data)
	}
	check(game.ResourceConfigPath, err)

	if resources != nil {
		sprites := make(map[string]bool, len(resources.Sprites))
		for _, s := range resources.Sprites {
			sprites[s.ID] = true
		}
		missing := 0
		requireSprite := func(owner, id string) {
			if !sprites[id] {
				fmt.Printf("❌ %s 引用了未定义的精灵 %q\n", owner, id)
				missing++
			}
		}
		if registry != nil {
			for _, m := range registry.Macronutrients() {
				requireSprite("macronutrients/"+m.ID, m.Image)
			}
		}
		if minigameConfig != nil {
			for i, entry := range minigameConfig.Pool {
				requireSprite(fmt.Sprintf("minigame pool[%d]", i), entry.Sprite)
			}
			requireSprite("minigame basket", minigame.BasketSprite)
		}
		if missing == 0 {
			fmt.Printf("✅ 精灵引用完整（%d 个精灵）\n", len(sprites))
		}
		failed += missing
	}

	if registry != nil {
		fmt.Printf("✅ 面板 %d 个，测验题目 %d 道（及格线 %d）\n",
			len(registry.Panels()), len(registry.Questions()), registry.PassThreshold())
	}

	if failed > 0 {
		fmt.Printf("❌ 共 %d 个问题\n", failed)
		os.Exit(1)
	}
}
