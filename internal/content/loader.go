package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadGame 从文件加载并校验游戏定义
func LoadGame(path string) (*GameDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取游戏定义失败: %w", err)
	}

	var game GameDefinition
	if err := yaml.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("解析游戏定义失败: %w", err)
	}

	if err := game.Validate(); err != nil {
		return nil, err
	}
	return &game, nil
}

// LoadTriviaPrompts 从文件加载答题题库
func LoadTriviaPrompts(path string) ([]TriviaPrompt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取题库失败: %w", err)
	}

	var file struct {
		Prompts []TriviaPrompt `yaml:"prompts"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析题库失败: %w", err)
	}

	for i, p := range file.Prompts {
		if strings.TrimSpace(p.Question) == "" || strings.TrimSpace(p.Answer) == "" {
			return nil, fmt.Errorf("题库第 %d 条题目不完整", i+1)
		}
	}
	return file.Prompts, nil
}

// Validate 校验游戏定义的完整性
func (g *GameDefinition) Validate() error {
	if len(g.Rounds) == 0 {
		return fmt.Errorf("游戏定义至少需要一轮")
	}
	if g.MinigameAPIVersion <= 0 {
		return fmt.Errorf("minigame_api_version 必须为正数")
	}
	if g.MinigameScoring.DefaultMax <= 0 || g.MinigameScoring.FinalRoundMax <= 0 {
		return fmt.Errorf("小游戏计分上限必须为正数")
	}
	if g.Timers.EatingSeconds <= 0 {
		return fmt.Errorf("吃翅计时必须为正数")
	}

	for i, round := range g.Rounds {
		if round.PointsPerPlayer <= 0 {
			return fmt.Errorf("第 %d 轮 points_per_player 必须为正数", i+1)
		}
		switch round.Minigame {
		case MinigameTrivia, MinigameGeo, MinigameDrawing:
		default:
			return fmt.Errorf("第 %d 轮小游戏类型未知: %s", i+1, round.Minigame)
		}
		if g.Timers.MinigameSeconds[round.Minigame] <= 0 {
			return fmt.Errorf("第 %d 轮小游戏 %s 缺少计时配置", i+1, round.Minigame)
		}
	}
	return nil
}
