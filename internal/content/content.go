package content

// MinigameType 小游戏类型
type MinigameType string

const (
	MinigameTrivia  MinigameType = "TRIVIA"
	MinigameGeo     MinigameType = "GEO"
	MinigameDrawing MinigameType = "DRAWING"
)

// GameDefinition 一局游戏的完整内容描述
type GameDefinition struct {
	Name               string       `yaml:"name" json:"name"`
	MinigameAPIVersion int          `yaml:"minigame_api_version" json:"minigameApiVersion"`
	Rounds             []RoundConfig `yaml:"rounds" json:"rounds"`
	MinigameScoring    ScoringCaps  `yaml:"minigame_scoring" json:"minigameScoring"`
	Timers             TimerConfig  `yaml:"timers" json:"timers"`
}

// RoundConfig 单轮配置
type RoundConfig struct {
	Sauce           string       `yaml:"sauce" json:"sauce"`
	Minigame        MinigameType `yaml:"minigame" json:"minigame"`
	PointsPerPlayer int          `yaml:"points_per_player" json:"pointsPerPlayer"`
}

// ScoringCaps 小游戏计分上限
type ScoringCaps struct {
	DefaultMax    int `yaml:"default_max" json:"defaultMax"`
	FinalRoundMax int `yaml:"final_round_max" json:"finalRoundMax"`
}

// TimerConfig 各阶段计时器时长（秒）
type TimerConfig struct {
	EatingSeconds   int                  `yaml:"eating_seconds" json:"eatingSeconds"`
	MinigameSeconds map[MinigameType]int `yaml:"minigame_seconds" json:"minigameSeconds"`
}

// TriviaPrompt 答题题目
type TriviaPrompt struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Clone 深拷贝游戏定义，隔离外部修改
func (g *GameDefinition) Clone() *GameDefinition {
	if g == nil {
		return nil
	}
	out := *g
	out.Rounds = make([]RoundConfig, len(g.Rounds))
	copy(out.Rounds, g.Rounds)
	if g.Timers.MinigameSeconds != nil {
		out.Timers.MinigameSeconds = make(map[MinigameType]int, len(g.Timers.MinigameSeconds))
		for k, v := range g.Timers.MinigameSeconds {
			out.Timers.MinigameSeconds[k] = v
		}
	}
	return &out
}

// ClonePrompts 深拷贝题库
func ClonePrompts(prompts []TriviaPrompt) []TriviaPrompt {
	if prompts == nil {
		return nil
	}
	out := make([]TriviaPrompt, len(prompts))
	copy(out, prompts)
	return out
}
