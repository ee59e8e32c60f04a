package room

import (
	"time"

	"github.com/palemoky/wing-night/internal/content"
)

// 本文件提供引擎测试共享的夹具

// fakeClock 可手动拨动的测试时钟
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// testGameDefinition 两轮标准测试内容：
// 第一轮 TRIVIA 每人 2 分，第二轮 GEO 每人 3 分
func testGameDefinition() *content.GameDefinition {
	return &content.GameDefinition{
		Name:               "Wing Night 测试局",
		MinigameAPIVersion: 1,
		Rounds: []content.RoundConfig{
			{Sauce: "蜂蜜芥末", Minigame: content.MinigameTrivia, PointsPerPlayer: 2},
			{Sauce: "魔鬼辣椒", Minigame: content.MinigameGeo, PointsPerPlayer: 3},
		},
		MinigameScoring: content.ScoringCaps{
			DefaultMax:    10,
			FinalRoundMax: 15,
		},
		Timers: content.TimerConfig{
			EatingSeconds: 90,
			MinigameSeconds: map[content.MinigameType]int{
				content.MinigameTrivia:  60,
				content.MinigameGeo:     45,
				content.MinigameDrawing: 120,
			},
		},
	}
}

func testPrompts() []content.TriviaPrompt {
	return []content.TriviaPrompt{
		{Question: "世界上最辣的辣椒是？", Answer: "卡罗莱纳死神椒"},
		{Question: "水牛城辣翅诞生于哪一年？", Answer: "1964"},
		{Question: "斯科维尔指数衡量什么？", Answer: "辣度"},
	}
}

// newTestEngine 构造完成设置的引擎：两名玩家各属一队，内容与题库已载入
func newTestEngine() (*Engine, *fakeClock) {
	clock := newFakeClock()
	e := NewEngine(clock.Now)

	e.SetGameConfig(testGameDefinition())
	e.SetTriviaPrompts(testPrompts())
	e.SetPlayers([]Player{
		{ID: "player-1", Name: "小红"},
		{ID: "player-2", Name: "小蓝"},
	})
	e.CreateTeam("红队")
	e.CreateTeam("蓝队")
	e.AssignPlayerToTeam("player-1", "team-1")
	e.AssignPlayerToTeam("player-2", "team-2")

	return e, clock
}

// advanceTo 连续推进直到到达目标阶段（最多推进若干步，防止死循环）
func advanceTo(e *Engine, target Phase) *RoomState {
	snap := e.Snapshot()
	for i := 0; i < 32 && snap.Phase != target; i++ {
		snap = e.AdvancePhase()
	}
	return snap
}
