package room

import (
	"log"
	"time"

	"github.com/palemoky/wing-night/internal/content"
)

// Engine 单个房间的权威状态引擎。
//
// 引擎本身不加锁：按单写者语义设计，同一房间的调用必须由外层
// （传输层的房间管理器）串行化。所有变更方法都返回一份深拷贝快照，
// 非法调用静默忽略并返回未变的快照，引擎边界不抛错误。
type Engine struct {
	clock func() time.Time
	state *RoomState

	teamSeq             int
	turnOrderCustomized bool
	roundCommitted      bool
	history             *historySlot

	triviaPrompts []content.TriviaPrompt
	runtimes      map[content.MinigameType]Runtime
}

// NewEngine 创建引擎，clock 注入钟源以便测试
func NewEngine(clock func() time.Time) *Engine {
	e := &Engine{
		clock: clock,
		state: newRoomState(),
	}
	e.runtimes = map[content.MinigameType]Runtime{
		content.MinigameTrivia:  newTriviaRuntime(e),
		content.MinigameGeo:     newUnsupportedRuntime(content.MinigameGeo),
		content.MinigameDrawing: newUnsupportedRuntime(content.MinigameDrawing),
	}
	return e
}

// NewEngineDefault 创建使用系统时钟的引擎
func NewEngineDefault() *Engine {
	return NewEngine(time.Now)
}

// Snapshot 返回当前状态的深拷贝快照，派生字段在此重算
func (e *Engine) Snapshot() *RoomState {
	e.refreshTimer()
	e.state.CanRedoScoringMutation = e.history != nil
	e.state.CanAdvancePhase = e.canAdvance()
	return e.state.clone()
}

// SetGameConfig 载入游戏内容。入参深拷贝隔离；
// 副作用：重置总轮数、当前轮配置与待结算分
func (e *Engine) SetGameConfig(game *content.GameDefinition) *RoomState {
	if e.state.FatalError != nil || game == nil {
		return e.Snapshot()
	}

	s := e.state
	s.GameConfig = game.Clone()
	s.TotalRounds = len(s.GameConfig.Rounds)
	s.CurrentRoundConfig = nil
	s.PendingWingPointsByTeamID = map[string]int{}
	s.PendingMinigamePointsByTeamID = map[string]int{}

	log.Printf("🧾 游戏内容已载入: %s (%d 轮)", s.GameConfig.Name, s.TotalRounds)
	return e.Snapshot()
}

// SetTriviaPrompts 载入答题题库，入参深拷贝隔离
func (e *Engine) SetTriviaPrompts(prompts []content.TriviaPrompt) *RoomState {
	if e.state.FatalError != nil {
		return e.Snapshot()
	}
	e.triviaPrompts = content.ClonePrompts(prompts)
	return e.Snapshot()
}

// SetFatalError 进入终态：强制回到 SETUP 并清空队伍，
// 之后所有变更方法均为无操作，只有完全重置能恢复
func (e *Engine) SetFatalError(code int, message string) *RoomState {
	if e.state.FatalError != nil {
		return e.Snapshot()
	}

	s := e.state
	s.FatalError = &FatalError{Code: code, Message: message}
	s.Phase = PhaseSetup
	s.Teams = []Team{}
	s.TurnOrderTeamIDs = []string{}
	s.CompletedRoundTurnTeamIDs = []string{}
	s.RoundTurnCursor = -1
	s.ActiveRoundTeamID = ""
	s.ActiveTurnTeamID = ""
	s.CurrentRound = 0
	s.CurrentRoundConfig = nil
	s.WingParticipationByPlayerID = map[string]bool{}
	s.PendingWingPointsByTeamID = map[string]int{}
	s.PendingMinigamePointsByTeamID = map[string]int{}
	s.MinigameHostView = nil
	s.MinigameDisplayView = nil
	s.Timer = nil
	e.history = nil
	for _, rt := range e.runtimes {
		rt.Reset()
	}

	log.Printf("💥 房间进入致命错误状态: [%d] %s", code, message)
	return e.Snapshot()
}

// Reset 完全重置房间，清除包括致命错误在内的所有状态
func (e *Engine) Reset() *RoomState {
	e.state = newRoomState()
	e.teamSeq = 0
	e.turnOrderCustomized = false
	e.roundCommitted = false
	e.history = nil
	e.triviaPrompts = nil
	for _, rt := range e.runtimes {
		rt.Reset()
	}

	log.Printf("🧹 房间已完全重置")
	return e.Snapshot()
}
