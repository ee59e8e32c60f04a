package room

import (
	"github.com/palemoky/wing-night/internal/content"
)

// historyKind 可回放计分变更的类型标签
type historyKind string

const (
	historyWingParticipation historyKind = "wingParticipation"
	historyMinigamePoints    historyKind = "minigamePoints"
	historyScoreAdjustment   historyKind = "scoreAdjustment"
)

// historySlot 单槽历史：保存最近一次可回放计分变更之前的字段值。
// 每次产生可观察变化的计分变更都会覆盖它，轮次边界和完全重置会清空它
type historySlot struct {
	kind historyKind

	wingParticipation map[string]bool
	pendingWing       map[string]int

	pendingMinigame map[string]int
	runtimeMinigame content.MinigameType
	runtimeState    RuntimeState

	adjustTeamID    string
	adjustPrevScore int
}

// newWingHistory 保存吃翅参与相关字段的当前值
func (e *Engine) newWingHistory() *historySlot {
	return &historySlot{
		kind:              historyWingParticipation,
		wingParticipation: cloneBoolMap(e.state.WingParticipationByPlayerID),
		pendingWing:       cloneIntMap(e.state.PendingWingPointsByTeamID),
	}
}

// newMinigameHistory 保存小游戏待结算分与运行时回合状态的当前值
func (e *Engine) newMinigameHistory() *historySlot {
	minigame := e.state.CurrentRoundConfig.Minigame
	return &historySlot{
		kind:            historyMinigamePoints,
		pendingMinigame: cloneIntMap(e.state.PendingMinigamePointsByTeamID),
		runtimeMinigame: minigame,
		runtimeState:    e.runtimes[minigame].CloneState(),
	}
}

// newAdjustmentHistory 保存调分前的总分
func (e *Engine) newAdjustmentHistory(teamID string, prevScore int) *historySlot {
	return &historySlot{
		kind:            historyScoreAdjustment,
		adjustTeamID:    teamID,
		adjustPrevScore: prevScore,
	}
}

// RedoLastScoringMutation 回放最近一次可回放的计分变更：只还原计分相关
// 字段，不触碰阶段与计时器。被换下的当前值回写入槽位，因此连续调用
// 会在最近两份计分状态之间往复
func (e *Engine) RedoLastScoringMutation() *RoomState {
	if e.state.FatalError != nil || e.history == nil {
		return e.Snapshot()
	}

	s := e.state
	saved := e.history

	switch saved.kind {
	case historyWingParticipation:
		e.history = e.newWingHistory()
		s.WingParticipationByPlayerID = cloneBoolMap(saved.wingParticipation)
		s.PendingWingPointsByTeamID = cloneIntMap(saved.pendingWing)

	case historyMinigamePoints:
		displaced := &historySlot{
			kind:            historyMinigamePoints,
			pendingMinigame: cloneIntMap(s.PendingMinigamePointsByTeamID),
			runtimeMinigame: saved.runtimeMinigame,
			runtimeState:    e.runtimes[saved.runtimeMinigame].CloneState(),
		}
		e.history = displaced

		s.PendingMinigamePointsByTeamID = cloneIntMap(saved.pendingMinigame)
		e.runtimes[saved.runtimeMinigame].RestoreState(saved.runtimeState)
		if s.ActiveTurnTeamID != "" {
			e.refreshMinigameViews()
		}

	case historyScoreAdjustment:
		if team := s.teamByID(saved.adjustTeamID); team != nil {
			e.history = e.newAdjustmentHistory(team.ID, team.TotalScore)
			team.TotalScore = saved.adjustPrevScore
		}
	}

	return e.Snapshot()
}
