package room

import (
	"math"

	"github.com/palemoky/wing-night/internal/content"
)

// SetWingParticipation 记录一名玩家本回合是否吃完。仅 EATING 阶段可用，
// 只接受当前出场队伍的玩家；重复写入相同值不产生变更也不覆盖历史。
// 吃翅待结算分 = 吃完人数 × 本轮每人分值
func (e *Engine) SetWingParticipation(playerID string, didEat bool) *RoomState {
	if e.state.FatalError != nil || e.state.Phase != PhaseEating {
		return e.Snapshot()
	}

	s := e.state
	team := s.teamByID(s.ActiveRoundTeamID)
	if team == nil || !containsString(team.PlayerIDs, playerID) {
		return e.Snapshot()
	}

	if current, ok := s.WingParticipationByPlayerID[playerID]; ok && current == didEat {
		return e.Snapshot()
	}

	e.history = e.newWingHistory()
	s.WingParticipationByPlayerID[playerID] = didEat

	eaters := 0
	for _, pid := range team.PlayerIDs {
		if s.WingParticipationByPlayerID[pid] {
			eaters++
		}
	}
	s.PendingWingPointsByTeamID[team.ID] = eaters * s.CurrentRoundConfig.PointsPerPlayer

	return e.Snapshot()
}

// SetPendingMinigamePoints 设置当前出场队伍的小游戏待结算分。
// 仅 MINIGAME_PLAY 阶段可用；任何值非法（负数、非有限、非整数、超上限）
// 或出现非当前队伍的键时整个调用被拒绝；未给出的键视为 0
func (e *Engine) SetPendingMinigamePoints(pointsByTeamID map[string]float64) *RoomState {
	if e.state.FatalError != nil || e.state.Phase != PhaseMinigamePlay {
		return e.Snapshot()
	}

	s := e.state
	active := s.ActiveRoundTeamID
	if active == "" {
		return e.Snapshot()
	}

	maxPoints := e.minigameCap()
	for teamID, value := range pointsByTeamID {
		if teamID != active {
			return e.Snapshot() // 禁止跨队写入
		}
		// 上限比较必须在 float 域完成：超出 int 表示范围的值
		// 先转 int 会回绕成负数而绕过校验
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 ||
			value != math.Trunc(value) || value > float64(maxPoints) {
			return e.Snapshot()
		}
	}

	next := cloneIntMap(s.PendingMinigamePointsByTeamID)
	delete(next, active)
	for teamID, value := range pointsByTeamID {
		next[teamID] = int(value)
	}
	if intMapsEqual(next, s.PendingMinigamePointsByTeamID) {
		return e.Snapshot()
	}

	e.history = e.newMinigameHistory()
	s.PendingMinigamePointsByTeamID = next

	return e.Snapshot()
}

// RecordTriviaAttempt 记录一次答题尝试。仅在 TRIVIA 的 MINIGAME_PLAY
// 中有效；委托运行时推进题目/尝试次数，答对加 1 分（受上限约束）
func (e *Engine) RecordTriviaAttempt(isCorrect bool) *RoomState {
	if e.state.FatalError != nil || e.state.Phase != PhaseMinigamePlay {
		return e.Snapshot()
	}

	s := e.state
	if s.CurrentRoundConfig == nil || s.CurrentRoundConfig.Minigame != content.MinigameTrivia ||
		s.ActiveTurnTeamID == "" {
		return e.Snapshot()
	}

	saved := e.newMinigameHistory()

	rt := e.runtimes[s.CurrentRoundConfig.Minigame]
	if !rt.Apply(AttemptAction{IsCorrect: isCorrect}) {
		return e.Snapshot() // 题目已用尽，无可观察变化
	}

	if isCorrect {
		points := s.PendingMinigamePointsByTeamID[s.ActiveTurnTeamID] + 1
		if maxPoints := e.minigameCap(); points > maxPoints {
			points = maxPoints
		}
		s.PendingMinigamePointsByTeamID[s.ActiveTurnTeamID] = points
	}

	e.history = saved
	e.refreshMinigameViews()

	return e.Snapshot()
}

// AdjustTeamScore 主持人直接调整总分。SETUP 之外任意阶段可用；
// 增量必须为非零整数，未知队伍忽略
func (e *Engine) AdjustTeamScore(teamID string, delta int) *RoomState {
	if e.state.FatalError != nil || e.state.Phase == PhaseSetup || delta == 0 {
		return e.Snapshot()
	}

	team := e.state.teamByID(teamID)
	if team == nil {
		return e.Snapshot()
	}

	e.history = e.newAdjustmentHistory(team.ID, team.TotalScore)
	team.TotalScore += delta

	return e.Snapshot()
}

// minigameCap 本轮小游戏计分上限，末轮使用 finalRoundMax
func (e *Engine) minigameCap() int {
	caps := e.state.GameConfig.MinigameScoring
	if e.state.CurrentRound == e.state.TotalRounds {
		return caps.FinalRoundMax
	}
	return caps.DefaultMax
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func intMapsEqual(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
