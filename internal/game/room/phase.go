package room

import "log"

// Phase 房间阶段
type Phase string

const (
	PhaseSetup         Phase = "SETUP"
	PhaseIntro         Phase = "INTRO"
	PhaseRoundIntro    Phase = "ROUND_INTRO"
	PhaseEating        Phase = "EATING"
	PhaseMinigameIntro Phase = "MINIGAME_INTRO"
	PhaseMinigamePlay  Phase = "MINIGAME_PLAY"
	PhaseRoundResults  Phase = "ROUND_RESULTS"
	PhaseFinalResults  Phase = "FINAL_RESULTS"
)

func (p Phase) String() string {
	return string(p)
}

// isTurnLoop 是否属于每队回合子循环
func (p Phase) isTurnLoop() bool {
	switch p {
	case PhaseEating, PhaseMinigameIntro, PhaseMinigamePlay:
		return true
	}
	return false
}

// transition 单个阶段的前进规则：guard 校验前置条件，apply 执行副作用并返回下一阶段
type transition struct {
	guard func(e *Engine) bool
	apply func(e *Engine) Phase
}

// transitions 阶段转移表。FINAL_RESULTS 不在表中：到达后前进调用自环为无操作
var transitions = map[Phase]transition{
	PhaseSetup: {
		guard: func(e *Engine) bool { return e.setupValid() },
		apply: func(e *Engine) Phase { return PhaseIntro },
	},
	PhaseIntro: {
		guard: alwaysAllowed,
		apply: func(e *Engine) Phase {
			e.startRound(1)
			return PhaseRoundIntro
		},
	},
	PhaseRoundIntro: {
		guard: alwaysAllowed,
		apply: func(e *Engine) Phase {
			e.beginEatingTurn()
			return PhaseEating
		},
	},
	PhaseEating: {
		guard: alwaysAllowed,
		apply: func(e *Engine) Phase {
			e.clearTimer()
			return PhaseMinigameIntro
		},
	},
	PhaseMinigameIntro: {
		guard: alwaysAllowed,
		apply: func(e *Engine) Phase {
			e.beginMinigamePlay()
			return PhaseMinigamePlay
		},
	},
	PhaseMinigamePlay: {
		guard: alwaysAllowed,
		apply: func(e *Engine) Phase { return e.finishTurn() },
	},
	PhaseRoundResults: {
		guard: alwaysAllowed,
		apply: func(e *Engine) Phase {
			if e.state.CurrentRound < e.state.TotalRounds {
				e.startRound(e.state.CurrentRound + 1)
				return PhaseRoundIntro
			}
			return PhaseFinalResults
		},
	},
}

func alwaysAllowed(*Engine) bool { return true }

// AdvancePhase 推进阶段。前置条件不满足或已到终态时为无操作
func (e *Engine) AdvancePhase() *RoomState {
	if e.state.FatalError != nil {
		return e.Snapshot()
	}

	t, ok := transitions[e.state.Phase]
	if !ok || !t.guard(e) {
		return e.Snapshot()
	}

	prev := e.state.Phase
	e.state.Phase = t.apply(e)
	log.Printf("🔄 阶段切换: %s → %s (第 %d 轮)", prev, e.state.Phase, e.state.CurrentRound)

	return e.Snapshot()
}

// RevertPhaseTransition 回退一步，仅在回合子循环内有定义：
// MINIGAME_PLAY → MINIGAME_INTRO、MINIGAME_INTRO → EATING（重新计时）、
// 本轮首队的 EATING → ROUND_INTRO。其余场景为无操作
func (e *Engine) RevertPhaseTransition() *RoomState {
	if e.state.FatalError != nil {
		return e.Snapshot()
	}

	prev := e.state.Phase
	switch e.state.Phase {
	case PhaseMinigamePlay:
		e.clearTimer()
		e.resetMinigameTurn()
		e.state.Phase = PhaseMinigameIntro
	case PhaseMinigameIntro:
		// 同一队伍继续吃翅，保留已记录的参与情况，计时器重新走满
		e.startTimer(PhaseEating, e.state.GameConfig.Timers.EatingSeconds)
		e.state.Phase = PhaseEating
	case PhaseEating:
		if e.state.RoundTurnCursor == 0 && len(e.state.CompletedRoundTurnTeamIDs) == 0 {
			e.clearTimer()
			e.state.Phase = PhaseRoundIntro
		}
	}

	if prev != e.state.Phase {
		log.Printf("↩️ 阶段回退: %s → %s (第 %d 轮)", prev, e.state.Phase, e.state.CurrentRound)
	}
	return e.Snapshot()
}

// SkipTurnBoundary 强制结束当前队伍的回合，效果等同于正常推进到
// 下一队的 EATING 或 ROUND_RESULTS，已记录的待结算分保留
func (e *Engine) SkipTurnBoundary() *RoomState {
	if e.state.FatalError != nil || !e.state.Phase.isTurnLoop() {
		return e.Snapshot()
	}

	prev := e.state.Phase
	e.state.Phase = e.finishTurn()
	log.Printf("⏭️ 跳过回合边界: %s → %s (第 %d 轮)", prev, e.state.Phase, e.state.CurrentRound)

	return e.Snapshot()
}

// setupValid SETUP → INTRO 的前置条件：内容已加载、每队至少一人、无未分队玩家
func (e *Engine) setupValid() bool {
	s := e.state
	if s.GameConfig == nil || len(s.Players) == 0 || len(s.Teams) == 0 {
		return false
	}

	assigned := make(map[string]bool, len(s.Players))
	for _, team := range s.Teams {
		if len(team.PlayerIDs) == 0 {
			return false
		}
		for _, pid := range team.PlayerIDs {
			assigned[pid] = true
		}
	}
	for _, p := range s.Players {
		if !assigned[p.ID] {
			return false
		}
	}
	return true
}

// canAdvance 当前阶段的前进前置条件是否满足
func (e *Engine) canAdvance() bool {
	if e.state.FatalError != nil {
		return false
	}
	t, ok := transitions[e.state.Phase]
	return ok && t.guard(e)
}

// startRound 进入第 round 轮的 ROUND_INTRO：重置回合游标与完成名单，
// 出场顺序沿用自定义顺序，否则按建队顺序
func (e *Engine) startRound(round int) {
	s := e.state
	s.CurrentRound = round
	rc := s.GameConfig.Rounds[round-1]
	s.CurrentRoundConfig = &rc

	if !e.turnOrderCustomized || len(s.TurnOrderTeamIDs) != len(s.Teams) {
		s.TurnOrderTeamIDs = make([]string, len(s.Teams))
		for i, team := range s.Teams {
			s.TurnOrderTeamIDs[i] = team.ID
		}
	}

	s.RoundTurnCursor = 0
	s.ActiveRoundTeamID = s.TurnOrderTeamIDs[0]
	s.ActiveTurnTeamID = ""
	s.CompletedRoundTurnTeamIDs = []string{}
	s.WingParticipationByPlayerID = map[string]bool{}
	e.roundCommitted = false

	// 轮次边界使回放历史失效
	e.history = nil
}

// beginEatingTurn 开始一队的吃翅回合：清空参与记录并启动吃翅计时
func (e *Engine) beginEatingTurn() {
	e.state.WingParticipationByPlayerID = map[string]bool{}
	e.startTimer(PhaseEating, e.state.GameConfig.Timers.EatingSeconds)
}

// beginMinigamePlay 开始小游戏环节：启动对应小游戏的计时，
// 仅当该小游戏受支持且版本兼容时初始化回合投影
func (e *Engine) beginMinigamePlay() {
	s := e.state
	minigame := s.CurrentRoundConfig.Minigame
	e.startTimer(PhaseMinigamePlay, s.GameConfig.Timers.MinigameSeconds[minigame])

	rt := e.runtimes[minigame]
	if rt == nil || !rt.Capabilities().HostView {
		return
	}
	if rt.Compatibility(s.GameConfig.MinigameAPIVersion) != Compatible {
		log.Printf("⚠️ 小游戏 %s 版本不兼容，按不支持处理", minigame)
		return
	}

	rt.InitTurn(s.ActiveRoundTeamID)
	s.ActiveTurnTeamID = s.ActiveRoundTeamID
	e.refreshMinigameViews()
}

// finishTurn 结束当前队伍回合：还有队伍则进入下一队的 EATING，
// 否则结算本轮并进入 ROUND_RESULTS
func (e *Engine) finishTurn() Phase {
	s := e.state
	finished := s.ActiveRoundTeamID
	s.CompletedRoundTurnTeamIDs = append(s.CompletedRoundTurnTeamIDs, finished)

	e.clearTimer()
	e.resetMinigameTurn()

	if s.RoundTurnCursor+1 < len(s.TurnOrderTeamIDs) {
		s.RoundTurnCursor++
		s.ActiveRoundTeamID = s.TurnOrderTeamIDs[s.RoundTurnCursor]
		e.beginEatingTurn()
		return PhaseEating
	}

	e.commitRoundResults()
	return PhaseRoundResults
}

// commitRoundResults 把两类待结算分一次性计入总分。本轮只结算一次
func (e *Engine) commitRoundResults() {
	s := e.state
	if !e.roundCommitted {
		for i := range s.Teams {
			team := &s.Teams[i]
			team.TotalScore += s.PendingWingPointsByTeamID[team.ID] + s.PendingMinigamePointsByTeamID[team.ID]
		}
		e.roundCommitted = true
	}

	s.PendingWingPointsByTeamID = map[string]int{}
	s.PendingMinigamePointsByTeamID = map[string]int{}
	s.RoundTurnCursor = -1
	s.ActiveRoundTeamID = ""
	e.history = nil
}

// resetMinigameTurn 清除小游戏回合投影
func (e *Engine) resetMinigameTurn() {
	s := e.state
	if s.CurrentRoundConfig != nil {
		if rt := e.runtimes[s.CurrentRoundConfig.Minigame]; rt != nil {
			rt.Reset()
		}
	}
	s.ActiveTurnTeamID = ""
	s.MinigameHostView = nil
	s.MinigameDisplayView = nil
}

// refreshMinigameViews 由运行时投影重算主持/大屏视图
func (e *Engine) refreshMinigameViews() {
	s := e.state
	if s.ActiveTurnTeamID == "" {
		s.MinigameHostView = nil
		s.MinigameDisplayView = nil
		return
	}
	rt := e.runtimes[s.CurrentRoundConfig.Minigame]
	s.MinigameHostView = rt.HostView()
	s.MinigameDisplayView = rt.DisplayView()
}
