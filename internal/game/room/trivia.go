package room

import (
	"github.com/palemoky/wing-night/internal/content"
)

// 每道题的尝试次数
const triviaAttemptsPerPrompt = 2

// triviaTurnState 答题回合状态
type triviaTurnState struct {
	teamID            string
	promptIndex       int
	attemptsRemaining int
	pointsEarned      int
	exhausted         bool // 题目用尽
}

// triviaRuntime 答题小游戏运行时
type triviaRuntime struct {
	engine *Engine
	turn   *triviaTurnState
}

func newTriviaRuntime(engine *Engine) *triviaRuntime {
	return &triviaRuntime{engine: engine}
}

func (r *triviaRuntime) Type() content.MinigameType { return content.MinigameTrivia }
func (r *triviaRuntime) APIVersion() int            { return runtimeAPIVersion }

func (r *triviaRuntime) Capabilities() Capabilities {
	return Capabilities{HostView: true, DisplayView: true}
}

func (r *triviaRuntime) Compatibility(configuredVersion int) Compatibility {
	if configuredVersion == runtimeAPIVersion {
		return Compatible
	}
	return Mismatch
}

// InitTurn 初始化一队的答题回合：第一题、尝试次数满额
func (r *triviaRuntime) InitTurn(teamID string) {
	r.turn = &triviaTurnState{
		teamID:            teamID,
		attemptsRemaining: triviaAttemptsPerPrompt,
		exhausted:         len(r.engine.triviaPrompts) == 0,
	}
}

// Apply 处理一次答题尝试。答对得分并进入下一题，
// 尝试用尽也进入下一题。题目用尽后动作不再改变状态
func (r *triviaRuntime) Apply(action Action) bool {
	attempt, ok := action.(AttemptAction)
	if !ok || r.turn == nil || r.turn.exhausted {
		return false
	}

	if attempt.IsCorrect {
		r.turn.pointsEarned++
		r.advancePrompt()
		return true
	}

	r.turn.attemptsRemaining--
	if r.turn.attemptsRemaining <= 0 {
		r.advancePrompt()
	}
	return true
}

// advancePrompt 进入下一题并重置尝试次数
func (r *triviaRuntime) advancePrompt() {
	r.turn.promptIndex++
	r.turn.attemptsRemaining = triviaAttemptsPerPrompt
	if r.turn.promptIndex >= len(r.engine.triviaPrompts) {
		r.turn.exhausted = true
	}
}

func (r *triviaRuntime) HostView() *MinigameHostView {
	if r.turn == nil {
		return nil
	}

	view := &MinigameHostView{
		Minigame:          content.MinigameTrivia,
		PromptIndex:       r.turn.promptIndex,
		PromptCount:       len(r.engine.triviaPrompts),
		AttemptsRemaining: r.turn.attemptsRemaining,
		PointsEarned:      r.turn.pointsEarned,
	}
	if !r.turn.exhausted {
		prompt := r.engine.triviaPrompts[r.turn.promptIndex]
		view.Question = prompt.Question
		view.Answer = prompt.Answer
	}
	return view
}

func (r *triviaRuntime) DisplayView() *MinigameDisplayView {
	if r.turn == nil {
		return nil
	}

	view := &MinigameDisplayView{
		Minigame:    content.MinigameTrivia,
		PromptIndex: r.turn.promptIndex,
		PromptCount: len(r.engine.triviaPrompts),
	}
	if !r.turn.exhausted {
		view.Question = r.engine.triviaPrompts[r.turn.promptIndex].Question
	}
	return view
}

func (r *triviaRuntime) CloneState() RuntimeState {
	if r.turn == nil {
		return nil
	}
	turn := *r.turn
	return &turn
}

func (r *triviaRuntime) RestoreState(state RuntimeState) {
	if state == nil {
		r.turn = nil
		return
	}
	if turn, ok := state.(*triviaTurnState); ok {
		copied := *turn
		r.turn = &copied
	}
}

func (r *triviaRuntime) Reset() {
	r.turn = nil
}
