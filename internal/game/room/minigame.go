package room

import (
	"github.com/palemoky/wing-night/internal/content"
)

// runtimeAPIVersion 本构建实现的小游戏运行时契约版本
const runtimeAPIVersion = 1

// Compatibility 配置版本与运行时契约版本的兼容结论
type Compatibility string

const (
	Compatible Compatibility = "COMPATIBLE"
	Mismatch   Compatibility = "MISMATCH"
)

// Capabilities 运行时声明的投影能力
type Capabilities struct {
	HostView    bool
	DisplayView bool
}

// MinigameHostView 主持端投影：包含答案与剩余尝试次数
type MinigameHostView struct {
	Minigame          content.MinigameType `json:"minigame"`
	Question          string               `json:"question"`
	Answer            string               `json:"answer"`
	PromptIndex       int                  `json:"promptIndex"`
	PromptCount       int                  `json:"promptCount"`
	AttemptsRemaining int                  `json:"attemptsRemaining"`
	PointsEarned      int                  `json:"pointsEarned"`
}

// MinigameDisplayView 大屏投影：只含题面，不泄露答案
type MinigameDisplayView struct {
	Minigame    content.MinigameType `json:"minigame"`
	Question    string               `json:"question"`
	PromptIndex int                  `json:"promptIndex"`
	PromptCount int                  `json:"promptCount"`
}

// Action 小游戏动作
type Action interface {
	minigameAction()
}

// AttemptAction 记录一次答题尝试
type AttemptAction struct {
	IsCorrect bool
}

func (AttemptAction) minigameAction() {}

// RuntimeState 运行时回合状态的不透明快照，用于回放历史
type RuntimeState interface{}

// Runtime 小游戏运行时契约。引擎在 MINIGAME_PLAY 边界调用 InitTurn
// 初始化回合投影，经 Apply 接收动作，回合结束或回退时 Reset。
// Apply 返回状态是否发生了可观察变化
type Runtime interface {
	Type() content.MinigameType
	APIVersion() int
	Capabilities() Capabilities
	Compatibility(configuredVersion int) Compatibility

	InitTurn(teamID string)
	Apply(action Action) bool
	HostView() *MinigameHostView
	DisplayView() *MinigameDisplayView

	CloneState() RuntimeState
	RestoreState(state RuntimeState)
	Reset()
}

// unsupportedRuntime 空对象运行时：无投影能力，整个回合投影保持为空，
// 阶段机照常走完该轮流程，这是合法结果而非错误
type unsupportedRuntime struct {
	minigame content.MinigameType
}

func newUnsupportedRuntime(minigame content.MinigameType) *unsupportedRuntime {
	return &unsupportedRuntime{minigame: minigame}
}

func (r *unsupportedRuntime) Type() content.MinigameType { return r.minigame }
func (r *unsupportedRuntime) APIVersion() int            { return runtimeAPIVersion }
func (r *unsupportedRuntime) Capabilities() Capabilities { return Capabilities{} }

func (r *unsupportedRuntime) Compatibility(configuredVersion int) Compatibility {
	if configuredVersion == runtimeAPIVersion {
		return Compatible
	}
	return Mismatch
}

func (r *unsupportedRuntime) InitTurn(string)                    {}
func (r *unsupportedRuntime) Apply(Action) bool                  { return false }
func (r *unsupportedRuntime) HostView() *MinigameHostView        { return nil }
func (r *unsupportedRuntime) DisplayView() *MinigameDisplayView  { return nil }
func (r *unsupportedRuntime) CloneState() RuntimeState           { return nil }
func (r *unsupportedRuntime) RestoreState(RuntimeState)          {}
func (r *unsupportedRuntime) Reset()                             {}
