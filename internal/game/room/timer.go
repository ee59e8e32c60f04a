package room

// TimerExtendMaxSeconds 单次延长计时器的秒数上限
const TimerExtendMaxSeconds = 300

// Timer 倒计时状态。时间戳为 Unix 毫秒；RemainingMs 为派生值，
// 运行中时在每次快照时按墙钟惰性重算，暂停时冻结
type Timer struct {
	Phase       Phase `json:"phase"`
	StartedAt   int64 `json:"startedAt"`
	EndsAt      int64 `json:"endsAt"`
	DurationMs  int64 `json:"durationMs"`
	IsPaused    bool  `json:"isPaused"`
	RemainingMs int64 `json:"remainingMs"`
}

// startTimer 为指定阶段启动倒计时
func (e *Engine) startTimer(phase Phase, seconds int) {
	now := e.clock().UnixMilli()
	durationMs := int64(seconds) * 1000
	e.state.Timer = &Timer{
		Phase:       phase,
		StartedAt:   now,
		EndsAt:      now + durationMs,
		DurationMs:  durationMs,
		RemainingMs: durationMs,
	}
}

// clearTimer 移除计时器
func (e *Engine) clearTimer() {
	e.state.Timer = nil
}

// refreshTimer 运行中计时器按当前墙钟重算剩余时间，到 0 封底
func (e *Engine) refreshTimer() {
	t := e.state.Timer
	if t == nil || t.IsPaused {
		return
	}
	remaining := t.EndsAt - e.clock().UnixMilli()
	if remaining < 0 {
		remaining = 0
	}
	t.RemainingMs = remaining
}

// PauseTimer 暂停计时器，仅在计时器运行中有效
func (e *Engine) PauseTimer() *RoomState {
	if e.state.FatalError != nil {
		return e.Snapshot()
	}

	t := e.state.Timer
	if t == nil || t.IsPaused {
		return e.Snapshot()
	}

	remaining := t.EndsAt - e.clock().UnixMilli()
	if remaining < 0 {
		remaining = 0
	}
	t.RemainingMs = remaining
	t.IsPaused = true

	return e.Snapshot()
}

// ResumeTimer 恢复计时器，仅在暂停中有效；从当前时刻续走剩余时间
func (e *Engine) ResumeTimer() *RoomState {
	if e.state.FatalError != nil {
		return e.Snapshot()
	}

	t := e.state.Timer
	if t == nil || !t.IsPaused {
		return e.Snapshot()
	}

	now := e.clock().UnixMilli()
	t.StartedAt = now
	t.EndsAt = now + t.RemainingMs
	t.IsPaused = false

	return e.Snapshot()
}

// ExtendTimer 延长计时器。秒数必须为正且不超过 TimerExtendMaxSeconds；
// 终点和总时长同步加长
func (e *Engine) ExtendTimer(additionalSeconds int) *RoomState {
	if e.state.FatalError != nil {
		return e.Snapshot()
	}

	t := e.state.Timer
	if t == nil || additionalSeconds <= 0 || additionalSeconds > TimerExtendMaxSeconds {
		return e.Snapshot()
	}

	extraMs := int64(additionalSeconds) * 1000
	t.EndsAt += extraMs
	t.DurationMs += extraMs
	if t.IsPaused {
		t.RemainingMs += extraMs
	}

	return e.Snapshot()
}
