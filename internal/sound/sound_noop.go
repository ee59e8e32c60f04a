//go:build ci

package sound

// 大屏端音效名，与正常构建保持一致
const (
	CuePhaseChange = "phase_change"
	CueTimerEnd    = "timer_end"
	CueCorrect     = "correct"
	CueWrong       = "wrong"
	CueFinal       = "final"
)

type SoundManager struct{}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Play(name string) {
	// No-op
}

func (sm *SoundManager) Close() {
	// No-op
}
