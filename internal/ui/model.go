package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/wing-night/internal/game/room"
	"github.com/palemoky/wing-night/internal/sound"
)

// connStatus 大屏连接状态
type connStatus int

const (
	statusConnecting connStatus = iota
	statusJoined
	statusRoomClosed
	statusDisconnected
)

// connMsg 连接建立结果
type connMsg struct {
	conn *Conn
	err  error
}

// tickMsg 每秒刷新倒计时
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model 大屏端 bubbletea 模型，只读渲染服务端广播的房间状态
type Model struct {
	serverURL string
	roomCode  string

	conn   *Conn
	sounds *sound.SoundManager

	status  connStatus
	state   *room.RoomState
	errText string

	lastPhase      room.Phase
	timerCuePlayed bool

	spinner  spinner.Model
	timerBar progress.Model

	width  int
	height int
}

// NewModel 创建大屏模型。sounds 可为 nil，表示静音运行
func NewModel(serverURL, roomCode string, sounds *sound.SoundManager) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = timerStyle

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40

	return Model{
		serverURL: serverURL,
		roomCode:  roomCode,
		sounds:    sounds,
		status:    statusConnecting,
		spinner:   sp,
		timerBar:  bar,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.connect(), m.spinner.Tick, tick())
}

// connect 建立 WebSocket 连接并加入房间
func (m Model) connect() tea.Cmd {
	serverURL, roomCode := m.serverURL, m.roomCode
	return func() tea.Msg {
		conn, err := Dial(serverURL, roomCode)
		return connMsg{conn: conn, err: err}
	}
}

// waitForServer 等待下一条服务端消息
func (m Model) waitForServer() tea.Cmd {
	conn := m.conn
	return func() tea.Msg {
		return conn.Recv()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 12; w > 10 && w < 60 {
			m.timerBar.Width = w
		}
		return m, nil

	case spinner.TickMsg:
		if m.status != statusConnecting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.conn != nil {
				m.conn.Close()
			}
			return m, tea.Quit
		}
		return m, nil

	case connMsg:
		if msg.err != nil {
			m.status = statusDisconnected
			m.errText = msg.err.Error()
			return m, nil
		}
		m.conn = msg.conn
		return m, m.waitForServer()

	case ConnectedMsg:
		m.status = statusJoined
		return m, m.waitForServer()

	case StateMsg:
		m.applyState(msg.State)
		return m, m.waitForServer()

	case ErrMsg:
		m.errText = msg.Message
		return m, m.waitForServer()

	case ClosedMsg:
		m.status = statusRoomClosed
		return m, nil

	case DisconnectedMsg:
		if m.status != statusRoomClosed {
			m.status = statusDisconnected
			if msg.Err != nil {
				m.errText = msg.Err.Error()
			}
		}
		return m, nil

	case tickMsg:
		m.checkTimerCue()
		return m, tick()
	}

	return m, nil
}

// applyState 接收新快照并触发对应音效
func (m *Model) applyState(state *room.RoomState) {
	prev := m.state
	m.state = state

	if state.Phase != m.lastPhase {
		m.lastPhase = state.Phase
		m.timerCuePlayed = false
		if state.Phase == room.PhaseFinalResults {
			m.play(sound.CueFinal)
		} else {
			m.play(sound.CuePhaseChange)
		}
	}

	if prev != nil && prev.Timer != nil && state.Timer != nil &&
		state.Timer.StartedAt != prev.Timer.StartedAt {
		m.timerCuePlayed = false
	}

	// 待结算小游戏分上涨说明现场答对了
	if prev != nil && state.ActiveTurnTeamID != "" {
		teamID := state.ActiveTurnTeamID
		if state.PendingMinigamePointsByTeamID[teamID] > prev.PendingMinigamePointsByTeamID[teamID] {
			m.play(sound.CueCorrect)
		}
	}
}

// checkTimerCue 倒计时归零时播放一次提示音
func (m *Model) checkTimerCue() {
	if m.state == nil || m.timerCuePlayed {
		return
	}
	remaining, ok := m.remainingMs()
	if ok && remaining <= 0 {
		m.timerCuePlayed = true
		m.play(sound.CueTimerEnd)
	}
}

// remainingMs 按本地墙钟推算倒计时剩余毫秒数
func (m Model) remainingMs() (int64, bool) {
	if m.state == nil || m.state.Timer == nil {
		return 0, false
	}
	t := m.state.Timer
	if t.IsPaused {
		return t.RemainingMs, true
	}
	remaining := t.EndsAt - time.Now().UnixMilli()
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

func (m Model) play(cue string) {
	if m.sounds != nil {
		m.sounds.Play(cue)
	}
}
