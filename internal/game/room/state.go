package room

import (
	"github.com/palemoky/wing-night/internal/content"
)

// Player 玩家
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team 队伍
type Team struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PlayerIDs  []string `json:"playerIds"`
	TotalScore int      `json:"totalScore"`
}

// FatalError 不可恢复的内容/状态错误，置位后阻塞所有变更直到完全重置
type FatalError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RoomState 单个房间的唯一权威状态
type RoomState struct {
	Phase        Phase `json:"phase"`
	CurrentRound int   `json:"currentRound"`
	TotalRounds  int   `json:"totalRounds"`

	Players []Player `json:"players"`
	Teams   []Team   `json:"teams"`

	GameConfig         *content.GameDefinition `json:"gameConfig"`
	CurrentRoundConfig *content.RoundConfig    `json:"currentRoundConfig"`

	TurnOrderTeamIDs          []string `json:"turnOrderTeamIds"`
	RoundTurnCursor           int      `json:"roundTurnCursor"`
	CompletedRoundTurnTeamIDs []string `json:"completedRoundTurnTeamIds"`
	ActiveRoundTeamID         string   `json:"activeRoundTeamId"`
	ActiveTurnTeamID          string   `json:"activeTurnTeamId"`

	WingParticipationByPlayerID   map[string]bool `json:"wingParticipationByPlayerId"`
	PendingWingPointsByTeamID     map[string]int  `json:"pendingWingPointsByTeamId"`
	PendingMinigamePointsByTeamID map[string]int  `json:"pendingMinigamePointsByTeamId"`

	MinigameHostView    *MinigameHostView    `json:"minigameHostView"`
	MinigameDisplayView *MinigameDisplayView `json:"minigameDisplayView"`

	Timer      *Timer      `json:"timer"`
	FatalError *FatalError `json:"fatalError"`

	// 派生字段，每次快照时重算
	CanRedoScoringMutation bool `json:"canRedoScoringMutation"`
	CanAdvancePhase        bool `json:"canAdvancePhase"`
}

// newRoomState 构造初始房间状态
func newRoomState() *RoomState {
	return &RoomState{
		Phase:                         PhaseSetup,
		RoundTurnCursor:               -1,
		Players:                       []Player{},
		Teams:                         []Team{},
		TurnOrderTeamIDs:              []string{},
		CompletedRoundTurnTeamIDs:     []string{},
		WingParticipationByPlayerID:   map[string]bool{},
		PendingWingPointsByTeamID:     map[string]int{},
		PendingMinigamePointsByTeamID: map[string]int{},
	}
}

// clone 深拷贝状态，保证快照与内部状态完全隔离
func (s *RoomState) clone() *RoomState {
	out := *s

	out.Players = make([]Player, len(s.Players))
	copy(out.Players, s.Players)

	out.Teams = make([]Team, len(s.Teams))
	for i, team := range s.Teams {
		t := team
		t.PlayerIDs = make([]string, len(team.PlayerIDs))
		copy(t.PlayerIDs, team.PlayerIDs)
		out.Teams[i] = t
	}

	out.GameConfig = s.GameConfig.Clone()
	if s.CurrentRoundConfig != nil {
		rc := *s.CurrentRoundConfig
		out.CurrentRoundConfig = &rc
	}

	out.TurnOrderTeamIDs = make([]string, len(s.TurnOrderTeamIDs))
	copy(out.TurnOrderTeamIDs, s.TurnOrderTeamIDs)
	out.CompletedRoundTurnTeamIDs = make([]string, len(s.CompletedRoundTurnTeamIDs))
	copy(out.CompletedRoundTurnTeamIDs, s.CompletedRoundTurnTeamIDs)

	out.WingParticipationByPlayerID = cloneBoolMap(s.WingParticipationByPlayerID)
	out.PendingWingPointsByTeamID = cloneIntMap(s.PendingWingPointsByTeamID)
	out.PendingMinigamePointsByTeamID = cloneIntMap(s.PendingMinigamePointsByTeamID)

	if s.MinigameHostView != nil {
		hv := *s.MinigameHostView
		out.MinigameHostView = &hv
	}
	if s.MinigameDisplayView != nil {
		dv := *s.MinigameDisplayView
		out.MinigameDisplayView = &dv
	}

	if s.Timer != nil {
		t := *s.Timer
		out.Timer = &t
	}
	if s.FatalError != nil {
		fe := *s.FatalError
		out.FatalError = &fe
	}

	return &out
}

// teamByID 按 ID 查找队伍
func (s *RoomState) teamByID(teamID string) *Team {
	for i := range s.Teams {
		if s.Teams[i].ID == teamID {
			return &s.Teams[i]
		}
	}
	return nil
}

// playerByID 按 ID 查找玩家
func (s *RoomState) playerByID(playerID string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == playerID {
			return &s.Players[i]
		}
	}
	return nil
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
