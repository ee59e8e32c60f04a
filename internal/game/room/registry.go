package room

import (
	"fmt"
	"strings"
)

// SetPlayers 整体替换玩家名单，入参深拷贝隔离。
// 不再存在的玩家同时移出队伍与参与记录
func (e *Engine) SetPlayers(players []Player) *RoomState {
	if e.state.FatalError != nil {
		return e.Snapshot()
	}

	s := e.state
	s.Players = make([]Player, len(players))
	copy(s.Players, players)

	known := make(map[string]bool, len(s.Players))
	for _, p := range s.Players {
		known[p.ID] = true
	}
	for i := range s.Teams {
		team := &s.Teams[i]
		kept := team.PlayerIDs[:0]
		for _, pid := range team.PlayerIDs {
			if known[pid] {
				kept = append(kept, pid)
			}
		}
		team.PlayerIDs = kept
	}
	for pid := range s.WingParticipationByPlayerID {
		if !known[pid] {
			delete(s.WingParticipationByPlayerID, pid)
		}
	}

	// 吃翅进行中裁掉玩家后，待结算分要跟着参与人数重算
	if s.Phase == PhaseEating && s.CurrentRoundConfig != nil {
		if team := s.teamByID(s.ActiveRoundTeamID); team != nil {
			eaters := 0
			for _, pid := range team.PlayerIDs {
				if s.WingParticipationByPlayerID[pid] {
					eaters++
				}
			}
			s.PendingWingPointsByTeamID[team.ID] = eaters * s.CurrentRoundConfig.PointsPerPlayer
		}
	}

	return e.Snapshot()
}

// CreateTeam 创建队伍。仅 SETUP 阶段可用；名称去除首尾空白，
// 空名称忽略；ID 按创建顺序递增且不复用
func (e *Engine) CreateTeam(name string) *RoomState {
	if e.state.FatalError != nil || e.state.Phase != PhaseSetup {
		return e.Snapshot()
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return e.Snapshot()
	}

	e.teamSeq++
	e.state.Teams = append(e.state.Teams, Team{
		ID:        fmt.Sprintf("team-%d", e.teamSeq),
		Name:      name,
		PlayerIDs: []string{},
	})

	return e.Snapshot()
}

// AssignPlayerToTeam 把玩家分配到队伍（teamID 为空表示移出所有队伍）。
// 仅 SETUP 阶段可用；玩家最多同时属于一支队伍；
// 未知的 playerID/teamID 静默忽略
func (e *Engine) AssignPlayerToTeam(playerID, teamID string) *RoomState {
	if e.state.FatalError != nil || e.state.Phase != PhaseSetup {
		return e.Snapshot()
	}

	s := e.state
	if s.playerByID(playerID) == nil {
		return e.Snapshot()
	}

	var target *Team
	if teamID != "" {
		target = s.teamByID(teamID)
		if target == nil {
			return e.Snapshot()
		}
	}

	// 先从原队伍移除，保证成员关系互斥
	for i := range s.Teams {
		team := &s.Teams[i]
		for j, pid := range team.PlayerIDs {
			if pid == playerID {
				team.PlayerIDs = append(team.PlayerIDs[:j], team.PlayerIDs[j+1:]...)
				break
			}
		}
	}

	if target != nil {
		target.PlayerIDs = append(target.PlayerIDs, playerID)
	}

	return e.Snapshot()
}
