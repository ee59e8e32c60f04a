package room

import "strings"

// ReorderTurnOrder 调整本轮出场顺序。仅 ROUND_INTRO 阶段可用；
// 列表必须与现有队伍集合一一对应（无空项、无重复、无遗漏）。
// 成功后游标归零、完成名单清空，自定义顺序延续到后续轮次
func (e *Engine) ReorderTurnOrder(teamIDs []string) *RoomState {
	if e.state.FatalError != nil || e.state.Phase != PhaseRoundIntro {
		return e.Snapshot()
	}

	s := e.state
	if len(teamIDs) == 0 || len(teamIDs) != len(s.Teams) {
		return e.Snapshot()
	}

	seen := make(map[string]bool, len(teamIDs))
	for _, id := range teamIDs {
		if strings.TrimSpace(id) == "" || seen[id] || s.teamByID(id) == nil {
			return e.Snapshot()
		}
		seen[id] = true
	}

	s.TurnOrderTeamIDs = make([]string, len(teamIDs))
	copy(s.TurnOrderTeamIDs, teamIDs)
	s.RoundTurnCursor = 0
	s.ActiveRoundTeamID = s.TurnOrderTeamIDs[0]
	s.CompletedRoundTurnTeamIDs = []string{}
	e.turnOrderCustomized = true

	return e.Snapshot()
}
