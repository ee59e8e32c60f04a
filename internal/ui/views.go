package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/palemoky/wing-night/internal/game/room"
)

// phaseLabels 各阶段的大屏标题
var phaseLabels = map[room.Phase]string{
	room.PhaseSetup:         "准备中",
	room.PhaseIntro:         "欢迎来到鸡翅之夜",
	room.PhaseRoundIntro:    "本轮酱料",
	room.PhaseEating:        "吃翅时间",
	room.PhaseMinigameIntro: "小游戏预告",
	room.PhaseMinigamePlay:  "小游戏进行中",
	room.PhaseRoundResults:  "本轮战报",
	room.PhaseFinalResults:  "最终结算",
}

func (m Model) View() string {
	switch m.status {
	case statusConnecting:
		return docStyle.Render(m.spinner.View() + " 连接服务器中...")
	case statusRoomClosed:
		return docStyle.Render(errorStyle.Render("房间已关闭") + "\n\n" + hintStyle.Render("按 q 退出"))
	case statusDisconnected:
		msg := errorStyle.Render("连接已断开")
		if m.errText != "" {
			msg += "\n" + hintStyle.Render(m.errText)
		}
		return docStyle.Render(msg + "\n\n" + hintStyle.Render("按 q 退出"))
	}

	if m.state == nil {
		return docStyle.Render("等待房间状态...")
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.state.Phase {
	case room.PhaseSetup:
		b.WriteString(m.renderSetup())
	case room.PhaseIntro:
		b.WriteString(m.renderIntro())
	case room.PhaseRoundIntro:
		b.WriteString(m.renderRoundIntro())
	case room.PhaseEating:
		b.WriteString(m.renderEating())
	case room.PhaseMinigameIntro:
		b.WriteString(m.renderMinigameIntro())
	case room.PhaseMinigamePlay:
		b.WriteString(m.renderMinigamePlay())
	case room.PhaseRoundResults:
		b.WriteString(m.renderRoundResults())
	case room.PhaseFinalResults:
		b.WriteString(m.renderFinalResults())
	}

	if m.state.FatalError != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("⚠️ 内容错误 [%d]: %s，需要重置房间", m.state.FatalError.Code, m.state.FatalError.Message)))
	}

	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("房间号 " + m.roomCode + " · 按 q 退出"))

	return docStyle.Render(b.String())
}

// renderHeader 标题行：游戏名、阶段、轮次、倒计时
func (m Model) renderHeader() string {
	s := m.state

	title := "鸡翅之夜"
	if s.GameConfig != nil && s.GameConfig.Name != "" {
		title = s.GameConfig.Name
	}

	parts := []string{titleStyle.Render(title), phaseLabels[s.Phase]}
	if s.CurrentRound > 0 {
		parts = append(parts, fmt.Sprintf("第 %d/%d 轮", s.CurrentRound, s.TotalRounds))
	}
	if timer := m.renderTimer(); timer != "" {
		parts = append(parts, timer)
	}

	return strings.Join(parts, "  ·  ")
}

// renderTimer 倒计时显示，mm:ss，最后 10 秒高亮
func (m Model) renderTimer() string {
	remaining, ok := m.remainingMs()
	if !ok {
		return ""
	}

	seconds := (remaining + 999) / 1000
	text := fmt.Sprintf("⏱ %02d:%02d", seconds/60, seconds%60)

	if m.state.Timer.IsPaused {
		return pausedStyle.Render(text + " (已暂停)")
	}
	if seconds <= 10 {
		return urgentStyle.Render(text)
	}
	return timerStyle.Render(text)
}

// renderTimerBar 倒计时进度条，随剩余时间缩短
func (m Model) renderTimerBar() string {
	remaining, ok := m.remainingMs()
	if !ok || m.state.Timer.DurationMs <= 0 {
		return ""
	}
	return m.timerBar.ViewAs(float64(remaining)/float64(m.state.Timer.DurationMs)) + "\n\n"
}

func (m Model) renderSetup() string {
	s := m.state
	var b strings.Builder

	b.WriteString(fmt.Sprintf("玩家 %d 人 · 队伍 %d 支\n\n", len(s.Players), len(s.Teams)))
	for _, team := range s.Teams {
		names := make([]string, 0, len(team.PlayerIDs))
		for _, pid := range team.PlayerIDs {
			for _, p := range s.Players {
				if p.ID == pid {
					names = append(names, p.Name)
					break
				}
			}
		}
		b.WriteString(fmt.Sprintf("  %s: %s\n", teamStyle.Render(team.Name), strings.Join(names, "、")))
	}

	if s.GameConfig == nil {
		b.WriteString("\n" + hintStyle.Render("等待主持人加载游戏内容..."))
	}
	return b.String()
}

func (m Model) renderIntro() string {
	s := m.state
	var b strings.Builder
	b.WriteString(boxStyle.Render(fmt.Sprintf("共 %d 轮 · %d 支队伍，准备好了吗？", s.TotalRounds, len(s.Teams))))
	b.WriteString("\n\n")
	b.WriteString(m.renderScoreboard(false))
	return b.String()
}

func (m Model) renderRoundIntro() string {
	s := m.state
	var b strings.Builder

	if s.CurrentRoundConfig != nil {
		b.WriteString(questionBox.Render(sauceStyle.Render("🔥 " + s.CurrentRoundConfig.Sauce)))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("吃翅每人 +%d 分 · 小游戏: %s\n\n", s.CurrentRoundConfig.PointsPerPlayer, s.CurrentRoundConfig.Minigame))
	}

	b.WriteString("出场顺序: ")
	names := make([]string, 0, len(s.TurnOrderTeamIDs))
	for _, id := range s.TurnOrderTeamIDs {
		names = append(names, m.teamName(id))
	}
	b.WriteString(strings.Join(names, " → "))
	return b.String()
}

func (m Model) renderEating() string {
	s := m.state
	var b strings.Builder

	b.WriteString(boxStyle.Render(fmt.Sprintf("现在上场: %s", teamStyle.Render(m.teamName(s.ActiveRoundTeamID)))))
	b.WriteString("\n\n")

	eaten := 0
	for _, did := range s.WingParticipationByPlayerID {
		if did {
			eaten++
		}
	}
	b.WriteString(fmt.Sprintf("已吃下 %d 份鸡翅\n\n", eaten))
	b.WriteString(m.renderTimerBar())
	b.WriteString(m.renderScoreboard(true))
	return b.String()
}

func (m Model) renderMinigameIntro() string {
	s := m.state
	minigame := ""
	if s.CurrentRoundConfig != nil {
		minigame = string(s.CurrentRoundConfig.Minigame)
	}
	return boxStyle.Render(fmt.Sprintf("%s 队即将挑战: %s", m.teamName(s.ActiveRoundTeamID), sauceStyle.Render(minigame)))
}

func (m Model) renderMinigamePlay() string {
	s := m.state
	var b strings.Builder

	b.WriteString(fmt.Sprintf("挑战队伍: %s\n\n", teamStyle.Render(m.teamName(s.ActiveRoundTeamID))))

	if v := s.MinigameDisplayView; v != nil {
		if v.Question != "" {
			b.WriteString(questionBox.Render(v.Question))
			b.WriteString("\n")
			b.WriteString(hintStyle.Render(fmt.Sprintf("第 %d/%d 题", v.PromptIndex+1, v.PromptCount)))
		} else {
			b.WriteString(boxStyle.Render("题目已用完"))
		}
	} else {
		// 不支持投屏的小游戏由主持人线下主持
		b.WriteString(boxStyle.Render("本环节由主持人现场主持"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderTimerBar())
	b.WriteString(m.renderScoreboard(true))
	return b.String()
}

func (m Model) renderRoundResults() string {
	var b strings.Builder
	b.WriteString(boxStyle.Render(fmt.Sprintf("第 %d 轮结束！", m.state.CurrentRound)))
	b.WriteString("\n\n")
	b.WriteString(m.renderScoreboard(false))
	return b.String()
}

func (m Model) renderFinalResults() string {
	s := m.state
	teams := make([]room.Team, len(s.Teams))
	copy(teams, s.Teams)
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].TotalScore > teams[j].TotalScore
	})

	var b strings.Builder
	if len(teams) > 0 {
		b.WriteString(questionBox.Render(fmt.Sprintf("🏆 冠军: %s (%d 分)", titleStyle.Render(teams[0].Name), teams[0].TotalScore)))
		b.WriteString("\n\n")
	}

	medals := []string{"🥇", "🥈", "🥉"}
	for i, team := range teams {
		medal := "  "
		if i < len(medals) {
			medal = medals[i]
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", medal, teamStyle.Render(team.Name), scoreStyle.Render(fmt.Sprintf("%d 分", team.TotalScore))))
	}
	return b.String()
}

// renderScoreboard 计分板。withPending 时附带本轮待结算分
func (m Model) renderScoreboard(withPending bool) string {
	s := m.state
	var b strings.Builder

	for _, team := range s.Teams {
		line := fmt.Sprintf("%s  %s", teamStyle.Render(team.Name), scoreStyle.Render(fmt.Sprintf("%d 分", team.TotalScore)))
		if withPending {
			pending := s.PendingWingPointsByTeamID[team.ID] + s.PendingMinigamePointsByTeamID[team.ID]
			if pending > 0 {
				line += pendingStyle.Render(fmt.Sprintf("  (+%d 待结算)", pending))
			}
		}
		if team.ID == s.ActiveRoundTeamID && s.Phase != room.PhaseRoundResults {
			line = "▶ " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// teamName 按 ID 取队名，查不到时退回 ID
func (m Model) teamName(teamID string) string {
	for _, team := range m.state.Teams {
		if team.ID == teamID {
			return team.Name
		}
	}
	return teamID
}
