package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/wing-night/internal/sound"
	"github.com/palemoky/wing-night/internal/ui"
)

func main() {
	serverAddr := flag.String("server", "localhost:1790", "服务器地址")
	roomCode := flag.String("room", "", "房间号")
	mute := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	if *roomCode == "" {
		log.Fatal("必须通过 -room 指定房间号")
	}

	serverURL := fmt.Sprintf("ws://%s/ws", *serverAddr)

	var sounds *sound.SoundManager
	if !*mute {
		sounds = sound.NewSoundManager()
		if err := sounds.Init(); err != nil {
			log.Printf("音效初始化失败，静音运行: %v", err)
			sounds = nil
		} else {
			defer sounds.Close()
		}
	}

	model := ui.NewModel(serverURL, strings.ToUpper(*roomCode), sounds)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动大屏端时出错: %v", err)
	}
}
