package room

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/wing-night/internal/apperrors"
	"github.com/palemoky/wing-night/internal/protocol"
	"github.com/palemoky/wing-night/internal/protocol/codec"
	"github.com/palemoky/wing-night/internal/server/storage"
	"github.com/palemoky/wing-night/internal/types"
)

// 房间号字符集，去掉易混淆的 0/O/1/I
const roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Room 一个进行中的活动房间：一个主持端、任意多个大屏端、一个状态引擎。
// 引擎本身不加锁，房间锁负责把所有引擎调用串行化
type Room struct {
	Code       string
	HostSecret string
	CreatedAt  time.Time

	mu              sync.Mutex
	engine          *Engine
	hostID          string
	displayIDs      map[string]bool
	lastActive      time.Time
	resultsRecorded bool
}

// RoomManager 房间管理器
type RoomManager struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	server      types.ServerInterface
	redisStore  *storage.RedisStore
	leaderboard *storage.LeaderboardManager
	idleTimeout time.Duration
}

// NewRoomManager 创建房间管理器
func NewRoomManager(server types.ServerInterface, redisStore *storage.RedisStore,
	leaderboard *storage.LeaderboardManager, idleTimeout time.Duration) *RoomManager {
	return &RoomManager{
		rooms:       make(map[string]*Room),
		server:      server,
		redisStore:  redisStore,
		leaderboard: leaderboard,
		idleTimeout: idleTimeout,
	}
}

// CreateRoom 创建房间并把客户端绑定为主持端
func (rm *RoomManager) CreateRoom(client types.ClientInterface) (*Room, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	code := rm.generateRoomCode()
	now := time.Now()

	r := &Room{
		Code:       code,
		HostSecret: uuid.New().String(),
		CreatedAt:  now,
		engine:     NewEngineDefault(),
		hostID:     client.GetID(),
		displayIDs: make(map[string]bool),
		lastActive: now,
	}
	rm.rooms[code] = r

	client.SetRoom(code)
	client.SetRole(types.RoleHost)

	log.Printf("🏠 房间 %s 已创建，主持端 %s", code, client.GetID())
	return r, nil
}

// JoinDisplay 大屏端加入房间
func (rm *RoomManager) JoinDisplay(client types.ClientInterface, code string) (*Room, error) {
	rm.mu.RLock()
	r, exists := rm.rooms[code]
	rm.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	r.mu.Lock()
	r.displayIDs[client.GetID()] = true
	r.lastActive = time.Now()
	snap := r.engine.Snapshot()
	r.mu.Unlock()

	client.SetRoom(code)
	client.SetRole(types.RoleDisplay)

	// 立即推送当前状态，让大屏无需等待下一次变更
	if msg := stateMessage(code, snap, types.RoleDisplay); msg != nil {
		client.SendMessage(msg)
	}

	log.Printf("🖥️ 大屏 %s 加入房间 %s", client.GetID(), code)
	return r, nil
}

// ReclaimHost 主持端凭密钥重新绑定到房间（换设备或断线后）
func (rm *RoomManager) ReclaimHost(client types.ClientInterface, code, secret string) (*Room, error) {
	rm.mu.RLock()
	r, exists := rm.rooms[code]
	rm.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	if secret != r.HostSecret {
		return nil, apperrors.ErrNotAuthorized
	}

	r.mu.Lock()
	// 顶掉旧的主持端连接
	if r.hostID != "" && r.hostID != client.GetID() {
		if old := rm.server.GetClientByID(r.hostID); old != nil {
			old.SetRoom("")
			old.SetRole(types.RoleNone)
		}
	}
	r.hostID = client.GetID()
	r.lastActive = time.Now()
	snap := r.engine.Snapshot()
	r.mu.Unlock()

	client.SetRoom(code)
	client.SetRole(types.RoleHost)

	if msg := stateMessage(code, snap, types.RoleHost); msg != nil {
		client.SendMessage(msg)
	}

	log.Printf("🔑 主持端 %s 重新绑定房间 %s", client.GetID(), code)
	return r, nil
}

// GetRoom 按房间号查找房间
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// Leave 客户端离开房间。房间本身保留，由空闲清理回收
func (rm *RoomManager) Leave(client types.ClientInterface) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	rm.mu.RLock()
	r, exists := rm.rooms[code]
	rm.mu.RUnlock()

	if exists {
		r.mu.Lock()
		if r.hostID == client.GetID() {
			r.hostID = ""
			log.Printf("📴 主持端离开房间 %s", code)
		}
		delete(r.displayIDs, client.GetID())
		r.mu.Unlock()
	}

	client.SetRoom("")
	client.SetRole(types.RoleNone)
}

// Mutate 串行执行一次引擎变更并广播结果快照。
// fn 在房间锁内运行，收到的引擎只能在 fn 返回前使用
func (rm *RoomManager) Mutate(r *Room, fn func(e *Engine) *RoomState) *RoomState {
	r.mu.Lock()
	snap := fn(r.engine)
	r.lastActive = time.Now()
	if snap.Phase == PhaseSetup {
		// 重置后的下一局重新允许入榜
		r.resultsRecorded = false
	}
	final := snap.Phase == PhaseFinalResults && !r.resultsRecorded
	if final {
		r.resultsRecorded = true
	}
	hostID := r.hostID
	displayIDs := make([]string, 0, len(r.displayIDs))
	for id := range r.displayIDs {
		displayIDs = append(displayIDs, id)
	}
	r.mu.Unlock()

	rm.broadcastState(r.Code, snap, hostID, displayIDs)
	rm.persist(r.Code, snap)
	if final {
		rm.recordFinalResults(r.Code, snap)
	}
	return snap
}

// Snapshot 读取房间当前快照，不产生变更
func (rm *RoomManager) Snapshot(r *Room) *RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engine.Snapshot()
}

// broadcastState 把状态快照推给主持端与所有大屏端。
// 大屏收到的快照剥离了主持端投影（含答案）
func (rm *RoomManager) broadcastState(code string, snap *RoomState, hostID string, displayIDs []string) {
	if hostID != "" {
		if client := rm.server.GetClientByID(hostID); client != nil {
			if msg := stateMessage(code, snap, types.RoleHost); msg != nil {
				client.SendMessage(msg)
			}
		}
	}

	displayMsg := stateMessage(code, snap, types.RoleDisplay)
	if displayMsg == nil {
		return
	}
	for _, id := range displayIDs {
		if client := rm.server.GetClientByID(id); client != nil {
			client.SendMessage(displayMsg)
		}
	}
}

// stateMessage 构造状态广播消息，按角色裁剪投影
func stateMessage(code string, snap *RoomState, role types.Role) *protocol.Message {
	state := *snap
	if role != types.RoleHost {
		state.MinigameHostView = nil
	}

	data, err := json.Marshal(&state)
	if err != nil {
		log.Printf("序列化房间状态失败: %v", err)
		return nil
	}

	return codec.MustNewMessage(protocol.MsgRoomState, protocol.RoomStatePayload{
		RoomCode: code,
		State:    data,
	})
}

// persist 异步保存快照到 Redis
func (rm *RoomManager) persist(code string, snap *RoomState) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("序列化房间快照失败: %v", err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rm.redisStore.SaveRoomState(ctx, code, data); err != nil {
			log.Printf("保存房间 %s 快照失败: %v", code, err)
		}
	}()
}

// recordFinalResults 到达最终结算时把各队战绩写入排行榜
func (rm *RoomManager) recordFinalResults(code string, snap *RoomState) {
	result := &storage.NightResult{
		RoomCode:   code,
		FinishedAt: time.Now().Unix(),
		Teams:      make([]storage.TeamResult, 0, len(snap.Teams)),
	}
	for _, team := range snap.Teams {
		result.Teams = append(result.Teams, storage.TeamResult{
			TeamID:     team.ID,
			TeamName:   team.Name,
			TotalScore: team.TotalScore,
		})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rm.leaderboard.RecordNightResult(ctx, result); err != nil {
			log.Printf("记录房间 %s 战绩失败: %v", code, err)
		} else {
			log.Printf("🏆 房间 %s 最终战绩已入榜", code)
		}
	}()
}

// StartCleanup 启动空闲房间回收协程
func (rm *RoomManager) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			rm.cleanupIdleRooms()
		}
	}()
}

// cleanupIdleRooms 回收超过空闲时限的房间
func (rm *RoomManager) cleanupIdleRooms() {
	cutoff := time.Now().Add(-rm.idleTimeout)

	rm.mu.Lock()
	expired := make([]*Room, 0)
	for code, r := range rm.rooms {
		r.mu.Lock()
		idle := r.lastActive.Before(cutoff)
		r.mu.Unlock()
		if idle {
			delete(rm.rooms, code)
			expired = append(expired, r)
		}
	}
	rm.mu.Unlock()

	for _, r := range expired {
		rm.closeRoom(r)
	}
}

// closeRoom 通知房间内所有客户端并清理存储
func (rm *RoomManager) closeRoom(r *Room) {
	r.mu.Lock()
	clientIDs := make([]string, 0, len(r.displayIDs)+1)
	if r.hostID != "" {
		clientIDs = append(clientIDs, r.hostID)
	}
	for id := range r.displayIDs {
		clientIDs = append(clientIDs, id)
	}
	r.mu.Unlock()

	msg := codec.MustNewMessage(protocol.MsgRoomClosed, protocol.RoomClosedPayload{
		RoomCode: r.Code,
	})
	for _, id := range clientIDs {
		if client := rm.server.GetClientByID(id); client != nil {
			client.SendMessage(msg)
			client.SetRoom("")
			client.SetRole(types.RoleNone)
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = rm.redisStore.DeleteRoom(ctx, r.Code)
	}()

	log.Printf("🧹 空闲房间 %s 已回收", r.Code)
}

// GetActiveRoomCount 当前房间数
func (rm *RoomManager) GetActiveRoomCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.rooms)
}

// generateRoomCode 生成未被占用的 6 位房间号，调用方需持有 rm.mu
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, 6)
		for i := range code {
			code[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
		}
		if _, exists := rm.rooms[string(code)]; !exists {
			return string(code)
		}
	}
}
