package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/mshenoda/connect4/internal/domain"
	"github.com/mshenoda/connect4/internal/service/bot"
	"github.com/mshenoda/connect4/pkg/uid"
)

// The human always plays Player1 and the engine Player2, whoever starts.
const (
	HumanPlayer = domain.Player1
	BotPlayer   = domain.Player2
)

// Placement is a disk that was dropped in the last exchange.
type Placement struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// Snapshot is what clients see of a session after every action.
type Snapshot struct {
	GameID        string            `json:"gameId"`
	Difficulty    bot.Difficulty    `json:"difficulty"`
	Board         [][]int           `json:"board"`
	CurrentPlayer domain.PlayerID   `json:"currentPlayer"`
	Status        domain.GameStatus `json:"status"`
	Winner        domain.PlayerID   `json:"winner"`
	MoveCount     int               `json:"moveCount"`
	HumanMove     *Placement        `json:"humanMove,omitempty"`
	BotMove       *Placement        `json:"botMove,omitempty"`
}

type GameSession struct {
	GameID     string
	Difficulty bot.Difficulty
	Game       *domain.Game
	CreatedAt  time.Time
	UpdatedAt  time.Time
	engine     *bot.Engine
	lastHuman  *Placement
	lastBot    *Placement
	mu         sync.Mutex
}

// SessionManager keeps the in-memory human vs engine sessions
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	mu      sync.RWMutex
	newRand func() *rand.Rand
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		Session: make(map[string]*GameSession),
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// CreateSession starts a new game. When the human does not move first the
// engine opens right away.
func (sm *SessionManager) CreateSession(difficulty string, humanFirst bool) Snapshot {
	d := bot.ParseDifficulty(difficulty)

	first, second := HumanPlayer, BotPlayer
	if !humanFirst {
		first, second = BotPlayer, HumanPlayer
	}

	now := time.Now()
	session := &GameSession{
		GameID:     uid.GenerateGameID(),
		Difficulty: d,
		Game:       domain.NewGame(first, second),
		CreatedAt:  now,
		UpdatedAt:  now,
		engine:     bot.NewEngineForDifficulty(BotPlayer, d, sm.newRand()),
	}

	// not published yet, no other goroutine can see the session
	if !humanFirst {
		session.playBotLocked()
	}
	snapshot := session.snapshotLocked()

	sm.mu.Lock()
	sm.Session[session.GameID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s (difficulty=%s, humanFirst=%t)", session.GameID, d, humanFirst)
	return snapshot
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) GetSnapshot(gameID string) (Snapshot, error) {
	session, exists := sm.GetSessionByGameID(gameID)
	if !exists {
		return Snapshot{}, domain.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.snapshotLocked(), nil
}

// PlayMove applies the human move and, unless that ended the game, the
// engine's reply.
func (sm *SessionManager) PlayMove(gameID string, column int) (Snapshot, error) {
	session, exists := sm.GetSessionByGameID(gameID)
	if !exists {
		return Snapshot{}, domain.ErrSessionNotFound
	}
	return session.HandleMove(column)
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Session[gameID]; !exists {
		return domain.ErrSessionNotFound
	}
	delete(sm.Session, gameID)
	log.Printf("[SESSION] Removed session %s", gameID)
	return nil
}

// CleanupIdleSessions drops sessions untouched for longer than maxIdle
func (sm *SessionManager) CleanupIdleSessions(maxIdle time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := time.Now()
	for gameID, session := range sm.Session {
		session.mu.Lock()
		idle := now.Sub(session.UpdatedAt)
		session.mu.Unlock()

		if idle > maxIdle {
			delete(sm.Session, gameID)
			count++
		}
	}

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d idle game sessions", count)
	}
	return count
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

func (gs *GameSession) HandleMove(column int) (Snapshot, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return Snapshot{}, domain.ErrGameOver
	}
	if gs.Game.CurrentPlayer() != HumanPlayer {
		return Snapshot{}, domain.ErrNotYourTurn
	}
	if column < 0 || column >= domain.Columns {
		return Snapshot{}, domain.ErrInvalidMove
	}

	row, ok := gs.Game.MakeMove(column)
	if !ok {
		return Snapshot{}, domain.ErrColumnFull
	}
	gs.lastHuman = &Placement{Column: column, Row: row}
	gs.lastBot = nil
	gs.UpdatedAt = time.Now()

	if !gs.Game.IsFinished() {
		gs.playBotLocked()
	}

	if gs.Game.IsFinished() {
		log.Printf("[SESSION] Game %s finished: status=%s winner=%d moves=%d",
			gs.GameID, gs.Game.Status(), gs.Game.Winner(), gs.Game.MoveCount())
	}
	return gs.snapshotLocked(), nil
}

// playBotLocked asks the engine for a column; caller must hold gs.mu
func (gs *GameSession) playBotLocked() {
	col := gs.engine.BestMove(gs.Game)
	if col == bot.NoMove {
		return
	}
	row, ok := gs.Game.MakeMove(col)
	if !ok {
		log.Printf("[BOT] Engine chose unplayable column %d in game %s", col, gs.GameID)
		return
	}
	gs.lastBot = &Placement{Column: col, Row: row}
	log.Printf("[BOT] Game %s: played column %d after %d nodes", gs.GameID, col, gs.engine.Nodes())
}

func (gs *GameSession) snapshotLocked() Snapshot {
	return Snapshot{
		GameID:        gs.GameID,
		Difficulty:    gs.Difficulty,
		Board:         gs.Game.Grid().Ints(),
		CurrentPlayer: gs.Game.CurrentPlayer(),
		Status:        gs.Game.Status(),
		Winner:        gs.Game.Winner(),
		MoveCount:     gs.Game.MoveCount(),
		HumanMove:     gs.lastHuman,
		BotMove:       gs.lastBot,
	}
}
