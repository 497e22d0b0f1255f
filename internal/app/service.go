package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bitboardgames/tictacgo/internal/engine"
)

// Errors exposed by the service layer.
var (
	ErrNotFound    = errors.New("game not found")
	ErrGameOver    = errors.New("game over")
	ErrIllegalMove = errors.New("illegal move")
)

// GameState is the in-memory state tracked per game. The human plays
// engine.First; engine.Second replies automatically after every
// accepted move.
type GameState struct {
	ID      string
	Board   engine.Board
	Reply   int // last computer move, engine.NoMove if none
	Created time.Time
	Updated time.Time
}

// Over reports whether the game has reached a terminal position.
func (gs GameState) Over() bool {
	return gs.Board.IsFull() || gs.Board.HasWin(engine.First) || gs.Board.HasWin(engine.Second)
}

type subscriber struct {
	ch        chan []byte
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages games and subscribers.
type Service struct {
	mu     sync.Mutex
	games  map[string]*GameState
	subs   map[string]map[*subscriber]struct{}
	render func(GameState) []byte
	marks  engine.Marks
}

// NewService creates a service with a no-op broadcast renderer.
func NewService() *Service {
	return NewServiceWithRenderer(func(gs GameState) []byte { return nil })
}

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(renderer func(GameState) []byte) *Service {
	if renderer == nil {
		renderer = func(gs GameState) []byte { return nil }
	}
	return &Service{
		games:  make(map[string]*GameState),
		subs:   make(map[string]map[*subscriber]struct{}),
		render: renderer,
		marks:  engine.DefaultMarks(),
	}
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if renderer == nil {
		s.render = func(gs GameState) []byte { return nil }
		return
	}
	s.render = renderer
}

// SetMarks sets the glyphs used for boards created from now on.
func (s *Service) SetMarks(m engine.Marks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks = m
}

// Create registers a new game with an empty board.
func (s *Service) Create() (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	now := time.Now()
	gs := &GameState{
		ID:      id,
		Board:   engine.NewBoardWith(0, 0, s.marks),
		Reply:   engine.NoMove,
		Created: now,
		Updated: now,
	}
	s.games[id] = gs
	cp := *gs
	return &cp, nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, false
	}
	cp := *gs
	return &cp, true
}

// Play applies the human move at idx, lets the computer reply if the
// game is still live, updates timestamps, and broadcasts the new state.
func (s *Service) Play(id string, idx int) (*GameState, error) {
	s.mu.Lock()
	gs, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	if gs.Over() {
		s.mu.Unlock()
		return nil, ErrGameOver
	}
	tr := gs.Board.Move(engine.First, idx)
	if tr.Status != engine.Accepted {
		s.mu.Unlock()
		return nil, ErrIllegalMove
	}
	gs.Board = tr.Board
	gs.Reply = engine.NoMove
	if !gs.Over() {
		if reply := engine.ChooseMove(gs.Board); reply != engine.NoMove {
			gs.Board = gs.Board.Move(engine.Second, reply).Board
			gs.Reply = reply
		}
	}
	gs.Updated = time.Now()

	cp := *gs
	subs := s.copySubsLocked(id)
	payload := s.render(cp)
	s.mu.Unlock()

	s.broadcast(id, subs, payload)
	return &cp, nil
}

// Reset replaces the game's board with a fresh one and broadcasts.
func (s *Service) Reset(id string) (*GameState, error) {
	s.mu.Lock()
	gs, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	gs.Board = engine.NewBoardWith(0, 0, s.marks)
	gs.Reply = engine.NoMove
	gs.Updated = time.Now()

	cp := *gs
	subs := s.copySubsLocked(id)
	payload := s.render(cp)
	s.mu.Unlock()

	s.broadcast(id, subs, payload)
	return &cp, nil
}

// broadcast fans a payload out to subscribers, dropping any that cannot
// keep up.
func (s *Service) broadcast(id string, subs map[*subscriber]struct{}, payload []byte) {
	var toDrop []*subscriber
	for sub := range subs {
		select {
		case sub.ch <- payload:
		default:
			// drop slow subscriber
			sub.close()
			toDrop = append(toDrop, sub)
		}
	}
	if len(toDrop) > 0 {
		s.mu.Lock()
		for _, sub := range toDrop {
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
		}
		s.mu.Unlock()
	}
}

// Subscribe registers a subscriber for a game. Returns a channel and an
// unsubscribe func.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		// create lazily to allow subscriptions before Create in some flows
		now := time.Now()
		s.games[id] = &GameState{
			ID:      id,
			Board:   engine.NewBoardWith(0, 0, s.marks),
			Reply:   engine.NoMove,
			Created: now,
			Updated: now,
		}
	}
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan []byte, 1)}
	set[sub] = struct{}{}

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			s.mu.Lock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
			s.mu.Unlock()
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub
}

func (s *Service) copySubsLocked(id string) map[*subscriber]struct{} {
	out := make(map[*subscriber]struct{})
	if set, ok := s.subs[id]; ok {
		for k := range set {
			out[k] = struct{}{}
		}
	}
	return out
}
