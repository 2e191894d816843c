package game

import (
	"snake-grid/game/entity"
	"snake-grid/game/types"

	"golang.org/x/exp/rand"
)

// TickResult describes what happened during one Tick.
type TickResult struct {
	Moved    bool
	AteApple bool
	Finished bool // the round ended on this tick
}

// Session holds the live snake and game. A restart swaps both at once.
type Session struct {
	Grid  types.Grid
	snake *entity.Snake
	game  *Game
	rng   *rand.Rand

	// set once a direction change is accepted, cleared when the snake moves
	changedDirection bool
}

func NewSession(grid types.Grid, rng *rand.Rand) *Session {
	s := &Session{
		Grid: grid,
		rng:  rng,
	}
	s.Restart()
	return s
}

func (s *Session) Snake() *entity.Snake {
	return s.snake
}

func (s *Session) Game() *Game {
	return s.game
}

// Restart discards the current snake and game and starts a fresh round.
func (s *Session) Restart() {
	snake := entity.NewSnake(s.Grid)
	game := NewGame(s.Grid, s.rng)
	s.snake, s.game = snake, game
	s.changedDirection = false
}

// Tick runs one simulation step: move, eat, then self-collision.
func (s *Session) Tick() TickResult {
	var res TickResult

	if !s.game.Finished() {
		s.snake.Move()
		s.changedDirection = false
		res.Moved = true
	}

	if s.game.SnakeAteApple(s.snake.X(), s.snake.Y()) {
		s.game.RecordAte()
		s.snake.Grow()
		res.AteApple = true
	}

	if s.snake.HitItself() && !s.game.Finished() {
		s.game.Finish()
		res.Finished = true
	}

	return res
}

// HandleKey applies a key press. Only the first accepted direction change
// between two moves counts; R restarts.
func (s *Session) HandleKey(k types.Key) (restarted bool) {
	if dir, ok := k.Direction(); ok {
		if !s.changedDirection && s.snake.CanChangeDirectionTo(dir) {
			s.snake.SetDirection(dir)
			s.changedDirection = true
		}
		return false
	}
	if k == types.KeyRestart {
		s.Restart()
		return true
	}
	return false
}

// Draw renders the snake, then the apple and status text.
func (s *Session) Draw(c types.Canvas) {
	s.snake.Draw(c)
	s.game.Draw(c)
}
