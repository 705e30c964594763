package engine

const (
	MaxLives = 3
	WinScore = 100
)

// Stats holds the scoreboard. Best is a high-water mark of Score.
type Stats struct {
	Score int
	Best  int
	Lives int
}

// Outcome is how a play tick ended
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeWallHit
	OutcomeOutOfLives
	OutcomeWin
)

var outcomeNames = [...]string{
	OutcomeContinue:   "continue",
	OutcomeWallHit:    "wall_hit",
	OutcomeOutOfLives: "out_of_lives",
	OutcomeWin:        "win",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "invalid"
}

// TickResult reports what happened during one Tick
type TickResult struct {
	Outcome Outcome
	Ate     bool
	// Chopped is the truncation index of a self collision, 0 when none
	Chopped int
}

// State is the play-field model: snake, food, stats and headings.
// It is owned by a single loop and is not safe for concurrent use.
type State struct {
	rows, cols int

	Snake *Snake
	Food  Point
	Stats Stats

	// Dir is the heading for the next tick, PrevDir the heading of the last one
	Dir     Direction
	PrevDir Direction

	spawner *FoodSpawner
}

// NewState creates a fresh field for a rows x cols buffer
func NewState(rows, cols int, spawner *FoodSpawner) *State {
	s := &State{
		rows:    rows,
		cols:    cols,
		Snake:   NewSnake(Point{Row: rows / 2, Col: cols / 2}),
		spawner: spawner,
	}
	s.Reset(true)
	return s
}

// Reset starts a new round: lone head at the centre, full lives, new food.
// Best is kept unless resetBest is set.
func (s *State) Reset(resetBest bool) {
	s.Stats.Score = 0
	if resetBest {
		s.Stats.Best = 0
	}
	s.Stats.Lives = MaxLives

	s.Dir = DirIdle
	s.PrevDir = DirIdle
	s.Snake.Reset(Point{Row: s.rows / 2, Col: s.cols / 2})
	s.Food = s.spawner.Spawn(s.rows, s.cols)
}

// Steer sets the heading used by the next Tick
func (s *State) Steer(dir Direction) {
	s.Dir = dir
}

// HitsWall reports whether p lies on the play-field border
func (s *State) HitsWall(p Point) bool {
	return p.Row == 2 || p.Row == s.rows-1 || p.Col == 2 || p.Col == s.cols-2
}

// Tick advances the snake one cell and resolves wall, food and self collisions
func (s *State) Tick() TickResult {
	var res TickResult

	s.Snake.Move(s.Dir)
	defer func() { s.PrevDir = s.Dir }()

	if s.HitsWall(s.Snake.Head()) {
		res.Outcome = OutcomeWallHit
		return res
	}

	if s.Dir != DirIdle && s.Snake.Head() == s.Food {
		if s.Snake.Grow(s.Dir) {
			s.Stats.Score++
			s.Stats.Best = max(s.Stats.Best, s.Stats.Score)
		}
		s.Food = s.spawner.Spawn(s.rows, s.cols)
		res.Ate = true
	}

	if idx, hit := s.Snake.SelfCollision(s.Dir, s.PrevDir); hit {
		s.Snake.Chop(idx)
		s.Stats.Score = s.Snake.Len() - 1
		s.Stats.Lives--
		res.Chopped = idx
	}

	switch {
	case s.Stats.Lives <= 0:
		res.Outcome = OutcomeOutOfLives
	case s.Stats.Score >= WinScore:
		res.Outcome = OutcomeWin
	}
	return res
}
