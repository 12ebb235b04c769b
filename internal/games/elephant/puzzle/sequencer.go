package puzzle

// CommandKind identifies a queued command.
type CommandKind uint8

const (
	CmdMove CommandKind = iota
	CmdUndo
	CmdReset
)

// String returns the name of the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdUndo:
		return "undo"
	case CmdReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Command is one discrete player request.
type Command struct {
	Kind CommandKind
	Dir  Dir // only for CmdMove
}

// Move returns a directional command.
func Move(d Dir) Command {
	return Command{Kind: CmdMove, Dir: d}
}

// Undo returns an undo command.
func Undo() Command {
	return Command{Kind: CmdUndo}
}

// Reset returns a reset command.
func Reset() Command {
	return Command{Kind: CmdReset}
}

// DrainResult counts what a Drain call did.
type DrainResult struct {
	Applied  int  // commands that changed the history
	Rejected int  // moves refused by the rules, and undos at the initial world
	Held     int  // moves dropped because the world was already solved
	Solved   bool // some command turned an unsolved world into a solved one
}

// Sequencer owns a History and a FIFO queue of commands. Commands are only
// applied inside Drain, one at a time in arrival order.
type Sequencer struct {
	history *History
	queue   []Command
	hold    bool
}

// NewSequencer returns a sequencer whose history starts at initial.
func NewSequencer(initial *World) *Sequencer {
	return &Sequencer{history: NewHistory(initial)}
}

// History exposes the underlying stack for reading.
func (s *Sequencer) History() *History {
	return s.history
}

// Current returns the world on top of the history.
func (s *Sequencer) Current() *World {
	return s.history.Top()
}

// HoldWhenSolved makes Drain drop move commands while the current world is
// solved. Undo and reset are always applied. The check runs per command, so
// an undo earlier in the same drain releases the moves after it.
func (s *Sequencer) HoldWhenSolved(hold bool) {
	s.hold = hold
}

// Pending returns the number of queued commands.
func (s *Sequencer) Pending() int {
	return len(s.queue)
}

// Enqueue appends commands to the queue without applying them.
func (s *Sequencer) Enqueue(cmds ...Command) {
	s.queue = append(s.queue, cmds...)
}

// Drain applies every queued command and leaves the queue empty.
func (s *Sequencer) Drain() DrainResult {
	var res DrainResult
	for len(s.queue) > 0 {
		cmd := s.queue[0]
		s.queue = s.queue[1:]

		wasSolved := s.history.Top().Solved()
		if s.hold && wasSolved && cmd.Kind == CmdMove {
			res.Held++
			continue
		}
		if !s.apply(cmd) {
			res.Rejected++
			continue
		}
		res.Applied++
		if !wasSolved && s.history.Top().Solved() {
			res.Solved = true
		}
	}
	s.queue = nil
	return res
}

func (s *Sequencer) apply(cmd Command) bool {
	switch cmd.Kind {
	case CmdMove:
		next, ok := s.history.Top().AfterInput(cmd.Dir)
		if !ok {
			return false
		}
		s.history.Push(next)
		return true
	case CmdUndo:
		return s.history.Pop()
	case CmdReset:
		s.history.Reset()
		return true
	default:
		return false
	}
}
