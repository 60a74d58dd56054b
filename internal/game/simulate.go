package game

import (
	"errors"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"pokersim-server/internal/deck"
	"pokersim-server/internal/randutil"
)

// Defaults applied when a simulation request leaves fields out, matching
// the table configuration the service has always used.
const (
	DefaultStack      = 50000
	DefaultSmallBlind = 20
	DefaultBigBlind   = 40
)

// PlayerConfig is one requested seat: a label, or two explicit hole cards.
type PlayerConfig struct {
	Label string
	Cards []deck.Card
}

// SittingOut reports whether the entry is the "????" filler that pads the
// table to six seats without taking part in the hand.
func (p PlayerConfig) SittingOut() bool {
	return len(p.Cards) == 0 && (p.Label == "" || p.Label == UnknownLabel)
}

// Config describes the table for one hand simulation
type Config struct {
	Antes      int
	SmallBlind int
	BigBlind   int
	MinBet     int
	Stacks     []Chips
	Players    []PlayerConfig
	// Seed makes the shuffle deterministic; nil draws a fresh seed
	Seed *int64
}

// normalized pads players and stacks to exactly six seats and fills
// missing blind configuration.
func (c Config) normalized() Config {
	for len(c.Players) < NumSeats {
		c.Players = append(c.Players, PlayerConfig{Label: UnknownLabel})
	}
	c.Players = c.Players[:NumSeats]

	for len(c.Stacks) < NumSeats {
		c.Stacks = append(c.Stacks, FiniteChips(DefaultStack))
	}
	c.Stacks = c.Stacks[:NumSeats]

	if c.SmallBlind <= 0 {
		c.SmallBlind = DefaultSmallBlind
	}
	if c.BigBlind <= 0 {
		c.BigBlind = DefaultBigBlind
	}
	return c
}

func (c Config) rng() *rand.Rand {
	if c.Seed != nil {
		return randutil.New(*c.Seed)
	}
	return randutil.New(time.Now().UnixNano())
}

// Simulation status values
const (
	StatusComplete   = "complete"
	StatusInProgress = "in_progress"
	StatusError      = "error"
)

// HandResult is the snapshot a simulation produces. Its shape matches the
// wire contract the API layer exposes and the persistence record consumes.
type HandResult struct {
	Status      string   `json:"status"`
	Error       string   `json:"error,omitempty"`
	Players     []string `json:"players"`
	WinnerIndex *int     `json:"winner_index"`
	Board       []string `json:"board"`
	Stacks      []Chips  `json:"stacks"`
	Payoffs     []int    `json:"payoffs"`
	FinalPots   int      `json:"final_pots"`
	MinRaise    *int     `json:"min_raise"`
	Events      []Event  `json:"events,omitempty"`
}

type simOptions struct {
	clock  quartz.Clock
	logger *log.Logger
}

// Option customizes a simulation run
type Option func(*simOptions)

// WithClock injects the clock used to timestamp audit events
func WithClock(clock quartz.Clock) Option {
	return func(o *simOptions) { o.clock = clock }
}

// WithLogger routes engine diagnostics to the given logger
func WithLogger(logger *log.Logger) Option {
	return func(o *simOptions) { o.logger = logger }
}

// Simulate runs one hand: builds the table, posts antes and blinds, deals,
// replays the scripted actions, and settles showdown. Script errors stop
// the replay and come back in the snapshot as status "error" with the last
// valid state; they never propagate out. Engine invariant violations panic.
func Simulate(cfg Config, actions []Action, opts ...Option) *HandResult {
	o := simOptions{
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg = cfg.normalized()

	h, err := newHand(cfg, o.clock)
	if err != nil {
		var insufficient *InsufficientStackError
		if errors.As(err, &insufficient) {
			panic(err)
		}
		o.logger.Error("hand setup failed", "error", err)
		res := emptyResult(cfg)
		res.Status = StatusError
		res.Error = err.Error()
		return res
	}

	for _, a := range actions {
		if h.Complete() && a.Type != ActionShow && a.Type != ActionUnknown {
			h.appendEvent(EventActionSkipped, -1, string(a.Type), a.Amount, "hand already settled")
			continue
		}
		if err := h.Apply(a); err != nil {
			var insufficient *InsufficientStackError
			if errors.As(err, &insufficient) {
				panic(err)
			}
			o.logger.Warn("action aborted simulation", "action", a.String(), "error", err)
			return snapshot(h, StatusError, err)
		}
		o.logger.Debug("applied action", "action", a.String(), "street", h.Street, "actor", h.Actor)
	}

	if h.Complete() {
		return snapshot(h, StatusComplete, nil)
	}
	return snapshot(h, StatusInProgress, nil)
}

func emptyResult(cfg Config) *HandResult {
	res := &HandResult{
		Players: make([]string, NumSeats),
		Board:   []string{},
		Stacks:  make([]Chips, NumSeats),
		Payoffs: make([]int, NumSeats),
	}
	copy(res.Stacks, cfg.Stacks)
	return res
}

func snapshot(h *Hand, status string, cause error) *HandResult {
	res := &HandResult{
		Status:  status,
		Players: make([]string, NumSeats),
		Board:   deck.CardStrings(h.Board),
		Stacks:  make([]Chips, NumSeats),
		Payoffs: make([]int, NumSeats),
		Events:  h.Events,
	}
	if cause != nil {
		res.Error = cause.Error()
	}
	if res.Board == nil {
		res.Board = []string{}
	}

	for i, s := range h.Seats {
		res.Players[i] = s.CardString()
		res.Stacks[i] = s.CurrentStack()
		res.Payoffs[i] = h.Payoff(i)
	}

	res.FinalPots = h.Ledger.Total()

	if h.Complete() {
		winner, best := -1, 0
		for i := range h.Seats {
			if res.Payoffs[i] > best {
				winner, best = i, res.Payoffs[i]
			}
		}
		if winner >= 0 {
			res.WinnerIndex = &winner
		}
	} else {
		raise := h.Betting.NextRaiseTo()
		res.MinRaise = &raise
	}

	return res
}
