package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"pokersim-server/internal/game"
	"pokersim-server/pkg/model"
)

var errNoStore = errors.New("hand store is not configured")

// applyProfile fills request fields the caller left unset from the table
// profile, matching how the service has always defaulted its stakes.
func (m *Mux) applyProfile(req *game.SimulationRequest) {
	t := m.profile.Table
	if len(req.Blinds) == 0 && t.SmallBlind > 0 && t.BigBlind > 0 {
		req.Blinds = []float64{float64(t.SmallBlind), float64(t.BigBlind)}
	}
	if req.MinBet == 0 && t.MinBet > 0 {
		req.MinBet = float64(t.MinBet)
	}
	if req.Antes == 0 && t.Ante > 0 {
		req.Antes = float64(t.Ante)
	}
	if len(req.Stacks) == 0 && t.DefaultStack > 0 {
		for i := 0; i < game.NumSeats; i++ {
			req.Stacks = append(req.Stacks, game.FiniteChips(t.DefaultStack))
		}
	}
}

func (m *Mux) postHandSimulate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req game.SimulationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}
		if err := req.Validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.applyProfile(&req)
		result := game.Simulate(req.Config(), req.Actions, game.WithLogger(m.logger))
		writeJSON(w, http.StatusOK, result)
	}
}

// saveHandRequest is the persisted record shape the frontend posts back
type saveHandRequest struct {
	Players     []string        `json:"players"`
	Actions     json.RawMessage `json:"actions"`
	BoardCards  []string        `json:"board_cards"`
	Stacks      []float64       `json:"stacks"`
	WinnerIndex *int64          `json:"winner_index"`
}

func (m *Mux) postHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.db == nil {
			writeJSONError(w, http.StatusServiceUnavailable, errNoStore)
			return
		}

		var req saveHandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hand := &model.Hand{
			Players:     req.Players,
			Actions:     req.Actions,
			BoardCards:  req.BoardCards,
			Stacks:      req.Stacks,
			WinnerIndex: req.WinnerIndex,
		}
		if hand.Players == nil {
			hand.Players = []string{}
		}
		if hand.BoardCards == nil {
			hand.BoardCards = []string{}
		}
		if hand.Stacks == nil {
			hand.Stacks = []float64{}
		}

		if err := model.SaveHand(r.Context(), m.db, hand); err != nil {
			m.logger.Error("could not save hand", "error", err)
			writeJSONError(w, http.StatusInternalServerError, errors.New("could not save hand"))
			return
		}

		writeJSON(w, http.StatusCreated, hand)
	}
}

func (m *Mux) getHands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.db == nil {
			writeJSONError(w, http.StatusServiceUnavailable, errNoStore)
			return
		}

		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hands, err := model.ListHands(r.Context(), m.db, start, rows)
		if err != nil {
			m.logger.Error("could not list hands", "error", err)
			writeJSONError(w, http.StatusInternalServerError, errors.New("could not list hands"))
			return
		}

		writeJSON(w, http.StatusOK, hands)
	}
}
