// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-tally/ballotfile"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/election"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
)

type TallyHandler struct {
	cfg cliparse.Config
}

func NewTallyHandler(cfg cliparse.Config) *TallyHandler {
	return &TallyHandler{cfg: cfg}
}

// CreateTally handles POST /tallies
func (h *TallyHandler) CreateTally(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTallyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		if middleware.IsBodyTooLarge(err) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	policy, err := h.policy(req.Policy)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	file := &ballotfile.File{Candidates: req.Candidates}
	for _, ranks := range req.Ballots {
		file.Ballots = append(file.Ballots, ballotfile.Ballot{Ranks: ranks})
	}

	h.tally(w, file, policy)
}

// CreateTallyFromFile handles POST /tallies/file
// The body is a ballot file; ?policy= overrides the configured policy
func (h *TallyHandler) CreateTallyFromFile(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	policy, err := h.policy(r.URL.Query().Get("policy"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := ballotfile.Parse(r.Body)
	if err != nil {
		if middleware.IsBodyTooLarge(err) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid ballot file: %v", err))
		return
	}

	h.tally(w, file, policy)
}

func (h *TallyHandler) policy(name string) (election.Policy, error) {
	if name == "" {
		return h.cfg.Policy, nil
	}
	return election.ParsePolicy(name)
}

// tally runs one election for the request. Nothing outlives the response.
func (h *TallyHandler) tally(w http.ResponseWriter, file *ballotfile.File, policy election.Policy) {
	if len(file.Candidates) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidates are required")
		return
	}
	for _, name := range file.Candidates {
		if name == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "candidate names must not be empty")
			return
		}
	}
	if len(file.Ballots) > h.cfg.MaxBallots {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("too many ballots: %d exceeds the limit of %d", len(file.Ballots), h.cfg.MaxBallots))
		return
	}

	tallyID := uuid.NewString()
	logger := slog.With("tally_id", tallyID)

	e, rejected, err := file.Election(election.WithPolicy(policy), election.WithLogger(logger))
	if err != nil {
		logger.Error("failed to build election", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(rejected) > 0 {
		logger.Info("ballots rejected", "count", len(rejected))
	}

	res, err := e.Tally()
	if errors.Is(err, election.ErrNoBallots) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no valid ballots")
		return
	}
	if err != nil {
		logger.Error("tally failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to tally ballots")
		return
	}

	logger.Info("tally completed",
		"outcome", res.Outcome,
		"voters", res.Voters,
		"rejected", len(rejected),
	)

	middleware.JSONResponse(w, http.StatusOK, toTallyResponse(tallyID, res, rejected))
}

func toTallyResponse(tallyID string, res *election.Result, rejected []ballotfile.Rejection) models.TallyResponse {
	resp := models.TallyResponse{
		TallyID:   tallyID,
		Outcome:   string(res.Outcome),
		Winners:   res.Winners,
		Policy:    res.Policy.String(),
		Voters:    res.Voters,
		Exhausted: res.Exhausted,
		ZeroVote:  []string{},
		Rounds:    make([]models.RoundResult, 0, len(res.Rounds)),
		Rejected:  make([]models.RejectedBallot, 0, len(rejected)),
	}
	resp.ZeroVote = append(resp.ZeroVote, res.ZeroVote...)

	for _, round := range res.Rounds {
		rr := models.RoundResult{
			Round:      round.Number,
			Counts:     make([]models.CandidateVotes, 0, len(round.Counts)),
			Eliminated: []string{},
			Exhausted:  round.Exhausted,
		}
		rr.Eliminated = append(rr.Eliminated, round.Eliminated...)
		for _, c := range round.Counts {
			rr.Counts = append(rr.Counts, models.CandidateVotes{
				Candidate: c.Candidate,
				Name:      c.Name,
				Votes:     c.Votes,
			})
		}
		resp.Rounds = append(resp.Rounds, rr)
	}

	for _, rej := range rejected {
		reason := rej.Err.Error()
		var invalid *election.InvalidBallotError
		if errors.As(rej.Err, &invalid) {
			reason = invalid.Reason
		}
		resp.Rejected = append(resp.Rejected, models.RejectedBallot{
			Index:  rej.Index,
			Line:   rej.Line,
			Ranks:  rej.Ranks,
			Reason: reason,
		})
	}

	return resp
}
