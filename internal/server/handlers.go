package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdrpinto/waterjug"
	"github.com/pdrpinto/waterjug/internal/feasibility"
	"github.com/pdrpinto/waterjug/internal/output"
)

type puzzleRequest struct {
	CapacityA int    `json:"capacityA"`
	CapacityB int    `json:"capacityB"`
	Goal      int    `json:"goal"`
	Heuristic string `json:"heuristic"`
}

type solveResponse struct {
	output.JSONReport
	Moves           []waterjug.Move `json:"moves"`
	ExecutionTimeMs float64         `json:"executionTimeMs"`
}

type snapshotResponse struct {
	Step      int             `json:"step"`
	CapacityA int             `json:"capacityA"`
	CapacityB int             `json:"capacityB"`
	Goal      int             `json:"goal"`
	Current   [2]int          `json:"current"`
	Open      [][2]int        `json:"open"`
	Closed    [][2]int        `json:"closed"`
	Done      bool            `json:"done"`
	Found     bool            `json:"found"`
	Path      [][2]int        `json:"path"`
	Moves     []waterjug.Move `json:"moves"`
}

func newSnapshotResponse(puzzle waterjug.Puzzle, snap waterjug.StepSnapshot) snapshotResponse {
	return snapshotResponse{
		Step:      snap.StepIndex,
		CapacityA: puzzle.CapacityA,
		CapacityB: puzzle.CapacityB,
		Goal:      puzzle.Goal,
		Current:   [2]int{snap.Current.A, snap.Current.B},
		Open:      output.StatePairs(snap.Open),
		Closed:    output.StatePairs(snap.Closed),
		Done:      snap.Done,
		Found:     snap.Found,
		Path:      output.StatePairs(snap.Path),
		Moves:     append([]waterjug.Move{}, snap.Moves...),
	}
}

// bindPuzzle decodes and prechecks a request body, writing the error response
// itself when it fails.
func (s *Server) bindPuzzle(c *gin.Context) (waterjug.Puzzle, []waterjug.Option, bool) {
	var req puzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return waterjug.Puzzle{}, nil, false
	}

	heuristic := s.heuristic
	if req.Heuristic != "" {
		var err error
		if heuristic, err = waterjug.ParseHeuristic(req.Heuristic); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return waterjug.Puzzle{}, nil, false
		}
	}

	if limit := s.cfg.MaxCapacity; limit > 0 && max(req.CapacityA, req.CapacityB) > limit {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("capacities cannot exceed %d (got %d and %d)", limit, req.CapacityA, req.CapacityB),
		})
		return waterjug.Puzzle{}, nil, false
	}

	if err := feasibility.Check(req.CapacityA, req.CapacityB, req.Goal); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return waterjug.Puzzle{}, nil, false
	}

	puzzle := waterjug.Puzzle{CapacityA: req.CapacityA, CapacityB: req.CapacityB, Goal: req.Goal}

	return puzzle, []waterjug.Option{waterjug.WithHeuristic(heuristic)}, true
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSolve(c *gin.Context) {
	puzzle, options, ok := s.bindPuzzle(c)
	if !ok {
		return
	}

	start := time.Now()
	result := puzzle.Solve(options...)
	elapsed := time.Since(start).Seconds() * 1000

	c.JSON(http.StatusOK, solveResponse{
		JSONReport:      output.NewJSONReport(output.Report{Puzzle: puzzle, Result: result}),
		Moves:           append([]waterjug.Move{}, result.Moves...),
		ExecutionTimeMs: elapsed,
	})
}

func (s *Server) handleCreateSession(c *gin.Context) {
	puzzle, options, ok := s.bindPuzzle(c)
	if !ok {
		return
	}

	id, err := s.sessions.create(waterjug.NewStepper(puzzle, options...))
	if errors.Is(err, errTooManySessions) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) lookupSession(c *gin.Context) (*session, bool) {
	sess, ok := s.sessions.get(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown session"})
	}

	return sess, ok
}

func (s *Server) handleNext(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}

	snap := s.sessions.step(sess)
	c.JSON(http.StatusOK, newSnapshotResponse(sess.stepper.Puzzle(), snap))
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	if !s.sessions.remove(c.Param("id")) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	c.Status(http.StatusNoContent)
}
