package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/Savio09/TSP-Solver/pkg/milp"
	"github.com/Savio09/TSP-Solver/pkg/tsp"
)

// SolveHandler serves the problem data and solve endpoints consumed by the
// map frontend.
type SolveHandler struct {
	instance      tsp.Instance
	solver        milp.Solver
	maxIterations int
	metrics       *Metrics
	logger        *zap.Logger
	validate      *validator.Validate
}

// NewSolveHandler creates a handler over an immutable problem instance.
func NewSolveHandler(instance tsp.Instance, solver milp.Solver, maxIterations int, metrics *Metrics, logger *zap.Logger) *SolveHandler {
	return &SolveHandler{
		instance:      instance,
		solver:        solver,
		maxIterations: maxIterations,
		metrics:       metrics,
		logger:        logger,
		validate:      validator.New(),
	}
}

type locationResponse struct {
	ID   int     `json:"id"`
	Code string  `json:"code"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type dataResponse struct {
	Locations  []locationResponse `json:"locations"`
	CostMatrix [][]float64        `json:"cost_matrix"`
}

type solveRequest struct {
	Method        string `json:"method" validate:"required,oneof=mtz lazy"`
	MaxIterations int    `json:"max_iterations" validate:"omitempty,min=1,max=1000"`
}

type animationStep struct {
	Iteration  int      `json:"iteration"`
	Objective  float64  `json:"objective"`
	Edges      [][2]int `json:"edges"`
	Components [][]int  `json:"components"`
	IsFinal    bool     `json:"is_final"`
}

type solveResponse struct {
	Success        bool            `json:"success"`
	Method         string          `json:"method"`
	OptimalValue   float64         `json:"optimal_value"`
	Tour           []int           `json:"tour"`
	Edges          [][2]int        `json:"edges"`
	SubtourCuts    [][]int         `json:"subtour_cuts,omitempty"`
	AnimationSteps []animationStep `json:"animation_steps"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// GetData handles GET /api/data: the locations and cost matrix the frontend
// needs to draw the map.
func (h *SolveHandler) GetData(w http.ResponseWriter, r *http.Request) {
	locations := lo.Map(h.instance.Locations, func(location tsp.Location, i int) locationResponse {
		return locationResponse{
			ID:   i,
			Code: location.Code,
			Name: location.Name,
			Lat:  location.Lat,
			Lng:  location.Lng,
		}
	})

	h.respondJSON(w, http.StatusOK, dataResponse{
		Locations:  locations,
		CostMatrix: h.instance.Costs,
	})
}

// Solve handles POST /api/solve: runs the requested formulation over the
// fixed instance and returns the tour plus the animation trace.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var request solveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(request); err != nil {
		h.respondError(w, http.StatusBadRequest, "method must be \"mtz\" or \"lazy\"")
		return
	}

	maxIterations := request.MaxIterations
	if maxIterations == 0 {
		maxIterations = h.maxIterations
	}

	var tourSolver tsp.TourSolver
	var methodName string
	switch request.Method {
	case "mtz":
		tourSolver = tsp.NewDirectSolver(h.solver)
		methodName = "MTZ"
	case "lazy":
		tourSolver = tsp.NewLazySolver(h.solver, maxIterations)
		methodName = "Lazy Subtours"
	}

	start := time.Now()
	result, err := tourSolver.Solve(h.instance)
	elapsed := time.Since(start)

	if err != nil {
		h.logger.Error("solve failed",
			zap.String("method", request.Method),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		h.metrics.observeSolve(request.Method, outcomeLabel(err), elapsed.Seconds())
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.logger.Info("solve finished",
		zap.String("method", request.Method),
		zap.Float64("cost", result.Cost),
		zap.Int("iterations", len(result.Trace.Iterations)),
		zap.Duration("duration", elapsed),
	)
	h.metrics.observeSolve(request.Method, "success", elapsed.Seconds())
	h.metrics.solveOptimum.Set(result.Cost)
	if request.Method == "lazy" {
		h.metrics.solveIters.Observe(float64(len(result.Trace.Iterations)))
	}

	h.respondJSON(w, http.StatusOK, solveResponse{
		Success:      true,
		Method:       methodName,
		OptimalValue: result.Cost,
		Tour:         result.Tour,
		Edges:        tourEdges(result.Tour),
		SubtourCuts: lo.Map(result.Trace.Cuts(), func(cut tsp.Cut, _ int) []int {
			return cut.Nodes
		}),
		AnimationSteps: animationSteps(result.Trace),
	})
}

func animationSteps(trace tsp.Trace) []animationStep {
	return lo.Map(trace.Iterations, func(iteration tsp.Iteration, _ int) animationStep {
		return animationStep{
			Iteration: iteration.Index,
			Objective: iteration.Objective,
			Edges: lo.Map(iteration.Edges, func(edge tsp.Edge, _ int) [2]int {
				return [2]int{edge.From, edge.To}
			}),
			Components: lo.Map(iteration.Cycles, func(cycle tsp.Cycle, _ int) []int {
				component := append([]int(nil), cycle...)
				sort.Ints(component)
				return component
			}),
			IsFinal: iteration.Final,
		}
	})
}

func tourEdges(tour []int) [][2]int {
	edges := make([][2]int, 0, len(tour)-1)
	for i := 0; i+1 < len(tour); i++ {
		edges = append(edges, [2]int{tour[i], tour[i+1]})
	}
	return edges
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, tsp.ErrInvalidInstance):
		return http.StatusBadRequest
	case errors.Is(err, milp.ErrInfeasible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, milp.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, tsp.ErrIterationLimit):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, milp.ErrInfeasible):
		return "infeasible"
	case errors.Is(err, milp.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, tsp.ErrIterationLimit):
		return "iteration_limit"
	default:
		return "error"
	}
}

func (h *SolveHandler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *SolveHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, errorResponse{Success: false, Error: message})
}
