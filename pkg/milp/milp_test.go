package milp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddEqRow(t *testing.T) {
	problem := Problem{Costs: []float64{1, 2, 3}}

	problem.AddEqRow([]int{0, 2}, []float64{1, 1}, 5)

	assert.Len(t, problem.Rows, 1)
	assert.Equal(t, 5.0, problem.Rows[0].Lower)
	assert.Equal(t, 5.0, problem.Rows[0].Upper)
	assert.Equal(t, []int{0, 2}, problem.Rows[0].Cols)
}

func TestAddLeRow(t *testing.T) {
	problem := Problem{Costs: []float64{1, 2}}

	problem.AddLeRow([]int{0, 1}, []float64{1, -1}, 3)

	assert.Len(t, problem.Rows, 1)
	assert.True(t, math.IsInf(problem.Rows[0].Lower, -1))
	assert.Equal(t, 3.0, problem.Rows[0].Upper)
}

func TestNumVars(t *testing.T) {
	problem := Problem{Costs: make([]float64, 7)}

	assert.Equal(t, 7, problem.NumVars())
}
