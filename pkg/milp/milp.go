package milp

// Problem is a mixed-integer linear program in row form:
//
//	minimize    Costs · x
//	subject to  Row.Lower <= sum(Row.Coeffs * x[Row.Cols]) <= Row.Upper
//	            ColLower <= x <= ColUpper
//
// Variables with Integer[i] == true are integer-constrained; with unit
// bounds they act as binaries.
type Problem struct {
	Costs    []float64
	ColLower []float64
	ColUpper []float64
	Integer  []bool
	Rows     []Row
}

// Row is a single linear constraint with sparse coefficients.
type Row struct {
	Lower  float64
	Cols   []int
	Coeffs []float64
	Upper  float64
}

// Solution holds the primal values and objective of a solved problem.
type Solution struct {
	Values    []float64
	Objective float64
}

// NumVars returns the number of decision variables.
func (p *Problem) NumVars() int {
	return len(p.Costs)
}

// AddRow appends a two-sided constraint: lower <= coeffs·x[cols] <= upper.
func (p *Problem) AddRow(lower float64, cols []int, coeffs []float64, upper float64) {
	p.Rows = append(p.Rows, Row{Lower: lower, Cols: cols, Coeffs: coeffs, Upper: upper})
}

// AddEqRow appends an equality constraint: coeffs·x[cols] = rhs.
func (p *Problem) AddEqRow(cols []int, coeffs []float64, rhs float64) {
	p.AddRow(rhs, cols, coeffs, rhs)
}

// AddLeRow appends a less-than-or-equal constraint: coeffs·x[cols] <= rhs.
func (p *Problem) AddLeRow(cols []int, coeffs []float64, rhs float64) {
	p.AddRow(negInf, cols, coeffs, rhs)
}
