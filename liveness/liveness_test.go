package liveness_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/liveset/liveness"
	"github.com/hupe1980/liveset/testutil"
)

const (
	varA = iota
	varB
	varC
)

// loopFunction:
//
//	B0: a = ...; b = ...          -> B1
//	B1: c = a + b; a = c          -> B1, B2
//	B2: return a
func loopFunction() *liveness.Function {
	return &liveness.Function{
		Name:    "loop",
		NumVars: 3,
		Blocks: []liveness.Block{
			{
				Instrs: []liveness.Instr{{Defs: []int{varA}}, {Defs: []int{varB}}},
				Succs:  []int{1},
			},
			{
				Instrs: []liveness.Instr{
					{Uses: []int{varA, varB}, Defs: []int{varC}},
					{Uses: []int{varC}, Defs: []int{varA}},
				},
				Succs: []int{1, 2},
			},
			{
				Instrs: []liveness.Instr{{Uses: []int{varA}}},
			},
		},
	}
}

func TestLocalSets(t *testing.T) {
	use, def := liveness.LocalSets(loopFunction())

	assert.Empty(t, use[0].Elements())
	assert.Equal(t, []int{varA, varB}, def[0].Elements())
	assert.Equal(t, []int{varA, varB}, use[1].Elements())
	assert.Equal(t, []int{varA, varC}, def[1].Elements())
	assert.Equal(t, []int{varA}, use[2].Elements())
	assert.Empty(t, def[2].Elements())
}

func TestSolve(t *testing.T) {
	for _, order := range []liveness.Order{liveness.Reverse, liveness.Forward} {
		t.Run(order.String(), func(t *testing.T) {
			res, err := liveness.Solve(loopFunction(), liveness.WithOrder(order))
			require.NoError(t, err)
			defer res.Free()

			assert.Empty(t, res.LiveIn[0].Elements())
			assert.Equal(t, []int{varA, varB}, res.LiveOut[0].Elements())
			assert.Equal(t, []int{varA, varB}, res.LiveIn[1].Elements())
			assert.Equal(t, []int{varA, varB}, res.LiveOut[1].Elements())
			assert.Equal(t, []int{varA}, res.LiveIn[2].Elements())
			assert.Empty(t, res.LiveOut[2].Elements())
			assert.Greater(t, res.Passes, 1)
		})
	}
}

func TestSolve_Empty(t *testing.T) {
	res, err := liveness.Solve(&liveness.Function{Name: "empty"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Passes)
	assert.Empty(t, res.LiveIn)
}

func TestSolve_MaxPasses(t *testing.T) {
	_, err := liveness.Solve(loopFunction(), liveness.WithMaxPasses(1))
	assert.ErrorIs(t, err, liveness.ErrNoConvergence)
}

func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := liveness.Solve(loopFunction(), liveness.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "liveness pass")
	assert.Contains(t, out, "function=loop")
	assert.Equal(t, res.Passes, bytes.Count(buf.Bytes(), []byte("liveness pass")))
}

func TestValidate(t *testing.T) {
	var nilFn *liveness.Function
	assert.ErrorIs(t, nilFn.Validate(), liveness.ErrNilFunction)

	_, err := liveness.Solve(nil)
	assert.ErrorIs(t, err, liveness.ErrNilFunction)

	assert.ErrorIs(t, (&liveness.Function{NumVars: -1}).Validate(), liveness.ErrNegativeVars)

	fn := loopFunction()
	fn.Blocks[1].Instrs[0].Uses = append(fn.Blocks[1].Instrs[0].Uses, 3)
	var vErr *liveness.ErrVariableOutOfRange
	require.ErrorAs(t, fn.Validate(), &vErr)
	assert.Equal(t, 1, vErr.Block)
	assert.Equal(t, 0, vErr.Instr)
	assert.Equal(t, 3, vErr.Var)

	fn = loopFunction()
	fn.Blocks[0].Succs = []int{7}
	var sErr *liveness.ErrInvalidSuccessor
	require.ErrorAs(t, fn.Validate(), &sErr)
	assert.Equal(t, 7, sErr.Succ)
	assert.Equal(t, 3, sErr.NumBlocks)
}

func TestSolve_AgainstReference(t *testing.T) {
	rng := testutil.NewRNG(2024)

	for round := 0; round < 30; round++ {
		fn := rng.RandomFunction(1+rng.Intn(25), 1+rng.Intn(40), 5)
		wantIn, wantOut := testutil.ReferenceLiveness(fn)

		for _, order := range []liveness.Order{liveness.Reverse, liveness.Forward} {
			res, err := liveness.Solve(fn, liveness.WithOrder(order))
			require.NoError(t, err)

			for b := range fn.Blocks {
				assert.Equal(t, wantIn[b], testutil.Members(res.LiveIn[b]), "%s block %d in", fn.Name, b)
				assert.Equal(t, wantOut[b], testutil.Members(res.LiveOut[b]), "%s block %d out", fn.Name, b)
			}
			assert.LessOrEqual(t, res.Passes, 2*len(fn.Blocks)*fn.NumVars+1)
			res.Free()
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	fn := testutil.NewRNG(1).RandomFunction(200, 256, 8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := liveness.Solve(fn)
		if err != nil {
			b.Fatal(err)
		}
		res.Free()
	}
}
