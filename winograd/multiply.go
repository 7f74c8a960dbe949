package winograd

import (
	"github.com/katalvlaran/kernels/matrix"
	"github.com/katalvlaran/kernels/parallel"
	"golang.org/x/sync/errgroup"
)

const opMultiply = "Multiply"

// engine holds one product C = A·B with A m×n and B n×p.
// rowF and colF are sized for exactly these inputs and live only for one call.
type engine struct {
	a, b, c [][]float64
	m, n, p int
	half    int

	rowF []float64
	colF []float64
}

func newEngine(a, b, c *matrix.Dense) *engine {
	e := &engine{
		m:    a.Rows(),
		n:    a.Cols(),
		p:    b.Cols(),
		half: a.Cols() / 2,
	}
	e.a = a.RowViews()
	e.b = b.RowViews()
	e.c = c.RowViews()
	e.rowF = make([]float64, e.m)
	e.colF = make([]float64, e.p)

	return e
}

// rowFactors fills rowF[i] = Σ_k a(i,2k)·a(i,2k+1) for rows [lo,hi).
func (e *engine) rowFactors(lo, hi int) {
	var (
		i, k int
		s    float64
		row  []float64
	)
	for i = lo; i < hi; i++ {
		row = e.a[i]
		s = 0
		for k = 0; k < e.half; k++ {
			s += row[2*k] * row[2*k+1]
		}
		e.rowF[i] = s
	}
}

// colFactors fills colF[j] = Σ_k b(2k,j)·b(2k+1,j) for columns [lo,hi).
func (e *engine) colFactors(lo, hi int) {
	var (
		j, k int
		s    float64
	)
	for j = lo; j < hi; j++ {
		s = 0
		for k = 0; k < e.half; k++ {
			s += e.b[2*k][j] * e.b[2*k+1][j]
		}
		e.colF[j] = s
	}
}

// result writes c(i,j) for rows [lo,hi) from the identity
// c(i,j) = −rowF[i] − colF[j] + Σ_k (a(i,2k)+b(2k+1,j))·(a(i,2k+1)+b(2k,j)).
func (e *engine) result(lo, hi int) {
	var (
		i, j, k int
		s       float64
		ar, cr  []float64
	)
	for i = lo; i < hi; i++ {
		ar, cr = e.a[i], e.c[i]
		for j = 0; j < e.p; j++ {
			s = -e.rowF[i] - e.colF[j]
			for k = 0; k < e.half; k++ {
				s += (ar[2*k] + e.b[2*k+1][j]) * (ar[2*k+1] + e.b[2*k][j])
			}
			cr[j] = s
		}
	}
}

// correct adds the unpaired last term for odd n on rows [lo,hi). No-op for even n.
func (e *engine) correct(lo, hi int) {
	if e.n%2 == 0 {
		return
	}
	var (
		i, j int
		last = e.n - 1
		bl   = e.b[last]
		av   float64
	)
	for i = lo; i < hi; i++ {
		av = e.a[i][last]
		for j = 0; j < e.p; j++ {
			e.c[i][j] += av * bl[j]
		}
	}
}

// Multiply returns A·B computed opts.Repeats times under opts.Mode.
//
// Contract:
//   - a and b must be non-nil with a.Cols() == b.Rows(); inputs are never modified.
//   - When a.Cols() == 1 the identity has nothing to pair and the naive product is used.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrBadOptions.
//
// Complexity: O(Repeats · m·n·p) time, O(m·p + m + p) space.
func Multiply(a, b *matrix.Dense, opts Options) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, winogradErrorf(opMultiply, err)
	}
	if err := opts.validate(); err != nil {
		return nil, winogradErrorf(opMultiply, err)
	}

	if a.Cols() == 1 {
		return naive(a, b, opts.Repeats)
	}

	c, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, winogradErrorf(opMultiply, err)
	}
	e := newEngine(a, b, c)

	switch opts.Mode {
	case ForkJoin:
		threads := opts.Threads
		if threads <= 0 {
			threads = parallel.DefaultWorkers()
		}
		err = e.forkJoin(opts.Repeats, threads)
	case Pipelined:
		err = e.pipelined(opts.Repeats)
	default:
		e.sequential(opts.Repeats)
	}
	if err != nil {
		return nil, winogradErrorf(opMultiply, err)
	}

	return c, nil
}

func naive(a, b *matrix.Dense, repeats int) (*matrix.Dense, error) {
	var (
		c   *matrix.Dense
		err error
		r   int
	)
	for r = 0; r < repeats; r++ {
		if c, err = matrix.Mul(a, b); err != nil {
			return nil, winogradErrorf(opMultiply, err)
		}
	}

	return c, nil
}

func (e *engine) sequential(repeats int) {
	var r int
	for r = 0; r < repeats; r++ {
		e.rowFactors(0, e.m)
		e.colFactors(0, e.p)
		e.result(0, e.m)
		e.correct(0, e.m)
	}
}

// forkJoin runs two joined phases per repeat. Worker w of the first phase owns
// row range w and column range w; the second phase splits result rows only.
func (e *engine) forkJoin(repeats, threads int) error {
	var (
		rowR = parallel.Split(e.m, threads)
		colR = parallel.Split(e.p, threads)
		r    int
		err  error
	)
	for r = 0; r < repeats; r++ {
		err = parallel.Run(threads, threads, func(w int, _ parallel.Range) error {
			e.rowFactors(rowR[w].Start, rowR[w].End)
			e.colFactors(colR[w].Start, colR[w].End)
			return nil
		})
		if err != nil {
			return err
		}

		err = parallel.ForEach(rowR, func(_ int, rr parallel.Range) error {
			e.result(rr.Start, rr.End)
			e.correct(rr.Start, rr.End)
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// pipelined runs the four stages as goroutines connected by single-slot signals.
//
// Edges:
//   - rowsDone (1→3), colsDone (2→3), resultDone (3→4) carry "data ready".
//   - rowsFree (3→1), colsFree (3→2), resultFree (4→3) carry "buffer released";
//     they start granted so the first iteration runs immediately.
func (e *engine) pipelined(repeats int) error {
	var (
		rowsDone   = parallel.NewSignal()
		colsDone   = parallel.NewSignal()
		resultDone = parallel.NewSignal()
		rowsFree   = parallel.NewReadySignal()
		colsFree   = parallel.NewReadySignal()
		resultFree = parallel.NewReadySignal()
		g          errgroup.Group
	)

	g.Go(func() error {
		for r := 0; r < repeats; r++ {
			rowsFree.Wait()
			e.rowFactors(0, e.m)
			rowsDone.Notify()
		}
		return nil
	})
	g.Go(func() error {
		for r := 0; r < repeats; r++ {
			colsFree.Wait()
			e.colFactors(0, e.p)
			colsDone.Notify()
		}
		return nil
	})
	g.Go(func() error {
		for r := 0; r < repeats; r++ {
			rowsDone.Wait()
			colsDone.Wait()
			resultFree.Wait()
			e.result(0, e.m)
			rowsFree.Notify()
			colsFree.Notify()
			resultDone.Notify()
		}
		return nil
	})
	g.Go(func() error {
		for r := 0; r < repeats; r++ {
			resultDone.Wait()
			e.correct(0, e.m)
			resultFree.Notify()
		}
		return nil
	})

	return g.Wait()
}
