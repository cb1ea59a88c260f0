// Package linearmodel provides the ordinary least squares fit shared by the
// regression based forecast models.
package linearmodel

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoTrainingMatrix  = errors.New("no training matrix")
	ErrNoTargetMatrix    = errors.New("no target matrix")
	ErrTargetLenMismatch = errors.New("target length does not match training rows")
)

// OLSRegression computes ordinary least squares with an intercept using QR
// factorization.
type OLSRegression struct {
	coef      []float64
	intercept float64
}

// Fit solves for the coefficients and intercept given an m x n feature matrix
// and an m x 1 target matrix.
func (o *OLSRegression) Fit(x, y mat.Matrix) error {
	if x == nil {
		return ErrNoTrainingMatrix
	}
	if y == nil {
		return ErrNoTargetMatrix
	}
	m, _ := x.Dims()
	ym, _ := y.Dims()
	if ym != m {
		return fmt.Errorf("training data has %d rows and target has %d rows, %w", m, ym, ErrTargetLenMismatch)
	}

	ones := make([]float64, m)
	floats.AddConst(1.0, ones)
	onesMx := mat.NewDense(1, m, ones)

	var xWithOnes mat.Dense
	xWithOnes.Stack(onesMx, x.T())
	xd := xWithOnes.T()
	_, n := xd.Dims()

	qr := new(mat.QR)
	qr.Factorize(xd)

	q := new(mat.Dense)
	r := new(mat.Dense)
	qr.QTo(q)
	qr.RTo(r)

	yq := new(mat.Dense)
	yq.Mul(y.T(), q)

	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = yq.At(0, i)
		for j := i + 1; j < n; j++ {
			c[i] -= c[j] * r.At(i, j)
		}
		c[i] /= r.At(i, i)
	}

	o.intercept = c[0]
	o.coef = c[1:]
	return nil
}

// Intercept returns the fitted intercept.
func (o *OLSRegression) Intercept() float64 {
	return o.intercept
}

// Coef returns a copy of the fitted coefficients.
func (o *OLSRegression) Coef() []float64 {
	c := make([]float64, len(o.coef))
	copy(c, o.coef)
	return c
}
