package cplx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/cplx"
)

// mustNew builds a Complex and fails the test on a constructor error.
func mustNew(t *testing.T, re, im float64) cplx.Complex {
	t.Helper()
	z, err := cplx.New(re, im)
	require.NoError(t, err, "New(%g, %g)", re, im)

	return z
}
