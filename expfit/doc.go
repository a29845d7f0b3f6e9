// Package expfit approximates a slowly decaying function f(r) by a finite sum
// of exponentials
//
// f(r) ~ sum_k c_k lambda_k^r
//
// following the matrix product operator construction of Pirvu et al.,
// New J. Phys. 12 (2010) 025012. The pipeline is
//
//  1. sample f on a Hankel like matrix, one row per lag and one column per
//     exponential component (NewSampleMatrix),
//  2. factor the samples with a thin QR decomposition and diagonalise the
//     shift operator L = Q1^+ Q2 between the row shifted views of Q
//     (ShiftEigenvalues),
//  3. solve a least squares problem for the coefficients on the fitted bases
//     (FitCoefficients),
//  4. evaluate the sum and its residual against f (Evaluate, Residual).
//
// LongRangeCoeffs runs all four steps. Every function is pure; independent
// fits share no state.
package expfit
