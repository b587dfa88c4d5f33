// Package fsrs implements the FSRS-5 memory model used to schedule word reviews.
// Every function is pure: the same inputs always give the same outputs.
package fsrs

import (
	"fmt"
	"math"
)

// MinStability is the floor for every stability value, in days.
const MinStability = 0.1

// Weights are the 19 FSRS-5 model parameters w0..w18.
type Weights [19]float64

// DefaultWeights are the published FSRS-5 defaults.
var DefaultWeights = Weights{
	0.4072,  // w0  initial stability, Again
	1.1829,  // w1  initial stability, Hard
	3.1262,  // w2  initial stability, Good
	15.4722, // w3  initial stability, Easy
	7.2102,  // w4  initial difficulty
	0.5316,  // w5  initial difficulty slope
	1.0651,  // w6  difficulty delta per grade
	0.0046,  // w7  difficulty mean reversion
	1.5418,  // w8  recall: exp(w8)
	0.1594,  // w9  recall: S^-w9
	1.01,    // w10 recall: exp(w10*(1-R))
	2.1791,  // w11 forget: scale
	0.0292,  // w12 forget: D^-w12
	0.2788,  // w13 forget: (S+1)^w13
	0.2229,  // w14 forget: exp(w14*(1-R))
	0.2604,  // w15 recall: hard penalty
	3.3928,  // w16 recall: easy bonus
	0.2223,  // w17 short-term stability
	0.6744,  // w18 short-term stability
}

// Rating is the recall quality fed to the scheduler.
type Rating int

const (
	Again Rating = 1
	Hard  Rating = 2
	Good  Rating = 3
	Easy  Rating = 4
)

// IsValid reports whether r is one of the four ratings.
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

// Validate checks that all weights are finite and the initial stabilities are positive.
func (w Weights) Validate() error {
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight w[%d] is invalid: %v", i, v)
		}
	}
	for i := 0; i < 4; i++ {
		if w[i] <= 0 {
			return fmt.Errorf("initial stability weight w[%d] must be positive", i)
		}
	}
	return nil
}

// Retrievability is the modeled probability of recall after elapsedDays:
//
//	R(t, S) = (1 + t/(9S))^-1
func Retrievability(elapsedDays int, stability float64) float64 {
	if stability <= 0 {
		return 0
	}
	return 1 / (1 + float64(elapsedDays)/(9*stability))
}

// NextInterval is the number of days until recall probability falls to retention:
//
//	I(S, r) = round(9S(1/r - 1)), at least 1
func NextInterval(stability, retention float64) int {
	if retention <= 0 || retention >= 1 {
		return 1
	}
	days := math.Round(9 * stability * (1/retention - 1))
	return max(1, int(days))
}

// InitialStability is w[G-1] for the first rating G.
func (w Weights) InitialStability(r Rating) float64 {
	if !r.IsValid() {
		r = Good
	}
	return math.Max(MinStability, w[r-1])
}

// InitialDifficulty is w4 - exp(w5(G-1)) + 1, clamped to [1, 10].
func (w Weights) InitialDifficulty(r Rating) float64 {
	return clampDifficulty(w[4] - math.Exp(w[5]*float64(r-1)) + 1)
}

// NextDifficulty moves d by -w6(G-3) and reverts it towards D0(Easy) by w7.
func (w Weights) NextDifficulty(d float64, r Rating) float64 {
	target := w.InitialDifficulty(Easy)
	shifted := d - w[6]*(float64(r)-3)
	return clampDifficulty(w[7]*target + (1-w[7])*shifted)
}

// RecallStability is the stability after a successful review (Hard, Good, Easy):
//
//	S' = S(e^w8 (11-D) S^-w9 (e^(w10(1-R)) - 1) penalty bonus + 1)
func (w Weights) RecallStability(s, d, retrievability float64, r Rating) float64 {
	factor := math.Exp(w[8]) * (11 - d) * math.Pow(s, -w[9]) * (math.Exp(w[10]*(1-retrievability)) - 1)
	switch r {
	case Hard:
		factor *= w[15]
	case Easy:
		factor *= w[16]
	}
	return math.Max(MinStability, s*(factor+1))
}

// ForgetStability is the stability after a lapse:
//
//	S' = w11 D^-w12 ((S+1)^w13 - 1) e^(w14(1-R))
//
// capped at S / e^(w17 w18) so a lapse never raises stability.
func (w Weights) ForgetStability(s, d, retrievability float64) float64 {
	forgot := w[11] * math.Pow(d, -w[12]) * (math.Pow(s+1, w[13]) - 1) * math.Exp(w[14]*(1-retrievability))
	ceiling := s / math.Exp(w[17]*w[18])
	return math.Max(MinStability, math.Min(forgot, ceiling))
}

// ShortTermStability is the same-day stability update used in (re)learning:
//
//	S' = S e^(w17(G - 3 + w18))
func (w Weights) ShortTermStability(s float64, r Rating) float64 {
	return math.Max(MinStability, s*math.Exp(w[17]*(float64(r)-3+w[18])))
}

func clampDifficulty(d float64) float64 {
	return math.Max(1, math.Min(10, d))
}
