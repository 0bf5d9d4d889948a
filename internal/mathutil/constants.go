package mathutil

const (
	// NormalizeEpsilon is the length at or below which Normalize yields the zero vector.
	NormalizeEpsilon = 1e-6

	// ParallelEpsilon bounds determinants and leading coefficients treated as zero.
	ParallelEpsilon = 1e-8

	// MinHitDistance is the smallest ray parameter accepted as a hit.
	MinHitDistance = 1e-8
)
