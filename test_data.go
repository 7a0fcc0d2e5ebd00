package quat

// GenerateFloat64 generates deterministic float64 test data in [0, 1) using a
// linear congruential generator (LCG). This ensures reproducible tests across
// runs.
//
// Example:
//
//	data := GenerateFloat64(1024, 12345)
func GenerateFloat64(size int, seed uint64) []float64 {
	data := make([]float64, size)
	rng := seed
	for i := range data {
		rng = rng*6364136223846793005 + 1442695040888963407 // Knuth MMIX
		data[i] = float64(rng>>11) / (1 << 53)
	}
	return data
}

// GenerateFloat64Range generates deterministic float64 data in [min, max).
func GenerateFloat64Range(size int, seed uint64, min, max float64) []float64 {
	data := GenerateFloat64(size, seed)
	scale := max - min
	for i := range data {
		data[i] = data[i]*scale + min
	}
	return data
}

// GenerateQuaternions generates n deterministic quaternions with coordinates
// in [DefaultSampleMin, DefaultSampleMax).
func GenerateQuaternions(n int, seed uint64) []Quaternion {
	return GenerateQuaternionsRange(n, seed, DefaultSampleMin, DefaultSampleMax)
}

// GenerateQuaternionsRange generates n deterministic quaternions with
// coordinates in [min, max).
//
// Example:
//
//	qs := GenerateQuaternionsRange(100, 42, -1, 1)
func GenerateQuaternionsRange(n int, seed uint64, min, max float64) []Quaternion {
	data := GenerateFloat64Range(4*n, seed, min, max)
	qs := make([]Quaternion, n)
	for i := range qs {
		qs[i] = Quaternion{data[4*i], data[4*i+1], data[4*i+2], data[4*i+3]}
	}
	return qs
}

// BasisQuaternions returns 1, i, j and k.
func BasisQuaternions() [4]Quaternion {
	return [4]Quaternion{
		{a: 1},
		{b: 1},
		{c: 1},
		{d: 1},
	}
}

// EdgeCaseQuaternions returns finite values that exercise the branches of
// Unit, Inv, Exp and Ln: zero, pure real of both signs, pure vector, tiny,
// subnormal and large magnitudes, and a real part whose exponential
// overflows.
func EdgeCaseQuaternions() []Quaternion {
	return []Quaternion{
		{},
		{a: 1},
		{a: -1},
		{a: 2.5},
		{b: 1},
		{b: 3, c: -4},
		{a: 1, b: 1, c: 1, d: 1},
		{a: 1e-150, b: 1e-150, c: 1e-150, d: 1e-150},
		{a: 1e150, b: -1e150},
		{a: 1, b: 1e-12},
		{a: 1e-200},
		{b: 1e-200, c: -1e-200},
		{a: 1e-310},
		{a: 1e300, b: 1e300, c: -1e300, d: 1e300},
		{a: 1000, b: 1},
	}
}
