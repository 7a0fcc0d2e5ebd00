package quat

import (
	"runtime"
)

// ArchToleranceConfig provides architecture-specific tolerance configurations
type ArchToleranceConfig struct {
	// Base tolerance for all architectures
	Base ToleranceConfig

	// Overrides for architectures where the compiler fuses x*y+z into a
	// single FMA instruction, and for everything else
	FMA     *ToleranceConfig
	Generic *ToleranceConfig
}

// GetArchTolerance returns the appropriate tolerance for the current architecture
func GetArchTolerance(config ArchToleranceConfig) ToleranceConfig {
	return archTolerance(config, runtime.GOARCH)
}

func archTolerance(config ArchToleranceConfig, goarch string) ToleranceConfig {
	base := config.Base

	switch {
	case goarch == "amd64" || goarch == "386":
		// No fusion; Base applies
	case FusesMultiplyAdd(goarch):
		if config.FMA != nil {
			return mergeTolerances(base, *config.FMA)
		}
	default:
		if config.Generic != nil {
			return mergeTolerances(base, *config.Generic)
		}
	}

	return base
}

// mergeTolerances applies overrides to base tolerance
func mergeTolerances(base, override ToleranceConfig) ToleranceConfig {
	result := base

	// Only override non-zero values
	if override.AbsTol > 0 {
		result.AbsTol = override.AbsTol
	}
	if override.RelTol > 0 {
		result.RelTol = override.RelTol
	}
	if override.ULPTol > 0 {
		result.ULPTol = override.ULPTol
	}

	return result
}

// ProductArchTolerance covers Mul, Div and Inv, whose sums of products may be
// fused on some architectures.
var ProductArchTolerance = ArchToleranceConfig{
	Base: DefaultTolerance(),
	FMA: &ToleranceConfig{
		RelTol: 1e-8,
		ULPTol: 64,
	},
}

// TranscendentalArchTolerance covers Exp and Ln, which go through the math
// package's assembly or pure-Go kernels depending on the architecture.
var TranscendentalArchTolerance = ArchToleranceConfig{
	Base: DefaultTolerance(),
	FMA: &ToleranceConfig{
		RelTol: 1e-8,
		ULPTol: 128,
	},
	Generic: &ToleranceConfig{
		RelTol: 1e-8,
		ULPTol: 128,
	},
}

// GetOperationTolerance returns architecture-specific tolerance for an operation
func GetOperationTolerance(operation string) ToleranceConfig {
	switch operation {
	case "mul", "div", "inv", "rmul", "rdiv", "unit":
		return GetArchTolerance(ProductArchTolerance)
	case "exp", "ln":
		return GetArchTolerance(TranscendentalArchTolerance)
	default:
		return DefaultTolerance()
	}
}

// FusesMultiplyAdd reports whether the gc compiler emits fused multiply-add
// for float64 expressions on goarch.
func FusesMultiplyAdd(goarch string) bool {
	switch goarch {
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		return true
	}
	return false
}
