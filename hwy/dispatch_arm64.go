//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// ASIMD is mandatory on ARMv8-A but x/sys/cpu can still report false
	// under some emulators.
	if !cpu.ARM64.HasASIMD {
		setScalarMode()
		return
	}
	currentLevel = DispatchNEON
	currentWidth = 16
	currentName = "neon"
}
