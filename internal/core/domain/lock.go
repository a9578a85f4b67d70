package domain

// LockTarget is a conda-lock platform triple such as "linux-64".
type LockTarget string

const (
	// LockTargetWin64 targets 64-bit Windows.
	LockTargetWin64 LockTarget = "win-64"

	// LockTargetOSXArm64 targets Apple silicon macOS.
	LockTargetOSXArm64 LockTarget = "osx-arm64"

	// LockTargetLinux64 targets 64-bit Linux.
	LockTargetLinux64 LockTarget = "linux-64"
)

// DefaultLockTargets returns the platforms every portable environment is
// solved for.
func DefaultLockTargets() []LockTarget {
	return []LockTarget{LockTargetWin64, LockTargetOSXArm64, LockTargetLinux64}
}
