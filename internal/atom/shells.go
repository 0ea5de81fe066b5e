// Package atom computes the atomic model behind every diagram and the
// builder: electron shells, nucleus particle placement and the identity
// classification of a proton/electron/neutron triple.
//
// All functions are pure. The only source of nondeterminism is the
// Shuffler handed to the nucleus layout.
package atom

// ShellCapacities is the simplified fixed-capacity filling rule.
var ShellCapacities = [...]int{2, 8, 18, 32}

// MaxShellElectrons is the total capacity of all shells.
const MaxShellElectrons = 2 + 8 + 18 + 32

// ComputeShells partitions electrons across the shells in order. Electrons
// beyond MaxShellElectrons are dropped.
func ComputeShells(electrons int) []int {
	shells := []int{}
	remaining := electrons
	for _, capacity := range ShellCapacities {
		if remaining <= 0 {
			break
		}
		n := min(remaining, capacity)
		shells = append(shells, n)
		remaining -= n
	}
	return shells
}

// ShellOverflow returns how many electrons ComputeShells leaves out.
func ShellOverflow(electrons int) int {
	if electrons <= MaxShellElectrons {
		return 0
	}
	return electrons - MaxShellElectrons
}
