//go:build unix

package main

import "golang.org/x/sys/unix"

// niceness applied by --priority. Lowering below 0 usually needs root or
// CAP_SYS_NICE; without it the call fails and the search runs at normal priority.
const niceness = -10

func raisePriority() error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, niceness)
}
