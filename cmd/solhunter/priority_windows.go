//go:build windows

package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// ProcessPowerThrottling information class and its execution speed flag.
const (
	processPowerThrottling               = 4
	processPowerThrottlingExecutionSpeed = 0x1
)

var procSetProcessInformation = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetProcessInformation")

// processPowerThrottlingState mirrors PROCESS_POWER_THROTTLING_STATE.
type processPowerThrottlingState struct {
	Version     uint32
	ControlMask uint32
	StateMask   uint32
}

// raisePriority moves the process to the high priority class, falling back to
// above normal, and opts out of power throttling (Efficiency Mode).
// REALTIME is never used since it can freeze the system.
func raisePriority() error {
	proc := windows.CurrentProcess()
	if err := windows.SetPriorityClass(proc, windows.HIGH_PRIORITY_CLASS); err != nil {
		if err := windows.SetPriorityClass(proc, windows.ABOVE_NORMAL_PRIORITY_CLASS); err != nil {
			return err
		}
	}
	return disablePowerThrottling()
}

// disablePowerThrottling needs Windows 10 1709 or later.
func disablePowerThrottling() error {
	if err := procSetProcessInformation.Find(); err != nil {
		return err
	}
	state := processPowerThrottlingState{
		Version:     1,
		ControlMask: processPowerThrottlingExecutionSpeed,
		StateMask:   0, // 0 disables throttling
	}
	ret, _, err := procSetProcessInformation.Call(
		uintptr(windows.CurrentProcess()),
		processPowerThrottling,
		uintptr(unsafe.Pointer(&state)),
		unsafe.Sizeof(state),
	)
	if ret == 0 {
		return err
	}
	return nil
}
