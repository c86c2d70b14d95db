package teahost

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FuncMsg carries a deferred callback into the update loop. Programs
// using [ProgramClock] must call Fn when Update receives one.
type FuncMsg struct {
	Fn func()
}

// ProgramClock schedules callbacks through a Bubble Tea program so they
// run on the update loop rather than on a timer goroutine. Controllers
// driven by a Host need this: the Host is not safe for concurrent use.
//
// Wire Send to (*tea.Program).Send after constructing the program.
// Callbacks that fire before Send is wired are dropped.
type ProgramClock struct {
	Send func(tea.Msg)
}

// AfterFunc delivers fn as a [FuncMsg] after the delay.
func (c *ProgramClock) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		if c.Send == nil {
			return
		}
		c.Send(FuncMsg{Fn: fn})
	})
}
