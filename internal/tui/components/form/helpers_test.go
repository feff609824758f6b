package form

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/tuikit/pkg/tuitest"
)

const drainWait = 50 * time.Millisecond

// pump sends msgs to the dialog and feeds the quick follow-up messages back
// in, the way a running program would.
func pump(d *Dialog, msgs ...tea.Msg) {
	queue := append([]tea.Msg(nil), msgs...)
	for steps := 0; len(queue) > 0 && steps < 50; steps++ {
		msg := queue[0]
		queue = queue[1:]

		_, cmd := d.Update(msg)
		queue = append(queue, tuitest.DrainWithin(cmd, drainWait)...)
	}
}
