package tailer

import (
	"context"

	"github.com/looplab/fsm"
)

// newTailerFSM creates the state machine governing the tailer lifecycle:
// opening → scanning → (tailing | done). Follow mode ends in tailing until
// cancelled; one-shot mode finishes in done.
func newTailerFSM(t *Tailer) *fsm.FSM {
	return fsm.NewFSM(
		StateOpening,
		fsm.Events{
			{Name: eventOpened, Src: []string{StateOpening}, Dst: StateScanning},
			{Name: eventFollow, Src: []string{StateScanning}, Dst: StateTailing},
			{Name: eventFinish, Src: []string{StateScanning}, Dst: StateDone},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				t.log.Debug().Msgf("STATE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)

				if t.opts.OnState != nil {
					t.opts.OnState(e.Dst)
				}
			},
		},
	)
}
