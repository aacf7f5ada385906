package game

// openPriorityWindow runs a full priority exchange starting with
// startingPlayer. Priority alternates on PASS_PRIORITY; any other action
// resets the pass count and is resolved before priority is re-offered to
// the same player (the actor keeps priority after acting). Once both
// players pass in succession, the top stack item resolves (if any) and
// the active player receives priority again; the window only truly
// closes once both have passed with an empty stack.
func (d *Duel) openPriorityWindow(startingPlayer int) error {
	gs := d.State

	for {
		if gs.GameOver {
			return nil
		}
		d.placePendingTriggersOnStack()
		if gs.GameOver {
			return nil
		}

		passCount := 0
		currentPlayer := startingPlayer

		for passCount < 2 {
			if gs.GameOver {
				return nil
			}
			gs.PriorityHolder = currentPlayer

			actions := d.legalActions(currentPlayer)
			chosen, err := d.Controllers[currentPlayer].ChooseAction(d.ctx, gs, actions)
			if err != nil {
				return err
			}

			if chosen.Type == ActionPassPriority {
				passCount++
				currentPlayer = gs.Opponent(currentPlayer)
				continue
			}

			if err := d.executeAction(currentPlayer, chosen); err != nil {
				return err
			}
			if gs.GameOver {
				return nil
			}
			passCount = 0
			// currentPlayer keeps priority after acting.
		}

		if len(gs.Stack) == 0 {
			gs.PriorityHolder = -1
			return nil
		}

		if err := d.resolveTopOfStack(); err != nil {
			return err
		}
		if gs.GameOver {
			return nil
		}
		startingPlayer = gs.ActivePlayer
	}
}
