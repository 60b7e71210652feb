package viewport

// reconcile fits cur to a list that now has newCount items. When the list
// shrank past the window, the window and focus slide left together until the
// window fits or reaches index 0. Growth only trues up the width.
func reconcile(cur State, newCount int) State {
	if newCount <= 0 {
		return Empty(cur.Size)
	}

	next := cur
	next.Count = newCount
	for next.End > newCount && next.Start > 0 {
		next.Start--
		next.End--
		next.Focus--
	}

	next = trueUp(next)
	if next.Focus >= next.End {
		next.Focus = next.End - 1
	}
	if next.Focus < next.Start {
		next.Focus = next.Start
	}
	return next
}
