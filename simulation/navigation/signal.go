package navigation

// Subscription identifies one observer registration on a signal.
// The zero value is never issued and means "not subscribed".
type Subscription int

type positionObserver struct {
	sub Subscription
	cbk func(x float64, y float64)
}

// PositionSignal notifies its observers of a position change.
// Observers are notified synchronously, in subscription order.
type PositionSignal struct {
	lastSub   Subscription
	observers []positionObserver
}

func (signal *PositionSignal) Subscribe(cbk func(x float64, y float64)) Subscription {
	signal.lastSub++
	signal.observers = append(signal.observers, positionObserver{signal.lastSub, cbk})
	return signal.lastSub
}

func (signal *PositionSignal) Unsubscribe(sub Subscription) {
	for i, observer := range signal.observers {
		if observer.sub == sub {
			signal.observers = append(signal.observers[:i:i], signal.observers[i+1:]...)
			return
		}
	}
}

func (signal *PositionSignal) Emit(x float64, y float64) {
	// observers may unsubscribe while being notified
	observers := make([]positionObserver, len(signal.observers))
	copy(observers, signal.observers)

	for _, observer := range observers {
		observer.cbk(x, y)
	}
}

type agentObserver struct {
	sub Subscription
	cbk func(agentID int)
}

// AgentSignal notifies its observers of an event concerning one agent,
// designated by id.
type AgentSignal struct {
	lastSub   Subscription
	observers []agentObserver
}

func (signal *AgentSignal) Subscribe(cbk func(agentID int)) Subscription {
	signal.lastSub++
	signal.observers = append(signal.observers, agentObserver{signal.lastSub, cbk})
	return signal.lastSub
}

func (signal *AgentSignal) Unsubscribe(sub Subscription) {
	for i, observer := range signal.observers {
		if observer.sub == sub {
			signal.observers = append(signal.observers[:i:i], signal.observers[i+1:]...)
			return
		}
	}
}

func (signal *AgentSignal) Emit(agentID int) {
	observers := make([]agentObserver, len(signal.observers))
	copy(observers, signal.observers)

	for _, observer := range observers {
		observer.cbk(agentID)
	}
}
