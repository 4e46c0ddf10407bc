package intl

// Subscribe registers fn to receive runtime state. fn is called immediately
// with the current state and again after every locale switch, dictionary
// change or loading flag change. The returned function cancels the
// subscription.
func (r *Runtime) Subscribe(fn func(State)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	r.subMu.Lock()
	r.nextSub++
	id := r.nextSub
	r.subscribers[id] = fn
	r.subMu.Unlock()

	fn(r.State())

	return func() {
		r.subMu.Lock()
		delete(r.subscribers, id)
		r.subMu.Unlock()
	}
}

func (r *Runtime) notify() {
	r.subMu.Lock()
	if len(r.subscribers) == 0 {
		r.subMu.Unlock()
		return
	}
	fns := make([]func(State), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		fns = append(fns, fn)
	}
	r.subMu.Unlock()

	state := r.State()
	for _, fn := range fns {
		fn(state)
	}
}

// Subscribe registers fn on the default runtime.
func Subscribe(fn func(State)) (cancel func()) {
	return Default().Subscribe(fn)
}
