package domain

// OpenPolicy controls whether a category is allowed to open while other
// moments are open for the same game.
type OpenPolicy int

const (
	// PolicyPerCategory allows one open moment per category; unrelated
	// categories may be open at the same time. Mutual exclusion applies
	// only through configured exclusion and deactivation sets.
	PolicyPerCategory OpenPolicy = iota
	// PolicySingleOpen allows at most one open moment per game. Opening
	// any category closes whatever is currently open.
	PolicySingleOpen
)

// ActionKind discriminates the operations a propagation plan contains.
type ActionKind int

const (
	ActionOpen ActionKind = iota
	ActionClose
)

// Action is one step of a propagation plan. Close actions reference an
// existing open moment by ID; open actions carry the category to open.
type Action struct {
	Kind     ActionKind
	Category string
	MomentID string
	AtMs     int64
}

// Planner computes the full set of state changes resulting from a
// single user activation or deactivation. It is a pure function of the
// blueprint, the open-moment set and the policy; applying the returned
// plan atomically is the caller's job.
type Planner struct {
	Blueprint *Blueprint
	Policy    OpenPolicy
}

// PlanActivate returns the ordered, deduplicated action list for
// activating category at atMs given the currently open moments.
// Re-activating an already-open category is a no-op and yields an empty
// plan. Activation links are followed recursively with a visited-set
// guard so cyclic link graphs terminate, each category opening at most
// once per top-level activation.
func (p *Planner) PlanActivate(category string, atMs int64, open []Moment) ([]Action, error) {
	state := newPlanState(open)
	if err := p.planActivate(category, atMs, state); err != nil {
		return nil, err
	}
	return state.actions, nil
}

func (p *Planner) planActivate(category string, atMs int64, st *planState) error {
	if st.visited[category] {
		// Cycle guard: a category already handled in this propagation is
		// skipped and the cycle is not traversed further.
		return nil
	}
	st.visited[category] = true

	btn, err := p.Blueprint.Resolve(category)
	if err != nil {
		return err
	}

	// Idempotent re-activation: already open means nothing to do.
	if st.isOpen(category) {
		return nil
	}

	if p.Policy == PolicySingleOpen {
		for _, m := range st.openList() {
			st.scheduleClose(m, atMs)
		}
	}

	// Mutual exclusion closes first, then explicit deactivation links;
	// duplicates collapse onto the first scheduled close.
	for _, excluded := range btn.ExclusionSet {
		for _, m := range st.openIn(excluded) {
			st.scheduleClose(m, atMs)
		}
	}
	for _, linked := range btn.DeactivationLinks {
		for _, m := range st.openIn(linked) {
			st.scheduleClose(m, atMs)
		}
	}

	st.scheduleOpen(category, atMs)

	for _, linked := range btn.ActivationLinks {
		if err := p.planActivate(linked, atMs, st); err != nil {
			return err
		}
	}
	return nil
}

// PlanDeactivate returns the action list for deactivating category at
// atMs: a close for every currently-open moment of that category, plus
// the same link effects applied through linked categories' deactivation
// links, guarded against cycles. Deactivating a category with nothing
// open yields an empty plan.
func (p *Planner) PlanDeactivate(category string, atMs int64, open []Moment) ([]Action, error) {
	state := newPlanState(open)
	if err := p.planDeactivate(category, atMs, state); err != nil {
		return nil, err
	}
	return state.actions, nil
}

func (p *Planner) planDeactivate(category string, atMs int64, st *planState) error {
	if st.visited[category] {
		return nil
	}
	st.visited[category] = true

	btn, err := p.Blueprint.Resolve(category)
	if err != nil {
		return err
	}

	closed := false
	for _, m := range st.openIn(category) {
		st.scheduleClose(m, atMs)
		closed = true
	}
	if !closed {
		return nil
	}

	// Closing a category drags its deactivation-linked categories down
	// with it, direction reversed from activation.
	for _, linked := range btn.DeactivationLinks {
		if err := p.planDeactivate(linked, atMs, st); err != nil {
			return err
		}
	}
	return nil
}

// planState accumulates a propagation plan: the action list in schedule
// order, the visited set for the cycle guard, and a live view of which
// categories are open once already-scheduled actions are taken into
// account.
type planState struct {
	actions   []Action
	visited   map[string]bool
	openByCat map[string][]Moment
	closing   map[string]bool
	opened    map[string]bool
}

func newPlanState(open []Moment) *planState {
	byCat := make(map[string][]Moment)
	for _, m := range open {
		byCat[m.Category] = append(byCat[m.Category], m)
	}
	return &planState{
		visited:   make(map[string]bool),
		openByCat: byCat,
		closing:   make(map[string]bool),
		opened:    make(map[string]bool),
	}
}

func (st *planState) isOpen(category string) bool {
	if st.opened[category] {
		return true
	}
	for _, m := range st.openByCat[category] {
		if !st.closing[m.ID] {
			return true
		}
	}
	return false
}

// openIn returns the stored open moments of a category not yet
// scheduled for close.
func (st *planState) openIn(category string) []Moment {
	var out []Moment
	for _, m := range st.openByCat[category] {
		if !st.closing[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

func (st *planState) openList() []Moment {
	var out []Moment
	for _, list := range st.openByCat {
		for _, m := range list {
			if !st.closing[m.ID] {
				out = append(out, m)
			}
		}
	}
	return out
}

func (st *planState) scheduleClose(m Moment, atMs int64) {
	if st.closing[m.ID] {
		return
	}
	st.closing[m.ID] = true
	st.actions = append(st.actions, Action{Kind: ActionClose, Category: m.Category, MomentID: m.ID, AtMs: atMs})
}

func (st *planState) scheduleOpen(category string, atMs int64) {
	st.opened[category] = true
	st.actions = append(st.actions, Action{Kind: ActionOpen, Category: category, AtMs: atMs})
}
