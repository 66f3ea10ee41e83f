package anf

// BuildL4 computes the symbolic ANF of the state after the fourth linear
// layer, starting from an initial symbolic state (see recovery.InitState*).
//
// Rounds 1-3 always use the full S-box for round 1 and the quadratic-only
// S-box with degree filters {2} and {4} for rounds 2 and 3 — this part is
// identical across both attack phases. round4Degrees selects which
// public-variable degrees survive round 4's filter: phase 2 (recovering
// raw coefficients) keeps only degree 8, the cube's full degree; phase 3
// (recovering coefficients over the already-fixed a/e rows) also keeps
// degree 7, since fixing two of the four secret rows lets a degree-7
// leading term survive where phase 2 would have filtered it out.
func BuildL4(start State, round4Degrees ...int) (State, error) {
	s1, err := sboxState(start, false, KeepAll)
	if err != nil {
		return State{}, err
	}
	l1, err := linLayer(s1)
	if err != nil {
		return State{}, err
	}

	s2, err := sboxState(l1, true, DegreeIn(2))
	if err != nil {
		return State{}, err
	}
	l2, err := linLayer(s2)
	if err != nil {
		return State{}, err
	}

	s3, err := sboxState(l2, true, DegreeIn(4))
	if err != nil {
		return State{}, err
	}
	l3, err := linLayer(s3)
	if err != nil {
		return State{}, err
	}

	s4, err := sboxState(l3, true, DegreeIn(round4Degrees...))
	if err != nil {
		return State{}, err
	}
	return linLayer(s4)
}
