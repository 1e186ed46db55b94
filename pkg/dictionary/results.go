package dictionary

import "fmt"

// Action is the kind of mutation an OperationResult reports on.
type Action int

const (
	InsertWord Action = iota
	DeleteWord
)

func (a Action) String() string {
	switch a {
	case InsertWord:
		return "Insert Word"
	case DeleteWord:
		return "Delete Word"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// records the outcome of a single insert or delete for reporting
type OperationResult struct {
	Action      Action
	Word        string // the word after normalization
	Changed     bool   // the stored word set changed
	NodesAdded  int
	NodesPruned int
	Err         error // why the word was rejected, if it was
}

func (r *OperationResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Action Rejected: %s %q, Reason: %v", r.Action, r.Word, r.Err)
	}
	if !r.Changed {
		return fmt.Sprintf("Action Skipped: %s %q, Nothing Changed", r.Action, r.Word)
	}
	return fmt.Sprintf("Action Taken: %s %q, Added Nodes: %d, Pruned Nodes: %d",
		r.Action, r.Word, r.NodesAdded, r.NodesPruned)
}
