package models

// EntryPatch is a partial update for a stored entry. Nil fields are left
// untouched by UpdateFields.
type EntryPatch struct {
	Priority *Priority
	Status   *Status
}

// PatchPriority returns a patch setting only the priority.
func PatchPriority(p Priority) EntryPatch { return EntryPatch{Priority: &p} }

// PatchStatus returns a patch setting only the status.
func PatchStatus(s Status) EntryPatch { return EntryPatch{Status: &s} }
