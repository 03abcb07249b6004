package heading

type SaveStatus string

const (
	Idle         SaveStatus = "idle"
	Saving       SaveStatus = "saving"
	Saved        SaveStatus = "saved"
	SaveFailed   SaveStatus = "save_failed"
	Removing     SaveStatus = "removing"
	Removed      SaveStatus = "removed"
	RemoveFailed SaveStatus = "remove_failed"
	TagsSaving   SaveStatus = "tags_saving"
	TagsSaved    SaveStatus = "tags_saved"
	TagsFailed   SaveStatus = "tags_failed"
	TagsError    SaveStatus = "tags_error"
)

var saveStatusCopy = map[SaveStatus]string{
	Saving:       "Saving...",
	Saved:        "Saved to Pocket",
	SaveFailed:   "Something went wrong!",
	Removing:     "Removing...",
	Removed:      "Removed",
	RemoveFailed: "Something went wrong!",
	TagsSaving:   "Saving tags...",
	TagsSaved:    "Tags saved",
	TagsFailed:   "Something went wrong!",
	TagsError:    "Tags limited to 25 characters",
}

// Copy returns the text shown for s. Idle and unknown statuses show nothing.
func (s SaveStatus) Copy() string {
	return saveStatusCopy[s]
}

func (s SaveStatus) Failed() bool {
	switch s {
	case SaveFailed, RemoveFailed, TagsFailed, TagsError:
		return true
	}
	return false
}

func (s SaveStatus) Pending() bool {
	switch s {
	case Saving, Removing, TagsSaving:
		return true
	}
	return false
}
