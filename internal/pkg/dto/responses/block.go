package responses

// SelectionState reflects a block's interaction state after a selection or
// input change: whether the companion fields are enabled and which field
// should take focus (empty when none).
type SelectionState struct {
	BlockID       string `json:"blockId"`
	FieldsEnabled bool   `json:"fieldsEnabled"`
	FocusField    string `json:"focusField,omitempty"`
}

// CommitResult is the outcome of a goal commit or update. Removed is true
// only on a 200 from the COACH backend; otherwise the block stays registered
// and interactive for retry.
type CommitResult struct {
	BlockID    string `json:"blockId"`
	StatusCode int    `json:"statusCode"`
	Removed    bool   `json:"removed"`
}

// CounselingResult carries the navigation target of the clicked counseling
// action. NavigateTo is returned once the receipt write has resolved,
// whatever its status.
type CounselingResult struct {
	BlockID    string `json:"blockId"`
	StatusCode int    `json:"statusCode"`
	Recorded   bool   `json:"recorded"`
	NavigateTo string `json:"navigateTo"`
}
