package requests

type CounselingAction struct {
	BlockID     string `json:"blockId" validate:"required"`
	ActionIndex int    `json:"actionIndex" validate:"min=0"`
}
