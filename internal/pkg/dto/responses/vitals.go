package responses

import "coach-service/internal/app/models"

// VitalsCreated returns the created row, the table it was merged into sorted
// ascending by reading timestamp, and the date-picker config for the next
// entry (first of last month through today).
type VitalsCreated struct {
	Row        models.VitalsRow         `json:"row"`
	Table      models.VitalsTable       `json:"table"`
	DatePicker *models.DatePickerConfig `json:"datePicker,omitempty"`
}
